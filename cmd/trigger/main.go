package main

import (
	"context"
	"flag"
	"log"
	"time"

	"nbanotifier/config"
	"nbanotifier/internal/queue"
)

func main() {
	log.SetFlags(0)

	in := flag.Duration("in", 0, "Delay before the notifier fires")
	flag.Parse()

	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	scheduler, err := queue.NewCloudTasksScheduler(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create trigger scheduler: %v", err)
	}
	defer scheduler.Close()

	fireAt := time.Now().Add(*in)
	if err := scheduler.Schedule(ctx, fireAt); err != nil {
		log.Fatalf("Failed to schedule trigger: %v", err)
	}

	log.Printf("Notifier trigger scheduled for %s", fireAt.Format(time.RFC3339))
}
