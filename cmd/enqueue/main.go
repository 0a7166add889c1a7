package main

import (
	"flag"
	"log"

	"nbanotifier/config"
	"nbanotifier/internal/tasks"

	"github.com/hibiken/asynq"
)

func main() {
	date := flag.String("date", "", "Game date override (YYYY-MM-DD, optional)")
	delay := flag.Duration("delay", 0, "Delay before the notify run")
	flag.Parse()

	cfg := config.LoadConfig()

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer client.Close()

	payload := tasks.NotifyPayload{Date: *date}

	task, err := tasks.NewNotifyTask(payload)
	if err != nil {
		log.Fatalf("Failed to create task: %v", err)
	}

	opts := []asynq.Option{}
	if *delay > 0 {
		opts = append(opts, asynq.ProcessIn(*delay))
	}

	info, err := client.Enqueue(task, opts...)
	if err != nil {
		log.Fatalf("Failed to enqueue task: %v", err)
	}

	log.Printf("Task enqueued successfully:")
	log.Printf("  ID:       %s", info.ID)
	log.Printf("  Queue:    %s", info.Queue)
	if *date != "" {
		log.Printf("  Date:     %s", *date)
	}
	if *delay > 0 {
		log.Printf("  Delay:    %v", *delay)
	}
}
