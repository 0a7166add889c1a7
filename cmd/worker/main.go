package main

import (
	"log"

	"nbanotifier/config"
	"nbanotifier/internal/tasks"

	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.LoadConfig()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		},
		asynq.Config{Concurrency: 1},
	)

	mux := asynq.NewServeMux()
	mux.Handle(tasks.TypeNotifyGameUpdates, tasks.NewNotifyHandler(cfg))

	log.Printf("Starting notify worker on redis %s", cfg.RedisAddress)
	if err := srv.Run(mux); err != nil {
		log.Fatalf("Failed to start worker: %v", err)
	}
}
