package tasks

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"nbanotifier/config"
	"nbanotifier/internal/pipeline"
	"nbanotifier/internal/publish"
	"nbanotifier/internal/scores"

	"github.com/hibiken/asynq"
)

// NotifyHandler processes notify tasks from the Redis queue. It runs the
// same pipeline as the cloud function entry point; a failed run returns an
// error so asynq records the failure (the task is not retried beyond its
// queue defaults, matching the one-attempt-per-trigger model).
type NotifyHandler struct {
	cfg *config.Config
}

func NewNotifyHandler(cfg *config.Config) *NotifyHandler {
	return &NotifyHandler{cfg: cfg}
}

func (h *NotifyHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	payload, err := ParseNotifyPayload(t)
	if err != nil {
		return fmt.Errorf("failed to parse task payload: %w", err)
	}

	cfg := *h.cfg
	if payload.Date != "" {
		cfg.DateOverride = payload.Date
	}

	publisher, err := publish.NewPubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID)
	if err != nil {
		return fmt.Errorf("failed to create publisher: %w", err)
	}
	defer publisher.Close()

	mirrors := publish.DiscoverMirrors()
	defer func() {
		for _, m := range mirrors {
			if err := m.Close(); err != nil {
				log.Printf("Error closing mirror: %v", err)
			}
		}
	}()

	p := &pipeline.Pipeline{
		Cfg:       &cfg,
		Fetcher:   scores.NewFetcher(cfg.GamesFile, cfg.ScoresBaseURL, cfg.APIKey),
		Publisher: publisher,
		Mirrors:   mirrors,
	}

	result := p.Run(ctx)
	if result.Code != http.StatusOK {
		return fmt.Errorf("notify run failed: %s", result.Body)
	}

	log.Printf("Notify task complete: %s", result.Body)
	return nil
}
