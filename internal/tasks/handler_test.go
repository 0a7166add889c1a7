package tasks

import (
	"context"
	"testing"

	"nbanotifier/config"

	"github.com/hibiken/asynq"
)

func TestProcessTask_InvalidPayload(t *testing.T) {
	h := NewNotifyHandler(&config.Config{})

	task := asynq.NewTask(TypeNotifyGameUpdates, []byte("invalid-json"))

	err := h.ProcessTask(context.Background(), task)
	if err == nil {
		t.Error("Expected error for invalid payload, got nil")
	}
}
