package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	TypeNotifyGameUpdates = "notify:game_updates"
)

// NotifyPayload carries per-task options for a notify run.
type NotifyPayload struct {
	// Date optionally overrides the resolved game date (YYYY-MM-DD).
	Date string `json:"date,omitempty"`
}

// NewNotifyTask creates a new asynq task from a notify payload.
func NewNotifyTask(payload NotifyPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(TypeNotifyGameUpdates, data), nil
}

// ParseNotifyPayload deserializes a payload from an asynq task.
func ParseNotifyPayload(t *asynq.Task) (NotifyPayload, error) {
	var payload NotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return payload, nil
}
