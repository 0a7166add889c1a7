package queue

import (
	"context"
	"time"
)

// TriggerScheduler schedules a one-shot HTTP invocation of the notifier.
// In production the recurring trigger is a Cloud Scheduler rule; this
// interface backs the dev tooling that fires the same trigger on demand.
type TriggerScheduler interface {
	Schedule(ctx context.Context, fireAt time.Time) error
	Close() error
}
