package publish

import (
	"context"
	"fmt"
	"time"
)

// Message is one outbound notification: a fixed subject line and the
// formatted digest body.
type Message struct {
	Subject string
	Body    string
}

// Result records a completed publish attempt.
type Result struct {
	ID        string
	Timestamp time.Time
}

// Publisher transmits a notification message to a destination.
type Publisher interface {
	Publish(ctx context.Context, msg Message) (Result, error)
	Close() error
}

// PublishError indicates the transport was unreachable or rejected the
// message.
type PublishError struct {
	Cause error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to publish notification: %v", e.Cause)
}

func (e *PublishError) Unwrap() error { return e.Cause }
