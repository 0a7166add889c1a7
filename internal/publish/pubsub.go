package publish

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/google/uuid"
)

// PubSubPublisher publishes notifications to a Google Pub/Sub topic, from
// which email/SMS subscribers fan out.
type PubSubPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// NewPubSubPublisher creates a PubSubPublisher. A missing topic ID is not
// an error here; it surfaces as a PublishError on first use.
func NewPubSubPublisher(ctx context.Context, projectID, topicID string) (*PubSubPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, &PublishError{Cause: fmt.Errorf("failed to create pubsub client: %w", err)}
	}

	p := &PubSubPublisher{client: client}
	if topicID != "" {
		p.topic = client.Topic(topicID)
	}
	return p, nil
}

func (p *PubSubPublisher) Publish(ctx context.Context, msg Message) (Result, error) {
	if p.topic == nil {
		return Result{}, &PublishError{Cause: fmt.Errorf("PUBSUB_TOPIC is not set")}
	}

	id := uuid.New().String()
	res := p.topic.Publish(ctx, &pubsub.Message{
		Data: []byte(msg.Body),
		Attributes: map[string]string{
			"subject":         msg.Subject,
			"notification_id": id,
		},
	})

	if _, err := res.Get(ctx); err != nil {
		return Result{}, &PublishError{Cause: fmt.Errorf("failed to publish to topic %s: %w", p.topic.ID(), err)}
	}

	log.Printf("Published notification %s to topic %s", id, p.topic.ID())
	return Result{ID: id, Timestamp: time.Now()}, nil
}

func (p *PubSubPublisher) Close() error {
	if p.topic != nil {
		p.topic.Stop()
	}
	return p.client.Close()
}
