package queue

import (
	"context"
	"fmt"
	"log"
	"time"

	"nbanotifier/config"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// CloudTasksScheduler implements TriggerScheduler using Google Cloud Tasks.
// Each scheduled task is an HTTP POST against the notifier's handler URL.
type CloudTasksScheduler struct {
	client *cloudtasks.Client
	cfg    *config.Config
}

// NewCloudTasksScheduler creates a CloudTasksScheduler. When the config
// selects the local emulator, the client connects over plaintext gRPC.
func NewCloudTasksScheduler(ctx context.Context, cfg *config.Config) (*CloudTasksScheduler, error) {
	if cfg.Env == "local" && cfg.CloudTasksAddress != "" {
		log.Printf("Using local Cloud Tasks emulator at %s", cfg.CloudTasksAddress)
		conn, err := grpc.Dial(
			cfg.CloudTasksAddress,
			grpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to dial tasks emulator: %w", err)
		}
		client, err := cloudtasks.NewClient(ctx, option.WithGRPCConn(conn))
		if err != nil {
			return nil, fmt.Errorf("failed to create tasks client: %w", err)
		}
		return &CloudTasksScheduler{client: client, cfg: cfg}, nil
	}

	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks client: %w", err)
	}
	return &CloudTasksScheduler{client: client, cfg: cfg}, nil
}

func (s *CloudTasksScheduler) Schedule(ctx context.Context, fireAt time.Time) error {
	queuePath := fmt.Sprintf("projects/%s/locations/%s/queues/%s",
		s.cfg.ProjectID, s.cfg.LocationID, s.cfg.QueueID)

	// The notifier ignores the trigger body; an empty JSON object keeps the
	// request well-formed.
	task := &taskspb.Task{
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        s.cfg.HandlerAddress,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: []byte("{}"),
			},
		},
		ScheduleTime: timestamppb.New(fireAt),
	}

	req := &taskspb.CreateTaskRequest{
		Parent: queuePath,
		Task:   task,
	}

	log.Printf("Scheduling notifier trigger at %s via queue %s", fireAt.Format(time.RFC3339), queuePath)

	if _, err := s.client.CreateTask(ctx, req); err != nil {
		return fmt.Errorf("failed to create trigger task: %w", err)
	}

	return nil
}

func (s *CloudTasksScheduler) Close() error {
	return s.client.Close()
}
