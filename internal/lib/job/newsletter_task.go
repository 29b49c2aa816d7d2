package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deppfellow/newsletter-api/internal/model"
	"github.com/hibiken/asynq"
)

// TaskNewsletterCreated is enqueued after a newsletter is committed.
const TaskNewsletterCreated = "newsletter:created"

// NewsletterCreatedPayload is the JSON payload of TaskNewsletterCreated.
type NewsletterCreatedPayload struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// NewNewsletterCreatedTask builds the notification task for n.
func NewNewsletterCreatedTask(n model.Newsletter) (*asynq.Task, error) {
	payload, err := json.Marshal(NewsletterCreatedPayload{
		ID:    n.ID,
		Title: n.Title,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskNewsletterCreated,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueNewsletterCreated schedules the notification for n.
func (j *JobService) EnqueueNewsletterCreated(ctx context.Context, n model.Newsletter) error {
	task, err := NewNewsletterCreatedTask(n)
	if err != nil {
		return fmt.Errorf("failed to build newsletter task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue newsletter task: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int("newsletter_id", n.ID).
		Msg("newsletter task enqueued")

	return nil
}
