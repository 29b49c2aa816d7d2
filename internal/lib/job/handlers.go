package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleNewsletterCreatedTask emails the notification contact about a
// new newsletter. A returned error makes asynq retry the task.
func (j *JobService) handleNewsletterCreatedTask(ctx context.Context, t *asynq.Task) error {
	var p NewsletterCreatedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal newsletter payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskNewsletterCreated).
		Int("newsletter_id", p.ID).
		Logger()

	log.Info().Msg("processing newsletter notification")

	if err := j.mailer.SendNewsletterCreatedEmail(ctx, j.notifyEmail, p.ID, p.Title); err != nil {
		log.Error().Err(err).Msg("failed to send newsletter notification")
		return err
	}

	log.Info().Msg("newsletter notification sent")

	return nil
}
