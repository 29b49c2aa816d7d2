// Package job runs background work on Asynq, a Redis backed task queue.
//
// The HTTP process is both producer (asynq.Client) and consumer
// (asynq.Server) of its own tasks.
package job

import (
	"context"

	"github.com/deppfellow/newsletter-api/internal/config"
	"github.com/deppfellow/newsletter-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Mailer delivers notification emails.
type Mailer interface {
	SendNewsletterCreatedEmail(ctx context.Context, to string, id int, title string) error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	logger *zerolog.Logger

	mailer      Mailer
	notifyEmail string
}

// NewJobService creates a JobService on the configured Redis instance.
// Queue weights give critical tasks the largest share of the workers.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.InfoLevel,
		},
	)

	return &JobService{
		Client:      asynq.NewClient(redisOpt),
		server:      server,
		logger:      logger,
		mailer:      email.NewClient(cfg, logger),
		notifyEmail: cfg.Integration.NotifyEmail,
	}
}

// Start registers task handlers and starts the workers. It does not block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskNewsletterCreated, j.handleNewsletterCreatedTask)

	j.logger.Info().Msg("starting background job server")

	return j.server.Start(mux)
}

// Stop shuts the workers down and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
