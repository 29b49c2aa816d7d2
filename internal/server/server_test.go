package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/newsletter-api/internal/config"
	"github.com/deppfellow/newsletter-api/internal/lib/job"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRequiresHTTPServer(t *testing.T) {
	s := &Server{Config: config.DefaultConfig()}

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestSetupHTTPServerAppliesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.Port = "8081"
	cfg.Server.ReadTimeout = 5
	cfg.Server.WriteTimeout = 10
	cfg.Server.IdleTimeout = 15

	s := &Server{Config: cfg}
	handler := http.NewServeMux()
	s.SetupHTTPServer(handler)

	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":8081", s.httpServer.Addr)
	assert.Equal(t, 5*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 10*time.Second, s.httpServer.WriteTimeout)
	assert.Equal(t, 15*time.Second, s.httpServer.IdleTimeout)
}

func TestShutdownReleasesDependencies(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{
		Config: config.DefaultConfig(),
		Logger: &logger,
		Redis:  redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}),
	}
	s.SetupHTTPServer(http.NewServeMux())

	require.NoError(t, s.Shutdown(context.Background()))

	// A shut down server refuses to start again.
	assert.ErrorIs(t, s.Start(), http.ErrServerClosed)
	assert.ErrorIs(t, s.Redis.Ping(context.Background()).Err(), redis.ErrClosed)
}

func TestStartJobsFailureReleasesRedis(t *testing.T) {
	logger := zerolog.Nop()
	cfg := config.DefaultConfig()
	cfg.Redis.Address = "127.0.0.1:0"

	s := &Server{
		Config: cfg,
		Logger: &logger,
		Redis:  redis.NewClient(&redis.Options{Addr: cfg.Redis.Address}),
	}

	// A stopped worker pool refuses to start again.
	jobService := job.NewJobService(&logger, cfg)
	require.NoError(t, jobService.Start())
	jobService.Stop()

	err := s.startJobs(jobService)
	assert.ErrorIs(t, err, asynq.ErrServerClosed)
	assert.ErrorContains(t, err, "failed to start job service")
	assert.Nil(t, s.Job)
	assert.ErrorIs(t, s.Redis.Ping(context.Background()).Err(), redis.ErrClosed)
}
