package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("NEWSLETTER_DATABASE.PASSWORD", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "5555", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Integration.NotificationsEnabled())

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("NEWSLETTER_PRIMARY.ENV", "production")
	t.Setenv("NEWSLETTER_SERVER.PORT", "8080")
	t.Setenv("NEWSLETTER_SERVER.CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("NEWSLETTER_DATABASE.PASSWORD", "secret")
	t.Setenv("NEWSLETTER_DATABASE.PORT", "6543")
	t.Setenv("NEWSLETTER_REDIS.ADDRESS", "localhost:6379")
	t.Setenv("NEWSLETTER_INTEGRATION.RESEND_API_KEY", "re_123")
	t.Setenv("NEWSLETTER_INTEGRATION.NOTIFY_EMAIL", "editor@example.com")
	t.Setenv("NEWSLETTER_OBSERVABILITY.LOGGING.LEVEL", "warn")
	t.Setenv("NEWSLETTER_OBSERVABILITY.LOGGING.SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.Integration.NotificationsEnabled())

	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	// Keys not set in env keep their defaults.
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoadConfig_MissingPassword(t *testing.T) {
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Password")
}

func TestLoadConfig_InvalidNotifyEmail(t *testing.T) {
	t.Setenv("NEWSLETTER_DATABASE.PASSWORD", "secret")
	t.Setenv("NEWSLETTER_INTEGRATION.NOTIFY_EMAIL", "not-an-email")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("NEWSLETTER_DATABASE.PASSWORD", "secret")
	t.Setenv("NEWSLETTER_OBSERVABILITY.LOGGING.LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	tests := []struct {
		name string
		env  string
		set  string
		want string
	}{
		{name: "production default", env: "production", want: "info"},
		{name: "local default", env: "local", want: "debug"},
		{name: "explicit wins", env: "production", set: "error", want: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultObservabilityConfig()
			cfg.Environment = tt.env
			cfg.Logging.Level = tt.set
			assert.Equal(t, tt.want, cfg.GetLogLevel())
		})
	}
}
