package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_RequiresBackendEndpointAndCredential(t *testing.T) {
	t.Setenv("CHOICEBATTLE_DATABASE.HOST", "")
	t.Setenv("CHOICEBATTLE_DATABASE.PASSWORD", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Host")
	assert.Contains(t, err.Error(), "Password")
}

func TestLoadConfig_MissingPassword(t *testing.T) {
	t.Setenv("CHOICEBATTLE_DATABASE.HOST", "db.example.supabase.co")
	t.Setenv("CHOICEBATTLE_DATABASE.PASSWORD", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Password")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CHOICEBATTLE_DATABASE.HOST", "db.example.supabase.co")
	t.Setenv("CHOICEBATTLE_DATABASE.PASSWORD", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.False(t, cfg.Database.Migrate)
	assert.Empty(t, cfg.Redis.Address)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "choice-battle-api", cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("CHOICEBATTLE_DATABASE.HOST", "localhost")
	t.Setenv("CHOICEBATTLE_DATABASE.PASSWORD", "postgres")
	t.Setenv("CHOICEBATTLE_DATABASE.SSL_MODE", "disable")
	t.Setenv("CHOICEBATTLE_DATABASE.MIGRATE", "true")
	t.Setenv("CHOICEBATTLE_SERVER.PORT", "8080")
	t.Setenv("CHOICEBATTLE_PRIMARY.ENV", "production")
	t.Setenv("CHOICEBATTLE_REDIS.ADDRESS", "localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "inf"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowQueryThreshold = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestHealthChecksConfig_Runs(t *testing.T) {
	checks := HealthChecksConfig{Enabled: true, Checks: []string{"database"}}
	assert.True(t, checks.Runs("database"))
	assert.False(t, checks.Runs("redis"))

	checks.Enabled = false
	assert.False(t, checks.Runs("database"))
}
