package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.ServerAddr())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.RedisAddr())
	assert.Equal(t, "stayhub", cfg.OTEL.ServiceName)
	assert.False(t, cfg.OTEL.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_ENDPOINT", "otel.internal:4317")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.RedisAddr())
	assert.True(t, cfg.OTEL.Enabled)
	assert.Equal(t, "otel.internal:4317", cfg.OTEL.Endpoint)
}

func TestInvalidNumericFallsBackToDefault(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("REDIS_ENABLED", "yes-please")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Redis.Enabled)
}
