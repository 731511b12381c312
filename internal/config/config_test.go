package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"GO_ENV", "LOG_FILE_PATH", "LOG_LEVEL", "DB_CONNECTION_STRING",
		"DB_MAX_IDLE_CONNS", "DB_MAX_OPEN_CONNS", "DB_CONN_MAX_LIFETIME", "DB_SLOW_THRESHOLD",
		"OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME", "SEED_PASSWORD",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	// empty values are kept for plain strings and ignored for typed ones
	assert.Equal(t, "", cfg.App.Environment)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, time.Second, cfg.Database.SlowThreshold)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_CONNECTION_STRING", "host=db user=console dbname=console")
	t.Setenv("DB_MAX_IDLE_CONNS", "4")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("DB_CONN_MAX_LIFETIME", "15m")
	t.Setenv("DB_SLOW_THRESHOLD", "250ms")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_SERVICE_NAME", "console-worker")

	cfg := FromEnv()

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "host=db user=console dbname=console", cfg.Database.Connection)
	assert.Equal(t, 4, cfg.Database.MaxIdleConns)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.Equal(t, 15*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.SlowThreshold)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "console-worker", cfg.Tracing.ServiceName)
}
