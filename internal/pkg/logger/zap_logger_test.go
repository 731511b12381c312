package logger

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesModuleAndDetails(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("Migration", "table migrated", map[string]interface{}{"table": "lambdas"})
	l.Debug("Migration", "no details", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "table migrated", entries[0].Message)
	assert.Equal(t, "Migration", entries[0].ContextMap()["module"])
	assert.Equal(t, map[string]interface{}{"table": "lambdas"}, entries[0].ContextMap()["details"])
	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])
}

func TestZapLoggerErrorReference(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	l := NewFromZap(zap.New(core))

	l.Warn("Seed", "filtered out", nil)
	l.Error("Seed", "insert failed", map[string]interface{}{"error": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].ContextMap()["error_ref"])
}

func TestNewZapLoggerFallsBackToInfo(t *testing.T) {
	l := NewZapLogger(filepath.Join(t.TempDir(), "app.log"), "verbose", true)

	assert.False(t, l.logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.logger.Core().Enabled(zapcore.InfoLevel))
}
