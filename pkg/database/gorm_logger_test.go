package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud-console-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func observed(t *testing.T) (*logger.ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewFromZap(zap.New(core)), logs
}

func statement(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLoggerTrace(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		level   gormlogger.LogLevel
		elapsed time.Duration
		err     error
		want    zapcore.Level
		message string
	}{
		{"failure", gormlogger.Warn, 0, errors.New("relation does not exist"), zapcore.ErrorLevel, "statement failed"},
		{"slow", gormlogger.Warn, 2 * time.Second, nil, zapcore.WarnLevel, "slow statement"},
		{"plain at info", gormlogger.Info, 0, nil, zapcore.DebugLevel, "statement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, logs := observed(t)
			l := NewGormLogger(log, time.Second, tt.level)

			l.Trace(ctx, time.Now().Add(-tt.elapsed), statement(`SELECT * FROM "lambdas"`, 3), tt.err)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.want, entries[0].Level)
			assert.Equal(t, tt.message, entries[0].Message)
			assert.Equal(t, logModule, entries[0].ContextMap()["module"])
		})
	}
}

func TestGormLoggerQuietCases(t *testing.T) {
	ctx := context.Background()
	log, logs := observed(t)

	NewGormLogger(log, time.Second, gormlogger.Warn).
		Trace(ctx, time.Now(), statement("SELECT 1", 1), nil)
	NewGormLogger(log, time.Second, gormlogger.Error).
		Trace(ctx, time.Now(), statement("SELECT 1", 0), gorm.ErrRecordNotFound)
	NewGormLogger(log, time.Second, gormlogger.Silent).
		Trace(ctx, time.Now(), statement("SELECT 1", 0), errors.New("boom"))

	assert.Zero(t, logs.Len())
}

func TestGormLoggerLogModeCopies(t *testing.T) {
	log, _ := observed(t)
	base := NewGormLogger(log, time.Second, gormlogger.Warn)

	quiet := base.LogMode(gormlogger.Silent).(*GormLogger)

	assert.Equal(t, gormlogger.Silent, quiet.level)
	assert.Equal(t, gormlogger.Warn, base.level)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, GormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, GormLogLevel("info"))
	assert.Equal(t, gormlogger.Error, GormLogLevel("error"))
	assert.Equal(t, gormlogger.Silent, GormLogLevel("silent"))
	assert.Equal(t, gormlogger.Warn, GormLogLevel(""))
}

func TestNewGormDBFromDSNRejectsEmptyDSN(t *testing.T) {
	_, err := NewGormDBFromDSN("", Options{})
	assert.Error(t, err)
}
