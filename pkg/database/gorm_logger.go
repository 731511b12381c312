package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud-console-be/internal/pkg/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const logModule = "Database"

// GormLogger routes gorm's statement log through ILogger.
// Statements log at debug, slow ones at warn and failures at error.
type GormLogger struct {
	log           logger.ILogger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(log logger.ILogger, slowThreshold time.Duration, level gormlogger.LogLevel) *GormLogger {
	return &GormLogger{
		log:           log,
		level:         level,
		slowThreshold: slowThreshold,
	}
}

// GormLogLevel maps an application log level onto gorm's coarser scale.
func GormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "warn":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	case "silent":
		return gormlogger.Silent
	}
	return gormlogger.Warn
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.Info(logModule, fmt.Sprintf(msg, args...), nil)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(logModule, fmt.Sprintf(msg, args...), nil)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.Error(logModule, fmt.Sprintf(msg, args...), nil)
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.log.Error(logModule, "statement failed", details(sql, rows, elapsed, err))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		d := details(sql, rows, elapsed, nil)
		d["threshold_ms"] = l.slowThreshold.Milliseconds()
		l.log.Warn(logModule, "slow statement", d)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.log.Debug(logModule, "statement", details(sql, rows, elapsed, nil))
	}
}

func details(sql string, rows int64, elapsed time.Duration, err error) map[string]interface{} {
	d := map[string]interface{}{
		"sql":        sql,
		"elapsed_ms": float64(elapsed.Microseconds()) / 1000,
	}
	if rows >= 0 {
		d["rows"] = rows
	}
	if err != nil {
		d["error"] = err
	}
	return d
}
