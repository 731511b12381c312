package database

import (
	"fmt"
	"time"

	"cloud-console-be/internal/config"
	"cloud-console-be/internal/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Options struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration

	// LogLevel is the application log level; see GormLogLevel.
	LogLevel string
	Logger   logger.ILogger
	Tracing  bool
}

func OptionsFromConfig(cfg *config.Config, log logger.ILogger) Options {
	return Options{
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		SlowThreshold:   cfg.Database.SlowThreshold,
		LogLevel:        cfg.App.LogLevel,
		Logger:          log,
		Tracing:         cfg.Tracing.Enabled,
	}
}

func configureConnectionPool(db *gorm.DB, opts Options) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)

	return nil
}

// NewGormDBFromDSN opens a Postgres pool. Driver errors are translated so
// unique and foreign key violations surface as gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated.
func NewGormDBFromDSN(dsn string, opts Options) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database: empty connection string")
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         NewGormLogger(log, opts.SlowThreshold, GormLogLevel(opts.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db, opts); err != nil {
		return nil, err
	}

	if opts.Tracing {
		if err := db.Use(NewTracingPlugin(nil)); err != nil {
			return nil, err
		}
	}

	return db, nil
}
