package bootstrap

import (
	"context"
	"errors"

	"cloud-console-be/internal/config"
	"cloud-console-be/internal/pkg/logger"
	"cloud-console-be/internal/repository/unitofwork"
	"cloud-console-be/internal/tracer"
	"cloud-console-be/pkg/database"

	"gorm.io/gorm"
)

type Container struct {
	Config     *config.Config
	Logger     logger.ILogger
	DB         *gorm.DB
	UowFactory unitofwork.RepositoryFactory

	shutdownTracer tracer.ShutdownFunc
}

// NewContainer wires config, logger, tracer and database in that order.
// Callers must Close the container.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.LogLevel, cfg.App.IsProduction())

	shutdown := tracer.InitTracer(ctx, cfg.Tracing, sysLogger)

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.OptionsFromConfig(cfg, sysLogger))
	if err != nil {
		sysLogger.Error("Bootstrap", "failed to connect to database", map[string]interface{}{"error": err})
		return nil, errors.Join(err, shutdown(ctx), sysLogger.Sync())
	}

	return &Container{
		Config:         cfg,
		Logger:         sysLogger,
		DB:             db,
		UowFactory:     unitofwork.NewRepositoryFactory(db),
		shutdownTracer: shutdown,
	}, nil
}

func (c *Container) Close(ctx context.Context) error {
	var errs []error
	if sqlDB, err := c.DB.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	}
	errs = append(errs, c.shutdownTracer(ctx))
	// Sync on stdout fails on some terminals; the result is ignored.
	_ = c.Logger.Sync()
	return errors.Join(errs...)
}
