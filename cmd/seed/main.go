package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud-console-be/internal/bootstrap"
	"cloud-console-be/internal/config"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatal("Error: ", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	c, err := bootstrap.NewContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer c.Close(ctx)

	uow := c.UowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	summary, err := Seed(ctx, uow, cfg.Seed.Password, time.Now())
	if err != nil {
		_ = uow.Rollback()
		c.Logger.Error("Seed", "seeding failed, rolled back", map[string]interface{}{"error": err})
		return err
	}
	if err := uow.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	c.Logger.Info("Seed", "seeding completed", map[string]interface{}{
		"users":      summary.Users,
		"skipped":    summary.Skipped,
		"functions":  summary.Functions,
		"lambdas":    summary.Lambdas,
		"executions": summary.Executions,
		"queues":     summary.Queues,
		"buckets":    summary.Buckets,
		"containers": summary.Containers,
	})
	return nil
}
