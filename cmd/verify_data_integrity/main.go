package main

import (
	"context"
	"log"
	"os"

	"cloud-console-be/internal/bootstrap"
	"cloud-console-be/internal/config"

	"github.com/fatih/color"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	c, err := bootstrap.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Data integrity check (%d checks)\n", len(checks))
	ok := PrintReport(color.Output, RunChecks(ctx, c.DB, checks))
	c.Close(ctx)

	if !ok {
		os.Exit(1)
	}
}
