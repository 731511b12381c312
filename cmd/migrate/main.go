package main

import (
	"context"
	"log"

	"cloud-console-be/internal/bootstrap"
	"cloud-console-be/internal/config"
	"cloud-console-be/pkg/database"
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
	defer c.Close(ctx)

	c.Logger.Info("Migrate", "running AutoMigrate", map[string]interface{}{"tables": len(database.Models())})

	if err := database.Migrate(c.DB.WithContext(ctx)); err != nil {
		c.Logger.Error("Migrate", "migration failed", map[string]interface{}{"error": err})
		c.Close(ctx)
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	c.Logger.Info("Migrate", "database migration completed", nil)
}
