package database

import (
	"cloud-console-be/internal/model"

	"gorm.io/gorm"
)

// Models lists every table in dependency order: owners before the rows that
// reference them.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.AIFunction{},
		&model.Lambda{},
		&model.LambdaExecution{},
		&model.Queue{},
		&model.Bucket{},
		&model.Container{},
	}
}

// Migrate installs pgcrypto for gen_random_uuid and auto-migrates Models.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(Models()...)
}
