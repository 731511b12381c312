package scope

import (
	"testing"

	"cloud-console-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestScopesBreakTiesOnID(t *testing.T) {
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		scope    func(*gorm.DB) *gorm.DB
		expected string
	}{
		{"created desc", OrderByCreatedDesc, "ORDER BY created_at DESC,id DESC"},
		{"created asc", OrderByCreatedAsc, "ORDER BY created_at ASC,id ASC"},
		{"executed desc", OrderByExecutedDesc, "ORDER BY executed_at DESC,id DESC"},
		{"executed asc", OrderByExecutedAsc, "ORDER BY executed_at ASC,id ASC"},
		{"email asc", OrderByEmailAsc, "ORDER BY email ASC,id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				var rows []model.LambdaExecution
				return tx.Scopes(tt.scope).Find(&rows)
			})
			assert.Contains(t, sql, tt.expected)
		})
	}
}
