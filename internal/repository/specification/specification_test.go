package specification

import (
	"testing"

	"cloud-console-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func toSQL[M any](db *gorm.DB, specs ...Specification) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []M
		for _, spec := range specs {
			tx = spec.Apply(tx)
		}
		return tx.Find(&rows)
	})
}

func TestOwnerScopedLookupUsesOneStatement(t *testing.T) {
	db := dryRunDB(t)
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	id := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	sql := toSQL[model.Lambda](db, OwnedByUser{UserID: userID}, ByID{ID: id})

	assert.Contains(t, sql, `FROM "lambdas"`)
	assert.Contains(t, sql, "user_id = '"+userID.String()+"'")
	assert.Contains(t, sql, "id = '"+id.String()+"'")
	assert.Contains(t, sql, " AND ")
}

func TestEmailScopedFilters(t *testing.T) {
	db := dryRunDB(t)

	sql := toSQL[model.Container](db, OwnedByEmail{Email: "ops@example.com"}, ByStatus{Status: "running"})

	assert.Contains(t, sql, `FROM "containers"`)
	assert.Contains(t, sql, "owner_email = 'ops@example.com'")
	assert.Contains(t, sql, "status = 'running'")
}

func TestEmailContainsEscapesWildcards(t *testing.T) {
	db := dryRunDB(t)

	sql := toSQL[model.User](db, EmailContains{Fragment: `50%_off\`})

	assert.Contains(t, sql, "ILIKE")
	assert.Contains(t, sql, `ESCAPE '\'`)
	assert.Contains(t, sql, `'%50\%\_off\\%'`)
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"alice", "alice"},
		{"100%", `100\%`},
		{"first_last", `first\_last`},
		{`back\slash`, `back\\slash`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLike(tt.input))
		})
	}
}

func TestOrderByAndLimit(t *testing.T) {
	db := dryRunDB(t)

	sql := toSQL[model.Bucket](db, ByName{Name: "logs"}, OrderBy{Field: "created_at", Desc: true}, Limit{N: 2})

	assert.Contains(t, sql, "name = 'logs'")
	assert.Contains(t, sql, "ORDER BY created_at DESC")
	assert.Contains(t, sql, "LIMIT 2")
}
