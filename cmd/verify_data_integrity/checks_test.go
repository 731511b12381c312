package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"cloud-console-be/pkg/database"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestPrintReport(t *testing.T) {
	tests := []struct {
		name     string
		results  []Result
		ok       bool
		contains []string
	}{
		{
			name:     "all clean",
			results:  []Result{{Check: Check{Name: "duplicate bucket names"}}},
			ok:       true,
			contains: []string{"OK    duplicate bucket names"},
		},
		{
			name: "violations listed",
			results: []Result{{
				Check:      Check{Name: "duplicate bucket names"},
				Violations: []Violation{{Key: "logs", N: 2}},
			}},
			ok:       false,
			contains: []string{"FAIL  duplicate bucket names (1)", "logs x2"},
		},
		{
			name:     "query error fails the run",
			results:  []Result{{Check: Check{Name: "lambdas without owner"}, Err: errors.New("relation missing")}},
			ok:       false,
			contains: []string{"ERROR lambdas without owner: relation missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.ok, PrintReport(&buf, tt.results))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestChecksRunAgainstPostgres(t *testing.T) {
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping Postgres tests: DB_CONNECTION_STRING not set")
	}
	db, err := database.NewGormDBFromDSN(dsn, database.Options{MaxIdleConns: 1, MaxOpenConns: 2, LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	for _, r := range RunChecks(context.Background(), db, checks) {
		assert.NoError(t, r.Err, r.Check.Name)
	}
}
