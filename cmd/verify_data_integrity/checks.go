package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

// Check is a query returning one row per violation, with a key column naming
// the offending value and an n column counting the rows involved.
type Check struct {
	Name  string
	Query string
}

type Violation struct {
	Key string
	N   int64
}

type Result struct {
	Check      Check
	Violations []Violation
	Err        error
}

var checks = []Check{
	{"duplicate user emails", `SELECT email AS key, COUNT(*) AS n FROM users GROUP BY email HAVING COUNT(*) > 1`},
	{"duplicate bucket names", `SELECT name AS key, COUNT(*) AS n FROM buckets GROUP BY name HAVING COUNT(*) > 1`},
	{"duplicate container instance ids", `SELECT instance_id AS key, COUNT(*) AS n FROM containers GROUP BY instance_id HAVING COUNT(*) > 1`},
	{"duplicate queue names per owner", `SELECT user_id::text || '/' || queue_name AS key, COUNT(*) AS n FROM queues GROUP BY user_id, queue_name HAVING COUNT(*) > 1`},
	{"ai functions without owner", `SELECT f.id::text AS key, 1 AS n FROM ai_functions f LEFT JOIN users u ON u.id = f.user_id WHERE u.id IS NULL`},
	{"lambdas without owner", `SELECT l.id::text AS key, 1 AS n FROM lambdas l LEFT JOIN users u ON u.id = l.user_id WHERE u.id IS NULL`},
	{"executions without lambda", `SELECT e.id::text AS key, 1 AS n FROM lambda_executions e LEFT JOIN lambdas l ON l.id = e.lambda_id WHERE l.id IS NULL`},
	{"queues without owner", `SELECT q.id::text AS key, 1 AS n FROM queues q LEFT JOIN users u ON u.id = q.user_id WHERE u.id IS NULL`},
	{"buckets without owner", `SELECT b.name AS key, 1 AS n FROM buckets b LEFT JOIN users u ON u.email = b.owner_email WHERE u.id IS NULL`},
	{"containers without owner", `SELECT c.instance_id AS key, 1 AS n FROM containers c LEFT JOIN users u ON u.email = c.owner_email WHERE u.id IS NULL`},
}

// RunChecks runs every check; a failing query is reported on its result and
// does not stop the others.
func RunChecks(ctx context.Context, db *gorm.DB, checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		var rows []Violation
		err := db.WithContext(ctx).Raw(c.Query).Scan(&rows).Error
		results = append(results, Result{Check: c, Violations: rows, Err: err})
	}
	return results
}

// PrintReport writes a coloured summary and reports whether every check passed.
func PrintReport(w io.Writer, results []Result) bool {
	ok := true
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)
	warn := color.New(color.FgYellow)

	for _, r := range results {
		switch {
		case r.Err != nil:
			ok = false
			warn.Fprintf(w, "ERROR %s: %v\n", r.Check.Name, r.Err)
		case len(r.Violations) > 0:
			ok = false
			fail.Fprintf(w, "FAIL  %s (%d)\n", r.Check.Name, len(r.Violations))
			for _, v := range r.Violations {
				fmt.Fprintf(w, "      %s x%d\n", v.Key, v.N)
			}
		default:
			pass.Fprintf(w, "OK    %s\n", r.Check.Name)
		}
	}
	return ok
}
