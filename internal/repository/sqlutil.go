// Package repository implements data access for the booking service on
// top of database/sql.  Each repository owns the SQL for one aggregate
// and exposes sentinel errors so handlers can map failures to HTTP
// status codes without inspecting driver errors.
package repository

import "strings"

// placeholders returns a comma separated list of n "?" markers for use
// inside an IN clause.  n must be positive.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n * 3)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("?")
	}
	return b.String()
}

// idArgs converts a slice of string IDs into []any for ExecContext and
// QueryContext variadics, optionally appending trailing args.
func idArgs(ids []string, extra ...any) []any {
	args := make([]any, 0, len(ids)+len(extra))
	for _, id := range ids {
		args = append(args, id)
	}
	return append(args, extra...)
}
