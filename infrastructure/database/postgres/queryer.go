package postgres

import (
	"context"
	"database/sql"
)

// Queryer is the query surface the stores depend on. Both *Connection
// and *sql.Tx satisfy it.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var (
	_ Queryer = (*Connection)(nil)
	_ Queryer = (*sql.Tx)(nil)
)
