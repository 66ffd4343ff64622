package postgres

import (
	"context"
	"database/sql"
)

// Querier abstracts *sql.DB and *sql.Tx so every repository can run either
// standalone or inside a unit-of-work transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
