package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный интерфейс для работы с БД (*sql.DB, *sql.Tx)
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
