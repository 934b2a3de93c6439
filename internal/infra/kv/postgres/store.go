package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StageCalendar/internal/infra/kv"
	"github.com/m04kA/SMC-StageCalendar/pkg/psqlbuilder"
)

const tableName = "kv_snapshots"

// Schema создает таблицу для хранения снапшотов, если её нет
const Schema = `CREATE TABLE IF NOT EXISTS kv_snapshots (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Store key-value хранилище поверх таблицы PostgreSQL
type Store struct {
	db DBExecutor
}

// NewStore создает новый экземпляр хранилища
func NewStore(db DBExecutor) *Store {
	return &Store{db: db}
}

// EnsureSchema создает таблицу хранилища
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Get получает значение по ключу
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("value").
		From(tableName).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// Put сохраняет значение по ключу (upsert)
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Put - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Put - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
