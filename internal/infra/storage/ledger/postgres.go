package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentCore/pkg/psqlbuilder"
)

// PostgresStore key-value хранилище поверх единственной таблицы
// kv_store(key TEXT PRIMARY KEY, value TEXT). Схема в migrations/.
type PostgresStore struct {
	db DBExecutor
}

// NewPostgresStore создает хранилище над указанным исполнителем запросов
func NewPostgresStore(db DBExecutor) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get читает значение ключа
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := psqlbuilder.Select("value").
		From("kv_store").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}

	return []byte(value), true, nil
}

// Set перезаписывает значение ключа (insert-or-update)
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := psqlbuilder.Insert("kv_store").
		Columns("key", "value").
		Values(key, string(value)).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
