package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// LocalStorageRepo реализует строковое key-value хранилище поверх SQLite.
type LocalStorageRepo struct {
	db *SQLite
}

func NewLocalStorageRepo(db *SQLite) *LocalStorageRepo {
	return &LocalStorageRepo{db: db}
}

func (r *LocalStorageRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.DB.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

func (r *LocalStorageRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.DB.ExecContext(ctx, `
INSERT INTO local_storage (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE
SET value      = excluded.value,
    updated_at = excluded.updated_at
`, key, value, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Remove удаляет ключ. Отсутствие ключа ошибкой не считается.
func (r *LocalStorageRepo) Remove(ctx context.Context, key string) error {
	if _, err := r.db.DB.ExecContext(ctx, `DELETE FROM local_storage WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
