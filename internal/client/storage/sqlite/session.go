package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taibogaston/frontendchat/internal/client/storage"
)

// Get retrieves the value stored under key
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	if err := storage.ValidateKey(key); err != nil {
		return "", err
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrKeyNotFound
		}
		return "", mapErr(fmt.Errorf("failed to get %s: %w", key, err))
	}

	return value, nil
}

// Set stores value under key
func (s *Storage) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

// Remove deletes key
func (s *Storage) Remove(ctx context.Context, key string) error {
	return s.RemoveMany(ctx, key)
}

// SetMany stores all pairs in one transaction
func (s *Storage) SetMany(ctx context.Context, values map[string]string) error {
	for key := range values {
		if err := storage.ValidateKey(key); err != nil {
			return fmt.Errorf("%w: %q", err, key)
		}
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		const query = `
			INSERT INTO session (key, value, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`
		for key, value := range values {
			if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
				return fmt.Errorf("failed to save %s: %w", key, err)
			}
		}
		return nil
	})
}

// RemoveMany deletes all keys in one transaction.
// Missing keys are ignored.
func (s *Storage) RemoveMany(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := storage.ValidateKey(key); err != nil {
			return fmt.Errorf("%w: %q", err, key)
		}
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key); err != nil {
				return fmt.Errorf("failed to delete %s: %w", key, err)
			}
		}
		return nil
	})
}

func (s *Storage) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapErr(fmt.Errorf("failed to begin transaction: %w", err))
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return mapErr(fmt.Errorf("failed to commit transaction: %w", err))
	}
	return nil
}
