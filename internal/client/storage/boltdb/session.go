package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/taibogaston/frontendchat/internal/client/storage"
)

// Get retrieves the value stored under key
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	if err := storage.ValidateKey(key); err != nil {
		return "", err
	}

	var value string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrKeyNotFound
		}

		// Get возвращает slice, валидный только внутри транзакции
		value = string(data)
		return nil
	})
	if err != nil {
		return "", mapErr(err)
	}

	return value, nil
}

// Set stores value under key
func (s *Storage) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

// Remove deletes key from the session bucket
func (s *Storage) Remove(ctx context.Context, key string) error {
	return s.RemoveMany(ctx, key)
}

// SetMany stores all pairs in one write transaction
func (s *Storage) SetMany(ctx context.Context, values map[string]string) error {
	for key := range values {
		if err := storage.ValidateKey(key); err != nil {
			return fmt.Errorf("%w: %q", err, key)
		}
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		for key, value := range values {
			if err := bucket.Put([]byte(key), []byte(value)); err != nil {
				return fmt.Errorf("failed to save %s: %w", key, err)
			}
		}
		return nil
	})
	return mapErr(err)
}

// RemoveMany deletes all keys in one write transaction.
// Missing keys are ignored.
func (s *Storage) RemoveMany(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := storage.ValidateKey(key); err != nil {
			return fmt.Errorf("%w: %q", err, key)
		}
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return fmt.Errorf("failed to delete %s: %w", key, err)
			}
		}
		return nil
	})
	return mapErr(err)
}
