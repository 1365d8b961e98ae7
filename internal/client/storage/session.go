package storage

import "context"

//go:generate moq -out session_mock.go . SessionStorage

// Keys of the persisted session. Values are opaque strings:
// KeyToken holds the raw bearer token, KeyUser the JSON-serialized models.User.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// SessionKeys lists every key the session store accepts.
var SessionKeys = []string{KeyToken, KeyUser}

// SessionStorage defines durable key-value storage for the client session.
// This is the lowest storage layer: it keeps strings as-is and knows nothing
// about users or tokens. The auth session manager is its only writer.
type SessionStorage interface {
	// Get returns the stored value or ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value
	Set(ctx context.Context, key, value string) error

	// Remove deletes key; removing a missing key is not an error
	Remove(ctx context.Context, key string) error

	// SetMany stores all pairs in a single transaction
	SetMany(ctx context.Context, values map[string]string) error

	// RemoveMany deletes all keys in a single transaction
	RemoveMany(ctx context.Context, keys ...string) error

	// Close releases the underlying database
	Close() error
}

// ValidateKey returns ErrUnknownKey for keys outside of SessionKeys.
func ValidateKey(key string) error {
	for _, k := range SessionKeys {
		if k == key {
			return nil
		}
	}
	return ErrUnknownKey
}
