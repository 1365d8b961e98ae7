package storage

import "errors"

// Common client storage errors
var (
	// ErrKeyNotFound indicates that the key has no stored value
	ErrKeyNotFound = errors.New("session key not found")

	// ErrUnknownKey indicates a key outside of the session layout
	ErrUnknownKey = errors.New("unknown session key")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
