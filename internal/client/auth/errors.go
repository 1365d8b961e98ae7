package auth

import "errors"

var (
	// ErrNotAuthenticated indicates that an operation needs a session and there is none
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrOpaqueToken indicates that the bearer token is not a JWT and carries no readable claims
	ErrOpaqueToken = errors.New("token is not a JWT")
)
