package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims сведения из bearer токена, прочитанные без проверки подписи.
// Используются только для отображения; доверять им нельзя.
type TokenClaims struct {
	ExpiresAt time.Time // нулевое значение если exp отсутствует
	IssuedAt  time.Time
	Subject   string
}

// Expired reports whether the token carries an expiry that is already in the past.
func (c *TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// ParseClaims reads registered claims of a JWT without verifying it.
// Non-JWT tokens yield ErrOpaqueToken.
func ParseClaims(token string) (*TokenClaims, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpaqueToken, err)
	}

	out := &TokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}

// Claims inspects the current session token.
func (m *Manager) Claims() (*TokenClaims, error) {
	return ParseClaims(m.Token())
}
