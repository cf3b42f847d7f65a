package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime of a session token. Sessions are
// intentionally shorter than a full day so a token issued at the start of a
// working day is dead before the same time tomorrow.
const DefaultSessionTTL = 23 * time.Hour

// Claims are the session-token claims. Additive changes only, to keep
// previously issued tokens parseable.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user, for logging and debugging. The
	// subject (user ID) is what handlers must rely on.
	Email string `json:"email,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a login session.
func NewSessionClaims(userID, email, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        newJTI(),
		},
		Email: email,
	}
}

// newJTI returns a URL-safe random identifier for the "jti" claim so two
// logins in the same second still produce distinct tokens.
func newJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
