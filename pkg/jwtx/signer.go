package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs session claims into a compact JWT.
type Signer interface {
	Sign(Claims) (string, error)
}

// HS256Signer signs tokens with a shared HMAC secret. Fine for a single
// service that both issues and verifies its own tokens; asymmetric signing
// only pays off once other services need to verify independently.
type HS256Signer struct {
	secret []byte
}

// NewSignerHS256 creates an HS256 signer. The secret must be non-empty.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	return &HS256Signer{secret: secret}, nil
}

func (s *HS256Signer) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}
