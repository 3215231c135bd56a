// Package service declares domain-level service contracts implemented by the
// infrastructure layer.
package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates the bearer tokens guarding the API. Token issuance
// lives in the external identity service; this backend only verifies.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret
	// and returns the parsed token on success.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
