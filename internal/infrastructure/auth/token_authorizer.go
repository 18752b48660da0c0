package auth

import (
	"context"
	"errors"
	"os"

	"construction_quote/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var ErrAuthorizerNotConfigured = errors.New("admin authorizer not configured: ADMIN_TOKEN_HASH is empty")

// TokenAuthorizer grants admin access to the holder of the token whose bcrypt
// hash is configured.
type TokenAuthorizer struct {
	hash []byte
}

var _ interfaces.IAdminAuthorizer = (*TokenAuthorizer)(nil)

func NewTokenAuthorizer(hash string) *TokenAuthorizer {
	return &TokenAuthorizer{hash: []byte(hash)}
}

func NewTokenAuthorizerFromEnv() *TokenAuthorizer {
	return NewTokenAuthorizer(os.Getenv("ADMIN_TOKEN_HASH"))
}

func (a *TokenAuthorizer) IsAdmin(_ context.Context, token string) (bool, error) {
	if len(a.hash) == 0 {
		return false, ErrAuthorizerNotConfigured
	}
	err := bcrypt.CompareHashAndPassword(a.hash, []byte(token))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

// HashToken produces a value suitable for ADMIN_TOKEN_HASH.
func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
