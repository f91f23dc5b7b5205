package authenticator

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned for tokens that fail verification
var ErrInvalidToken = errors.New("invalid token")

// Config holds OpenID Connect verification settings
type Config struct {
	IssuerURL string
	Audience  string
}

// Claims represents the caller identity taken from a verified token
type Claims struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
}

// TokenVerifier checks a raw bearer token and returns its claims
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Claims, error)
}
