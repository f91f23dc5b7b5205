package authenticator

import (
	"context"
	"crypto"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OpenIDVerifier implements TokenVerifier for OpenID Connect ID and access tokens
type OpenIDVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOpenIDVerifier discovers the issuer's keys and returns a verifier that
// accepts tokens for the configured audience
func NewOpenIDVerifier(ctx context.Context, cfg Config) (*OpenIDVerifier, error) {
	// Validate required configuration
	if cfg.IssuerURL == "" {
		return nil, errors.New("issuer URL is required")
	}
	if cfg.Audience == "" {
		return nil, errors.New("audience is required")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}

	return &OpenIDVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.Audience}),
	}, nil
}

// NewStaticVerifier returns a verifier backed by fixed public keys instead of
// discovery, for deployments that pin the issuer's keys
func NewStaticVerifier(cfg Config, keys ...crypto.PublicKey) *OpenIDVerifier {
	keySet := &oidc.StaticKeySet{PublicKeys: keys}
	return &OpenIDVerifier{
		verifier: oidc.NewVerifier(cfg.IssuerURL, keySet, &oidc.Config{ClientID: cfg.Audience}),
	}
}

// Verify checks signature, issuer, audience and expiry
func (v *OpenIDVerifier) Verify(ctx context.Context, rawToken string) (*Claims, error) {
	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var claims Claims
	if err := token.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		claims.Subject = token.Subject
	}
	return &claims, nil
}
