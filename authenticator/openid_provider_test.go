package authenticator

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://issuer.example.com/"
	testAudience = "allocation-ledger"
)

// signToken builds a compact RS256 JWT
func signToken(t *testing.T, key *rsa.PrivateKey, claims map[string]any) string {
	t.Helper()
	enc := base64.RawURLEncoding

	header, err := json.Marshal(map[string]string{"alg": "RS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	signingInput := enc.EncodeToString(header) + "." + enc.EncodeToString(payload)
	sum := sha256.Sum256([]byte(signingInput))
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, sum[:])
	require.NoError(t, err)

	return signingInput + "." + enc.EncodeToString(sig)
}

func validClaims() map[string]any {
	now := time.Now()
	return map[string]any{
		"iss":   testIssuer,
		"aud":   testAudience,
		"sub":   "auth0|operator",
		"email": "ops@example.com",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
}

func TestStaticVerifier(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	verifier := NewStaticVerifier(Config{IssuerURL: testIssuer, Audience: testAudience}, &key.PublicKey)

	claims, err := verifier.Verify(context.Background(), signToken(t, key, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "auth0|operator", claims.Subject)
	assert.Equal(t, "ops@example.com", claims.Email)
}

func TestStaticVerifierRejects(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	verifier := NewStaticVerifier(Config{IssuerURL: testIssuer, Audience: testAudience}, &key.PublicKey)

	tests := map[string]string{
		"wrong key": signToken(t, other, validClaims()),
		"wrong audience": func() string {
			c := validClaims()
			c["aud"] = "someone-else"
			return signToken(t, key, c)
		}(),
		"expired": func() string {
			c := validClaims()
			c["exp"] = time.Now().Add(-time.Hour).Unix()
			return signToken(t, key, c)
		}(),
		"garbage": "not-a-jwt",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := verifier.Verify(context.Background(), token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewOpenIDVerifierValidation(t *testing.T) {
	_, err := NewOpenIDVerifier(context.Background(), Config{Audience: testAudience})
	assert.ErrorContains(t, err, "issuer URL is required")

	_, err = NewOpenIDVerifier(context.Background(), Config{IssuerURL: testIssuer})
	assert.ErrorContains(t, err, "audience is required")
}
