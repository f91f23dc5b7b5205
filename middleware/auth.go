package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/authenticator"
	"github.com/mintgene/allocation-ledger/models"
	"github.com/mintgene/allocation-ledger/userctx"
)

// RequireAuth ensures the request carries a valid bearer token.
// The token's subject and email are added to the request context.
func RequireAuth(verifier authenticator.TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "missing bearer token")
				return
			}

			claims, err := verifier.Verify(r.Context(), raw)
			if err != nil {
				logger.Warn("rejected bearer token",
					zap.String("path", r.URL.Path),
					zap.String("ip", getIPAddress(r)),
					zap.Error(err),
				)
				unauthorized(w, "invalid bearer token")
				return
			}

			recordUser(r.Context(), claims.Subject)

			// Add user identity to request context for use in handlers
			ctx := userctx.SetUserID(r.Context(), claims.Subject)
			ctx = userctx.SetUserEmail(ctx, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="allocation-ledger"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg, Code: "unauthorized"})
}
