package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/leaguehub/pkg/jwtx"
	"github.com/aussiebroadwan/leaguehub/pkg/slogx"
)

// AuthnMiddleware verifies bearer tokens issued by the external auth
// provider and injects the caller's identity into the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("jwt verify failed", "err", err)
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeBearerError(w, "token expired")
				return
			}

			// Inject into context for downstream handlers.
			ctx = contextWithIdentity(ctx, claims.Subject, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DebugHeaderAuthn trusts X-Debug-User / X-Debug-Email headers as the
// caller's identity. It exists for dev and container test runs only; the
// application refuses to enable it outside of LEAGUE_AUTH_MODE=static.
func DebugHeaderAuthn() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get("X-Debug-User"))
			if userID == "" {
				writeBearerError(w, "missing debug identity")
				return
			}
			email := strings.TrimSpace(r.Header.Get("X-Debug-Email"))

			ctx := contextWithIdentity(r.Context(), userID, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithIdentity(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, userID)
	ctx = context.WithValue(ctx, CtxKeyEmail, email)
	return ctx
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
