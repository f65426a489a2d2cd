package handler

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the verified user bound to an authenticated request.
type Identity struct {
	UserID   string
	Username string
}

// Authenticate validates the Bearer token and injects the caller's
// identity into the request context.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			sendResponse(w, http.StatusUnauthorized, false, "Authorization token is missing", nil)
			return
		}

		claims, err := h.tokens.Verify(token)
		if err != nil {
			sendResponse(w, http.StatusUnauthorized, false, "Invalid or expired token", nil)
			return
		}

		identity := Identity{UserID: claims.UserID, Username: claims.Username}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
	})
}

// identityFrom extracts the verified identity from the request context.
func identityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

// bearerToken extracts the token from a "Bearer <token>" header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
