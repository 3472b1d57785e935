package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/colinjeanne/mealplan/internal/auth"
	"github.com/colinjeanne/mealplan/internal/auth/resolver"
)

// AuthScheme is the Authorization scheme under which callers present
// identity tokens.
const AuthScheme = "google-id-token"

// unexported, collision-proof context key
type userIDContextKeyType struct{}

var userIDKey = userIDContextKeyType{}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

type AuthMiddleware struct {
	Resolver resolver.Resolver
}

func NewAuthMiddleware(r resolver.Resolver) *AuthMiddleware {
	return &AuthMiddleware{Resolver: r}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Extract credential from the Authorization header
		credential, ok := credentialFromHeader(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		// 2. Resolve to a local user
		userID, err := a.Resolver.Resolve(r.Context(), credential)
		if err != nil {
			// Storage being down is retryable; it must not read as a
			// rejected credential.
			if errors.Is(err, auth.ErrStorageUnavailable) {
				http.Error(w, "service unavailable", http.StatusServiceUnavailable)
				return
			}
			unauthorized(w)
			return
		}

		// 3. Attach user_id to context
		ctx := context.WithValue(r.Context(), userIDKey, userID)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func credentialFromHeader(header string) (auth.Credential, bool) {
	if header == "" {
		return auth.Credential{}, false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != AuthScheme || parts[1] == "" {
		return auth.Credential{}, false
	}

	return auth.Credential{IDToken: parts[1]}, true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", AuthScheme)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}
