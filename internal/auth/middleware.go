package auth

import (
	"context"
	"net/http"
	"strings"
)

// ctxKey keeps request-scoped values collision-free without exporting the
// key itself; handlers read the user through UserIDFromContext.
type ctxKey int

const userIDKey ctxKey = iota

// RequireAuth gates a route behind a bearer token. The verified user ID is
// stashed in the request context for downstream handlers.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "bearer token required")
			return
		}

		userID, err := s.ValidateToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "token rejected")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from the Authorization header, falling
// back to the token query parameter that websocket upgrades use, since the
// browser WebSocket API cannot set custom headers.
func bearerToken(r *http.Request) (string, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		return token, ok && token != ""
	}
	if token := r.URL.Query().Get("token"); token != "" {
		return token, true
	}
	return "", false
}

// UserIDFromContext returns the authenticated user ID, or "" outside an
// authenticated request.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
