package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/AnshRaj112/mealtracker-backend/internal/models"
	"github.com/rs/zerolog"
)

const (
	MsgTokenRequired = "Authorization token required"
	MsgUnauthorized  = "Unauthorized request"
)

// Authenticator verifies a bearer token and resolves the user it was issued
// for. A valid token for a user that does not exist returns (nil, nil).
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type contextKey string

const userContextKey contextKey = "user"

// RequireAuth rejects requests without a valid bearer token and attaches the
// resolved user to the request context. The attached user may be nil when
// the token names a user that no longer exists; handlers must cope with that.
func RequireAuth(auth Authenticator, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				writeError(w, http.StatusUnauthorized, MsgTokenRequired)
				return
			}

			user, err := auth.Authenticate(r.Context(), bearerToken(authorization))
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("rejected bearer token")
				writeError(w, http.StatusUnauthorized, MsgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// bearerToken returns the second space-separated part of an Authorization
// header ("Bearer <token>"), or "" when there is none.
func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the user attached by RequireAuth, or nil.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
