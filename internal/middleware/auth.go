// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rukunhub/rukunhub/internal/auth"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/repository"
)

type userContextKey string

// CurrentUserKey holds the authenticated *model.User in the request context.
var CurrentUserKey userContextKey = "rukunhub_current_user"

// AuthMiddleware validates the bearer token and loads the user fresh from
// the store on every request. Authorization state (role, group, active flag)
// is deliberately never taken from the token: membership can change between
// requests and must be re-verified each time.
func AuthMiddleware(tokenManager *auth.TokenManager, users repository.UserRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			user, err := users.FindByID(r.Context(), claims.UserID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Unknown user")
				return
			}
			if !user.IsActive {
				respondWithError(w, http.StatusUnauthorized, "Account is inactive")
				return
			}

			ctx := context.WithValue(r.Context(), CurrentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated user stored by AuthMiddleware.
func CurrentUser(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(CurrentUserKey).(*model.User)
	return user, ok
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
