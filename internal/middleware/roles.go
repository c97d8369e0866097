package middleware

import (
	"net/http"

	"github.com/nvoronova/bookshelf-backend/internal/api/httpx"
)

// RequireRole allows only users carrying the given role. It must run after
// Authenticator.Require.
func RequireRole(need string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := CurrentUser(r.Context())
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "authentication required", nil)
				return
			}
			for _, role := range user.Roles {
				if role == need {
					next.ServeHTTP(w, r)
					return
				}
			}
			httpx.WriteError(w, http.StatusForbidden, "forbidden", "insufficient role", nil)
		})
	}
}
