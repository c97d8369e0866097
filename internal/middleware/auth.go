package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/nvoronova/bookshelf-backend/internal/api/httpx"
	"github.com/nvoronova/bookshelf-backend/internal/auth"
	"github.com/nvoronova/bookshelf-backend/internal/models"
	"github.com/nvoronova/bookshelf-backend/internal/services"
)

type userKey struct{}

// CurrentUser returns the user resolved by the Authenticator middleware.
func CurrentUser(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey{}).(models.User)
	return u, ok
}

type Authenticator struct {
	TM    *auth.TokenManager
	Users *services.UserService
}

func NewAuthenticator(tm *auth.TokenManager, users *services.UserService) *Authenticator {
	return &Authenticator{TM: tm, Users: users}
}

// Require decodes the bearer token and resolves the subject to an active
// user. Any token fault answers uniformly; a missing subject and an
// inactive subject are distinct failures.
func (m *Authenticator) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			httpx.WriteError(w, http.StatusUnauthorized, "missing_token", "missing bearer token", nil)
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])

		subject, err := m.TM.Parse(token)
		if err != nil {
			httpx.WriteError(w, http.StatusForbidden, "invalid_token", "could not validate credentials", nil)
			return
		}

		user, err := m.Users.Resolve(r.Context(), subject)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, "user_not_found", "user not found", nil)
			return
		case errors.Is(err, services.ErrInactiveUser):
			httpx.WriteError(w, http.StatusBadRequest, "inactive_user", "inactive user", nil)
			return
		case err != nil:
			httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
			return
		}

		ctx := context.WithValue(r.Context(), userKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
