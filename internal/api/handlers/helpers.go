// Package handlers translates HTTP requests into service calls and maps
// service errors onto status codes.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nvoronova/bookshelf-backend/internal/api/httpx"
	repo "github.com/nvoronova/bookshelf-backend/internal/repository"
	"github.com/nvoronova/bookshelf-backend/internal/repository/postgres"
	"github.com/nvoronova/bookshelf-backend/internal/services"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// pagination clamps limit to [1, maxLimit] (default 20) and offset to >= 0.
func pagination(r *http.Request) (limit, offset int) {
	limit = defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= maxLimit {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

func intParam(r *http.Request, name string) *int {
	if v := r.URL.Query().Get(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}

// writeServiceError maps the error taxonomy onto client status codes.
// Storage connectivity failures fall through as 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		httpx.WriteError(w, http.StatusUnprocessableEntity, "validation_error", ve.Error(), nil)
	case errors.Is(err, repo.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, services.ErrBookNotFound):
		httpx.WriteError(w, http.StatusNotFound, "book_not_found", "book not found", nil)
	case errors.Is(err, services.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "user_not_found", "user not found", nil)
	case errors.Is(err, services.ErrBadCredentials):
		httpx.WriteError(w, http.StatusBadRequest, "bad_credentials", "incorrect username or password", nil)
	case errors.Is(err, services.ErrInactiveUser):
		httpx.WriteError(w, http.StatusBadRequest, "inactive_user", "inactive user", nil)
	case postgres.IsUniqueViolation(err):
		httpx.WriteError(w, http.StatusConflict, "conflict", "duplicate value for a unique field", nil)
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

func writeBadJSON(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, "bad_request", "malformed request body", nil)
}
