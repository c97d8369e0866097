package services

import (
	"errors"

	"github.com/nvoronova/bookshelf-backend/internal/domain"
)

// ValidationError wraps a DomainError at the service boundary. The
// repository is never called when validation fails.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

func wrapDomain(err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return &ValidationError{Err: de}
	}
	return err
}

// Distinct conditions for required parents and auth checks. Handlers map
// these onto status codes.
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("incorrect username or password")
	ErrInactiveUser   = errors.New("inactive user")
)
