package repository

import (
	"context"
	"errors"
	"time"

	"github.com/nvoronova/bookshelf-backend/internal/models"
)

// ErrNotFound is returned when a query matches no row. Callers decide how to
// surface a miss; it is never wrapped in another error type here.
var ErrNotFound = errors.New("record not found")

type Books interface {
	Create(ctx context.Context, in models.CreateBookInput) (models.Book, error)
	GetByID(ctx context.Context, id string) (models.Book, error)
	// Patch applies only the non-nil fields of in and returns the refreshed
	// row. Fields absent from the patch are left untouched.
	Patch(ctx context.Context, id string, in models.UpdateBookInput) (models.Book, error)
	Delete(ctx context.Context, id string) error
	ListWithCount(ctx context.Context, f models.BookFilters, limit, offset int) ([]models.Book, int, error)
}

type Reviews interface {
	Create(ctx context.Context, bookID string, in models.CreateReviewInput) (models.Review, error)
	GetByID(ctx context.Context, id string) (models.Review, error)
	Patch(ctx context.Context, id string, in models.UpdateReviewInput) (models.Review, error)
	Delete(ctx context.Context, id string) error
	ListWithCount(ctx context.Context, f models.ReviewFilters, limit, offset int) ([]models.Review, int, error)
}

type Users interface {
	Create(ctx context.Context, username, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	Patch(ctx context.Context, id string, in models.UpdateUserInput) (models.User, error)
	Delete(ctx context.Context, id string) error
	ListWithCount(ctx context.Context, f models.UserFilters, limit, offset int) ([]models.User, int, error)
	// UpdatePasswordHash swaps the stored hash, used when verification
	// recommends a rehash with the preferred algorithm.
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
}

type Roles interface {
	Create(ctx context.Context, name string, description *string) (models.Role, error)
	GetByName(ctx context.Context, name string) (models.Role, error)
	// EnsureLink inserts the (user, role) pair unless it already exists,
	// making repeated bootstrap runs safe.
	EnsureLink(ctx context.Context, userID, roleID string) error
	NamesForUser(ctx context.Context, userID string) ([]string, error)
}

type Items interface {
	Create(ctx context.Context, userID string, in models.CreateItemInput) (models.Item, error)
	GetByID(ctx context.Context, id string) (models.Item, error)
	Patch(ctx context.Context, id string, in models.UpdateItemInput) (models.Item, error)
	Delete(ctx context.Context, id string) error
	ListWithCount(ctx context.Context, f models.ItemFilters, limit, offset int) ([]models.Item, int, error)
}

type Jobs interface {
	Create(ctx context.Context, title string) (models.Job, error)
	GetByID(ctx context.Context, id string) (models.Job, error)
	// SetStatus persists a lifecycle transition. FinishedAt and errMsg are
	// written only when non-nil.
	SetStatus(ctx context.Context, id string, status models.JobStatus, finishedAt *time.Time, errMsg *string) error
	ListWithCount(ctx context.Context, f models.JobFilters, limit, offset int) ([]models.Job, int, error)
}
