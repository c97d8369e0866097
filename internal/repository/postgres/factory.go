package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/nvoronova/bookshelf-backend/internal/repository"
)

type Repositories struct {
	Books   repo.Books
	Reviews repo.Reviews
	Users   repo.Users
	Roles   repo.Roles
	Items   repo.Items
	Jobs    repo.Jobs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Books:   &booksRepo{pool},
		Reviews: &reviewsRepo{pool},
		Users:   &usersRepo{pool},
		Roles:   &rolesRepo{pool},
		Items:   &itemsRepo{pool},
		Jobs:    &jobsRepo{pool},
	}
}

// notFound maps pgx.ErrNoRows onto the repository sentinel.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	return err
}

// IsUniqueViolation reports whether err is a unique-constraint failure, so
// the handler layer can answer 409 instead of 500.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
