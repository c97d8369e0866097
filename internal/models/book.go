package models

import (
	"time"

	"github.com/nvoronova/bookshelf-backend/internal/domain"
)

// Book maps to a row in the books table.
type Book struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Author        string       `json:"author"`
	PublishedYear int          `json:"published_year"`
	Genre         domain.Genre `json:"genre"`
	Description   *string      `json:"description,omitempty"`
	PageCount     *int         `json:"page_count,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// CreateBookInput holds the fields required to create a book.
type CreateBookInput struct {
	Title         string       `json:"title"`
	Author        string       `json:"author"`
	PublishedYear int          `json:"published_year"`
	Genre         domain.Genre `json:"genre"`
	Description   *string      `json:"description"`
	PageCount     *int         `json:"page_count"`
}

// UpdateBookInput is a partial patch. Every field is a pointer so "not
// provided" (nil) is distinct from "set to zero"; only non-nil fields are
// applied.
type UpdateBookInput struct {
	Title         *string       `json:"title"`
	Author        *string       `json:"author"`
	PublishedYear *int          `json:"published_year"`
	Genre         *domain.Genre `json:"genre"`
	Description   *string       `json:"description"`
	PageCount     *int          `json:"page_count"`
}

// Empty reports whether the patch carries no fields at all.
func (in UpdateBookInput) Empty() bool {
	return in.Title == nil && in.Author == nil && in.PublishedYear == nil &&
		in.Genre == nil && in.Description == nil && in.PageCount == nil
}

// BookFilters selects books for listing. Zero values mean "no filter".
type BookFilters struct {
	Q        string
	Genre    *domain.Genre
	YearFrom *int
	YearTo   *int
}
