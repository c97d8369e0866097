package domain

import (
	"fmt"
	"time"
)

// Genre is the closed set of book genres. Adding a variant requires updating
// Valid and every switch over the set.
type Genre string

const (
	GenreScience   Genre = "science"
	GenreFantasy   Genre = "fantasy"
	GenreBiography Genre = "biography"
	GenreHistory   Genre = "history"
)

func (g Genre) Valid() bool {
	switch g {
	case GenreScience, GenreFantasy, GenreBiography, GenreHistory:
		return true
	}
	return false
}

const (
	MinYear           = 1000
	MaxTitleLen       = 200
	MaxAuthorLen      = 120
	MaxDescriptionLen = 5000
)

// Book is the transient value object for book validation. It is built from
// raw input, checked, and discarded; persistence works with models.Book.
type Book struct {
	Title         string
	Author        string
	PublishedYear int
	Genre         Genre
	Description   *string
	PageCount     *int
}

// NewBook validates and normalizes every field.
func NewBook(title, author string, year int, genre Genre, description *string, pageCount *int) (Book, error) {
	var (
		b   Book
		err error
	)
	if b.Title, err = NormalizeRequired("title", title, MaxTitleLen); err != nil {
		return Book{}, err
	}
	if b.Author, err = NormalizeRequired("author", author, MaxAuthorLen); err != nil {
		return Book{}, err
	}
	if b.PublishedYear, err = ValidateYear(year); err != nil {
		return Book{}, err
	}
	if !genre.Valid() {
		return Book{}, &DomainError{Kind: InvalidGenre, Field: "genre", Msg: fmt.Sprintf("unknown genre %q", genre)}
	}
	b.Genre = genre
	if b.Description, err = NormalizeOptional("description", description, MaxDescriptionLen); err != nil {
		return Book{}, err
	}
	if b.PageCount, err = ValidatePageCount(pageCount); err != nil {
		return Book{}, err
	}
	return b, nil
}

// ValidateYear bounds the published year to [MinYear, current UTC year].
// The upper bound is recomputed per call, so a value accepted today is only
// ever rechecked when update logic runs again.
func ValidateYear(year int) (int, error) {
	max := time.Now().UTC().Year()
	if year < MinYear || year > max {
		return 0, &DomainError{
			Kind:  InvalidYear,
			Field: "published_year",
			Msg:   fmt.Sprintf("year %d outside range [%d, %d]", year, MinYear, max),
		}
	}
	return year, nil
}

// ValidatePageCount requires a positive count when set.
func ValidatePageCount(pageCount *int) (*int, error) {
	if pageCount == nil {
		return nil, nil
	}
	if *pageCount <= 0 {
		return nil, &DomainError{Kind: InvalidPageCount, Field: "page_count", Msg: "must be positive"}
	}
	return pageCount, nil
}
