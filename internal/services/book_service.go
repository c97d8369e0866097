package services

import (
	"context"

	"github.com/nvoronova/bookshelf-backend/internal/domain"
	"github.com/nvoronova/bookshelf-backend/internal/models"
	repo "github.com/nvoronova/bookshelf-backend/internal/repository"
)

type BookService struct {
	books repo.Books
}

func NewBookService(books repo.Books) *BookService { return &BookService{books: books} }

func (s *BookService) Create(ctx context.Context, in models.CreateBookInput) (models.Book, error) {
	b, err := domain.NewBook(in.Title, in.Author, in.PublishedYear, in.Genre, in.Description, in.PageCount)
	if err != nil {
		return models.Book{}, wrapDomain(err)
	}
	// persist the normalized values, not the raw input
	in.Title = b.Title
	in.Author = b.Author
	in.Description = b.Description
	in.PageCount = b.PageCount
	return s.books.Create(ctx, in)
}

func (s *BookService) Get(ctx context.Context, id string) (models.Book, error) {
	return s.books.GetByID(ctx, id)
}

func (s *BookService) List(ctx context.Context, f models.BookFilters, limit, offset int) ([]models.Book, int, error) {
	return s.books.ListWithCount(ctx, f, limit, offset)
}

// Update merges the patch over the stored record, validates the merged
// result in full, then persists only the patched fields.
func (s *BookService) Update(ctx context.Context, id string, in models.UpdateBookInput) (models.Book, error) {
	existing, err := s.books.GetByID(ctx, id)
	if err != nil {
		return models.Book{}, err
	}

	title := existing.Title
	if in.Title != nil {
		title = *in.Title
	}
	author := existing.Author
	if in.Author != nil {
		author = *in.Author
	}
	year := existing.PublishedYear
	if in.PublishedYear != nil {
		year = *in.PublishedYear
	}
	genre := existing.Genre
	if in.Genre != nil {
		genre = *in.Genre
	}
	description := existing.Description
	if in.Description != nil {
		description = in.Description
	}
	pageCount := existing.PageCount
	if in.PageCount != nil {
		pageCount = in.PageCount
	}

	merged, err := domain.NewBook(title, author, year, genre, description, pageCount)
	if err != nil {
		return models.Book{}, wrapDomain(err)
	}

	if in.Title != nil {
		in.Title = &merged.Title
	}
	if in.Author != nil {
		in.Author = &merged.Author
	}
	if in.Description != nil {
		in.Description = optionalPatch(merged.Description)
	}
	return s.books.Patch(ctx, id, in)
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	return s.books.Delete(ctx, id)
}

// optionalPatch keeps a provided-but-blank optional field in the patch as an
// empty string, which the storage layer writes as NULL.
func optionalPatch(normalized *string) *string {
	if normalized == nil {
		empty := ""
		return &empty
	}
	return normalized
}
