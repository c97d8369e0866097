package services

import (
	"context"
	"errors"

	"github.com/nvoronova/bookshelf-backend/internal/domain"
	"github.com/nvoronova/bookshelf-backend/internal/models"
	repo "github.com/nvoronova/bookshelf-backend/internal/repository"
)

type ReviewService struct {
	reviews repo.Reviews
	books   repo.Books
}

func NewReviewService(reviews repo.Reviews, books repo.Books) *ReviewService {
	return &ReviewService{reviews: reviews, books: books}
}

// Create resolves the parent book before any rating or text validation runs;
// a parent miss is reported as its own condition.
func (s *ReviewService) Create(ctx context.Context, bookID string, in models.CreateReviewInput) (models.Review, error) {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Review{}, ErrBookNotFound
		}
		return models.Review{}, err
	}

	rv, err := domain.NewReview(in.Rating, in.Text)
	if err != nil {
		return models.Review{}, wrapDomain(err)
	}
	in.Rating = rv.Rating
	in.Text = rv.Text
	return s.reviews.Create(ctx, bookID, in)
}

func (s *ReviewService) Get(ctx context.Context, id string) (models.Review, error) {
	return s.reviews.GetByID(ctx, id)
}

func (s *ReviewService) List(ctx context.Context, f models.ReviewFilters, limit, offset int) ([]models.Review, int, error) {
	return s.reviews.ListWithCount(ctx, f, limit, offset)
}

func (s *ReviewService) Update(ctx context.Context, id string, in models.UpdateReviewInput) (models.Review, error) {
	existing, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return models.Review{}, err
	}

	rating := existing.Rating
	if in.Rating != nil {
		rating = *in.Rating
	}
	text := existing.Text
	if in.Text != nil {
		text = in.Text
	}

	merged, err := domain.NewReview(rating, text)
	if err != nil {
		return models.Review{}, wrapDomain(err)
	}
	if in.Text != nil {
		in.Text = optionalPatch(merged.Text)
	}
	return s.reviews.Patch(ctx, id, in)
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return s.reviews.Delete(ctx, id)
}
