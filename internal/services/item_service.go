package services

import (
	"context"
	"errors"

	"github.com/nvoronova/bookshelf-backend/internal/domain"
	"github.com/nvoronova/bookshelf-backend/internal/models"
	repo "github.com/nvoronova/bookshelf-backend/internal/repository"
)

type ItemService struct {
	items repo.Items
	users repo.Users
}

func NewItemService(items repo.Items, users repo.Users) *ItemService {
	return &ItemService{items: items, users: users}
}

// Create resolves the owning user before field validation runs.
func (s *ItemService) Create(ctx context.Context, userID string, in models.CreateItemInput) (models.Item, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Item{}, ErrUserNotFound
		}
		return models.Item{}, err
	}

	it, err := domain.NewItem(in.Title, in.Description)
	if err != nil {
		return models.Item{}, wrapDomain(err)
	}
	in.Title = it.Title
	in.Description = it.Description
	return s.items.Create(ctx, userID, in)
}

func (s *ItemService) Get(ctx context.Context, id string) (models.Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *ItemService) List(ctx context.Context, f models.ItemFilters, limit, offset int) ([]models.Item, int, error) {
	return s.items.ListWithCount(ctx, f, limit, offset)
}

func (s *ItemService) Update(ctx context.Context, id string, in models.UpdateItemInput) (models.Item, error) {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}

	title := existing.Title
	if in.Title != nil {
		title = *in.Title
	}
	description := existing.Description
	if in.Description != nil {
		description = in.Description
	}

	merged, err := domain.NewItem(title, description)
	if err != nil {
		return models.Item{}, wrapDomain(err)
	}
	if in.Title != nil {
		in.Title = &merged.Title
	}
	if in.Description != nil {
		in.Description = optionalPatch(merged.Description)
	}
	return s.items.Patch(ctx, id, in)
}

func (s *ItemService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}
