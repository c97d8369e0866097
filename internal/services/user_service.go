package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nvoronova/bookshelf-backend/internal/auth"
	"github.com/nvoronova/bookshelf-backend/internal/domain"
	"github.com/nvoronova/bookshelf-backend/internal/models"
	repo "github.com/nvoronova/bookshelf-backend/internal/repository"
)

type UserService struct {
	users  repo.Users
	roles  repo.Roles
	hasher *auth.PasswordHash
}

func NewUserService(users repo.Users, roles repo.Roles, hasher *auth.PasswordHash) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher}
}

func (s *UserService) Create(ctx context.Context, in models.CreateUserInput) (models.User, error) {
	username, err := domain.NormalizeUsername(in.Username)
	if err != nil {
		return models.User{}, wrapDomain(err)
	}
	if _, err := domain.NormalizeRequired("password", in.Password, 128); err != nil {
		return models.User{}, wrapDomain(err)
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Create(ctx, username, hash)
}

// Get resolves a user and attaches their role names.
func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	return s.withRoles(ctx, u)
}

// Resolve is the token-subject lookup: a missing subject and a deactivated
// subject are reported as distinct conditions.
func (s *UserService) Resolve(ctx context.Context, id string) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	if !u.IsActive {
		return models.User{}, ErrInactiveUser
	}
	return s.withRoles(ctx, u)
}

// Authenticate verifies credentials and transparently upgrades the stored
// hash when the match came from a deprecated algorithm. The upgrade is not
// retried if persisting it fails; the old hash keeps working.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.User{}, ErrBadCredentials
		}
		return models.User{}, err
	}

	ok, rehash := s.hasher.Verify(password, u.HashedPassword)
	if !ok {
		return models.User{}, ErrBadCredentials
	}
	if rehash != "" {
		if err := s.users.UpdatePasswordHash(ctx, u.ID, rehash); err != nil {
			slog.Warn("password rehash not persisted", "user_id", u.ID, "err", err)
		} else {
			u.HashedPassword = rehash
		}
	}
	if !u.IsActive {
		return models.User{}, ErrInactiveUser
	}
	return s.withRoles(ctx, u)
}

func (s *UserService) List(ctx context.Context, f models.UserFilters, limit, offset int) ([]models.User, int, error) {
	return s.users.ListWithCount(ctx, f, limit, offset)
}

func (s *UserService) Update(ctx context.Context, id string, in models.UpdateUserInput) (models.User, error) {
	if in.Username != nil {
		username, err := domain.NormalizeUsername(*in.Username)
		if err != nil {
			return models.User{}, wrapDomain(err)
		}
		in.Username = &username
	}
	u, err := s.users.Patch(ctx, id, in)
	if err != nil {
		return models.User{}, err
	}
	return s.withRoles(ctx, u)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) withRoles(ctx context.Context, u models.User) (models.User, error) {
	names, err := s.roles.NamesForUser(ctx, u.ID)
	if err != nil {
		return models.User{}, err
	}
	u.Roles = names
	return u, nil
}
