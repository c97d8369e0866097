package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nvoronova/bookshelf-backend/internal/auth"
	"github.com/nvoronova/bookshelf-backend/internal/models"
	repo "github.com/nvoronova/bookshelf-backend/internal/repository"
)

// BootstrapRolesAndAdmin ensures the role rows, the first admin user, and
// the admin role link exist. Every step checks before inserting, so the
// process is safe to run on every start without duplicating anything.
func BootstrapRolesAndAdmin(ctx context.Context, users repo.Users, roles repo.Roles, hasher *auth.PasswordHash, adminUsername, adminPassword string) error {
	if adminUsername == "" || adminPassword == "" {
		return errors.New("FIRST_ADMIN_USERNAME / FIRST_ADMIN_PASSWORD are not set")
	}

	if _, err := ensureRole(ctx, roles, models.RoleUser, "Default user role"); err != nil {
		return err
	}

	adminRole, err := ensureRole(ctx, roles, models.RoleAdmin, "Admin role")
	if err != nil {
		return err
	}

	admin, err := users.GetByUsername(ctx, adminUsername)
	if errors.Is(err, repo.ErrNotFound) {
		hash, herr := hasher.Hash(adminPassword)
		if herr != nil {
			return herr
		}
		admin, err = users.Create(ctx, adminUsername, hash)
		if err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}
		slog.Info("admin user created", "username", adminUsername)
	} else if err != nil {
		return err
	}

	return roles.EnsureLink(ctx, admin.ID, adminRole.ID)
}

func ensureRole(ctx context.Context, roles repo.Roles, name models.RoleName, description string) (models.Role, error) {
	role, err := roles.GetByName(ctx, string(name))
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return models.Role{}, err
	}
	role, err = roles.Create(ctx, string(name), &description)
	if err != nil {
		return models.Role{}, fmt.Errorf("create role %s: %w", name, err)
	}
	slog.Info("role created", "name", name)
	return role, nil
}
