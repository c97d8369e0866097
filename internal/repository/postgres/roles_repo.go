package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvoronova/bookshelf-backend/internal/models"
)

type rolesRepo struct{ pool *pgxpool.Pool }

func (r *rolesRepo) Create(ctx context.Context, name string, description *string) (models.Role, error) {
	id := uuid.NewString()
	var role models.Role
	err := r.pool.QueryRow(ctx,
		`INSERT INTO roles(id, name, description) VALUES($1,$2,$3)
		 RETURNING id, name, description`,
		id, name, description,
	).Scan(&role.ID, &role.Name, &role.Description)
	return role, err
}

func (r *rolesRepo) GetByName(ctx context.Context, name string) (models.Role, error) {
	var role models.Role
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description FROM roles WHERE name=$1`, name,
	).Scan(&role.ID, &role.Name, &role.Description)
	if err != nil {
		return models.Role{}, notFound(err)
	}
	return role, nil
}

// EnsureLink relies on the composite primary key: a pair that already exists
// is skipped, so repeated bootstrap runs never duplicate assignments.
func (r *rolesRepo) EnsureLink(ctx context.Context, userID, roleID string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_roles(user_id, role_id) VALUES($1,$2)
		 ON CONFLICT (user_id, role_id) DO NOTHING`,
		userID, roleID,
	)
	return err
}

func (r *rolesRepo) NamesForUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT r.name FROM roles r
		 JOIN user_roles ur ON ur.role_id = r.id
		 WHERE ur.user_id=$1
		 ORDER BY r.name`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
