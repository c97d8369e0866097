package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvoronova/bookshelf-backend/internal/models"
	repo "github.com/nvoronova/bookshelf-backend/internal/repository"
)

type usersRepo struct{ pool *pgxpool.Pool }

const userColumns = `id, username, is_active, password_hash, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.IsActive, &u.HashedPassword, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *usersRepo) Create(ctx context.Context, username, passwordHash string) (models.User, error) {
	id := uuid.NewString()
	row := r.pool.QueryRow(ctx,
		`INSERT INTO users(id, username, password_hash) VALUES($1,$2,$3)
		 RETURNING `+userColumns,
		id, username, passwordHash,
	)
	return scanUser(row)
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	u, err := scanUser(row)
	if err != nil {
		return models.User{}, notFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username=$1`, username)
	u, err := scanUser(row)
	if err != nil {
		return models.User{}, notFound(err)
	}
	return u, nil
}

func (r *usersRepo) Patch(ctx context.Context, id string, in models.UpdateUserInput) (models.User, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}
	if in.Username != nil {
		args = append(args, *in.Username)
		set = append(set, fmt.Sprintf("username=$%d", len(args)))
	}
	if in.IsActive != nil {
		args = append(args, *in.IsActive)
		set = append(set, fmt.Sprintf("is_active=$%d", len(args)))
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE users SET `+strings.Join(set, ", ")+` WHERE id=$1 RETURNING `+userColumns, args...)
	u, err := scanUser(row)
	if err != nil {
		return models.User{}, notFound(err)
	}
	return u, nil
}

func (r *usersRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func userFilterSQL(f models.UserFilters) (string, []any) {
	if q := strings.TrimSpace(f.Q); q != "" {
		return " WHERE username ILIKE $1", []any{"%" + q + "%"}
	}
	return "", nil
}

func (r *usersRepo) ListWithCount(ctx context.Context, f models.UserFilters, limit, offset int) ([]models.User, int, error) {
	cond, args := userFilterSQL(f)

	pageArgs := append(args[:len(args):len(args)], limit, offset)
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM users%s ORDER BY username, id LIMIT $%d OFFSET $%d`,
			userColumns, cond, len(args)+1, len(args)+2),
		pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`+cond, args...).Scan(&count); err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash=$2, updated_at=now() WHERE id=$1`, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
