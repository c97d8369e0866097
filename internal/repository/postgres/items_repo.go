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

type itemsRepo struct{ pool *pgxpool.Pool }

const itemColumns = `id, title, description, user_id, created_at`

func scanItem(row interface{ Scan(...any) error }) (models.Item, error) {
	var it models.Item
	err := row.Scan(&it.ID, &it.Title, &it.Description, &it.UserID, &it.CreatedAt)
	return it, err
}

func (r *itemsRepo) Create(ctx context.Context, userID string, in models.CreateItemInput) (models.Item, error) {
	id := uuid.NewString()
	row := r.pool.QueryRow(ctx,
		`INSERT INTO items(id, title, description, user_id) VALUES($1,$2,$3,$4)
		 RETURNING `+itemColumns,
		id, in.Title, in.Description, userID,
	)
	return scanItem(row)
}

func (r *itemsRepo) GetByID(ctx context.Context, id string) (models.Item, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id=$1`, id)
	it, err := scanItem(row)
	if err != nil {
		return models.Item{}, notFound(err)
	}
	return it, nil
}

func (r *itemsRepo) Patch(ctx context.Context, id string, in models.UpdateItemInput) (models.Item, error) {
	var (
		set  []string
		args = []any{id}
	)
	if in.Title != nil {
		args = append(args, *in.Title)
		set = append(set, fmt.Sprintf("title=$%d", len(args)))
	}
	if in.Description != nil {
		args = append(args, *in.Description)
		set = append(set, fmt.Sprintf("description=NULLIF($%d,'')", len(args)))
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE items SET `+strings.Join(set, ", ")+` WHERE id=$1 RETURNING `+itemColumns, args...)
	it, err := scanItem(row)
	if err != nil {
		return models.Item{}, notFound(err)
	}
	return it, nil
}

func (r *itemsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func itemFilterSQL(f models.ItemFilters) (string, []any) {
	var (
		where []string
		args  []any
	)
	if f.UserID != "" {
		args = append(args, f.UserID)
		where = append(where, fmt.Sprintf("user_id=$%d", len(args)))
	}
	if q := strings.TrimSpace(f.Q); q != "" {
		args = append(args, "%"+q+"%")
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if len(where) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

func (r *itemsRepo) ListWithCount(ctx context.Context, f models.ItemFilters, limit, offset int) ([]models.Item, int, error) {
	cond, args := itemFilterSQL(f)

	pageArgs := append(args[:len(args):len(args)], limit, offset)
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM items%s ORDER BY title, id LIMIT $%d OFFSET $%d`,
			itemColumns, cond, len(args)+1, len(args)+2),
		pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM items`+cond, args...).Scan(&count); err != nil {
		return nil, 0, err
	}
	return items, count, nil
}
