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

type reviewsRepo struct{ pool *pgxpool.Pool }

const reviewColumns = `id, book_id, rating, text, created_at`

func scanReview(row interface{ Scan(...any) error }) (models.Review, error) {
	var rv models.Review
	err := row.Scan(&rv.ID, &rv.BookID, &rv.Rating, &rv.Text, &rv.CreatedAt)
	return rv, err
}

func (r *reviewsRepo) Create(ctx context.Context, bookID string, in models.CreateReviewInput) (models.Review, error) {
	id := uuid.NewString()
	row := r.pool.QueryRow(ctx,
		`INSERT INTO reviews(id, book_id, rating, text) VALUES($1,$2,$3,$4)
		 RETURNING `+reviewColumns,
		id, bookID, in.Rating, in.Text,
	)
	return scanReview(row)
}

func (r *reviewsRepo) GetByID(ctx context.Context, id string) (models.Review, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id=$1`, id)
	rv, err := scanReview(row)
	if err != nil {
		return models.Review{}, notFound(err)
	}
	return rv, nil
}

func (r *reviewsRepo) Patch(ctx context.Context, id string, in models.UpdateReviewInput) (models.Review, error) {
	var (
		set  []string
		args = []any{id}
	)
	if in.Rating != nil {
		args = append(args, *in.Rating)
		set = append(set, fmt.Sprintf("rating=$%d", len(args)))
	}
	if in.Text != nil {
		args = append(args, *in.Text)
		set = append(set, fmt.Sprintf("text=NULLIF($%d,'')", len(args)))
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE reviews SET `+strings.Join(set, ", ")+` WHERE id=$1 RETURNING `+reviewColumns, args...)
	rv, err := scanReview(row)
	if err != nil {
		return models.Review{}, notFound(err)
	}
	return rv, nil
}

func (r *reviewsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func reviewFilterSQL(f models.ReviewFilters) (string, []any) {
	if f.BookID == "" {
		return "", nil
	}
	return " WHERE book_id=$1", []any{f.BookID}
}

func (r *reviewsRepo) ListWithCount(ctx context.Context, f models.ReviewFilters, limit, offset int) ([]models.Review, int, error) {
	cond, args := reviewFilterSQL(f)

	pageArgs := append(args[:len(args):len(args)], limit, offset)
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM reviews%s ORDER BY id LIMIT $%d OFFSET $%d`,
			reviewColumns, cond, len(args)+1, len(args)+2),
		pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM reviews`+cond, args...).Scan(&count); err != nil {
		return nil, 0, err
	}
	return reviews, count, nil
}
