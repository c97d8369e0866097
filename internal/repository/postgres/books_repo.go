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

type booksRepo struct{ pool *pgxpool.Pool }

const bookColumns = `id, title, author, published_year, genre, description, page_count, created_at, updated_at`

func scanBook(row interface{ Scan(...any) error }) (models.Book, error) {
	var b models.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.PublishedYear, &b.Genre,
		&b.Description, &b.PageCount, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *booksRepo) Create(ctx context.Context, in models.CreateBookInput) (models.Book, error) {
	id := uuid.NewString()
	row := r.pool.QueryRow(ctx,
		`INSERT INTO books(id, title, author, published_year, genre, description, page_count)
		 VALUES($1,$2,$3,$4,$5,$6,$7)
		 RETURNING `+bookColumns,
		id, in.Title, in.Author, in.PublishedYear, in.Genre, in.Description, in.PageCount,
	)
	return scanBook(row)
}

func (r *booksRepo) GetByID(ctx context.Context, id string) (models.Book, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id=$1`, id)
	b, err := scanBook(row)
	if err != nil {
		return models.Book{}, notFound(err)
	}
	return b, nil
}

func (r *booksRepo) Patch(ctx context.Context, id string, in models.UpdateBookInput) (models.Book, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}
	add := func(expr string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf(expr, len(args)))
	}
	if in.Title != nil {
		add("title=$%d", *in.Title)
	}
	if in.Author != nil {
		add("author=$%d", *in.Author)
	}
	if in.PublishedYear != nil {
		add("published_year=$%d", *in.PublishedYear)
	}
	if in.Genre != nil {
		add("genre=$%d", *in.Genre)
	}
	if in.Description != nil {
		// empty string clears the column
		add("description=NULLIF($%d,'')", *in.Description)
	}
	if in.PageCount != nil {
		add("page_count=$%d", *in.PageCount)
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE books SET `+strings.Join(set, ", ")+` WHERE id=$1 RETURNING `+bookColumns, args...)
	b, err := scanBook(row)
	if err != nil {
		return models.Book{}, notFound(err)
	}
	return b, nil
}

func (r *booksRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// bookFilterSQL builds the WHERE clause once so the page query and the count
// query can never diverge.
func bookFilterSQL(f models.BookFilters) (string, []any) {
	var (
		where []string
		args  []any
	)
	if q := strings.TrimSpace(f.Q); q != "" {
		args = append(args, "%"+q+"%")
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR author ILIKE $%d)", len(args), len(args)))
	}
	if f.Genre != nil {
		args = append(args, *f.Genre)
		where = append(where, fmt.Sprintf("genre=$%d", len(args)))
	}
	if f.YearFrom != nil {
		args = append(args, *f.YearFrom)
		where = append(where, fmt.Sprintf("published_year >= $%d", len(args)))
	}
	if f.YearTo != nil {
		args = append(args, *f.YearTo)
		where = append(where, fmt.Sprintf("published_year <= $%d", len(args)))
	}
	if len(where) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

func (r *booksRepo) ListWithCount(ctx context.Context, f models.BookFilters, limit, offset int) ([]models.Book, int, error) {
	cond, args := bookFilterSQL(f)

	pageArgs := append(args[:len(args):len(args)], limit, offset)
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM books%s ORDER BY title, id LIMIT $%d OFFSET $%d`,
			bookColumns, cond, len(args)+1, len(args)+2),
		pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM books`+cond, args...).Scan(&count); err != nil {
		return nil, 0, err
	}
	return books, count, nil
}
