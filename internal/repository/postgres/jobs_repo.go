package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvoronova/bookshelf-backend/internal/models"
	repo "github.com/nvoronova/bookshelf-backend/internal/repository"
)

type jobsRepo struct{ pool *pgxpool.Pool }

const jobColumns = `id, title, status, created_at, finished_at, error`

func scanJob(row interface{ Scan(...any) error }) (models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.Title, &j.Status, &j.CreatedAt, &j.FinishedAt, &j.Error)
	return j, err
}

func (r *jobsRepo) Create(ctx context.Context, title string) (models.Job, error) {
	id := uuid.NewString()
	row := r.pool.QueryRow(ctx,
		`INSERT INTO jobs(id, title, status) VALUES($1,$2,$3) RETURNING `+jobColumns,
		id, title, models.JobPending,
	)
	return scanJob(row)
}

func (r *jobsRepo) GetByID(ctx context.Context, id string) (models.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id=$1`, id)
	j, err := scanJob(row)
	if err != nil {
		return models.Job{}, notFound(err)
	}
	return j, nil
}

// SetStatus is a single atomic commit per transition; finished_at and error
// are only touched when provided.
func (r *jobsRepo) SetStatus(ctx context.Context, id string, status models.JobStatus, finishedAt *time.Time, errMsg *string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE jobs
		    SET status=$2,
		        finished_at=COALESCE($3, finished_at),
		        error=COALESCE($4, error)
		  WHERE id=$1`,
		id, status, finishedAt, errMsg,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func jobFilterSQL(f models.JobFilters) (string, []any) {
	if f.Status == nil {
		return "", nil
	}
	return " WHERE status=$1", []any{*f.Status}
}

func (r *jobsRepo) ListWithCount(ctx context.Context, f models.JobFilters, limit, offset int) ([]models.Job, int, error) {
	cond, args := jobFilterSQL(f)

	pageArgs := append(args[:len(args):len(args)], limit, offset)
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM jobs%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
			jobColumns, cond, len(args)+1, len(args)+2),
		pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM jobs`+cond, args...).Scan(&count); err != nil {
		return nil, 0, err
	}
	return jobs, count, nil
}
