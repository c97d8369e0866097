package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/nvoronova/bookshelf-backend/internal/domain"
	"github.com/nvoronova/bookshelf-backend/internal/metrics"
	"github.com/nvoronova/bookshelf-backend/internal/models"
	repo "github.com/nvoronova/bookshelf-backend/internal/repository"
	"github.com/nvoronova/bookshelf-backend/internal/worker"
)

// JobService drives the PENDING → PROCESSING → DONE/FAILED state machine.
// The task runs fire-and-forget on the worker pool, at most once per
// submission; a FAILED job is retried only by submitting a new job.
type JobService struct {
	jobs   repo.Jobs
	pool   *worker.Pool
	client *http.Client
	urls   []string
}

func NewJobService(jobs repo.Jobs, pool *worker.Pool, urls []string, timeout time.Duration) *JobService {
	return &JobService{
		jobs:   jobs,
		pool:   pool,
		client: &http.Client{Timeout: timeout},
		urls:   urls,
	}
}

// Submit persists the job as PENDING, schedules the task, and returns
// immediately without awaiting it.
func (s *JobService) Submit(ctx context.Context, in models.CreateJobInput) (models.Job, error) {
	title, err := domain.NormalizeJobTitle(in.Title)
	if err != nil {
		return models.Job{}, wrapDomain(err)
	}
	job, err := s.jobs.Create(ctx, title)
	if err != nil {
		return models.Job{}, err
	}
	metrics.JobsSubmitted.Inc()
	slog.Info("job scheduled", "job_id", job.ID)
	s.pool.Submit(func() { s.run(job.ID) })
	return job, nil
}

func (s *JobService) Get(ctx context.Context, id string) (models.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) List(ctx context.Context, f models.JobFilters, limit, offset int) ([]models.Job, int, error) {
	return s.jobs.ListWithCount(ctx, f, limit, offset)
}

// run executes one job to a terminal state. Failures stay contained here;
// no request is waiting on the outcome.
func (s *JobService) run(id string) {
	ctx := context.Background()
	log := slog.With("job_id", id, "task", "run_job")

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Warn("job missing, nothing to do")
		} else {
			log.Error("job reload", "err", err)
		}
		return
	}
	if job.Status.Terminal() {
		log.Warn("job already terminal", "status", job.Status)
		return
	}

	// visible to observers before the outcome is known
	if err := s.jobs.SetStatus(ctx, id, models.JobProcessing, nil, nil); err != nil {
		log.Error("set status processing", "err", err)
		return
	}

	url := s.urls[rand.Intn(len(s.urls))]
	log.Info("requesting url", "url", url)

	if err := s.fetch(ctx, url); err != nil {
		s.finish(ctx, log, id, models.JobFailed, err.Error())
		return
	}
	s.finish(ctx, log, id, models.JobDone, "")
}

func (s *JobService) fetch(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return nil
}

func (s *JobService) finish(ctx context.Context, log *slog.Logger, id string, status models.JobStatus, errMsg string) {
	now := time.Now().UTC()
	var msg *string
	if errMsg != "" {
		truncated := domain.TruncateJobError(errMsg)
		msg = &truncated
	}
	if err := s.jobs.SetStatus(ctx, id, status, &now, msg); err != nil {
		log.Error("set terminal status", "status", status, "err", err)
		return
	}
	metrics.JobsCompleted.WithLabelValues(string(status)).Inc()
	if status == models.JobFailed {
		log.Error("job failed", "err", errMsg)
	} else {
		log.Info("job done")
	}
}
