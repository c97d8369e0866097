package models

import "time"

// JobStatus is the closed set of job lifecycle states.
type JobStatus string

const (
	JobPending    JobStatus = "PENDING"
	JobProcessing JobStatus = "PROCESSING"
	JobDone       JobStatus = "DONE"
	JobFailed     JobStatus = "FAILED"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobPending, JobProcessing, JobDone, JobFailed:
		return true
	}
	return false
}

// Terminal reports whether the runner must never leave this state.
func (s JobStatus) Terminal() bool {
	return s == JobDone || s == JobFailed
}

// Job maps to a row in the jobs table. FinishedAt and Error are set only
// when a terminal state is reached.
type Job struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Status     JobStatus  `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at"`
	Error      *string    `json:"error"`
}

type CreateJobInput struct {
	Title string `json:"title"`
}

// JobFilters selects jobs for listing.
type JobFilters struct {
	Status *JobStatus
}
