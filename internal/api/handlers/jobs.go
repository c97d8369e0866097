package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvoronova/bookshelf-backend/internal/api/httpx"
	"github.com/nvoronova/bookshelf-backend/internal/models"
	"github.com/nvoronova/bookshelf-backend/internal/services"
)

type JobHandler struct {
	Svc *services.JobService
}

func NewJobHandler(svc *services.JobService) *JobHandler { return &JobHandler{Svc: svc} }

// Create answers immediately with the job in PENDING; the task runs on its
// own.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateJobInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadJSON(w)
		return
	}
	job, err := h.Svc.Submit(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	var f models.JobFilters
	if v := r.URL.Query().Get("status"); v != "" {
		status := models.JobStatus(v)
		if !status.Valid() {
			httpx.WriteError(w, http.StatusUnprocessableEntity, "validation_error", "unknown status", nil)
			return
		}
		f.Status = &status
	}
	limit, offset := pagination(r)

	jobs, count, err := h.Svc.List(r.Context(), f, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.ListResponse{Data: jobs, Count: count})
}

// Get returns the current status snapshot.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, job)
}
