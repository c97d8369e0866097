package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvoronova/bookshelf-backend/internal/api/httpx"
	"github.com/nvoronova/bookshelf-backend/internal/models"
	"github.com/nvoronova/bookshelf-backend/internal/services"
)

type ReviewHandler struct {
	Svc *services.ReviewService
}

func NewReviewHandler(svc *services.ReviewService) *ReviewHandler { return &ReviewHandler{Svc: svc} }

// Create is mounted under /books/{id}/reviews; the parent id comes from the
// path.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateReviewInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadJSON(w)
		return
	}
	review, err := h.Svc.Create(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	f := models.ReviewFilters{BookID: r.URL.Query().Get("book_id")}
	limit, offset := pagination(r)

	reviews, count, err := h.Svc.List(r.Context(), f, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.ListResponse{Data: reviews, Count: count})
}

func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	review, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateReviewInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadJSON(w)
		return
	}
	review, err := h.Svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
