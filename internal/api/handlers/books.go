package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nvoronova/bookshelf-backend/internal/api/httpx"
	"github.com/nvoronova/bookshelf-backend/internal/domain"
	"github.com/nvoronova/bookshelf-backend/internal/models"
	"github.com/nvoronova/bookshelf-backend/internal/services"
)

type BookHandler struct {
	Svc *services.BookService
}

func NewBookHandler(svc *services.BookService) *BookHandler { return &BookHandler{Svc: svc} }

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateBookInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadJSON(w)
		return
	}
	book, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, book)
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	f := models.BookFilters{
		Q:        r.URL.Query().Get("q"),
		YearFrom: intParam(r, "year_from"),
		YearTo:   intParam(r, "year_to"),
	}
	if g := strings.TrimSpace(r.URL.Query().Get("genre")); g != "" {
		genre := domain.Genre(g)
		if !genre.Valid() {
			httpx.WriteError(w, http.StatusUnprocessableEntity, "validation_error", "unknown genre", nil)
			return
		}
		f.Genre = &genre
	}
	limit, offset := pagination(r)

	books, count, err := h.Svc.List(r.Context(), f, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.ListResponse{Data: books, Count: count})
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateBookInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadJSON(w)
		return
	}
	book, err := h.Svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
