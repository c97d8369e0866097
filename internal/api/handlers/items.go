package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvoronova/bookshelf-backend/internal/api/httpx"
	"github.com/nvoronova/bookshelf-backend/internal/middleware"
	"github.com/nvoronova/bookshelf-backend/internal/models"
	"github.com/nvoronova/bookshelf-backend/internal/services"
)

type ItemHandler struct {
	Svc *services.ItemService
}

func NewItemHandler(svc *services.ItemService) *ItemHandler { return &ItemHandler{Svc: svc} }

// Create attaches the item to the authenticated user.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "authentication required", nil)
		return
	}
	var in models.CreateItemInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadJSON(w)
		return
	}
	item, err := h.Svc.Create(r.Context(), user.ID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	f := models.ItemFilters{
		Q:      r.URL.Query().Get("q"),
		UserID: r.URL.Query().Get("user_id"),
	}
	limit, offset := pagination(r)

	items, count, err := h.Svc.List(r.Context(), f, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.ListResponse{Data: items, Count: count})
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateItemInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadJSON(w)
		return
	}
	item, err := h.Svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
