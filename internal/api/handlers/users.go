package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvoronova/bookshelf-backend/internal/api/httpx"
	"github.com/nvoronova/bookshelf-backend/internal/models"
	"github.com/nvoronova/bookshelf-backend/internal/services"
)

type UserHandler struct {
	Svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler { return &UserHandler{Svc: svc} }

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateUserInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadJSON(w)
		return
	}
	user, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	f := models.UserFilters{Q: r.URL.Query().Get("q")}
	limit, offset := pagination(r)

	users, count, err := h.Svc.List(r.Context(), f, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.ListResponse{Data: users, Count: count})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateUserInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadJSON(w)
		return
	}
	user, err := h.Svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
