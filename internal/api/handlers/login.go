package handlers

import (
	"net/http"

	"github.com/nvoronova/bookshelf-backend/internal/api/httpx"
	"github.com/nvoronova/bookshelf-backend/internal/auth"
	"github.com/nvoronova/bookshelf-backend/internal/middleware"
	"github.com/nvoronova/bookshelf-backend/internal/services"
)

type LoginHandler struct {
	Users *services.UserService
	TM    *auth.TokenManager
}

func NewLoginHandler(users *services.UserService, tm *auth.TokenManager) *LoginHandler {
	return &LoginHandler{Users: users, TM: tm}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AccessToken implements POST /login/access-token. Credentials arrive
// form-encoded per the OAuth2 password flow.
func (h *LoginHandler) AccessToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "malformed form data", nil)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.Users.Authenticate(r.Context(), username, password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := h.TM.Generate(user.ID)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "token generation failed", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// TestToken implements POST /login/test-token: it echoes the user resolved
// from the bearer token.
func (h *LoginHandler) TestToken(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "authentication required", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}
