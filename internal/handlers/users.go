package handlers

import (
	"context"
	"net/http"

	"github.com/AnshRaj112/mealtracker-backend/internal/models"
	"github.com/AnshRaj112/mealtracker-backend/internal/services"
	"github.com/rs/zerolog"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
	Token    string `json:"token"`
}

type UserHandler struct {
	users *services.UserService
	log   zerolog.Logger
}

func NewUserHandler(users *services.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// Signup handles POST /api/user/signup. Every failure is a 400.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, h.users.Signup)
}

// Login handles POST /api/user/login. Every failure is a 400.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, h.users.Login)
}

func (h *UserHandler) authenticate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, username, password string) (*models.User, error)) {
	var req CredentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := op(ctx, req.Username, req.Password)
	if err != nil {
		h.log.Debug().Err(err).Str("path", r.URL.Path).Msg("credentials rejected")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.users.IssueToken(user)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to sign token")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Username: req.Username,
		ID:       user.ID.Hex(),
		Token:    token,
	})
}
