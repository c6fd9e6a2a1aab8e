package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
	apperrors "github.com/wesleypiresbh/doces-sabor-de-mel/internal/errors"
)

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Controller struct {
	users    UserFinder
	sessions *SessionManager
	logger   *zap.Logger
}

func NewController(users UserFinder, sessions *SessionManager, logger *zap.Logger) *Controller {
	return &Controller{
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Corpo da requisição inválido"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email e senha são obrigatórios"})
		return
	}

	user, err := c.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Email ou senha inválidos"})
			return
		}
		c.logger.Error("login lookup failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Erro interno do servidor"})
		return
	}

	if !CheckPassword(user.HashedPassword, req.Password) {
		c.writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Email ou senha inválidos"})
		return
	}

	token, err := c.sessions.Issue(*user)
	if err != nil {
		c.logger.Error("issuing session failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Erro interno do servidor"})
		return
	}

	http.SetCookie(w, c.sessions.Cookie(token))
	c.logger.Info("user logged in", zap.String("userId", user.ID))

	c.writeJSON(w, http.StatusOK, loginResponse{
		ID:    user.ID,
		Nome:  user.Nome,
		Email: user.Email,
		Role:  user.Role,
	})
}

func (c *Controller) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, c.sessions.ExpiredCookie())
	c.writeJSON(w, http.StatusOK, map[string]string{"message": "Sessão encerrada"})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
