package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/auth"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
	apperrors "github.com/wesleypiresbh/doces-sabor-de-mel/internal/errors"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if req.Nome == "" || req.Email == "" || req.Password == "" {
		c.writeMessage(w, http.StatusBadRequest, "Nome, email e senha são obrigatórios")
		return
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		c.writeMessage(w, http.StatusBadRequest, "Perfil inválido")
		return
	}

	if _, err := c.service.Register(r.Context(), req.Nome, req.Email, req.Password, role); err != nil {
		if ce, ok := apperrors.IsConflictError(err); ok {
			c.writeMessage(w, http.StatusConflict, ce.Message)
			return
		}
		c.logger.Error("registering user failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}

	c.writeMessage(w, http.StatusCreated, "Usuário criado com sucesso")
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := c.service.List(r.Context())
	if err != nil {
		c.logger.Error("listing users failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao carregar usuários")
		return
	}

	dtos := make([]UserSummaryDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, UserSummaryDTO{ID: u.ID, Email: u.Email, Nome: u.Nome})
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := c.service.Get(r.Context(), id)
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeMessage(w, http.StatusNotFound, nfe.Message)
			return
		}
		c.logger.Error("fetching user failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	c.writeJSON(w, http.StatusOK, toUserDTO(*user))
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if req.Nome == "" || req.Email == "" || req.Role == "" {
		c.writeMessage(w, http.StatusBadRequest, "Nome, email e perfil são obrigatórios.")
		return
	}

	if !domain.ValidRole(req.Role) {
		c.writeMessage(w, http.StatusBadRequest, "Perfil inválido")
		return
	}

	// An admin may not demote themselves; the rejection is explicit, never
	// a silent no-op.
	if session, ok := auth.SessionFromContext(r.Context()); ok {
		if session.UserID == id && session.IsAdmin() && req.Role != domain.RoleAdmin {
			c.writeMessage(w, http.StatusBadRequest, "Não é permitido remover o próprio status de Administrador.")
			return
		}
	}

	updated, err := c.service.Update(r.Context(), id, req.Nome, req.Email, req.Role)
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeMessage(w, http.StatusNotFound, nfe.Message)
			return
		}
		if ce, ok := apperrors.IsConflictError(err); ok {
			c.writeMessage(w, http.StatusConflict, ce.Message)
			return
		}
		c.logger.Error("updating user failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Usuário atualizado com sucesso!",
		"user":    toUserDTO(*updated),
	})
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if session, ok := auth.SessionFromContext(r.Context()); ok && session.UserID == id {
		c.writeMessage(w, http.StatusBadRequest, "Administradores não podem excluir a si mesmos.")
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeMessage(w, http.StatusNotFound, nfe.Message)
			return
		}
		c.logger.Error("deleting user failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	c.writeMessage(w, http.StatusOK, "Usuário excluído com sucesso")
}

func (c *Controller) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		c.writeMessage(w, http.StatusUnauthorized, "Não autorizado")
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		c.writeMessage(w, http.StatusBadRequest, "A senha atual e a nova senha são obrigatórias")
		return
	}

	if err := c.service.ChangePassword(r.Context(), session.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeMessage(w, http.StatusNotFound, nfe.Message)
			return
		}
		if ue, ok := apperrors.IsUnauthorizedError(err); ok {
			c.writeMessage(w, http.StatusUnauthorized, ue.Message)
			return
		}
		c.logger.Error("changing password failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao alterar senha")
		return
	}

	c.writeMessage(w, http.StatusOK, "Senha alterada com sucesso")
}

func (c *Controller) writeMessage(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, map[string]string{"message": message})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
