package customer

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

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

func (c *Controller) HandleSearch(w http.ResponseWriter, r *http.Request) {
	busca := r.URL.Query().Get("busca")

	customers, err := c.service.Search(r.Context(), busca)
	if err != nil {
		c.logger.Error("searching customers failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao buscar clientes")
		return
	}

	dtos := make([]CustomerDTO, 0, len(customers))
	for _, customer := range customers {
		dtos = append(dtos, toDTO(customer))
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if req.Nome == "" || req.Telefone == "" {
		c.writeMessage(w, http.StatusBadRequest, "Nome de contato e telefone são obrigatórios.")
		return
	}

	created, err := c.service.Create(r.Context(), req.toDomain(""))
	if err != nil {
		c.logger.Error("creating customer failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao cadastrar cliente.")
		return
	}

	c.writeJSON(w, http.StatusCreated, toDTO(*created))
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customer, err := c.service.Get(r.Context(), id)
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeMessage(w, http.StatusNotFound, nfe.Message)
			return
		}
		c.logger.Error("fetching customer failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao buscar cliente")
		return
	}

	c.writeJSON(w, http.StatusOK, toDTO(*customer))
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if req.Nome == "" || req.Telefone == "" {
		c.writeMessage(w, http.StatusBadRequest, "Nome de contato e telefone são obrigatórios.")
		return
	}

	updated, err := c.service.Update(r.Context(), req.toDomain(id))
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeMessage(w, http.StatusNotFound, nfe.Message)
			return
		}
		c.logger.Error("updating customer failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao atualizar cliente")
		return
	}

	c.writeJSON(w, http.StatusOK, toDTO(*updated))
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.service.Delete(r.Context(), id); err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeMessage(w, http.StatusNotFound, nfe.Message)
			return
		}
		c.logger.Error("deleting customer failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao excluir cliente")
		return
	}

	c.writeMessage(w, http.StatusOK, "Cliente excluído com sucesso")
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
