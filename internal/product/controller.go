package product

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

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

func (c *Controller) HandleSearch(w http.ResponseWriter, r *http.Request) {
	busca := r.URL.Query().Get("busca")

	products, err := c.service.Search(r.Context(), busca)
	if err != nil {
		c.logger.Error("searching products failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao buscar produtos")
		return
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, toDTO(product))
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if message, ok := validateProductRequest(req); !ok {
		c.writeMessage(w, http.StatusBadRequest, message)
		return
	}

	created, err := c.service.Create(r.Context(), req.toDomain(""))
	if err != nil {
		c.logger.Error("creating product failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao cadastrar produto.")
		return
	}

	c.writeJSON(w, http.StatusCreated, toDTO(*created))
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := c.service.Get(r.Context(), id)
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeMessage(w, http.StatusNotFound, nfe.Message)
			return
		}
		c.logger.Error("fetching product failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao buscar produto")
		return
	}

	c.writeJSON(w, http.StatusOK, toDTO(*product))
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if message, ok := validateProductRequest(req); !ok {
		c.writeMessage(w, http.StatusBadRequest, message)
		return
	}

	updated, err := c.service.Update(r.Context(), req.toDomain(id))
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeMessage(w, http.StatusNotFound, nfe.Message)
			return
		}
		c.logger.Error("updating product failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao atualizar produto.")
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
		c.logger.Error("deleting product failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao excluir produto")
		return
	}

	c.writeMessage(w, http.StatusOK, "Produto excluído com sucesso")
}

// HandleMaxCode responds with the highest numeric product code as a bare
// JSON number, used by the UI to suggest the next code.
func (c *Controller) HandleMaxCode(w http.ResponseWriter, r *http.Request) {
	maxCode, err := c.service.MaxCode(r.Context())
	if err != nil {
		c.logger.Error("fetching max product code failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao buscar o maior código de produto.")
		return
	}

	c.writeJSON(w, http.StatusOK, maxCode)
}

func validateProductRequest(req ProductRequest) (string, bool) {
	if req.Nome == "" || req.Preco <= 0 || req.Codigo == "" {
		return "Nome, preço e código são obrigatórios.", false
	}
	if req.UnidadeMedida != "" && !domain.ValidUnidadeMedida(req.UnidadeMedida) {
		return "Unidade de medida inválida.", false
	}
	return "", true
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
