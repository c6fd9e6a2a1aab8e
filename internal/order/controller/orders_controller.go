package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/dto"
	apperrors "github.com/wesleypiresbh/doces-sabor-de-mel/internal/errors"
)

type CreateOrderUseCase interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResult, error)
}

type OrderQueries interface {
	FindAll(ctx context.Context) ([]domain.OrderSummary, error)
	FindDetailByID(ctx context.Context, id string) (*domain.OrderDetail, error)
}

type OrdersController struct {
	useCase CreateOrderUseCase
	queries OrderQueries
	logger  *zap.Logger
}

func NewOrdersController(useCase CreateOrderUseCase, queries OrderQueries, logger *zap.Logger) *OrdersController {
	return &OrdersController{
		useCase: useCase,
		queries: queries,
		logger:  logger,
	}
}

func (c *OrdersController) HandleList(w http.ResponseWriter, r *http.Request) {
	orders, err := c.queries.FindAll(r.Context())
	if err != nil {
		c.logger.Error("listing orders failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao buscar pedidos")
		return
	}

	dtos := make([]dto.OrderSummaryDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, dto.OrderSummaryDTO{
			ID:                 order.ID,
			NumeroPedido:       order.NumeroPedido,
			DataPedido:         order.DataPedido,
			ClienteNome:        order.ClienteNome,
			ClienteNomeEmpresa: order.ClienteNomeEmpresa,
			Status:             order.Status,
			Total:              order.Total,
			Observacoes:        order.Observacoes,
		})
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *OrdersController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	result, err := c.useCase.CreateOrder(r.Context(), req)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeMessage(w, http.StatusBadRequest, ve.Message)
			return
		}

		// Transactional failures surface as a generic outcome; the cause
		// stays in the server log.
		logger.Error("order creation failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao criar pedido")
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.CreateOrderResponse{
		Message:      "Pedido criado com sucesso",
		PedidoID:     result.PedidoID,
		NumeroPedido: result.NumeroPedido,
	})
}

func (c *OrdersController) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := c.queries.FindDetailByID(r.Context(), id)
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeMessage(w, http.StatusNotFound, nfe.Message)
			return
		}
		c.logger.Error("fetching order detail failed", zap.Error(err))
		c.writeMessage(w, http.StatusInternalServerError, "Erro ao buscar detalhes do pedido")
		return
	}

	itens := make([]dto.OrderItemDetailDTO, 0, len(detail.Itens))
	for _, item := range detail.Itens {
		itens = append(itens, dto.OrderItemDetailDTO{
			ProdutoID:            item.ProdutoID,
			Quantidade:           item.Quantidade,
			PrecoUnitario:        item.PrecoUnitario,
			Total:                item.Total,
			ProdutoNome:          item.ProdutoNome,
			ProdutoCodigo:        item.ProdutoCodigo,
			ProdutoUnidadeMedida: item.ProdutoUnidadeMedida,
		})
	}

	c.writeJSON(w, http.StatusOK, dto.OrderDetailDTO{
		ID:                 detail.ID,
		NumeroPedido:       detail.NumeroPedido,
		DataPedido:         detail.DataPedido,
		ClienteNome:        detail.ClienteNome,
		ClienteNomeEmpresa: detail.ClienteNomeEmpresa,
		ClienteTelefone:    detail.ClienteTelefone,
		ClienteEndereco:    detail.ClienteEndereco,
		Status:             detail.Status,
		Total:              detail.Total,
		Observacoes:        detail.Observacoes,
		Itens:              itens,
	})
}

func (c *OrdersController) writeMessage(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, map[string]string{"message": message})
}

func (c *OrdersController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
