package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/dto"
	apperrors "github.com/wesleypiresbh/doces-sabor-de-mel/internal/errors"
)

type CreateOrderService interface {
	CreateOrder(ctx context.Context, clienteID string, itens []dto.OrderItemInput, observacoes string) (*dto.CreateOrderResult, error)
}

type CreateOrderUseCase struct {
	service          CreateOrderService
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewCreateOrderUseCase(service CreateOrderService, logger *zap.Logger, maxRetryAttempts int) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		service:          service,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResult, error) {
	if req.Cliente == nil || req.Cliente.ID == "" {
		return nil, apperrors.NewValidationError("Cliente não selecionado")
	}

	if len(req.Itens) == 0 {
		return nil, apperrors.NewValidationError("O pedido deve ter pelo menos um item")
	}

	itens := make([]dto.OrderItemInput, len(req.Itens))
	for i, item := range req.Itens {
		if item.ProdutoID == "" {
			return nil, apperrors.NewValidationError("Cada item do pedido deve ter um produto selecionado.")
		}
		if item.Quantidade < 1 {
			return nil, apperrors.NewValidationError("A quantidade de cada item deve ser maior que zero")
		}
		if item.PrecoUnitario < 0 {
			return nil, apperrors.NewValidationError("O preço unitário não pode ser negativo")
		}
		itens[i] = dto.OrderItemInput{
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
		}
	}

	uc.logger.Info("order creation started",
		zap.String("clienteId", req.Cliente.ID),
		zap.Int("itemCount", len(itens)),
	)

	return uc.createWithRetry(ctx, req.Cliente.ID, itens, req.Observacoes)
}

func (uc *CreateOrderUseCase) createWithRetry(
	ctx context.Context,
	clienteID string,
	itens []dto.OrderItemInput,
	observacoes string,
) (*dto.CreateOrderResult, error) {
	maxAttempts := uc.maxRetryAttempts
	// Backoff intervals: attempt 1 (0ms), attempt 2 (100ms), attempt 3 (200ms), etc.
	backoffs := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := uc.service.CreateOrder(ctx, clienteID, itens, observacoes)
		if err == nil {
			return result, nil
		}

		if isDeadlockError(err) {
			if attempt < maxAttempts {
				backoff := backoffs[(attempt-1)%len(backoffs)]
				// Jitter: ±20% of the backoff base.
				jitter := time.Duration(float64(backoff) * (0.8 + rand.Float64()*0.4))
				time.Sleep(jitter)
				uc.logger.Warn("deadlock detected, retrying",
					zap.Int("attempt", attempt),
					zap.Int("maxAttempts", maxAttempts),
					zap.String("clienteId", clienteID),
				)
				continue
			}
			break
		}

		return nil, err
	}

	return nil, apperrors.NewDeadlockError("max retries exceeded")
}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}
