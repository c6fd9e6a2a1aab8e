package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/dto"
	apperrors "github.com/wesleypiresbh/doces-sabor-de-mel/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (int64, error)
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) error
}

// CreateOrderService creates an order together with all of its line items as
// a single all-or-nothing unit. On any failure the transaction is rolled
// back and zero rows remain visible.
type CreateOrderService struct {
	db        TransactionManager
	orderRepo OrderRepository
	itemRepo  OrderItemRepository
	logger    *zap.Logger
	txTimeout time.Duration
}

func NewCreateOrderService(
	db TransactionManager,
	orderRepo OrderRepository,
	itemRepo OrderItemRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *CreateOrderService {
	return &CreateOrderService{
		db:        db,
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		logger:    logger,
		txTimeout: txTimeout,
	}
}

func (s *CreateOrderService) CreateOrder(
	ctx context.Context,
	clienteID string,
	itens []dto.OrderItemInput,
	observacoes string,
) (*dto.CreateOrderResult, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	// Unit prices are the caller's snapshot; line totals and the order
	// total are derived from them here, not re-read from the catalog.
	items := make([]domain.OrderItem, len(itens))
	total := 0.0
	for i, item := range itens {
		lineTotal := float64(item.Quantidade) * item.PrecoUnitario
		items[i] = domain.OrderItem{
			ID:            uuid.New().String(),
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Total:         lineTotal,
		}
		total += lineTotal
	}

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	// Ensure rollback on any exit path. MySQL ignores rollback if already committed.
	defer tx.Rollback()

	order := domain.Order{
		ID:        uuid.New().String(),
		ClienteID: clienteID,
		Status:    domain.OrderStatusPendente,
		Total:     total,
	}
	if observacoes != "" {
		order.Observacoes = &observacoes
	}

	numeroPedido, err := s.orderRepo.Insert(txCtx, tx, order)
	if err != nil {
		s.logger.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	for _, item := range items {
		if item.ProdutoID == "" {
			// Abort mid-loop: the deferred rollback discards the order
			// row and every item inserted so far.
			return nil, apperrors.NewValidationError("Cada item do pedido deve ter um produto selecionado.")
		}

		item.PedidoID = order.ID
		if err := s.itemRepo.Insert(txCtx, tx, item); err != nil {
			s.logger.Error("failed to insert order item",
				zap.String("pedidoId", order.ID),
				zap.String("produtoId", item.ProdutoID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.String("pedidoId", order.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("pedidoId", order.ID),
		zap.Int64("numeroPedido", numeroPedido),
		zap.Int("itemCount", len(items)),
		zap.Float64("total", total),
	)

	return &dto.CreateOrderResult{
		PedidoID:     order.ID,
		NumeroPedido: numeroPedido,
		Total:        total,
	}, nil
}
