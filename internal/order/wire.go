package order

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/config"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/order/controller"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/order/repository"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/order/service"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/order/usecase"
)

func NewModule(db *sql.DB, cfg config.OrderConfig, logger *zap.Logger) *controller.OrdersController {
	orderRepo := repository.NewMySQLOrderRepository(db)
	itemRepo := repository.NewMySQLOrderItemRepository(db)

	svc := service.NewCreateOrderService(db, orderRepo, itemRepo, logger, cfg.TxTimeout)
	uc := usecase.NewCreateOrderUseCase(svc, logger, cfg.MaxRetryAttempts)

	return controller.NewOrdersController(uc, orderRepo, logger)
}
