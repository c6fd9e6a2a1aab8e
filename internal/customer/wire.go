package customer

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/customer/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(repo)
	return NewController(svc, logger)
}
