package product

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/product/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(repo)
	return NewController(svc, logger)
}
