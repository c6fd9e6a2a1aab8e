package user

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/user/repository"
)

func NewModule(db *sql.DB, bcryptCost int, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(repo, bcryptCost)
	return NewController(svc, logger)
}
