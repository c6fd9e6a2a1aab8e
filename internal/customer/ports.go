package customer

import (
	"context"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
)

type Service interface {
	Search(ctx context.Context, busca string) ([]domain.Customer, error)
	Create(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Search(ctx context.Context, term string, limit int) ([]domain.Customer, error)
	Insert(ctx context.Context, customer domain.Customer) error
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, customer domain.Customer) error
	Delete(ctx context.Context, id string) error
}
