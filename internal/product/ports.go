package product

import (
	"context"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
)

type Service interface {
	Search(ctx context.Context, busca string) ([]domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	MaxCode(ctx context.Context) (int64, error)
}

type Repository interface {
	Search(ctx context.Context, term string, limit int) ([]domain.Product, error)
	Insert(ctx context.Context, product domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id string) error
	MaxNumericCode(ctx context.Context) (int64, error)
}
