package product

import (
	"context"

	"github.com/google/uuid"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
)

const searchLimit = 10

type productService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &productService{repo: repo}
}

func (s *productService) Search(ctx context.Context, busca string) ([]domain.Product, error) {
	return s.repo.Search(ctx, busca, searchLimit)
}

func (s *productService) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	product.ID = uuid.New().String()
	if product.UnidadeMedida == "" {
		product.UnidadeMedida = domain.UnidadeUnit
	}
	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, product.ID)
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) Update(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if product.UnidadeMedida == "" {
		product.UnidadeMedida = domain.UnidadeUnit
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, product.ID)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *productService) MaxCode(ctx context.Context) (int64, error) {
	return s.repo.MaxNumericCode(ctx)
}
