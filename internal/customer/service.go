package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
)

const searchLimit = 10

type customerService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &customerService{repo: repo}
}

func (s *customerService) Search(ctx context.Context, busca string) ([]domain.Customer, error) {
	return s.repo.Search(ctx, busca, searchLimit)
}

func (s *customerService) Create(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	customer.ID = uuid.New().String()
	if err := s.repo.Insert(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *customerService) Update(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, customer.ID)
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
