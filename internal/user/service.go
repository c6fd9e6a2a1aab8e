package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/auth"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
	apperrors "github.com/wesleypiresbh/doces-sabor-de-mel/internal/errors"
)

type userService struct {
	repo       Repository
	bcryptCost int
}

func NewService(repo Repository, bcryptCost int) Service {
	return &userService{
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}

func (s *userService) Register(ctx context.Context, nome, email, password, role string) (*domain.User, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflictError("Email já cadastrado")
	} else if _, ok := apperrors.IsNotFoundError(err); !ok {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:             uuid.New().String(),
		Nome:           nome,
		Email:          email,
		HashedPassword: hash,
		Role:           role,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) Update(ctx context.Context, id, nome, email, role string) (*domain.User, error) {
	user := domain.User{
		ID:    id,
		Nome:  nome,
		Email: email,
		Role:  role,
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *userService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.HashedPassword, currentPassword) {
		return apperrors.NewUnauthorizedError("Senha atual incorreta")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, hash)
}
