package user

import (
	"context"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
)

type Service interface {
	Register(ctx context.Context, nome, email, password, role string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id, nome, email, role string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

type Repository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user domain.User) error
	Update(ctx context.Context, user domain.User) error
	UpdatePassword(ctx context.Context, id, hashedPassword string) error
	Delete(ctx context.Context, id string) error
}
