package user

import "github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"

type RegisterRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UserSummaryDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nome  string `json:"nome"`
}

type UserDTO struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserDTO(u domain.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Nome:  u.Nome,
		Email: u.Email,
		Role:  u.Role,
	}
}
