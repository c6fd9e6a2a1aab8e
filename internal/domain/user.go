package domain

type User struct {
	ID             string
	Nome           string
	Email          string
	HashedPassword string
	Role           string
}

const (
	RoleUser     = "User"
	RoleAdmin    = "Admin"
	RoleOperator = "Operator"
)

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleOperator:
		return true
	}
	return false
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
