package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleUser))
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleOperator))
	assert.False(t, ValidRole("SuperAdmin"))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("admin"))
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, User{Role: RoleAdmin}.IsAdmin())
	assert.False(t, User{Role: RoleUser}.IsAdmin())
	assert.False(t, User{Role: RoleOperator}.IsAdmin())
}
