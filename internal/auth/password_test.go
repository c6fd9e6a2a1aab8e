package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("segredo123", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)

	assert.True(t, CheckPassword(hash, "segredo123"))
	assert.False(t, CheckPassword(hash, "segredo124"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("segredo123", 4)
	require.NoError(t, err)

	second, err := HashPassword("segredo123", 4)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "segredo123"))
}
