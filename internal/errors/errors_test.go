package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("validation failed",
		ValidationDetail{Field: "nome", Message: "nome is required"},
	)

	assert.Equal(t, "validation failed", err.Error())
	assert.Len(t, err.Details, 1)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "nome", ve.Details[0].Field)

	_, ok = IsValidationError(errors.New("other"))
	assert.False(t, ok)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Cliente não encontrado")

	assert.Equal(t, "Cliente não encontrado", err.Error())

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)

	_, ok = IsNotFoundError(errors.New("other"))
	assert.False(t, ok)
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("Email já cadastrado")

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "Email já cadastrado", ce.Message)
}

func TestUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError("Não autorizado")

	ue, ok := IsUnauthorizedError(err)
	assert.True(t, ok)
	assert.Equal(t, "Não autorizado", ue.Message)
}

func TestForbiddenError(t *testing.T) {
	err := NewForbiddenError("Acesso negado.")

	fe, ok := IsForbiddenError(err)
	assert.True(t, ok)
	assert.Equal(t, "Acesso negado.", fe.Message)
}

func TestDeadlockError(t *testing.T) {
	err := NewDeadlockError("max retries exceeded")

	de, ok := IsDeadlockError(err)
	assert.True(t, ok)
	assert.Equal(t, "max retries exceeded", de.Message)
}

func TestInternalError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewInternalError("querying orders", cause)

	assert.Equal(t, "querying orders: connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))

	bare := NewInternalError("querying orders", nil)
	assert.Equal(t, "querying orders", bare.Error())
}
