package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
	apperrors "github.com/wesleypiresbh/doces-sabor-de-mel/internal/errors"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/testutil"
)

func ptr(s string) *string {
	return &s
}

func newCustomer(nome string) domain.Customer {
	return domain.Customer{
		ID:       uuid.New().String(),
		Nome:     nome,
		Telefone: "31999990000",
		Ativo:    true,
	}
}

func TestCustomerCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	c := newCustomer("Maria")
	c.NomeEmpresa = ptr("Padaria Central")
	c.Email = ptr("maria@example.com")

	require.NoError(t, repo.Insert(ctx, c))

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", found.Nome)
	require.NotNil(t, found.NomeEmpresa)
	assert.Equal(t, "Padaria Central", *found.NomeEmpresa)
	assert.Nil(t, found.Endereco)
	assert.True(t, found.Ativo)

	c.Nome = "Maria Silva"
	c.Endereco = ptr("Rua das Flores, 12")
	require.NoError(t, repo.Update(ctx, c))

	found, err = repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", found.Nome)
	require.NotNil(t, found.Endereco)

	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err = repo.FindByID(ctx, c.ID)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestCustomerSearch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	maria := newCustomer("Maria")
	padaria := newCustomer("João")
	padaria.NomeEmpresa = ptr("Padaria da Maria")
	outro := newCustomer("Carlos")

	for _, c := range []domain.Customer{maria, padaria, outro} {
		require.NoError(t, repo.Insert(ctx, c))
	}

	// Matches on contact name and on company name alike.
	results, err := repo.Search(ctx, "maria", 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = repo.Search(ctx, "carlos", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = repo.Search(ctx, "nada", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCustomerSearch_LimitApplies(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Insert(ctx, newCustomer("Maria")))
	}

	results, err := repo.Search(ctx, "maria", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestCustomerUpdate_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLRepository(db)

	err := repo.Update(context.Background(), newCustomer("Fantasma"))
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestCustomerUpdate_UnchangedIsNotMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	c := newCustomer("Maria")
	require.NoError(t, repo.Insert(ctx, c))

	// Writing identical values affects zero rows but is still a success.
	assert.NoError(t, repo.Update(ctx, c))
}

func TestCustomerDelete_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLRepository(db)

	err := repo.Delete(context.Background(), uuid.New().String())
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
