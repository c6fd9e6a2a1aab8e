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

func newUser(email string) domain.User {
	return domain.User{
		ID:             uuid.New().String(),
		Nome:           "Maria",
		Email:          email,
		HashedPassword: "$2a$04$fakehashfortestingonlyfakehashfortesting",
		Role:           domain.RoleUser,
	}
}

func TestUserInsertAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	u := newUser("maria@example.com")
	require.NoError(t, repo.Insert(ctx, u))

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, byID.Email)
	assert.Equal(t, u.HashedPassword, byID.HashedPassword)

	byEmail, err := repo.FindByEmail(ctx, "maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	// The listing query never selects the hash.
	assert.Empty(t, all[0].HashedPassword)
}

func TestUserInsert_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newUser("maria@example.com")))

	err := repo.Insert(ctx, newUser("maria@example.com"))
	ce, ok := apperrors.IsConflictError(err)
	require.True(t, ok)
	assert.Equal(t, "Email já cadastrado", ce.Message)
}

func TestUserUpdate_EmailConflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newUser("maria@example.com")))

	other := newUser("joao@example.com")
	require.NoError(t, repo.Insert(ctx, other))

	other.Email = "maria@example.com"
	err := repo.Update(ctx, other)
	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
}

func TestUserUpdatePassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	u := newUser("maria@example.com")
	require.NoError(t, repo.Insert(ctx, u))

	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "newhash"))

	found, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", found.HashedPassword)
}

func TestUserUpdatePassword_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLRepository(db)

	err := repo.UpdatePassword(context.Background(), uuid.New().String(), "hash")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestUserDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	u := newUser("maria@example.com")
	require.NoError(t, repo.Insert(ctx, u))
	require.NoError(t, repo.Delete(ctx, u.ID))

	_, err := repo.FindByID(ctx, u.ID)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
