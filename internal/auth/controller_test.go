package auth

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
	apperrors "github.com/wesleypiresbh/doces-sabor-de-mel/internal/errors"
)

type mockUserFinder struct {
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserFinder) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func newLoginController(t *testing.T, finder UserFinder) (*Controller, *SessionManager) {
	sessions := NewSessionManager("test-secret", time.Hour)
	return NewController(finder, sessions, zap.NewNop()), sessions
}

func TestHandleLogin_Success(t *testing.T) {
	hash, err := HashPassword("segredo123", 4)
	require.NoError(t, err)

	finder := &mockUserFinder{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:             "u1",
				Nome:           "Wesley",
				Email:          email,
				HashedPassword: hash,
				Role:           domain.RoleAdmin,
			}, nil
		},
	}

	ctrl, sessions := newLoginController(t, finder)

	r := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"email":"wesley@example.com","password":"segredo123"}`))
	w := httptest.NewRecorder()

	ctrl.HandleLogin(w, r)

	assert.Equal(t, 200, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)

	session, err := sessions.Verify(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, domain.RoleAdmin, session.Role)
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	hash, err := HashPassword("segredo123", 4)
	require.NoError(t, err)

	finder := &mockUserFinder{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u1", Email: email, HashedPassword: hash}, nil
		},
	}

	ctrl, _ := newLoginController(t, finder)

	r := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"email":"wesley@example.com","password":"errada"}`))
	w := httptest.NewRecorder()

	ctrl.HandleLogin(w, r)

	assert.Equal(t, 401, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestHandleLogin_UnknownEmail(t *testing.T) {
	finder := &mockUserFinder{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, apperrors.NewNotFoundError("Usuário não encontrado.")
		},
	}

	ctrl, _ := newLoginController(t, finder)

	r := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"email":"nobody@example.com","password":"x"}`))
	w := httptest.NewRecorder()

	ctrl.HandleLogin(w, r)

	assert.Equal(t, 401, w.Code)
}

func TestHandleLogin_MissingFields(t *testing.T) {
	ctrl, _ := newLoginController(t, &mockUserFinder{})

	r := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"email":"wesley@example.com"}`))
	w := httptest.NewRecorder()

	ctrl.HandleLogin(w, r)

	assert.Equal(t, 400, w.Code)
}

func TestHandleLogout_ExpiresCookie(t *testing.T) {
	ctrl, _ := newLoginController(t, &mockUserFinder{})

	r := httptest.NewRequest("POST", "/api/logout", nil)
	w := httptest.NewRecorder()

	ctrl.HandleLogout(w, r)

	assert.Equal(t, 200, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}
