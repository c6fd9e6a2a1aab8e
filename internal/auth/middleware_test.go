package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
)

func newTestGate(t *testing.T) (*Gate, *SessionManager) {
	sessions := NewSessionManager("test-secret", time.Hour)
	return NewGate(sessions, zap.NewNop()), sessions
}

func sessionCookie(t *testing.T, sessions *SessionManager, role string) *http.Cookie {
	token, err := sessions.Issue(domain.User{
		ID:    "u1",
		Nome:  "Wesley",
		Email: "wesley@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return sessions.Cookie(token)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestPages_UnauthenticatedProtectedPathRedirectsToLogin(t *testing.T) {
	gate, _ := newTestGate(t)

	r := httptest.NewRequest("GET", "/pedidos/lista", nil)
	w := httptest.NewRecorder()

	gate.Pages(okHandler()).ServeHTTP(w, r)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPages_AuthenticatedLoginRedirectsToLanding(t *testing.T) {
	gate, sessions := newTestGate(t)

	r := httptest.NewRequest("GET", "/login", nil)
	r.AddCookie(sessionCookie(t, sessions, domain.RoleUser))
	w := httptest.NewRecorder()

	gate.Pages(okHandler()).ServeHTTP(w, r)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/pedidos", w.Header().Get("Location"))
}

func TestPages_AuthenticatedProtectedPathProceeds(t *testing.T) {
	gate, sessions := newTestGate(t)

	r := httptest.NewRequest("GET", "/pedidos", nil)
	r.AddCookie(sessionCookie(t, sessions, domain.RoleUser))
	w := httptest.NewRecorder()

	gate.Pages(okHandler()).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPages_UnauthenticatedLoginProceeds(t *testing.T) {
	gate, _ := newTestGate(t)

	r := httptest.NewRequest("GET", "/login", nil)
	w := httptest.NewRecorder()

	gate.Pages(okHandler()).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPages_UnrelatedPathUntouched(t *testing.T) {
	gate, _ := newTestGate(t)

	r := httptest.NewRequest("GET", "/api/produtos", nil)
	w := httptest.NewRecorder()

	gate.Pages(okHandler()).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSession_MissingSession(t *testing.T) {
	gate, _ := newTestGate(t)

	r := httptest.NewRequest("GET", "/api/usuarios", nil)
	w := httptest.NewRecorder()

	gate.RequireSession(okHandler()).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Não autorizado"}`, w.Body.String())
}

func TestRequireSession_StoresSessionInContext(t *testing.T) {
	gate, sessions := newTestGate(t)

	var got *Session
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest("GET", "/api/usuarios", nil)
	r.AddCookie(sessionCookie(t, sessions, domain.RoleUser))
	w := httptest.NewRecorder()

	gate.RequireSession(handler).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
}

func TestRequireAdmin_NonAdminDenied(t *testing.T) {
	gate, sessions := newTestGate(t)

	r := httptest.NewRequest("DELETE", "/api/usuarios/u2", nil)
	r.AddCookie(sessionCookie(t, sessions, domain.RoleUser))
	w := httptest.NewRecorder()

	gate.RequireAdmin(okHandler()).ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Acesso negado."}`, w.Body.String())
}

func TestRequireAdmin_MissingSessionDenied(t *testing.T) {
	gate, _ := newTestGate(t)

	r := httptest.NewRequest("DELETE", "/api/usuarios/u2", nil)
	w := httptest.NewRecorder()

	gate.RequireAdmin(okHandler()).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_AdminProceeds(t *testing.T) {
	gate, sessions := newTestGate(t)

	r := httptest.NewRequest("DELETE", "/api/usuarios/u2", nil)
	r.AddCookie(sessionCookie(t, sessions, domain.RoleAdmin))
	w := httptest.NewRecorder()

	gate.RequireAdmin(okHandler()).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnderProtectedPrefix(t *testing.T) {
	assert.True(t, underProtectedPrefix("/pedidos"))
	assert.True(t, underProtectedPrefix("/pedidos/lista"))
	assert.False(t, underProtectedPrefix("/pedidosx"))
	assert.False(t, underProtectedPrefix("/api/pedidos"))
	assert.False(t, underProtectedPrefix("/"))
}
