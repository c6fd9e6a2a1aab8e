package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
)

func testUser() domain.User {
	return domain.User{
		ID:    "u1",
		Nome:  "Wesley",
		Email: "wesley@example.com",
		Role:  domain.RoleAdmin,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	token, err := m.Issue(testUser())
	require.NoError(t, err)

	session, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "Wesley", session.Nome)
	assert.Equal(t, "wesley@example.com", session.Email)
	assert.Equal(t, domain.RoleAdmin, session.Role)
	assert.True(t, session.IsAdmin())
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewSessionManager("secret-a", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = NewSessionManager("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Minute)

	token, err := m.Issue(testUser())
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	_, err := m.Verify("not-a-token")
	assert.Error(t, err)
}

func TestFromRequest(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	token, err := m.Issue(testUser())
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/pedidos", nil)
	r.AddCookie(m.Cookie(token))

	session, ok := m.FromRequest(r)
	require.True(t, ok)
	assert.Equal(t, "u1", session.UserID)
}

func TestFromRequest_NoCookie(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	r := httptest.NewRequest("GET", "/pedidos", nil)

	_, ok := m.FromRequest(r)
	assert.False(t, ok)
}

func TestCookies(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	cookie := m.Cookie("tok")
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)

	expired := m.ExpiredCookie()
	assert.Equal(t, SessionCookieName, expired.Name)
	assert.Negative(t, expired.MaxAge)
}
