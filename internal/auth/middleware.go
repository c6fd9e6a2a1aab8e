package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	loginPath   = "/login"
	landingPath = "/pedidos"
)

// protectedPrefixes is the business area that requires a session before any
// page under it is served.
var protectedPrefixes = []string{"/pedidos"}

// Gate decides per request whether the caller may proceed. It persists no
// state of its own: the decision is a function of path and session only.
type Gate struct {
	sessions *SessionManager
	logger   *zap.Logger
}

func NewGate(sessions *SessionManager, logger *zap.Logger) *Gate {
	return &Gate{
		sessions: sessions,
		logger:   logger,
	}
}

// Pages applies the redirect rules for browser navigation: unauthenticated
// access to the protected area goes to the login page, and an authenticated
// user asking for the login page goes to the default landing area.
func (g *Gate) Pages(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, authenticated := g.sessions.FromRequest(r)

		if !authenticated && underProtectedPrefix(r.URL.Path) {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}

		if authenticated && r.URL.Path == loginPath {
			http.Redirect(w, r, landingPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireSession rejects API requests without a valid session and stores the
// session in the request context for downstream handlers.
func (g *Gate) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := g.sessions.FromRequest(r)
		if !ok {
			g.deny(w, http.StatusUnauthorized, "Não autorizado")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// RequireAdmin rejects requests whose session role is not Admin. It never
// silently allows: a non-admin session gets an explicit 403.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := g.sessions.FromRequest(r)
		if !ok {
			g.deny(w, http.StatusUnauthorized, "Não autorizado")
			return
		}

		if !session.IsAdmin() {
			g.logger.Warn("admin route denied",
				zap.String("path", r.URL.Path),
				zap.String("userId", session.UserID),
				zap.String("role", session.Role),
			)
			g.deny(w, http.StatusForbidden, "Acesso negado.")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

func underProtectedPrefix(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

func (g *Gate) deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		g.logger.Error("failed to encode response", zap.Error(err))
	}
}
