package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"Harbor/internal/auth"
	"Harbor/internal/core/people"
)

// Context keys for storing the acting principal
type contextKey string

const principalKey contextKey = "principal"

// AuthMiddleware resolves bearer tokens to a principal. Tokens carry a
// person id; the person is loaded fresh on every request so role changes
// take effect immediately.
type AuthMiddleware struct {
	persons people.Repository
	secret  string
}

// NewAuthMiddleware creates the auth middleware.
func NewAuthMiddleware(persons people.Repository, secret string) *AuthMiddleware {
	return &AuthMiddleware{persons: persons, secret: secret}
}

// RequireAuth ensures the request carries a valid bearer token and injects
// the resolved principal into the context. Returns 401 otherwise.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pr, err := m.resolve(r)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or missing token")
			return
		}
		if _, ok := pr.Person(); !ok {
			writeAuthError(w, "Authentication required")
			return
		}

		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), pr)))
	})
}

// OptionalAuth loads the principal if a valid bearer token is present, and
// continues anonymously otherwise. Useful for endpoints that serve both
// authenticated and anonymous readers.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pr, err := m.resolve(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), pr)))
	})
}

func (m *AuthMiddleware) resolve(r *http.Request) (people.Principal, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return people.Anonymous(), auth.ErrInvalidToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	personID, err := auth.ParseToken(m.secret, token)
	if err != nil {
		return people.Anonymous(), err
	}

	person, err := m.persons.GetByID(r.Context(), personID)
	if err != nil {
		return people.Anonymous(), err
	}

	return people.NewPrincipal(person), nil
}

func withPrincipal(ctx context.Context, pr people.Principal) context.Context {
	return context.WithValue(ctx, principalKey, pr)
}

// GetPrincipal returns the request's principal, anonymous if none was set.
func GetPrincipal(r *http.Request) people.Principal {
	if pr, ok := r.Context().Value(principalKey).(people.Principal); ok {
		return pr
	}
	return people.Anonymous()
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "not_logged_in",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error: %v", err)
	}
}
