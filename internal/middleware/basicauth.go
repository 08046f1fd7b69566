package middleware

import (
	"crypto/subtle"
	"net/http"
)

// BasicAuthMiddleware protects internal endpoints (e.g., /metrics) with HTTP
// basic auth. It is a no-op when no credentials are configured.
type BasicAuthMiddleware struct {
	realm    string
	username string
	password string
}

// NewBasicAuthMiddleware creates a basic auth middleware for realm.
func NewBasicAuthMiddleware(realm, username, password string) *BasicAuthMiddleware {
	return &BasicAuthMiddleware{realm: realm, username: username, password: password}
}

// Enabled reports whether credentials are configured.
func (m *BasicAuthMiddleware) Enabled() bool {
	return m.username != "" || m.password != ""
}

// Handler returns middleware that requires the configured credentials.
func (m *BasicAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()
		// Constant-time compare both fields before branching.
		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(m.username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(m.password)) == 1
		if !ok || !userMatch || !passMatch {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+m.realm+`"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
