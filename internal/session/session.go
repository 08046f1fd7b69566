// Package session provides the session token cookie and the request-scoped
// session shared by the middleware and handler packages.
//
// The token is opaque: it is never inspected, only forwarded to the remote
// API. Presence means authenticated, absence means anonymous.
package session

import (
	"context"
	"net/http"
)

const (
	// CookieName is the name of the cookie that stores the session token.
	CookieName = "token"

	// CookiePath ensures the cookie is sent with all requests.
	CookiePath = "/"

	// DefaultMaxAge is the cookie lifetime in seconds. Tokens are short-lived
	// and refreshed by the host page.
	DefaultMaxAge = 180
)

// FromRequest returns the session token from the request cookie, or "".
func FromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetCookie stores the token returned by a successful login.
func SetCookie(w http.ResponseWriter, token string, maxAge int, isSecure bool) {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     CookiePath,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie tells the browser to delete the token cookie.
func ClearCookie(w http.ResponseWriter, isSecure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     CookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

type contextKey string

const tokenContextKey contextKey = "session_token"

// WithToken attaches the session token to ctx. An empty token leaves ctx
// anonymous.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenContextKey, token)
}

// Token returns the session token carried by ctx, or "".
func Token(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// Authenticated reports whether ctx carries a session token.
func Authenticated(ctx context.Context) bool {
	return Token(ctx) != ""
}
