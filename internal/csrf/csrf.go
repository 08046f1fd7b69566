// Package csrf protects the site's state-changing forms (login, logout) with
// the double-submit cookie pattern: a random token is stored in a cookie and
// echoed in a hidden form field, and a POST is accepted only when both match.
package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
)

const (
	CookieName    = "csrf_token"
	FormFieldName = "csrf_token"

	// tokenLength is the number of random bytes per token.
	tokenLength = 32

	// CookieMaxAge is shorter than the session so stale forms expire.
	CookieMaxAge = 3600
)

// GenerateToken returns 32 random bytes, base64 URL-encoded.
func GenerateToken() (string, error) {
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate csrf token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Valid reports whether the request's form token matches its cookie token.
// The form must be parseable; r.FormValue parses it on demand.
func Valid(r *http.Request) bool {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	formToken := r.FormValue(FormFieldName)
	if formToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(formToken)) == 1
}

// Ensure returns the request's existing token, or issues a new one and sets
// the cookie. Handlers call it when rendering a form.
func Ensure(w http.ResponseWriter, r *http.Request, isSecure bool) (string, error) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	return Rotate(w, isSecure)
}

// Rotate issues a fresh token. Call it after a successful submission so a
// token is never accepted twice.
func Rotate(w http.ResponseWriter, isSecure bool) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   CookieMaxAge,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteStrictMode,
	})
	return token, nil
}
