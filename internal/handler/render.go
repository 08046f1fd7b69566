// Package handler contains the HTTP handlers for the member site.
//
// Handlers render templ components and talk to the remote API through small
// interfaces so they can be tested without a network.
package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// render buffers c and writes it with status. A render failure becomes a 500
// instead of a half-written page.
func render(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		InternalErrorResponse(w, r, logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// titleFromSlug turns "user-agreement" into "User Agreement". A Caser holds
// state, so each call gets its own.
func titleFromSlug(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
