package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DukeRupert/memberhub/internal/csrf"
	"github.com/DukeRupert/memberhub/internal/domain"
	"github.com/DukeRupert/memberhub/internal/session"
	"github.com/DukeRupert/memberhub/internal/storage"
)

// =============================================================================
// Test Helpers
// =============================================================================

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockAuth implements Authenticator.
type mockAuth struct {
	token string
	err   error
	calls int
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, error) {
	m.calls++
	return m.token, m.err
}

// mockTickets implements TicketLister with a fixed number of pages.
type mockTickets struct {
	totalPages int
	err        error
	gotToken   string
	gotPage    int
}

func (m *mockTickets) ListTickets(ctx context.Context, token string, page int) (domain.TicketPage, error) {
	m.gotToken = token
	m.gotPage = page
	if m.err != nil {
		return domain.TicketPage{}, m.err
	}
	return domain.TicketPage{
		Items: []domain.Ticket{
			{ID: "t1", Subject: "Deposit pending", Status: domain.TicketStatusOpen},
		},
		Page:       page,
		TotalPages: m.totalPages,
	}, nil
}

// mockStatus implements middleware.MaintenanceChecker.
type mockStatus struct {
	status domain.MaintenanceStatus
	err    error
}

func (m mockStatus) MaintenanceStatus(ctx context.Context) (domain.MaintenanceStatus, error) {
	return m.status, m.err
}

// newContentStore returns a local store seeded with the given files.
func newContentStore(t *testing.T, files map[string]string) storage.Storage {
	t.Helper()
	dir := t.TempDir()
	for key, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(key))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	s, err := storage.NewLocalStorage(storage.LocalConfig{BasePath: dir}, newTestLogger())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// postForm builds a form POST carrying a matching CSRF cookie and field.
func postForm(path string, form url.Values) *http.Request {
	form.Set(csrf.FormFieldName, "test-csrf")
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: csrf.CookieName, Value: "test-csrf"})
	return req
}

// withSession attaches a token to the request context as the gate would.
func withSession(req *http.Request, token string) *http.Request {
	return req.WithContext(session.WithToken(req.Context(), token))
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
