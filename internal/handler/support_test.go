package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/DukeRupert/memberhub/internal/domain"
	"github.com/DukeRupert/memberhub/internal/metrics"
	"github.com/DukeRupert/memberhub/internal/session"
)

func serveSupport(tickets TicketLister, target string) *httptest.ResponseRecorder {
	h := NewSupportHandler(tickets, newTestLogger(), false)
	rec := httptest.NewRecorder()
	h.List(rec, withSession(httptest.NewRequest(http.MethodGet, target, nil), "tok"))
	return rec
}

func TestSupportList_RendersPage(t *testing.T) {
	tickets := &mockTickets{totalPages: 10}

	rec := serveSupport(tickets, "/dashboard/support?page=5")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if tickets.gotToken != "tok" || tickets.gotPage != 5 {
		t.Errorf("ListTickets(%q, %d), want (tok, 5)", tickets.gotToken, tickets.gotPage)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Deposit pending") {
		t.Error("ticket missing")
	}
	if !strings.Contains(body, `aria-current="page">5</span>`) {
		t.Error("current page not marked")
	}
	if strings.Contains(body, `name="goto"`) {
		t.Error("no popover should be open")
	}
}

func TestSupportList_BadPageDefaultsToFirst(t *testing.T) {
	tickets := &mockTickets{totalPages: 3}

	serveSupport(tickets, "/dashboard/support?page=abc")

	if tickets.gotPage != 1 {
		t.Errorf("page = %d, want 1", tickets.gotPage)
	}
}

func TestSupportList_ValidGotoRedirects(t *testing.T) {
	before := testutil.ToFloat64(metrics.PageJumpsTotal.WithLabelValues("accepted"))

	rec := serveSupport(&mockTickets{totalPages: 10}, "/dashboard/support?page=5&open=right&goto=8")

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard/support?page=8" {
		t.Errorf("Location = %q, want /dashboard/support?page=8", loc)
	}
	if got := testutil.ToFloat64(metrics.PageJumpsTotal.WithLabelValues("accepted")) - before; got != 1 {
		t.Errorf("accepted jumps = %v, want 1", got)
	}
}

func TestSupportList_InvalidGotoKeepsPopoverOpen(t *testing.T) {
	for _, input := range []string{"abc", "0", "11", ""} {
		rec := serveSupport(&mockTickets{totalPages: 10}, "/dashboard/support?page=5&open=right&goto="+input)

		if rec.Code != http.StatusOK {
			t.Errorf("goto=%q: status = %d, want 200", input, rec.Code)
			continue
		}
		body := rec.Body.String()
		if !strings.Contains(body, `name="open" value="right"`) {
			t.Errorf("goto=%q: popover closed", input)
		}
		if !strings.Contains(body, `name="goto" min="1" max="10" value=""`) {
			t.Errorf("goto=%q: input not cleared", input)
		}
		if strings.Contains(body, `role="alert"`) {
			t.Errorf("goto=%q: rejection must be silent", input)
		}
	}
}

func TestSupportList_ExpiredSessionRedirectsToLogin(t *testing.T) {
	tickets := &mockTickets{err: domain.Unauthorized("apiclient.ListTickets", "expired")}

	rec := serveSupport(tickets, "/dashboard/support")

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
	if c := findCookie(rec, session.CookieName); c == nil || c.MaxAge >= 0 {
		t.Error("stale session cookie not cleared")
	}
}

func TestSupportList_APIUnavailable(t *testing.T) {
	tickets := &mockTickets{err: domain.Unavailable(errors.New("502"), "apiclient.ListTickets")}

	rec := serveSupport(tickets, "/dashboard/support")

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestSupportList_HtmxRequestGetsPartial(t *testing.T) {
	h := NewSupportHandler(&mockTickets{totalPages: 4}, newTestLogger(), false)
	req := withSession(httptest.NewRequest(http.MethodGet, "/dashboard/support?page=2", nil), "tok")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("htmx response should not include the layout")
	}
	if !strings.Contains(body, "Deposit pending") {
		t.Error("ticket missing")
	}
	if !strings.Contains(body, `hx-target="#ticket-list"`) {
		t.Error("navigator links should target the ticket list")
	}
	if got := rec.Header().Get("Vary"); got != "HX-Request" {
		t.Errorf("Vary = %q, want HX-Request", got)
	}
}

func TestSupportList_FullPageHasSwapTarget(t *testing.T) {
	rec := serveSupport(&mockTickets{totalPages: 4}, "/dashboard/support?page=2")

	body := rec.Body.String()
	if !strings.Contains(body, `<div id="ticket-list">`) {
		t.Error("ticket list container missing")
	}
	if !strings.Contains(body, `hx-get="/dashboard/support?page=3"`) {
		t.Error("next link should be htmx-enabled")
	}
}
