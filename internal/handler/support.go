package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DukeRupert/memberhub/internal/csrf"
	"github.com/DukeRupert/memberhub/internal/domain"
	"github.com/DukeRupert/memberhub/internal/metrics"
	"github.com/DukeRupert/memberhub/internal/route"
	"github.com/DukeRupert/memberhub/internal/session"
	"github.com/DukeRupert/memberhub/internal/templ/components/pagination"
	"github.com/DukeRupert/memberhub/internal/templ/pages/dashboard"
)

// TicketLister returns one page of the member's support tickets.
type TicketLister interface {
	ListTickets(ctx context.Context, token string, page int) (domain.TicketPage, error)
}

// SupportHandler serves the paginated support ticket list.
//
// Query parameters:
//   - page: the page to show (default 1)
//   - open: which ellipsis popover is open ("left" or "right")
//   - goto: a page number typed into the open popover
type SupportHandler struct {
	tickets  TicketLister
	logger   *slog.Logger
	isSecure bool
}

// NewSupportHandler creates a SupportHandler.
func NewSupportHandler(tickets TicketLister, logger *slog.Logger, isSecure bool) *SupportHandler {
	return &SupportHandler{
		tickets:  tickets,
		logger:   logger,
		isSecure: isSecure,
	}
}

// RegisterRoutes registers the support routes.
func (h *SupportHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET "+route.Support, h.List)
}

// List renders the ticket page. A valid goto redirects to that page; an
// invalid one re-renders the current page with the popover still open.
func (h *SupportHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	requested := parsePage(q.Get("page"))

	result, err := h.tickets.ListTickets(r.Context(), session.Token(r.Context()), requested)
	if err != nil {
		if domain.ErrorCode(err) == domain.EUNAUTHORIZED {
			session.ClearCookie(w, h.isSecure)
			http.Redirect(w, r, route.Login, http.StatusSeeOther)
			return
		}
		ErrorResponse(w, r, h.logger, err)
		return
	}

	current := result.Page
	if current < 1 {
		current = requested
	}

	target := 0
	nav := pagination.NewNavigator(current, result.TotalPages, func(page int) { target = page })
	nav.OpenPopover(pagination.ParseSide(q.Get("open")))

	// Rejected input is dropped without a message.
	if q.Has("goto") {
		nav.SetInput(q.Get("goto"))
		accepted := nav.Submit()
		metrics.PageJump(accepted)

		if accepted {
			http.Redirect(w, r, supportPageURL(target), http.StatusSeeOther)
			return
		}
	}

	token, err := csrf.Ensure(w, r, h.isSecure)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	data := dashboard.SupportPageData{
		Tickets:   result.Items,
		Navigator: nav,
		Pagination: pagination.Config{
			BaseURL:  route.Support,
			UseHtmx:  true,
			TargetID: dashboard.SupportListID,
			PushURL:  true,
		},
		CSRFToken: token,
	}

	w.Header().Add("Vary", "HX-Request")
	if r.Header.Get("HX-Request") == "true" {
		render(w, r, h.logger, http.StatusOK, dashboard.SupportList(data))
		return
	}
	render(w, r, h.logger, http.StatusOK, dashboard.SupportPage(data))
}

// parsePage reads a 1-based page number, falling back to 1.
func parsePage(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func supportPageURL(page int) string {
	return route.Support + "?" + url.Values{"page": {strconv.Itoa(page)}}.Encode()
}
