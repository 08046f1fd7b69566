package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DukeRupert/memberhub/internal/csrf"
	"github.com/DukeRupert/memberhub/internal/domain"
	"github.com/DukeRupert/memberhub/internal/middleware"
	"github.com/DukeRupert/memberhub/internal/route"
	"github.com/DukeRupert/memberhub/internal/session"
	"github.com/DukeRupert/memberhub/internal/storage"
	"github.com/DukeRupert/memberhub/internal/templ/pages/dashboard"
	"github.com/DukeRupert/memberhub/internal/templ/pages/public"
)

// maxLegalBytes bounds a legal document read from the content store.
const maxLegalBytes = 512 << 10

// legalSlugs are the documents served from the content store.
var legalSlugs = []string{"privacy", "terms", "user-agreement"}

// sectionDescriptions are shown under each dashboard section heading.
var sectionDescriptions = map[string]string{
	route.Dashboard:    "An overview of your balances, rank and recent activity.",
	route.Team:         "Your referral tree and the members you have invited.",
	route.Investment:   "Your active investment plans and their performance.",
	route.Income:       "Referral commissions and investment returns.",
	route.Assets:       "Wallet balances and withdrawal history.",
	route.Profile:      "Your personal details and security settings.",
	route.Subscription: "Your membership tier and renewal date.",
}

// PageHandler serves the public pages and the dashboard section shells.
type PageHandler struct {
	content  storage.Storage
	status   middleware.MaintenanceChecker
	timeout  time.Duration
	logger   *slog.Logger
	isSecure bool
}

// NewPageHandler creates a PageHandler. status is used only to show when
// maintenance started; timeout bounds that lookup.
func NewPageHandler(
	content storage.Storage,
	status middleware.MaintenanceChecker,
	timeout time.Duration,
	logger *slog.Logger,
	isSecure bool,
) *PageHandler {
	return &PageHandler{
		content:  content,
		status:   status,
		timeout:  timeout,
		logger:   logger,
		isSecure: isSecure,
	}
}

// RegisterRoutes registers the public and dashboard section routes.
func (h *PageHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET "+route.Maintenance, h.Maintenance)

	for _, slug := range legalSlugs {
		mux.HandleFunc("GET /"+slug, h.Legal)
	}
	for path := range sectionDescriptions {
		mux.HandleFunc("GET "+path, h.Section)
	}
}

// Home renders the landing page.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	authenticated := session.Authenticated(r.Context())

	var token string
	if authenticated {
		var err error
		if token, err = csrf.Ensure(w, r, h.isSecure); err != nil {
			InternalErrorResponse(w, r, h.logger, err)
			return
		}
	}
	render(w, r, h.logger, http.StatusOK, public.HomePage(authenticated, token))
}

// Legal renders a legal document from the content store.
func (h *PageHandler) Legal(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/")

	body, info, err := storage.ReadAll(r.Context(), h.content, storage.LegalKey(slug), maxLegalBytes)
	if err != nil {
		if storage.IsNotFound(err) {
			h.logger.Warn("legal document missing", "slug", slug)
			ErrorResponse(w, r, h.logger, domain.NotFound("PageHandler.Legal", "Document"))
			return
		}
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	render(w, r, h.logger, http.StatusOK, public.LegalPage(titleFromSlug(slug), body, info.LastModified))
}

// Maintenance renders the maintenance notice. It always renders, even when
// the status lookup fails.
func (h *PageHandler) Maintenance(w http.ResponseWriter, r *http.Request) {
	var since time.Time
	if h.status != nil {
		ctx := r.Context()
		if h.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.timeout)
			defer cancel()
		}
		if status, err := h.status.MaintenanceStatus(ctx); err == nil && status.Active {
			since = status.CreatedAt
		}
	}

	w.Header().Set("Retry-After", "300")
	render(w, r, h.logger, http.StatusServiceUnavailable, public.MaintenancePage(since))
}

// Section renders a dashboard section shell.
func (h *PageHandler) Section(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	description, ok := sectionDescriptions[path]
	if !ok {
		NotFoundResponse(w, r, h.logger)
		return
	}

	token, err := csrf.Ensure(w, r, h.isSecure)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	title := "Overview"
	if path != route.Dashboard {
		title = titleFromSlug(route.Name(path))
	}

	render(w, r, h.logger, http.StatusOK, dashboard.SectionPage(dashboard.SectionPageData{
		Path:        path,
		Title:       title,
		Description: description,
		CSRFToken:   token,
	}))
}
