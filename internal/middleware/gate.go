// Package middleware contains HTTP middleware for the member site.
//
// Middleware functions follow the standard Go pattern of wrapping http.Handler.
// They are designed to be composed using Stack.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DukeRupert/memberhub/internal/domain"
	"github.com/DukeRupert/memberhub/internal/metrics"
	"github.com/DukeRupert/memberhub/internal/route"
	"github.com/DukeRupert/memberhub/internal/session"
)

// MaintenanceChecker reports the remote maintenance flag.
type MaintenanceChecker interface {
	MaintenanceStatus(ctx context.Context) (domain.MaintenanceStatus, error)
}

// Action is the outcome of a gate decision.
type Action int

const (
	Allow Action = iota
	RedirectMaintenance
	RedirectDashboard
	RedirectLogin
)

func (a Action) String() string {
	switch a {
	case RedirectMaintenance:
		return "redirect_maintenance"
	case RedirectDashboard:
		return "redirect_dashboard"
	case RedirectLogin:
		return "redirect_login"
	default:
		return "allow"
	}
}

// Decision is what the gate does with one request.
type Decision struct {
	Action   Action
	Location string // redirect target; empty for Allow
}

// Gate is the access-control check evaluated before any page is served.
type Gate struct {
	checker MaintenanceChecker
	timeout time.Duration
	logger  *slog.Logger
}

// NewGate creates a Gate. timeout bounds the maintenance check; zero leaves
// it to the request context.
func NewGate(checker MaintenanceChecker, timeout time.Duration, logger *slog.Logger) *Gate {
	return &Gate{
		checker: checker,
		timeout: timeout,
		logger:  logger,
	}
}

// Infrastructure paths served without consulting the gate. Static assets
// match by prefix; health and metrics match exactly.
var (
	bypassPrefixes = []string{"/static/"}
	bypassPaths    = map[string]bool{"/health": true, "/metrics": true}
)

// Decide evaluates the gate rules in order; the first match wins.
//
//  1. The maintenance page itself is always allowed.
//  2. Maintenance active: everything goes to the maintenance page.
//  3. Auth page with a token: go to the dashboard.
//  4. Protected page without a token: go to login.
//  5. Anything else is allowed.
func (g *Gate) Decide(ctx context.Context, path, token string) Decision {
	kind := route.Classify(path)
	if kind == route.KindMaintenance {
		return Decision{Action: Allow}
	}

	if g.inMaintenance(ctx) {
		return Decision{Action: RedirectMaintenance, Location: route.Maintenance}
	}

	switch {
	case kind == route.KindAuth && token != "":
		return Decision{Action: RedirectDashboard, Location: route.Dashboard}
	case kind == route.KindProtected && token == "":
		return Decision{Action: RedirectLogin, Location: route.Login}
	}
	return Decision{Action: Allow}
}

// inMaintenance makes one status check. Any failure is logged and read as
// "not in maintenance" so a status outage never takes the site down.
func (g *Gate) inMaintenance(ctx context.Context) bool {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	status, err := g.checker.MaintenanceStatus(ctx)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		metrics.MaintenanceCheck("error", elapsed)
		g.logger.Warn("maintenance check failed, continuing as not in maintenance",
			"error", err,
			"duration_ms", int64(elapsed*1000),
		)
		return false
	}

	if status.Active {
		metrics.MaintenanceCheck("active", elapsed)
		return true
	}
	metrics.MaintenanceCheck("ok", elapsed)
	return false
}

// Handler returns middleware that applies the gate to every request. On
// allow, the session token is attached to the request context.
func (g *Gate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if shouldBypass(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token := session.FromRequest(r)
		d := g.Decide(r.Context(), r.URL.Path, token)
		metrics.GateDecision(d.Action.String())

		if d.Action != Allow {
			g.logger.Debug("gate redirect",
				"path", r.URL.Path,
				"decision", d.Action.String(),
				"location", d.Location,
			)
			http.Redirect(w, r, d.Location, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.WithToken(r.Context(), token)))
	})
}

func shouldBypass(path string) bool {
	if bypassPaths[path] {
		return true
	}
	for _, prefix := range bypassPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Stack composes multiple middleware functions into a single middleware.
//
// The first middleware in the list is the outermost (runs first on request,
// last on response):
//
//	stack := Stack(requestLog.Handler, gate.Handler)
//	mux.Handle("GET /dashboard", stack(dashboardHandler))
func Stack(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
