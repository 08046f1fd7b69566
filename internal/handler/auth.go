package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DukeRupert/memberhub/internal/csrf"
	"github.com/DukeRupert/memberhub/internal/domain"
	"github.com/DukeRupert/memberhub/internal/middleware"
	"github.com/DukeRupert/memberhub/internal/route"
	"github.com/DukeRupert/memberhub/internal/session"
	authpages "github.com/DukeRupert/memberhub/internal/templ/pages/auth"
	"github.com/DukeRupert/memberhub/internal/templ/shared"
)

// Authenticator exchanges credentials for a session token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles sign-in, sign-out and the account-flow pages.
//
// Routes handled:
//   - GET  /login  -> ShowLogin
//   - POST /login  -> Login
//   - POST /logout -> Logout
//   - GET  /register, /verify, /reset-password, /update-password, /link-account
type AuthHandler struct {
	auth          Authenticator
	limiter       *middleware.RateLimiter
	logger        *slog.Logger
	isSecure      bool
	sessionMaxAge int
}

// NewAuthHandler creates an AuthHandler. limiter may be nil; when set, a
// successful login clears the client's failed attempts.
func NewAuthHandler(
	auth Authenticator,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
	isSecure bool,
	sessionMaxAge int,
) *AuthHandler {
	return &AuthHandler{
		auth:          auth,
		limiter:       limiter,
		logger:        logger,
		isSecure:      isSecure,
		sessionMaxAge: sessionMaxAge,
	}
}

// RegisterRoutes registers the auth routes. POST /login is wrapped with
// loginLimit so repeated failures from one client are throttled.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux, loginLimit func(http.Handler) http.Handler) {
	mux.HandleFunc("GET "+route.Login, h.ShowLogin)
	mux.Handle("POST "+route.Login, loginLimit(http.HandlerFunc(h.Login)))
	mux.HandleFunc("POST "+route.Logout, h.Logout)

	for path := range flowPages {
		mux.HandleFunc("GET "+path, h.ShowFlow)
	}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	var flash *shared.Flash
	if r.URL.Query().Get("logout") == "1" {
		flash = &shared.Flash{Type: shared.FlashSuccess, Message: "You have been signed out."}
	}
	h.renderLogin(w, r, http.StatusOK, "", flash)
}

// Login validates the form, exchanges the credentials for a token and stores
// it in the session cookie. Failures re-render the form with a flash; the
// password is never echoed back.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, "", errorFlash("Invalid form submission. Please try again."))
		return
	}

	email := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
	password := r.FormValue("password")

	if !csrf.Valid(r) {
		h.logger.Warn("login rejected: invalid csrf token", "ip", middleware.GetClientIP(r))
		h.renderLogin(w, r, http.StatusForbidden, email, errorFlash("Your session expired. Please try again."))
		return
	}

	if email == "" || password == "" {
		h.renderLogin(w, r, http.StatusUnprocessableEntity, email, errorFlash("Email and password are required."))
		return
	}

	token, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		switch domain.ErrorCode(err) {
		case domain.EUNAUTHORIZED:
			h.renderLogin(w, r, http.StatusUnauthorized, email, errorFlash("Invalid email or password."))
		default:
			h.logger.Error("login failed", "error", err)
			h.renderLogin(w, r, http.StatusServiceUnavailable, email, errorFlash("Sign-in is unavailable right now. Please try again later."))
		}
		return
	}

	session.SetCookie(w, token, h.sessionMaxAge, h.isSecure)
	if _, err := csrf.Rotate(w, h.isSecure); err != nil {
		h.logger.Warn("failed to rotate csrf token", "error", err)
	}
	if h.limiter != nil {
		h.limiter.Reset(middleware.GetClientIP(r))
	}

	h.logger.Info("member signed in")
	http.Redirect(w, r, route.Dashboard, http.StatusSeeOther)
}

// Logout clears the session cookie. The token is not revoked remotely; it
// expires on its own.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if !csrf.Valid(r) {
		http.Error(w, "Invalid security token. Please reload the page and try again.", http.StatusForbidden)
		return
	}

	session.ClearCookie(w, h.isSecure)
	h.logger.Debug("member signed out")
	http.Redirect(w, r, route.Login+"?logout=1", http.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, status int, email string, flash *shared.Flash) {
	token, err := csrf.Ensure(w, r, h.isSecure)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	data := authpages.LoginPageData{
		Email:     email,
		Flash:     flash,
		CSRFToken: token,
	}
	render(w, r, h.logger, status, authpages.LoginPage(data))
}

// flowPages are the account steps whose forms run in the member app.
var flowPages = map[string]authpages.FlowPageData{
	route.Register: {
		Title:     "Create account",
		Heading:   "Create your account",
		Body:      "Registration requires a referral link from an existing member. Open your invitation link to continue.",
		LinkLabel: "Already a member? Sign in",
		LinkHref:  route.Login,
	},
	route.Verify: {
		Title:     "Verify email",
		Heading:   "Check your inbox",
		Body:      "We sent a verification code to your email address. Enter it in the app to activate your account.",
		LinkLabel: "Back to sign in",
		LinkHref:  route.Login,
	},
	route.ResetPassword: {
		Title:   "Reset password",
		Heading: "Reset your password",
		Body:    "Request a reset code from the member app. The code is valid for a limited time.",
	},
	route.UpdatePassword: {
		Title:     "Update password",
		Heading:   "Choose a new password",
		Body:      "Enter your reset code and a new password in the member app, then sign in again.",
		LinkLabel: "Back to sign in",
		LinkHref:  route.Login,
	},
	route.LinkAccount: {
		Title:     "Link account",
		Heading:   "Link your investment account",
		Body:      "Connect your brokerage account from the member app to start tracking your portfolio.",
		LinkLabel: "Go to dashboard",
		LinkHref:  route.Dashboard,
	},
}

// ShowFlow renders the account-flow page for the request path.
func (h *AuthHandler) ShowFlow(w http.ResponseWriter, r *http.Request) {
	data, ok := flowPages[r.URL.Path]
	if !ok {
		NotFoundResponse(w, r, h.logger)
		return
	}
	render(w, r, h.logger, http.StatusOK, authpages.FlowPage(data))
}

func errorFlash(msg string) *shared.Flash {
	return &shared.Flash{Type: shared.FlashError, Message: msg}
}
