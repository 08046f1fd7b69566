// Package apiclient is the thin HTTP client for the platform's remote REST
// API. Every balance, rank, ticket and maintenance flag lives behind this API;
// the client only shapes requests and decodes the response envelope.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/DukeRupert/memberhub/internal/domain"
	"github.com/DukeRupert/memberhub/internal/metrics"
)

// maxBodyBytes bounds how much of a response body is decoded.
const maxBodyBytes = 1 << 20

// Config holds client configuration.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.example.com/v1".
	BaseURL string

	// MaintenanceURL is the absolute maintenance status URL. Defaults to
	// BaseURL + "/maintenance/status".
	MaintenanceURL string

	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration

	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client

	Logger *slog.Logger
}

// Client calls the remote API.
type Client struct {
	baseURL        string
	maintenanceURL string
	http           *http.Client
	logger         *slog.Logger
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", cfg.BaseURL, err)
	}

	maintenanceURL := cfg.MaintenanceURL
	if maintenanceURL == "" {
		maintenanceURL = base + "/maintenance/status"
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:        base,
		maintenanceURL: maintenanceURL,
		http:           hc,
		logger:         logger,
	}, nil
}

// envelope is the API's common response wrapper.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// APIError is returned when the API answers with a non-200 envelope or a
// non-2xx HTTP status.
type APIError struct {
	Endpoint   string
	HTTPStatus int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %s: code %d: %s", e.Endpoint, e.Code, e.Message)
	}
	return fmt.Sprintf("api %s: code %d (http %d)", e.Endpoint, e.Code, e.HTTPStatus)
}

// IsUnauthorized reports whether err is an API rejection of the credentials
// or session token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.HTTPStatus == http.StatusUnauthorized || apiErr.Code == http.StatusUnauthorized
}

// MaintenanceStatus fetches the site-wide maintenance flag. It makes exactly
// one attempt; callers decide how to treat failure.
func (c *Client) MaintenanceStatus(ctx context.Context) (domain.MaintenanceStatus, error) {
	var status domain.MaintenanceStatus
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.maintenanceURL, nil)
	if err != nil {
		return status, fmt.Errorf("build maintenance request: %w", err)
	}
	err = c.do(req, "maintenance", &status)
	return status, err
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResult struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	const op = "apiclient.Login"

	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result loginResult
	if err := c.do(req, "login", &result); err != nil {
		if IsUnauthorized(err) {
			return "", domain.Wrap(err, domain.EUNAUTHORIZED, op, "Invalid email or password.")
		}
		return "", domain.Unavailable(err, op)
	}
	if result.Token == "" {
		return "", domain.Unavailable(errors.New("empty token in login response"), op)
	}
	return result.Token, nil
}

// ListTickets returns one page of the member's support tickets.
func (c *Client) ListTickets(ctx context.Context, token string, page int) (domain.TicketPage, error) {
	const op = "apiclient.ListTickets"

	var result domain.TicketPage
	if page < 1 {
		page = 1
	}

	u := c.baseURL + "/support/tickets?" + url.Values{"page": {strconv.Itoa(page)}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return result, fmt.Errorf("build tickets request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	if err := c.do(req, "tickets", &result); err != nil {
		if IsUnauthorized(err) {
			return result, domain.Wrap(err, domain.EUNAUTHORIZED, op, "Your session has expired. Please sign in again.")
		}
		return result, domain.Unavailable(err, op)
	}
	return result, nil
}

// do sends req, unwraps the envelope and decodes its result into out.
func (c *Client) do(req *http.Request, endpoint string, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.APIRequest(endpoint, "transport_error")
		return fmt.Errorf("api %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.APIRequest(endpoint, "http_"+strconv.Itoa(resp.StatusCode))
		return &APIError{Endpoint: endpoint, HTTPStatus: resp.StatusCode, Code: env.Code, Message: env.Message}
	}
	if decodeErr != nil {
		metrics.APIRequest(endpoint, "malformed")
		return fmt.Errorf("api %s: decode envelope: %w", endpoint, decodeErr)
	}
	if env.Code != http.StatusOK {
		metrics.APIRequest(endpoint, "api_error")
		return &APIError{Endpoint: endpoint, HTTPStatus: resp.StatusCode, Code: env.Code, Message: env.Message}
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		metrics.APIRequest(endpoint, "malformed")
		return fmt.Errorf("api %s: empty result", endpoint)
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		metrics.APIRequest(endpoint, "malformed")
		return fmt.Errorf("api %s: decode result: %w", endpoint, err)
	}

	metrics.APIRequest(endpoint, "ok")
	c.logger.Debug("api call", "endpoint", endpoint, "status", resp.StatusCode)
	return nil
}
