package auth

import "github.com/DukeRupert/memberhub/internal/templ/shared"

// LoginPageData contains data for the login page
type LoginPageData struct {
	Email     string // Repopulated after a failed attempt; the password never is
	Flash     *shared.Flash
	CSRFToken string
}

// FlowPageData describes one of the account-flow pages whose forms are
// served by the member app against the remote API.
type FlowPageData struct {
	Title   string
	Heading string
	Body    string
	// Optional call to action
	LinkLabel string
	LinkHref  string
}
