package auth

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/memberhub/internal/templ/shared"
)

func TestLoginPage(t *testing.T) {
	data := LoginPageData{
		Email:     `a"b@example.com`,
		CSRFToken: "csrf-123",
		Flash:     &shared.Flash{Type: shared.FlashError, Message: "Invalid email or password."},
	}

	var buf bytes.Buffer
	require.NoError(t, LoginPage(data).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `name="csrf_token" value="csrf-123"`)
	assert.Contains(t, html, `value="a&#34;b@example.com"`)
	assert.Contains(t, html, "Invalid email or password.")
	assert.Contains(t, html, `action="/login"`)
}

func TestFlowPage(t *testing.T) {
	data := FlowPageData{
		Title:     "Verify",
		Heading:   "Check your inbox",
		Body:      "We sent you a code.",
		LinkLabel: "Back to sign in",
		LinkHref:  "/login",
	}

	var buf bytes.Buffer
	require.NoError(t, FlowPage(data).Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), "Check your inbox")
	assert.Contains(t, buf.String(), `href="/login"`)
}
