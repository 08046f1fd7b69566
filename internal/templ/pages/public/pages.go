// Package public renders the pages anyone can see: home, legal documents and
// the maintenance notice.
package public

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/DukeRupert/memberhub/internal/templ/shared"
)

// HomePage renders the landing page.
func HomePage(authenticated bool, csrfToken string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cta := `<a href="/register" class="rounded-md bg-primary-600 px-4 py-2 text-sm font-medium text-white">Join now</a>`
		if authenticated {
			cta = `<a href="/dashboard" class="rounded-md bg-primary-600 px-4 py-2 text-sm font-medium text-white">Go to dashboard</a>`
		}
		_, err := fmt.Fprintf(w, `<section class="py-16 text-center">`+
			`<h1 class="mb-4 text-4xl font-bold">Grow your portfolio with your network</h1>`+
			`<p class="mb-8 text-gray-600">Track investments, referrals and income in one place.</p>%s</section>`, cta)
		return err
	})

	return shared.Layout(shared.Page{Title: "Home", Authenticated: authenticated, CSRFToken: csrfToken}, body)
}

// LegalPage renders a stored legal document. content is trusted HTML from
// the content store.
func LegalPage(title string, content []byte, updated time.Time) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<article class="prose max-w-none"><h1>%s</h1>`, templ.EscapeString(title)); err != nil {
			return err
		}
		if !updated.IsZero() {
			if _, err := fmt.Fprintf(w, `<p class="text-sm text-gray-500">Last updated %s</p>`, updated.UTC().Format("January 2, 2006")); err != nil {
				return err
			}
		}
		if err := templ.Raw(string(content)).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</article>`)
		return err
	})

	return shared.Layout(shared.Page{Title: title}, body)
}

// MaintenancePage renders the maintenance notice. since is zero when the
// start time is unknown.
func MaintenancePage(since time.Time) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		detail := "Please check back shortly."
		if !since.IsZero() {
			detail = fmt.Sprintf("Maintenance started %s UTC. Please check back shortly.", since.UTC().Format("Jan 2, 15:04"))
		}
		_, err := fmt.Fprintf(w, `<section class="py-16 text-center">`+
			`<h1 class="mb-4 text-3xl font-semibold">We&#39;ll be right back</h1>`+
			`<p class="text-gray-600">The site is undergoing scheduled maintenance. %s</p></section>`,
			templ.EscapeString(detail))
		return err
	})

	return shared.Layout(shared.Page{Title: "Maintenance"}, body)
}
