// Package shared holds the page chrome every view renders inside.
package shared

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/DukeRupert/memberhub/internal/route"
)

// NavItem is one entry in the dashboard sidebar.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// Page carries the per-request chrome data.
type Page struct {
	Title         string
	Authenticated bool
	CSRFToken     string // required when Authenticated, for the logout form
	Flash         *Flash
	Nav           []NavItem
}

// Layout wraps body in the document shell.
func Layout(p Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&b, `<title>%s | MemberHub</title>`, templ.EscapeString(p.Title))
		b.WriteString(`<link rel="stylesheet" href="/static/css/app.css">`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>`)
		b.WriteString(`</head><body class="min-h-screen bg-gray-50 text-gray-900">`)

		b.WriteString(`<header class="flex items-center justify-between border-b border-gray-200 bg-white px-6 py-3">`)
		b.WriteString(`<a href="/" class="text-lg font-semibold">MemberHub</a>`)
		if p.Authenticated {
			b.WriteString(`<form method="post" action="` + route.Logout + `">`)
			fmt.Fprintf(&b, `<input type="hidden" name="csrf_token" value="%s">`, templ.EscapeString(p.CSRFToken))
			b.WriteString(`<button type="submit" class="text-sm text-gray-600 hover:text-gray-900">Sign out</button></form>`)
		} else {
			b.WriteString(`<a href="` + route.Login + `" class="text-sm text-gray-600 hover:text-gray-900">Sign in</a>`)
		}
		b.WriteString(`</header><div class="mx-auto flex max-w-6xl gap-6 px-6 py-8">`)

		if len(p.Nav) > 0 {
			b.WriteString(`<aside class="w-48 shrink-0"><ul class="space-y-1">`)
			for _, item := range p.Nav {
				class := "block rounded-md px-3 py-2 text-sm text-gray-700 hover:bg-gray-100"
				current := ""
				if item.Active {
					class = "block rounded-md bg-gray-200 px-3 py-2 text-sm font-medium text-gray-900"
					current = ` aria-current="page"`
				}
				fmt.Fprintf(&b, `<li><a href="%s" class="%s"%s>%s</a></li>`,
					templ.EscapeString(item.Href), class, current, templ.EscapeString(item.Label))
			}
			b.WriteString(`</ul></aside>`)
		}

		b.WriteString(`<main id="content-area" class="min-w-0 flex-1">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := FlashMessage(p.Flash).Render(ctx, w); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></div></body></html>`)
		return err
	})
}
