package auth

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/DukeRupert/memberhub/internal/csrf"
	"github.com/DukeRupert/memberhub/internal/templ/shared"
)

const (
	cardClass   = "mx-auto w-full max-w-md rounded-lg bg-white p-8 shadow"
	inputClass  = "mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm"
	buttonClass = "w-full rounded-md bg-primary-600 px-4 py-2 text-sm font-medium text-white hover:bg-primary-700"
)

// LoginPage renders the sign-in form.
func LoginPage(data LoginPageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<div class="%s"><h1 class="mb-6 text-2xl font-semibold">Sign in</h1>`, cardClass)
		b.WriteString(`<form method="post" action="/login" class="space-y-4">`)
		fmt.Fprintf(&b, `<input type="hidden" name="%s" value="%s">`, csrf.FormFieldName, templ.EscapeString(data.CSRFToken))
		fmt.Fprintf(&b, `<label class="block text-sm font-medium">Email<input type="email" name="email" value="%s" required autocomplete="email" class="%s"></label>`,
			templ.EscapeString(data.Email), inputClass)
		fmt.Fprintf(&b, `<label class="block text-sm font-medium">Password<input type="password" name="password" required autocomplete="current-password" class="%s"></label>`, inputClass)
		fmt.Fprintf(&b, `<button type="submit" class="%s">Sign in</button></form>`, buttonClass)
		b.WriteString(`<p class="mt-4 text-center text-sm text-gray-600"><a href="/reset-password" class="hover:underline">Forgot your password?</a>`)
		b.WriteString(` &middot; <a href="/register" class="hover:underline">Create an account</a></p></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})

	return shared.Layout(shared.Page{Title: "Sign in", Flash: data.Flash}, body)
}

// FlowPage renders a simple account-flow page.
func FlowPage(data FlowPageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<div class="%s"><h1 class="mb-4 text-2xl font-semibold">%s</h1>`, cardClass, templ.EscapeString(data.Heading))
		fmt.Fprintf(&b, `<p class="text-sm text-gray-700">%s</p>`, templ.EscapeString(data.Body))
		if data.LinkHref != "" {
			fmt.Fprintf(&b, `<a href="%s" class="mt-6 block text-center %s">%s</a>`,
				templ.EscapeString(data.LinkHref), buttonClass, templ.EscapeString(data.LinkLabel))
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})

	return shared.Layout(shared.Page{Title: data.Title}, body)
}
