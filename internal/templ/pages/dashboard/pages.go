package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"

	"github.com/DukeRupert/memberhub/internal/domain"
	"github.com/DukeRupert/memberhub/internal/route"
	"github.com/DukeRupert/memberhub/internal/templ/components/pagination"
	"github.com/DukeRupert/memberhub/internal/templ/shared"
)

// Sections lists the dashboard sidebar in display order.
var Sections = []shared.NavItem{
	{Label: "Overview", Href: route.Dashboard},
	{Label: "Team", Href: route.Team},
	{Label: "Investment", Href: route.Investment},
	{Label: "Income", Href: route.Income},
	{Label: "Assets", Href: route.Assets},
	{Label: "Profile", Href: route.Profile},
	{Label: "Support", Href: route.Support},
	{Label: "Subscription", Href: route.Subscription},
}

// Nav returns the sidebar with the entry for path marked active.
func Nav(path string) []shared.NavItem {
	items := make([]shared.NavItem, len(Sections))
	for i, s := range Sections {
		s.Active = s.Href == path
		items[i] = s
	}
	return items
}

// SectionPage renders a dashboard section shell. Figures are loaded into it
// client-side from the member API.
func SectionPage(data SectionPageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1 class="mb-2 text-2xl font-semibold">%s</h1><p class="text-gray-600">%s</p>`,
			templ.EscapeString(data.Title), templ.EscapeString(data.Description))
		return err
	})

	return shared.Layout(shared.Page{
		Title:         data.Title,
		Authenticated: true,
		CSRFToken:     data.CSRFToken,
		Nav:           Nav(data.Path),
	}, body)
}

var statusBadge = map[domain.TicketStatus]string{
	domain.TicketStatusOpen:     "bg-yellow-100 text-yellow-800",
	domain.TicketStatusAnswered: "bg-green-100 text-green-800",
	domain.TicketStatusClosed:   "bg-gray-100 text-gray-600",
}

// SupportListID is the element htmx swaps when the page navigator changes
// pages.
const SupportListID = "ticket-list"

// SupportList renders the ticket table and navigator without the layout. It
// answers htmx page changes and is embedded in SupportPage.
func SupportList(data SupportPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		if len(data.Tickets) == 0 {
			b.WriteString(`<p class="text-gray-600">You have no support tickets.</p>`)
		} else {
			b.WriteString(`<table class="w-full text-left text-sm"><thead><tr class="border-b border-gray-200 text-gray-500">`)
			b.WriteString(`<th class="py-2">Subject</th><th class="py-2">Status</th><th class="py-2">Opened</th></tr></thead><tbody>`)
			for _, t := range data.Tickets {
				badge := twmerge.Merge("rounded-full px-2 py-0.5 text-xs font-medium", statusBadge[t.Status])
				fmt.Fprintf(&b, `<tr class="border-b border-gray-100" data-ticket="%s"><td class="py-2">%s</td><td class="py-2"><span class="%s">%s</span></td><td class="py-2">%s</td></tr>`,
					templ.EscapeString(t.ID), templ.EscapeString(t.Subject), badge,
					templ.EscapeString(t.Status.Label()), t.CreatedAt.UTC().Format("Jan 2, 2006"))
			}
			b.WriteString(`</tbody></table>`)
		}

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if data.Navigator == nil {
			return nil
		}
		return pagination.Component(data.Navigator, data.Pagination).Render(ctx, w)
	})
}

// SupportPage renders the ticket list followed by the page navigator.
func SupportPage(data SupportPageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1 class="mb-4 text-2xl font-semibold">Support tickets</h1><div id="`+SupportListID+`">`); err != nil {
			return err
		}
		if err := SupportList(data).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})

	return shared.Layout(shared.Page{
		Title:         "Support",
		Authenticated: true,
		CSRFToken:     data.CSRFToken,
		Nav:           Nav(route.Support),
	}, body)
}
