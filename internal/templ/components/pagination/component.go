package pagination

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

const (
	navClass      = "flex items-center justify-center gap-1 py-4"
	linkClass     = "px-3 py-2 text-sm font-medium text-gray-700 hover:bg-gray-100 rounded-md min-w-10 text-center"
	currentClass  = "text-white bg-primary-600 hover:bg-primary-600"
	inertClass    = "text-gray-300 cursor-not-allowed hover:bg-transparent"
	ellipsisClass = "text-gray-400"
	popoverClass  = "absolute z-10 mt-2 flex gap-2 rounded-md border border-gray-200 bg-white p-2 shadow"
)

// Component renders the navigator. It renders nothing when there is at most
// one page.
func Component(nav *Navigator, cfg Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		layout, ok := nav.Layout()
		if !ok {
			return nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<nav class="%s" aria-label="Pagination">`, templ.EscapeString(twmerge.Merge(navClass, cfg.Class)))

		if layout.HasPrevious {
			b.WriteString(link(cfg, pageQuery(layout.PrevPage), "Previous", twmerge.Merge(linkClass)))
		} else {
			b.WriteString(inert("Previous"))
		}

		for _, it := range layout.Items {
			switch it.Kind {
			case ItemPage:
				if it.Current {
					fmt.Fprintf(&b, `<span class="%s" aria-current="page">%d</span>`, twmerge.Merge(linkClass, currentClass), it.Page)
					continue
				}
				b.WriteString(link(cfg, pageQuery(it.Page), strconv.Itoa(it.Page), linkClass))
			case ItemEllipsis:
				b.WriteString(ellipsis(nav, layout, cfg, it.Side))
			}
		}

		if layout.HasNext {
			b.WriteString(link(cfg, pageQuery(layout.NextPage), "Next", linkClass))
		} else {
			b.WriteString(inert("Next"))
		}

		b.WriteString(`</nav>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func ellipsis(nav *Navigator, layout Layout, cfg Config, side Side) string {
	var b strings.Builder
	b.WriteString(`<div class="relative">`)

	// A second click on an open trigger closes it.
	q := pageQuery(layout.CurrentPage)
	if nav.Open() != side {
		q.Set("open", side.String())
	}
	b.WriteString(link(cfg, q, "&hellip;", twmerge.Merge(linkClass, ellipsisClass)))

	if nav.Open() == side {
		fmt.Fprintf(&b, `<form method="get" action="%s" class="%s">`, templ.EscapeString(cfg.BaseURL), popoverClass)
		fmt.Fprintf(&b, `<input type="hidden" name="page" value="%d">`, layout.CurrentPage)
		fmt.Fprintf(&b, `<input type="hidden" name="open" value="%s">`, side)
		fmt.Fprintf(&b, `<input type="number" name="goto" min="1" max="%d" value="%s" class="w-20 rounded border-gray-300 text-sm" aria-label="Go to page">`,
			layout.TotalPages, templ.EscapeString(nav.Input()))
		b.WriteString(`<button type="submit" class="rounded bg-primary-600 px-3 text-sm text-white">Go</button>`)
		b.WriteString(`</form>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}

func link(cfg Config, q url.Values, label, class string) string {
	href := cfg.BaseURL + "?" + q.Encode()
	attrs := fmt.Sprintf(`href="%s" class="%s"`, templ.EscapeString(href), templ.EscapeString(class))
	if cfg.UseHtmx {
		attrs += fmt.Sprintf(` hx-get="%s"`, templ.EscapeString(href))
		if cfg.TargetID != "" {
			attrs += fmt.Sprintf(` hx-target="#%s"`, templ.EscapeString(cfg.TargetID))
		}
		if cfg.PushURL {
			attrs += ` hx-push-url="true"`
		}
	}
	return "<a " + attrs + ">" + label + "</a>"
}

func inert(label string) string {
	return fmt.Sprintf(`<span class="%s" aria-disabled="true">%s</span>`, twmerge.Merge(linkClass, inertClass), label)
}

func pageQuery(page int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	return q
}
