// Package pagination provides the shared page navigator for list pages.
package pagination

// Side identifies one of the two ellipsis popovers.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return ""
	}
}

// ParseSide maps a query value ("left" or "right") to a Side.
func ParseSide(v string) Side {
	switch v {
	case "left":
		return SideLeft
	case "right":
		return SideRight
	default:
		return SideNone
	}
}

// ItemKind distinguishes page links from ellipsis triggers.
type ItemKind int

const (
	ItemPage ItemKind = iota
	ItemEllipsis
)

// Item is one entry between the previous and next controls.
type Item struct {
	Kind    ItemKind
	Page    int  // set for ItemPage
	Side    Side // set for ItemEllipsis
	Current bool
}

// Layout is the computed link list for a (current, total) pair.
type Layout struct {
	CurrentPage int
	TotalPages  int
	Items       []Item
	HasPrevious bool
	HasNext     bool
	PrevPage    int
	NextPage    int
}

// Pages returns the page numbers present in the layout, in display order.
func (l Layout) Pages() []int {
	var pages []int
	for _, it := range l.Items {
		if it.Kind == ItemPage {
			pages = append(pages, it.Page)
		}
	}
	return pages
}

// HasEllipsis reports whether the ellipsis on the given side is shown.
func (l Layout) HasEllipsis(side Side) bool {
	for _, it := range l.Items {
		if it.Kind == ItemEllipsis && it.Side == side {
			return true
		}
	}
	return false
}

// Config allows customization of pagination rendering.
type Config struct {
	BaseURL  string // e.g., "/dashboard/support"
	TargetID string // htmx target, e.g., "content-area"
	UseHtmx  bool   // Enable htmx partial loading
	PushURL  bool   // Update browser URL with hx-push-url
	Class    string // extra classes merged onto the <nav>
}

// windowThreshold is the largest page count shown without ellipses.
const windowThreshold = 5

// Build computes the navigator layout. It returns false when there is nothing
// to render (totalPages <= 1). currentPage is clamped into [1, totalPages].
func Build(currentPage, totalPages int) (Layout, bool) {
	if totalPages <= 1 {
		return Layout{}, false
	}

	current := clamp(currentPage, 1, totalPages)
	l := Layout{
		CurrentPage: current,
		TotalPages:  totalPages,
		HasPrevious: current > 1,
		HasNext:     current < totalPages,
		PrevPage:    current - 1,
		NextPage:    current + 1,
	}

	l.Items = append(l.Items, pageItem(1, current))

	if totalPages > windowThreshold && current > 3 {
		l.Items = append(l.Items, Item{Kind: ItemEllipsis, Side: SideLeft})
	}

	lo, hi := window(current, totalPages)
	for p := lo; p <= hi; p++ {
		l.Items = append(l.Items, pageItem(p, current))
	}

	if totalPages > windowThreshold && current < totalPages-2 {
		l.Items = append(l.Items, Item{Kind: ItemEllipsis, Side: SideRight})
	}

	l.Items = append(l.Items, pageItem(totalPages, current))

	return l, true
}

// window returns the inclusive bounds of the middle pages, strictly between
// the first and last page.
func window(current, total int) (int, int) {
	switch {
	case total <= windowThreshold:
		return 2, total - 1
	case current <= 3:
		return 2, 4
	case current >= total-2:
		return total - 3, total - 1
	default:
		return current - 1, current + 1
	}
}

func pageItem(page, current int) Item {
	return Item{Kind: ItemPage, Page: page, Current: page == current}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
