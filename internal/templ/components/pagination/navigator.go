package pagination

import (
	"strconv"
	"strings"
)

// Navigator wraps a layout with the page-change callback and the transient
// "jump to page" state. The owner keeps the current page; Navigator never
// changes it and must be rebuilt after a page change.
//
// In the server-rendered flow, page links and the ellipsis toggles are hrefs
// (htmx-enhanced when Config.UseHtmx is set), so only OpenPopover, SetInput
// and Submit run per request. The handler's onChange is the page-change
// callback there. Select, Previous, Next and ClosePopover serve owners that
// drive the navigator from events instead of links.
type Navigator struct {
	current  int
	total    int
	onChange func(page int)

	input string
	open  Side
}

// NewNavigator creates a navigator. onChange may be nil. currentPage is
// clamped the same way Build clamps it.
func NewNavigator(currentPage, totalPages int, onChange func(page int)) *Navigator {
	if totalPages >= 1 {
		currentPage = clamp(currentPage, 1, totalPages)
	}
	return &Navigator{
		current:  currentPage,
		total:    totalPages,
		onChange: onChange,
	}
}

// Layout returns the link list, or false when nothing should be rendered.
func (n *Navigator) Layout() (Layout, bool) {
	return Build(n.current, n.total)
}

// Select emits a page change for a clicked page link.
func (n *Navigator) Select(page int) {
	n.emit(page)
}

// Previous emits current-1. Inert on the first page.
func (n *Navigator) Previous() {
	if n.current <= 1 {
		return
	}
	n.emit(n.current - 1)
}

// Next emits current+1. Inert on the last page.
func (n *Navigator) Next() {
	if n.current >= n.total {
		return
	}
	n.emit(n.current + 1)
}

// OpenPopover opens the popover on side and closes the other one.
func (n *Navigator) OpenPopover(side Side) {
	n.open = side
}

// ClosePopover closes whichever popover is open.
func (n *Navigator) ClosePopover() {
	n.open = SideNone
}

// Open returns the side whose popover is open, or SideNone.
func (n *Navigator) Open() Side {
	return n.open
}

// SetInput records the raw text typed into the jump box.
func (n *Navigator) SetInput(text string) {
	n.input = text
}

// Input returns the current jump box text.
func (n *Navigator) Input() string {
	return n.input
}

// Submit handles the "Go" button. Input that is not an integer in
// [1, total] is discarded without feedback and the popover stays as it is.
// A valid page emits a change, clears the input and closes the popover.
func (n *Navigator) Submit() bool {
	page, err := strconv.Atoi(strings.TrimSpace(n.input))
	n.input = ""
	if err != nil || page < 1 || page > n.total {
		return false
	}

	n.emit(page)
	n.open = SideNone
	return true
}

func (n *Navigator) emit(page int) {
	if n.onChange != nil {
		n.onChange(page)
	}
}
