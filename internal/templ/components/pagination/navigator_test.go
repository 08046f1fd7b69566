package pagination

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects page-change events.
type recorder struct {
	pages []int
}

func (r *recorder) onChange(page int) {
	r.pages = append(r.pages, page)
}

func TestNavigator_SubmitRejectsInvalidInput(t *testing.T) {
	for _, input := range []string{"0", "-1", "abc", "11", "", "3.5"} {
		t.Run(input, func(t *testing.T) {
			rec := &recorder{}
			nav := NewNavigator(5, 10, rec.onChange)
			nav.OpenPopover(SideRight)
			nav.SetInput(input)

			assert.False(t, nav.Submit())
			assert.Empty(t, rec.pages, "callback must not fire")
			assert.Empty(t, nav.Input(), "input must be cleared")
			assert.Equal(t, SideRight, nav.Open(), "popover stays open on rejection")
		})
	}
}

func TestNavigator_SubmitAcceptsValidPage(t *testing.T) {
	rec := &recorder{}
	nav := NewNavigator(5, 10, rec.onChange)
	nav.OpenPopover(SideLeft)
	nav.SetInput("7")

	assert.True(t, nav.Submit())
	assert.Equal(t, []int{7}, rec.pages)
	assert.Empty(t, nav.Input())
	assert.Equal(t, SideNone, nav.Open())
}

func TestNavigator_SubmitBounds(t *testing.T) {
	rec := &recorder{}
	nav := NewNavigator(5, 10, rec.onChange)

	nav.SetInput("1")
	assert.True(t, nav.Submit())
	nav.SetInput(" 10 ")
	assert.True(t, nav.Submit())

	assert.Equal(t, []int{1, 10}, rec.pages)
}

func TestNavigator_AtMostOnePopoverOpen(t *testing.T) {
	nav := NewNavigator(5, 10, nil)
	assert.Equal(t, SideNone, nav.Open(), "both closed initially")

	nav.OpenPopover(SideLeft)
	assert.Equal(t, SideLeft, nav.Open())

	nav.OpenPopover(SideRight)
	assert.Equal(t, SideRight, nav.Open())

	nav.ClosePopover()
	assert.Equal(t, SideNone, nav.Open())
}

func TestNavigator_SelectDoesNotChangeCurrent(t *testing.T) {
	rec := &recorder{}
	nav := NewNavigator(5, 10, rec.onChange)

	nav.Select(8)

	assert.Equal(t, []int{8}, rec.pages)
	l, ok := nav.Layout()
	require.True(t, ok)
	assert.Equal(t, 5, l.CurrentPage)
}

func TestNavigator_PreviousNextInertAtEnds(t *testing.T) {
	rec := &recorder{}

	first := NewNavigator(1, 3, rec.onChange)
	first.Previous()
	first.Next()

	last := NewNavigator(3, 3, rec.onChange)
	last.Next()
	last.Previous()

	assert.Equal(t, []int{2, 2}, rec.pages)
}

func TestNavigator_NilCallback(t *testing.T) {
	nav := NewNavigator(2, 4, nil)
	nav.SetInput("3")
	assert.True(t, nav.Submit())
	nav.Select(1)
}

func TestComponent_RendersNothingForSinglePage(t *testing.T) {
	var buf bytes.Buffer
	err := Component(NewNavigator(1, 1, nil), Config{BaseURL: "/list"}).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestComponent_RendersLinksAndOpenPopover(t *testing.T) {
	nav := NewNavigator(5, 10, nil)
	nav.OpenPopover(SideRight)

	var buf bytes.Buffer
	err := Component(nav, Config{BaseURL: "/dashboard/support"}).Render(context.Background(), &buf)
	require.NoError(t, err)
	html := buf.String()

	assert.Contains(t, html, `href="/dashboard/support?page=4"`)
	assert.Contains(t, html, `href="/dashboard/support?page=10"`)
	assert.Contains(t, html, `aria-current="page">5</span>`)
	// Left trigger opens the left popover, right trigger closes the open one.
	assert.Contains(t, html, `href="/dashboard/support?open=left&amp;page=5"`)
	assert.Contains(t, html, `href="/dashboard/support?page=5"`)
	assert.Equal(t, 1, strings.Count(html, `name="goto"`))
	assert.Contains(t, html, `name="open" value="right"`)
}

func TestComponent_InertControlsAtEnds(t *testing.T) {
	var buf bytes.Buffer
	err := Component(NewNavigator(1, 3, nil), Config{BaseURL: "/l"}).Render(context.Background(), &buf)
	require.NoError(t, err)
	html := buf.String()

	assert.Contains(t, html, `aria-disabled="true">Previous</span>`)
	assert.Contains(t, html, `href="/l?page=2"`)
	assert.NotContains(t, html, `name="goto"`)
}

func TestComponent_Htmx(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{BaseURL: "/l", UseHtmx: true, TargetID: "content-area", PushURL: true}
	err := Component(NewNavigator(1, 3, nil), cfg).Render(context.Background(), &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `hx-get="/l?page=2" hx-target="#content-area" hx-push-url="true"`)
}

func TestNavigator_ClampsOutOfRangeCurrent(t *testing.T) {
	rec := &recorder{}
	nav := NewNavigator(42, 10, rec.onChange)

	nav.Previous()
	nav.Next()

	assert.Equal(t, []int{9}, rec.pages)
}
