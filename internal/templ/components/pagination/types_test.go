package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_NothingForSinglePage(t *testing.T) {
	for _, total := range []int{-1, 0, 1} {
		_, ok := Build(1, total)
		assert.False(t, ok, "total=%d", total)
	}
}

func TestBuild_SmallTotalsShowEveryPage(t *testing.T) {
	for total := 2; total <= 5; total++ {
		for current := 1; current <= total; current++ {
			l, ok := Build(current, total)
			require.True(t, ok)

			want := make([]int, total)
			for i := range want {
				want[i] = i + 1
			}
			assert.Equal(t, want, l.Pages(), "current=%d total=%d", current, total)
			assert.False(t, l.HasEllipsis(SideLeft))
			assert.False(t, l.HasEllipsis(SideRight))
		}
	}
}

func TestBuild_NearStart(t *testing.T) {
	for _, total := range []int{6, 10, 50} {
		for current := 1; current <= 3; current++ {
			l, ok := Build(current, total)
			require.True(t, ok)

			assert.Equal(t, []int{1, 2, 3, 4, total}, l.Pages(), "current=%d total=%d", current, total)
			assert.False(t, l.HasEllipsis(SideLeft))
			assert.True(t, l.HasEllipsis(SideRight))
		}
	}
}

func TestBuild_NearEnd(t *testing.T) {
	for _, total := range []int{6, 10, 50} {
		for current := total - 2; current <= total; current++ {
			l, ok := Build(current, total)
			require.True(t, ok)

			assert.Equal(t, []int{1, total - 3, total - 2, total - 1, total}, l.Pages(), "current=%d total=%d", current, total)
			assert.True(t, l.HasEllipsis(SideLeft))
			assert.False(t, l.HasEllipsis(SideRight))
		}
	}
}

func TestBuild_Middle(t *testing.T) {
	for _, total := range []int{7, 10, 50} {
		for current := 4; current < total-2; current++ {
			l, ok := Build(current, total)
			require.True(t, ok)

			assert.Equal(t, []int{1, current - 1, current, current + 1, total}, l.Pages(), "current=%d total=%d", current, total)
			assert.True(t, l.HasEllipsis(SideLeft))
			assert.True(t, l.HasEllipsis(SideRight))
		}
	}
}

func TestBuild_ItemOrder(t *testing.T) {
	l, ok := Build(5, 10)
	require.True(t, ok)

	want := []Item{
		{Kind: ItemPage, Page: 1},
		{Kind: ItemEllipsis, Side: SideLeft},
		{Kind: ItemPage, Page: 4},
		{Kind: ItemPage, Page: 5, Current: true},
		{Kind: ItemPage, Page: 6},
		{Kind: ItemEllipsis, Side: SideRight},
		{Kind: ItemPage, Page: 10},
	}
	assert.Equal(t, want, l.Items)
}

func TestBuild_PreviousNextControls(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		total       int
		hasPrevious bool
		hasNext     bool
	}{
		{name: "first page", current: 1, total: 10, hasPrevious: false, hasNext: true},
		{name: "middle page", current: 5, total: 10, hasPrevious: true, hasNext: true},
		{name: "last page", current: 10, total: 10, hasPrevious: true, hasNext: false},
		{name: "two pages on last", current: 2, total: 2, hasPrevious: true, hasNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := Build(tt.current, tt.total)
			require.True(t, ok)
			assert.Equal(t, tt.hasPrevious, l.HasPrevious)
			assert.Equal(t, tt.hasNext, l.HasNext)
		})
	}
}

func TestBuild_ClampsCurrentPage(t *testing.T) {
	l, ok := Build(99, 10)
	require.True(t, ok)
	assert.Equal(t, 10, l.CurrentPage)
	assert.False(t, l.HasNext)

	l, ok = Build(0, 10)
	require.True(t, ok)
	assert.Equal(t, 1, l.CurrentPage)
	assert.False(t, l.HasPrevious)
}

func TestParseSide(t *testing.T) {
	assert.Equal(t, SideLeft, ParseSide("left"))
	assert.Equal(t, SideRight, ParseSide("right"))
	assert.Equal(t, SideNone, ParseSide(""))
	assert.Equal(t, SideNone, ParseSide("up"))
}
