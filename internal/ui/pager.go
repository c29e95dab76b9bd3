package ui

import (
	"strconv"
	"strings"

	"github.com/gravitrone/dex/internal/catalog"
)

// renderPager draws the page-number bar. The current page is highlighted
// and cannot be chosen again; arrows dim at the ends of the range.
func renderPager(page catalog.Page) string {
	parts := make([]string, 0, len(page.VisiblePages)+2)

	prev := "‹"
	if page.Number > 1 {
		parts = append(parts, PageArrowStyle.Render(prev))
	} else {
		parts = append(parts, MutedStyle.Render(prev))
	}

	for _, n := range page.VisiblePages {
		label := strconv.Itoa(n)
		if n == page.Number {
			parts = append(parts, PageActiveStyle.Render(label))
			continue
		}
		parts = append(parts, PageInactiveStyle.Render(label))
	}

	next := "›"
	if page.Number < page.TotalPages {
		parts = append(parts, PageArrowStyle.Render(next))
	} else {
		parts = append(parts, MutedStyle.Render(next))
	}
	return strings.Join(parts, " ")
}

// pageForSlot maps a 1-based position in the page bar window to a page
// number.
func pageForSlot(page catalog.Page, slot int) (int, bool) {
	if slot < 1 || slot > len(page.VisiblePages) {
		return 0, false
	}
	return page.VisiblePages[slot-1], true
}
