package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/dex/internal/catalog"
	"github.com/gravitrone/dex/internal/ui/components"
)

var gridColumns = []components.GridColumn{
	{Header: "#", Width: 5, Align: lipgloss.Right},
	{Header: "Name", Width: 16, Flex: true},
	{Header: "Types", Width: 18, Style: typeCell},
}

// typeCell tints each space-separated type name in a Types cell.
func typeCell(text string) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		words[i] = TypeText(w)
	}
	return strings.Join(words, " ")
}

// renderGrid draws the cards of the current page. cursor is the highlighted
// row, or -1 when the grid is not focused.
func renderGrid(view catalog.View, cursor int, spin string, active bool, width int) string {
	title := fmt.Sprintf("Page %d of %d", view.Page.Number, view.Page.TotalPages)
	inner := components.ContentWidth(width)

	var body string
	switch {
	case view.Filtering:
		body = spin + " " + MutedStyle.Render("Filtering…")
	case view.FilteredCount == 0 && len(view.Selected) > 0:
		body = MutedStyle.Render("No entries match the selected tags.")
	case view.FilteredCount == 0:
		body = MutedStyle.Render("No entries.")
	case view.Cards == nil:
		body = spin + " " + MutedStyle.Render(fmt.Sprintf("Loading %d entries…", len(view.Page.Slice)))
	case len(view.Cards) == 0:
		body = MutedStyle.Render("No details available for this page.")
	default:
		rows := make([][]string, 0, len(view.Cards))
		for _, card := range view.Cards {
			rows = append(rows, []string{
				fmt.Sprintf("%03d", card.Detail.ID),
				card.Detail.Name,
				strings.Join(card.Detail.Tags, " "),
			})
		}
		if !active {
			cursor = -1
		}
		body = components.Grid(gridColumns, rows, inner, cursor)
		if missing := len(view.Page.Slice) - len(view.Cards); missing > 0 {
			body += "\n\n" + MutedStyle.Render(fmt.Sprintf("%d entries without details hidden", missing))
		}
	}

	if active {
		return components.ActiveTitledBox(title, body, width)
	}
	return components.TitledBox(title, body, width)
}
