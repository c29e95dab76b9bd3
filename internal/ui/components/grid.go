package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GridColumn is one column of a Grid.
//
// Width is the content width without separators. A Flex column absorbs
// whatever width the fixed columns leave over; with no Flex column the last
// one does. Style, when set, colors a cell's clamped text on rows that are
// not under the cursor.
type GridColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
	Flex   bool
	Style  func(text string) string
}

const (
	gridSep    = "│"
	gridRule   = "─"
	gridCross  = "┼"
	gridMarker = "› "
	gridGutter = 2
)

var (
	gridLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#273540"))

	gridMarkerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0392b")).
			Bold(true)

	gridCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da")).
			Background(lipgloss.Color("#2a1d22")).
			Bold(true)
)

// Grid renders a header, a rule and one line per row, each exactly width
// wide. The row at cursor gets a "›" marker in the gutter and a highlight;
// pass -1 for no cursor.
func Grid(columns []GridColumn, rows [][]string, width, cursor int) string {
	if width <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return strings.Repeat(" ", width)
	}

	cols := layoutColumns(columns, width-gridGutter)
	lines := make([]string, 0, len(rows)+2)

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = boxLabelStyle.Bold(true).Render(alignCell(SanitizeOneLine(c.Header), c.Width, c.Align))
	}
	lines = append(lines, fitLine(strings.Repeat(" ", gridGutter)+joinCells(header, gridLineStyle), width))

	rule := make([]string, len(cols))
	for i, c := range cols {
		rule[i] = strings.Repeat(gridRule, c.Width)
	}
	lines = append(lines, fitLine(strings.Repeat(" ", gridGutter)+gridLineStyle.Render(strings.Join(rule, gridCross)), width))

	for r, row := range rows {
		lines = append(lines, fitLine(gridRow(cols, row, r == cursor), width))
	}
	return strings.Join(lines, "\n")
}

func gridRow(cols []GridColumn, row []string, current bool) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		text := ""
		if i < len(row) {
			text = row[i]
		}
		clamped := ClampTextWidth(text, c.Width)
		switch {
		case current:
			cells[i] = gridCursorStyle.Render(alignCell(clamped, c.Width, c.Align))
		case c.Style != nil:
			cells[i] = alignStyled(c.Style(clamped), lipgloss.Width(clamped), c.Width, c.Align)
		default:
			cells[i] = alignCell(clamped, c.Width, c.Align)
		}
	}
	if current {
		sep := gridCursorStyle.Foreground(lipgloss.Color("#273540"))
		return gridMarkerStyle.Render(gridMarker) + joinCells(cells, sep)
	}
	return strings.Repeat(" ", gridGutter) + joinCells(cells, gridLineStyle)
}

func joinCells(cells []string, sep lipgloss.Style) string {
	return strings.Join(cells, sep.Render(gridSep))
}

// layoutColumns sizes the columns so that cells plus separators fill width.
func layoutColumns(columns []GridColumn, width int) []GridColumn {
	cols := make([]GridColumn, len(columns))
	copy(cols, columns)

	flex := len(cols) - 1
	used := len(cols) - 1
	for i := range cols {
		if cols[i].Width < 1 {
			cols[i].Width = 1
		}
		if cols[i].Flex {
			flex = i
		}
		used += cols[i].Width
	}
	cols[flex].Width += width - used
	if cols[flex].Width < 1 {
		cols[flex].Width = 1
	}
	return cols
}

// alignCell pads text, already clamped to width, to exactly width columns.
func alignCell(text string, width int, align lipgloss.Position) string {
	return alignStyled(text, lipgloss.Width(text), width, align)
}

func alignStyled(text string, textWidth, width int, align lipgloss.Position) string {
	pad := width - textWidth
	if pad <= 0 {
		return text
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + text
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
	default:
		return text + strings.Repeat(" ", pad)
	}
}

// fitLine pads or cuts a rendered line to exactly width columns.
func fitLine(line string, width int) string {
	if lipgloss.Width(line) > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return padRight(line, width)
}
