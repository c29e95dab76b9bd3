package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(1, 2)

	boxBorderActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#c0392b")).
			Padding(1, 2)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e3b341")).
			Bold(true)

	boxValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))

	boxLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5d8fb8")).
			Bold(true)

	errorBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7a2f3a")).
			Padding(1, 2)

	errorHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e06c75")).
				Bold(true)

	errorBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6b5b5"))

	barFillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e3b341"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#273540"))
)

// PaneWidth splits the terminal into a left pane of about a quarter of the
// width and a right pane taking the rest.
func PaneWidth(total int) (left, right int) {
	if total <= 0 {
		return 0, 0
	}
	left = total / 4
	if left < 24 {
		left = 24
	}
	if left > 34 {
		left = 34
	}
	right = total - left - 2
	if right < 30 {
		right = 30
	}
	return left, right
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	header := ""
	if title != "" {
		header = errorHeaderStyle.Render(title) + "\n\n"
	}
	body := errorBodyStyle.Render(message)
	return sized(errorBorder, width).Render(header + body)
}

// TitledBox renders a box with the title set into its top border.
func TitledBox(title, content string, width int) string {
	return titledBoxWithStyle(title, content, width, boxBorder, lipgloss.Color("#273540"))
}

// ActiveTitledBox is TitledBox with the focus border color.
func ActiveTitledBox(title, content string, width int) string {
	return titledBoxWithStyle(title, content, width, boxBorderActive, lipgloss.Color("#c0392b"))
}

// ContentWidth returns the inner width of a box with the given outer width.
func ContentWidth(width int) int {
	// Border adds 2, padding adds 4 (left+right).
	inner := width - 6
	if inner < 0 {
		return 0
	}
	return inner
}

func sized(style lipgloss.Style, width int) lipgloss.Style {
	if width <= 2 {
		return style
	}
	// lipgloss widths exclude the border.
	return style.Width(width - 2)
}

func titledBoxWithStyle(title, content string, width int, boxStyle lipgloss.Style, borderColor lipgloss.Color) string {
	boxed := sized(boxStyle, width).Render(content)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middleLen := lineWidth - 2
	titleText := fmt.Sprintf(" %s ", SanitizeOneLine(title))
	if lipgloss.Width(titleText) > middleLen {
		titleText = truncateRunes(titleText, middleLen)
	}

	left := 2
	if left > middleLen-lipgloss.Width(titleText) {
		left = 0
	}
	right := middleLen - lipgloss.Width(titleText) - left
	if right < 0 {
		right = 0
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	lines[0] = borderStyle.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		boxHeaderStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat(border.Top, right)+border.TopRight)
	return strings.Join(lines, "\n")
}

// ClampTextWidth truncates text to the given visual width, ending with an
// ellipsis when anything was cut.
func ClampTextWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	cleaned := SanitizeOneLine(text)
	if lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	if width == 1 {
		return "…"
	}
	return truncateRunes(cleaned, width-1) + "…"
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// TableRow is a single row in a key-value table.
type TableRow struct {
	Label string
	Value string
}

// Table renders label/value rows with the labels aligned.
func Table(rows []TableRow) string {
	labelWidth := 0
	for _, r := range rows {
		if w := lipgloss.Width(SanitizeOneLine(r.Label)); w > labelWidth {
			labelWidth = w
		}
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := boxLabelStyle.Render(padRight(SanitizeOneLine(r.Label), labelWidth))
		lines = append(lines, label+"  "+boxValueStyle.Render(SanitizeOneLine(r.Value)))
	}
	return strings.Join(lines, "\n")
}

// StatBar renders "name  value ████░░░░" scaled against max.
func StatBar(name string, value, max, labelWidth, barWidth int) string {
	if barWidth < 1 {
		barWidth = 1
	}
	if max < 1 {
		max = 1
	}
	filled := value * barWidth / max
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	label := boxLabelStyle.Render(padRight(SanitizeOneLine(name), labelWidth))
	num := boxValueStyle.Render(fmt.Sprintf("%4d", value))
	bar := barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
	return label + " " + num + " " + bar
}
