package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#c0392b") // dex red
	ColorSecondary  = lipgloss.Color("#5d8fb8") // screen blue
	ColorAccent     = lipgloss.Color("#e3b341") // yellow
	ColorBackground = lipgloss.Color("#16161d") // dark
	ColorText       = lipgloss.Color("#d7d9da") // main text
	ColorMuted      = lipgloss.Color("#9ba0bf") // muted text
	ColorSuccess    = lipgloss.Color("#3f866b") // green
	ColorError      = lipgloss.Color("#e06c75") // red
	ColorBorder     = lipgloss.Color("#273540") // border
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	MatchStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Underline(true)

	PageActiveStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	PageInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	PageArrowStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	TypeBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(lipgloss.Color("#888ba4")).
			Bold(true).
			Padding(0, 1)
)

// typeColors tints type badges and type names. Unknown types keep the
// default colors.
var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#a8a77a"),
	"fire":     lipgloss.Color("#ee8130"),
	"water":    lipgloss.Color("#6390f0"),
	"electric": lipgloss.Color("#f7d02c"),
	"grass":    lipgloss.Color("#7ac74c"),
	"ice":      lipgloss.Color("#96d9d6"),
	"fighting": lipgloss.Color("#c22e28"),
	"poison":   lipgloss.Color("#a33ea1"),
	"ground":   lipgloss.Color("#e2bf65"),
	"flying":   lipgloss.Color("#a98ff3"),
	"psychic":  lipgloss.Color("#f95587"),
	"bug":      lipgloss.Color("#a6b91a"),
	"rock":     lipgloss.Color("#b6a136"),
	"ghost":    lipgloss.Color("#735797"),
	"dragon":   lipgloss.Color("#6f35fc"),
	"dark":     lipgloss.Color("#705746"),
	"steel":    lipgloss.Color("#b7b7ce"),
	"fairy":    lipgloss.Color("#d685ad"),
}

// TypeBadge renders a tag as a colored badge.
func TypeBadge(tag string) string {
	style := TypeBadgeStyle
	if c, ok := typeColors[tag]; ok {
		style = style.Background(c)
	}
	return style.Render(tag)
}

// TypeText renders a tag name in its type color without a badge.
func TypeText(tag string) string {
	c, ok := typeColors[tag]
	if !ok {
		return tag
	}
	return lipgloss.NewStyle().Foreground(c).Render(tag)
}
