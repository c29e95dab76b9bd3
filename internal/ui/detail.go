package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/gravitrone/dex/internal/catalog"
	"github.com/gravitrone/dex/internal/ui/components"
)

// maxBaseStat is the top of the stat bar scale.
const maxBaseStat = 255

// renderDetail draws the overlay for one entry.
func renderDetail(d *catalog.EntryDetail, width int) string {
	if d == nil {
		return components.ErrorBox("Unavailable", "No details could be loaded for this entry.", width)
	}
	inner := components.ContentWidth(width)

	var b strings.Builder
	if len(d.Tags) > 0 {
		badges := make([]string, 0, len(d.Tags))
		for _, tag := range d.Tags {
			badges = append(badges, TypeBadge(components.SanitizeOneLine(tag)))
		}
		b.WriteString(strings.Join(badges, " ") + "\n\n")
	}

	rows := []components.TableRow{
		{Label: "Height", Value: FormatHeight(d.Height)},
		{Label: "Weight", Value: FormatWeight(d.Weight)},
	}
	if d.BaseExperience > 0 {
		rows = append(rows, components.TableRow{Label: "Base exp", Value: humanize.Comma(int64(d.BaseExperience))})
	}
	if len(d.Attributes) > 0 {
		rows = append(rows, components.TableRow{Label: "Abilities", Value: strings.Join(d.Attributes, ", ")})
	}
	if d.ImageRef != "" {
		rows = append(rows, components.TableRow{
			Label: "Image",
			Value: components.ClampTextWidth(d.ImageRef, inner-12),
		})
	}
	b.WriteString(components.Table(rows))

	if len(d.Stats) > 0 {
		b.WriteString("\n\n" + HeaderStyle.Render("Base stats") + "\n")
		labelWidth := 0
		for _, s := range d.Stats {
			if n := len(s.Name); n > labelWidth {
				labelWidth = n
			}
		}
		barWidth := inner - labelWidth - 6
		if barWidth > 30 {
			barWidth = 30
		}
		lines := make([]string, 0, len(d.Stats))
		for _, s := range d.Stats {
			lines = append(lines, components.StatBar(s.Name, s.Value, maxBaseStat, labelWidth, barWidth))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	b.WriteString("\n\n" + MutedStyle.Render("esc to close"))

	title := fmt.Sprintf("#%03d %s", d.ID, d.Name)
	return components.ActiveTitledBox(title, b.String(), width)
}

// FormatHeight renders a height in decimetres as metres.
func FormatHeight(dm int) string {
	if dm <= 0 {
		return "unknown"
	}
	return humanize.FtoaWithDigits(float64(dm)/10, 1) + " m"
}

// FormatWeight renders a weight in hectograms as kilograms.
func FormatWeight(hg int) string {
	if hg <= 0 {
		return "unknown"
	}
	return humanize.FtoaWithDigits(float64(hg)/10, 1) + " kg"
}
