package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func catalogColumns() []GridColumn {
	return []GridColumn{
		{Header: "#", Width: 4, Align: lipgloss.Right},
		{Header: "Name", Width: 14, Flex: true},
		{Header: "Types", Width: 10},
	}
}

func TestGridRendersHeaderRuleAndRows(t *testing.T) {
	out := Grid(catalogColumns(), [][]string{
		{"1", "bulbasaur", "grass poison"},
		{"4", "charmander", "fire"},
	}, 40, -1)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 40, lipgloss.Width(line))
	}

	clean := SanitizeText(out)
	assert.Contains(t, clean, "Name")
	assert.Contains(t, clean, "charmander")
	assert.Contains(t, clean, "─┼─")
	assert.NotContains(t, clean, "›")
}

func TestGridFlexColumnTakesSpareWidth(t *testing.T) {
	cols := layoutColumns(catalogColumns(), 38)
	assert.Equal(t, 4, cols[0].Width)
	assert.Equal(t, 22, cols[1].Width)
	assert.Equal(t, 10, cols[2].Width)
}

func TestGridWithoutFlexGrowsLastColumn(t *testing.T) {
	cols := layoutColumns([]GridColumn{{Width: 3}, {Width: 3}}, 20)
	assert.Equal(t, 3, cols[0].Width)
	assert.Equal(t, 16, cols[1].Width)
}

func TestGridClampsLongCells(t *testing.T) {
	out := Grid(catalogColumns(), [][]string{
		{"1", strings.Repeat("x", 60), "fire"},
	}, 40, -1)
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
	assert.Contains(t, SanitizeText(out), "…")
}

func TestGridCursorRowGetsMarker(t *testing.T) {
	out := Grid(catalogColumns(), [][]string{
		{"1", "bulbasaur", "grass"},
		{"7", "squirtle", "water"},
	}, 40, 1)
	lines := strings.Split(SanitizeText(out), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "  "))
	assert.True(t, strings.HasPrefix(lines[3], "› "))
	assert.Contains(t, lines[3], "squirtle")
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
}

func TestGridStyleHookSkipsCursorRow(t *testing.T) {
	var styled []string
	cols := catalogColumns()
	cols[2].Style = func(text string) string {
		styled = append(styled, text)
		return text
	}
	Grid(cols, [][]string{
		{"1", "bulbasaur", "grass"},
		{"7", "squirtle", "water"},
	}, 40, 0)
	assert.Equal(t, []string{"water"}, styled)
}

func TestGridEdgeCases(t *testing.T) {
	assert.Equal(t, "", Grid(catalogColumns(), nil, 0, -1))
	assert.Equal(t, strings.Repeat(" ", 12), Grid(nil, nil, 12, -1))
}

func TestAlignCell(t *testing.T) {
	assert.Equal(t, "  ab", alignCell("ab", 4, lipgloss.Right))
	assert.Equal(t, " ab ", alignCell("ab", 4, lipgloss.Center))
	assert.Equal(t, "ab  ", alignCell("ab", 4, lipgloss.Left))
	assert.Equal(t, "abcd", alignCell("abcd", 4, lipgloss.Left))
}
