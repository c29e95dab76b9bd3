package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/gravitrone/dex/internal/ui/components"
)

// toggleTagMsg asks the app to flip a tag in the pipeline.
type toggleTagMsg struct{ tag string }

// clearTagsMsg asks the app to uncheck every tag.
type clearTagsMsg struct{}

// TagsModel is the checklist of tag names. Typing after "/" narrows which
// tags are listed; the selection itself lives in the pipeline.
type TagsModel struct {
	keys      KeyMap
	all       []string
	shown     []string
	matched   map[string][]int
	list      *components.List
	query     string
	searching bool
}

// NewTagsModel builds an empty tag checklist.
func NewTagsModel(keys KeyMap) TagsModel {
	return TagsModel{
		keys: keys,
		list: components.NewList(12),
	}
}

// SetTags installs the tag vocabulary and reapplies any narrowing query.
func (m *TagsModel) SetTags(tags []string) {
	m.all = append([]string(nil), tags...)
	m.narrow()
}

// SetHeight sizes the visible part of the checklist.
func (m *TagsModel) SetHeight(rows int) {
	m.list.SetPageSize(rows)
}

// Searching reports whether typed keys currently go to the query.
func (m TagsModel) Searching() bool {
	return m.searching
}

func (m *TagsModel) narrow() {
	m.matched = nil
	if strings.TrimSpace(m.query) == "" {
		m.shown = m.all
		m.list.SetItems(m.shown)
		return
	}
	matches := fuzzy.Find(m.query, m.all)
	m.shown = make([]string, 0, len(matches))
	m.matched = make(map[string][]int, len(matches))
	for _, match := range matches {
		m.shown = append(m.shown, match.Str)
		m.matched[match.Str] = match.MatchedIndexes
	}
	m.list.SetItems(m.shown)
}

func (m TagsModel) Update(msg tea.KeyMsg) (TagsModel, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		m.list.Down()
	case key.Matches(msg, m.keys.Up):
		m.list.Up()
	case key.Matches(msg, m.keys.Top):
		m.list.Top()
	case key.Matches(msg, m.keys.Bottom):
		m.list.Bottom()
	case key.Matches(msg, m.keys.Toggle), isEnter(msg):
		return m, m.toggleCurrent()
	case key.Matches(msg, m.keys.Clear):
		return m, func() tea.Msg { return clearTagsMsg{} }
	case key.Matches(msg, m.keys.Search):
		m.searching = true
	case isBack(msg):
		if m.query != "" {
			m.query = ""
			m.narrow()
		}
	}
	return m, nil
}

func (m TagsModel) updateSearch(msg tea.KeyMsg) (TagsModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.searching = false
		m.query = ""
		m.narrow()
	case isEnter(msg):
		m.searching = false
	case isBackspace(msg):
		if m.query != "" {
			r := []rune(m.query)
			m.query = string(r[:len(r)-1])
			m.narrow()
		}
	case msg.Type == tea.KeyDown:
		m.list.Down()
	case msg.Type == tea.KeyUp:
		m.list.Up()
	case msg.Type == tea.KeySpace:
		return m, m.toggleCurrent()
	case msg.Type == tea.KeyRunes:
		m.query += string(msg.Runes)
		m.narrow()
	}
	return m, nil
}

func (m TagsModel) toggleCurrent() tea.Cmd {
	tag, ok := m.list.Current()
	if !ok {
		return nil
	}
	return func() tea.Msg { return toggleTagMsg{tag: tag} }
}

// View renders the checklist. selected reports the pipeline's selection.
func (m TagsModel) View(selected func(string) bool, selectedCount int, active bool, width int) string {
	inner := components.ContentWidth(width)
	var b strings.Builder

	if m.searching || m.query != "" {
		cursor := ""
		if m.searching {
			cursor = "█"
		}
		b.WriteString(AccentStyle.Render("/ "+components.SanitizeOneLine(m.query)) + cursor + "\n\n")
	}

	switch {
	case len(m.all) == 0:
		b.WriteString(MutedStyle.Render("No tags loaded."))
	case len(m.shown) == 0:
		b.WriteString(MutedStyle.Render("No tags match."))
	default:
		visible := m.list.Visible()
		for i, tag := range visible {
			abs := m.list.RelToAbs(i)
			box := "[ ]"
			if selected != nil && selected(tag) {
				box = SelectedStyle.Render("[x]")
			}
			label := m.renderLabel(tag, inner-6)
			prefix := "  "
			if active && m.list.IsSelected(abs) {
				prefix = SelectedStyle.Render("› ")
				label = NormalStyle.Bold(true).Render(label)
			}
			b.WriteString(prefix + box + " " + label)
			if i < len(visible)-1 {
				b.WriteString("\n")
			}
		}
	}

	footer := fmt.Sprintf("%d selected", selectedCount)
	if len(m.shown) != len(m.all) {
		footer = fmt.Sprintf("%d of %d tags · %s", len(m.shown), len(m.all), footer)
	}
	b.WriteString("\n\n" + MutedStyle.Render(footer))

	title := "Tags"
	if active {
		return components.ActiveTitledBox(title, b.String(), width)
	}
	return components.TitledBox(title, b.String(), width)
}

func (m TagsModel) renderLabel(tag string, width int) string {
	clean := components.ClampTextWidth(tag, width)
	idx := m.matched[tag]
	if len(idx) == 0 || clean != tag {
		return clean
	}
	hit := make(map[int]bool, len(idx))
	for _, i := range idx {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range tag {
		if hit[i] {
			b.WriteString(MatchStyle.Render(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
