package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/dex/internal/catalog"
	"github.com/gravitrone/dex/internal/config"
)

func TestAppLoadsEntriesAndTags(t *testing.T) {
	app := loadedApp(t, seededGateway())

	assert.False(t, app.loadingEntries)
	assert.False(t, app.loadingTags)
	assert.Equal(t, 2, len(app.tags.all))

	v := app.pipeline.Current()
	assert.Equal(t, 30, v.FilteredCount)
	assert.Equal(t, 3, v.Page.TotalPages)
	require.Len(t, v.Cards, 10)
	assert.Equal(t, "ember-00", v.Cards[0].Ref.Name)
}

func TestAppToggleTagResetsPageToOne(t *testing.T) {
	app := loadedApp(t, seededGateway())

	app = press(t, app, runeKey('3'))
	assert.Equal(t, 3, app.pipeline.Current().Page.Number)

	app = press(t, app, tea.KeyMsg{Type: tea.KeySpace})
	v := app.pipeline.Current()
	assert.Equal(t, []string{"fire"}, v.Selected)
	assert.Equal(t, 1, v.Page.Number)
	assert.Equal(t, 23, v.FilteredCount)
	assert.Equal(t, 3, v.Page.TotalPages)
}

func TestAppPageChangeKeepsFilter(t *testing.T) {
	app := loadedApp(t, seededGateway())
	app = press(t, app, tea.KeyMsg{Type: tea.KeySpace})

	app = press(t, app, tea.KeyMsg{Type: tea.KeyRight})
	v := app.pipeline.Current()
	assert.Equal(t, 2, v.Page.Number)
	assert.Equal(t, []string{"fire"}, v.Selected)
	assert.Equal(t, 23, v.FilteredCount)
	require.Len(t, v.Cards, 10)
	assert.Equal(t, "ember-10", v.Cards[0].Ref.Name)

	app = press(t, app, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, app.pipeline.Current().Page.Number)
}

func TestAppNextPageClampsAtEnd(t *testing.T) {
	app := loadedApp(t, seededGateway())
	for i := 0; i < 5; i++ {
		app = press(t, app, tea.KeyMsg{Type: tea.KeyRight})
	}
	v := app.pipeline.Current()
	assert.Equal(t, 3, v.Page.Number)
	assert.Len(t, v.Cards, 10)

	m, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Len(t, m.(App).pipeline.Current().Cards, 10)
	assert.NotContains(t, cleanView(m.(App)), "Loading")
}

func TestAppGridJumpsToFirstAndLastRow(t *testing.T) {
	app := loadedApp(t, seededGateway())
	app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})

	app = press(t, app, runeKey('G'))
	assert.Equal(t, 9, app.cursor)
	app = press(t, app, runeKey('g'))
	assert.Equal(t, 0, app.cursor)
}

func TestAppPageChangeWhileFilteringIsRejected(t *testing.T) {
	app := loadedApp(t, seededGateway())

	m, _ := app.Update(toggleTagMsg{tag: "water"})
	app = m.(App)
	require.True(t, app.pipeline.Current().Filtering)

	m, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRight})
	app = m.(App)
	assert.NotNil(t, cmd)
	assert.Equal(t, "Filtering in progress", app.toast)
	assert.Equal(t, 1, app.pipeline.Current().Page.Number)
}

func TestAppStaleFilterResultIgnored(t *testing.T) {
	app := loadedApp(t, seededGateway())

	m, first := app.Update(toggleTagMsg{tag: "fire"})
	app = m.(App)
	m, second := app.Update(toggleTagMsg{tag: "fire"})
	app = drain(t, m, second)
	assert.Equal(t, 30, app.pipeline.Current().FilteredCount)

	app = drain(t, app, first)
	v := app.pipeline.Current()
	assert.Equal(t, 30, v.FilteredCount)
	assert.Empty(t, v.Selected)
	assert.False(t, v.Filtering)
}

func TestAppClearTags(t *testing.T) {
	app := loadedApp(t, seededGateway())
	app = press(t, app, tea.KeyMsg{Type: tea.KeySpace})
	require.Equal(t, 23, app.pipeline.Current().FilteredCount)

	app = press(t, app, runeKey('c'))
	v := app.pipeline.Current()
	assert.Empty(t, v.Selected)
	assert.Equal(t, 30, v.FilteredCount)
}

func TestAppClearWithNothingSelectedIsNoop(t *testing.T) {
	app := loadedApp(t, seededGateway())
	before := app.pipeline.CurrentPageRequest().Generation
	m, cmd := app.Update(clearTagsMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.(App).pipeline.CurrentPageRequest().Generation)
}

func TestAppDetailOverlayOpensAndCloses(t *testing.T) {
	app := loadedApp(t, seededGateway())

	app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusGrid, app.focus)
	app = press(t, app, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, app.cursor)

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, app.detailOpen)
	assert.False(t, app.detailLoading)
	require.NotNil(t, app.detail)
	assert.Equal(t, "ember-01", app.detail.Name)

	page := app.pipeline.Current().Page.Number
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.detailOpen)
	assert.Nil(t, app.detail)
	assert.Equal(t, page, app.pipeline.Current().Page.Number)
}

func TestAppDetailIgnoresKeysWhileOpen(t *testing.T) {
	app := loadedApp(t, seededGateway())
	app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, app.detailOpen)

	app = press(t, app, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, app.pipeline.Current().Page.Number)
	assert.True(t, app.detailOpen)
}

func TestAppStaleDetailResultIgnored(t *testing.T) {
	app := loadedApp(t, seededGateway())
	other := catalog.EntryRef{Name: "ghost", Handle: "https://dex.test/pokemon/999/"}
	m, _ := app.Update(detailLoadedMsg{ref: other, detail: &catalog.EntryDetail{Name: "ghost"}, ok: true})
	assert.Nil(t, m.(App).detail)
}

func TestAppListFailureLeavesEmptyCatalog(t *testing.T) {
	g := seededGateway()
	g.listErr = errors.New("list entries: request failed")
	app := loadedApp(t, g)

	assert.Equal(t, "list entries: request failed", app.err)
	v := app.pipeline.Current()
	assert.Zero(t, v.FilteredCount)
	assert.Equal(t, 1, v.Page.TotalPages)
	assert.Equal(t, []int{1}, v.Page.VisiblePages)
}

func TestAppTagFailureShowsError(t *testing.T) {
	g := seededGateway()
	g.tagsErr = errors.New("list tags: HTTP 500")
	app := loadedApp(t, g)

	assert.Equal(t, "list tags: HTTP 500", app.err)
	assert.Zero(t, len(app.tags.all))
	assert.Equal(t, 30, app.pipeline.Current().FilteredCount)
}

func TestAppAbsentDetailsDropOutOfFilter(t *testing.T) {
	g := seededGateway()
	delete(g.details, g.entries[0].Handle)
	app := loadedApp(t, g)

	v := app.pipeline.Current()
	assert.Len(t, v.Cards, 9)

	app = press(t, app, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 22, app.pipeline.Current().FilteredCount)
}

func TestAppFuzzySearchRoutesKeysToTags(t *testing.T) {
	app := loadedApp(t, seededGateway())

	app = press(t, app, runeKey('/'))
	require.True(t, app.tags.Searching())

	app = press(t, app, runeKey('q'))
	assert.Equal(t, "q", app.tags.query)

	app = press(t, app, tea.KeyMsg{Type: tea.KeyBackspace})
	app = press(t, app, runeKey('w'))
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, app.tags.Searching())
	assert.Equal(t, []string{"water"}, app.tags.shown)

	app = press(t, app, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"water"}, app.pipeline.Current().Selected)
	assert.Equal(t, 7, app.pipeline.Current().FilteredCount)
}

func TestAppQuitKeys(t *testing.T) {
	app := NewApp(nil, &config.Config{}, nil)
	_, cmd := app.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppHelpToggle(t *testing.T) {
	app := NewApp(nil, nil, nil)
	m, _ := app.Update(runeKey('?'))
	updated := m.(App)
	assert.True(t, updated.helpOpen)

	m, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.(App).helpOpen)
}

func TestAppKeyClearsError(t *testing.T) {
	app := NewApp(nil, nil, nil)
	m, _ := app.Update(errMsg{err: errors.New("boom")})
	updated := m.(App)
	assert.Equal(t, "boom", updated.err)

	m, _ = updated.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.(App).err)
}

func TestAppWindowSizeSetsTagHeight(t *testing.T) {
	app := NewApp(nil, nil, nil)
	m, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated := m.(App)
	assert.Equal(t, 120, updated.width)
	assert.Equal(t, 16, updated.tags.list.PageSize)
}
