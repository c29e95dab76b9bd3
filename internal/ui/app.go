package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/gravitrone/dex/internal/catalog"
	"github.com/gravitrone/dex/internal/config"
	"github.com/gravitrone/dex/internal/ui/components"
)

// --- Focus ---

type focusPane int

const (
	focusTags focusPane = iota
	focusGrid
)

const defaultWidth = 100

// --- Messages ---

type entriesLoadedMsg struct {
	entries []catalog.EntryRef
	err     error
}

type tagsLoadedMsg struct {
	tags []string
	err  error
}

type filterDoneMsg struct{ res catalog.FilterResult }

type pageLoadedMsg struct{ res catalog.PageResult }

type detailLoadedMsg struct {
	ref    catalog.EntryRef
	detail *catalog.EntryDetail
	ok     bool
}

type errMsg struct{ err error }

type clearToastMsg struct{}

// --- App Model ---

// App is the root TUI model: the tag checklist on the left, the page grid on
// the right and the detail overlay on top.
type App struct {
	gateway  catalog.Gateway
	store    *catalog.Store
	pipeline *catalog.Pipeline
	logger   *slog.Logger

	concurrency int

	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	tags    TagsModel

	focus          focusPane
	cursor         int
	loadingEntries bool
	loadingTags    bool
	helpOpen       bool

	detailOpen    bool
	detailLoading bool
	detailRef     catalog.EntryRef
	detail        *catalog.EntryDetail

	err   string
	toast string

	width  int
	height int
}

// NewApp wires the browser over a gateway. A nil cfg uses config defaults;
// a nil logger uses slog.Default.
func NewApp(gateway catalog.Gateway, cfg *config.Config, logger *slog.Logger) App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	store := catalog.NewStore(gateway, logger)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = AccentStyle

	h := help.New()
	h.ShowAll = true

	return App{
		gateway:        gateway,
		store:          store,
		pipeline:       catalog.NewPipeline(store, cfg.PageSize),
		logger:         logger,
		concurrency:    cfg.FetchConcurrency,
		keys:           DefaultKeyMap,
		help:           h,
		spinner:        sp,
		tags:           NewTagsModel(DefaultKeyMap),
		focus:          focusTags,
		loadingEntries: gateway != nil,
		loadingTags:    gateway != nil,
	}
}

func (a App) Init() tea.Cmd {
	if a.gateway == nil {
		return nil
	}
	return tea.Batch(a.spinner.Tick, a.loadEntriesCmd(), a.loadTagsCmd())
}

func (a App) busy() bool {
	v := a.pipeline.Current()
	return a.loadingEntries || a.loadingTags || a.detailLoading ||
		v.Filtering || (v.Cards == nil && v.FilteredCount > 0)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		rows := msg.Height - 24
		if rows < 5 {
			rows = 5
		}
		a.tags.SetHeight(rows)
		return a, nil

	case spinner.TickMsg:
		if !a.busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case entriesLoadedMsg:
		a.loadingEntries = false
		if msg.err != nil {
			a.err = msg.err.Error()
		}
		a.store.Populate(msg.entries)
		return a, a.filterCmd(a.pipeline.Refilter())

	case tagsLoadedMsg:
		a.loadingTags = false
		if msg.err != nil {
			a.err = msg.err.Error()
			return a, nil
		}
		a.tags.SetTags(msg.tags)
		return a, nil

	case filterDoneMsg:
		if !a.pipeline.ApplyFilter(msg.res) {
			return a, nil
		}
		a.cursor = 0
		return a, a.pageCmd(a.pipeline.CurrentPageRequest())

	case pageLoadedMsg:
		if a.pipeline.ApplyPage(msg.res) {
			a.clampCursor()
		}
		return a, nil

	case detailLoadedMsg:
		if !a.detailOpen || msg.ref != a.detailRef {
			return a, nil
		}
		a.detailLoading = false
		if msg.ok {
			a.detail = msg.detail
		}
		return a, nil

	case toggleTagMsg:
		a.cursor = 0
		return a, a.filterCmd(a.pipeline.ToggleTag(msg.tag))

	case clearTagsMsg:
		if len(a.pipeline.Current().Selected) == 0 {
			return a, nil
		}
		a.cursor = 0
		return a, a.filterCmd(a.pipeline.ClearTags())

	case errMsg:
		a.err = msg.err.Error()
		return a, nil

	case clearToastMsg:
		a.toast = ""
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isForceQuit(msg) {
		return a, tea.Quit
	}
	if a.err != "" {
		a.err = ""
	}
	if a.helpOpen {
		if isBack(msg) || key.Matches(msg, a.keys.Help) {
			a.helpOpen = false
		}
		return a, nil
	}
	if a.detailOpen {
		switch {
		case key.Matches(msg, a.keys.Close):
			a.closeDetail()
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		}
		return a, nil
	}
	if a.focus == focusTags && a.tags.Searching() {
		var cmd tea.Cmd
		a.tags, cmd = a.tags.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.helpOpen = true
		return a, nil
	case key.Matches(msg, a.keys.Focus):
		if a.focus == focusTags {
			a.focus = focusGrid
		} else {
			a.focus = focusTags
		}
		return a, nil
	case key.Matches(msg, a.keys.PrevPage):
		req, ok := a.pipeline.PrevPage()
		return a.changedPage(req, ok)
	case key.Matches(msg, a.keys.NextPage):
		req, ok := a.pipeline.NextPage()
		return a.changedPage(req, ok)
	case key.Matches(msg, a.keys.JumpPage):
		slot, _ := pageDigit(msg)
		target, ok := pageForSlot(a.pipeline.Current().Page, slot)
		if !ok {
			return a, nil
		}
		req, ok := a.pipeline.SetPage(target)
		return a.changedPage(req, ok)
	}

	if a.focus == focusGrid {
		return a.handleGridKey(msg)
	}
	var cmd tea.Cmd
	a.tags, cmd = a.tags.Update(msg)
	return a, cmd
}

func (a App) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cards := a.pipeline.Current().Cards
	switch {
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(cards)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Top):
		a.cursor = 0
	case key.Matches(msg, a.keys.Bottom):
		if len(cards) > 0 {
			a.cursor = len(cards) - 1
		}
	case key.Matches(msg, a.keys.Clear):
		return a, func() tea.Msg { return clearTagsMsg{} }
	case key.Matches(msg, a.keys.Open):
		if a.cursor < 0 || a.cursor >= len(cards) {
			return a, nil
		}
		ref := cards[a.cursor].Ref
		a.detailOpen = true
		a.detailLoading = true
		a.detailRef = ref
		a.detail = nil
		return a, tea.Batch(a.detailCmd(ref), a.spinner.Tick)
	}
	return a, nil
}

func (a App) changedPage(req *catalog.PageRequest, ok bool) (tea.Model, tea.Cmd) {
	if !ok {
		return a, a.setToast("Filtering in progress")
	}
	if req == nil {
		return a, nil
	}
	a.cursor = 0
	return a, a.pageCmd(*req)
}

func (a *App) closeDetail() {
	a.detailOpen = false
	a.detailLoading = false
	a.detail = nil
	a.detailRef = catalog.EntryRef{}
}

func (a *App) clampCursor() {
	n := len(a.pipeline.Current().Cards)
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) setToast(text string) tea.Cmd {
	a.toast = components.SanitizeOneLine(text)
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

// --- Commands ---

func (a App) loadEntriesCmd() tea.Cmd {
	gateway := a.gateway
	return func() tea.Msg {
		entries, err := gateway.ListEntries()
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (a App) loadTagsCmd() tea.Cmd {
	gateway := a.gateway
	return func() tea.Msg {
		tags, err := gateway.ListTags()
		return tagsLoadedMsg{tags: tags, err: err}
	}
}

func (a App) filterCmd(req catalog.FilterRequest) tea.Cmd {
	store := a.store
	limit := a.concurrency
	run := func() tea.Msg {
		return filterDoneMsg{res: req.Run(store, limit)}
	}
	return tea.Batch(run, a.spinner.Tick)
}

func (a App) pageCmd(req catalog.PageRequest) tea.Cmd {
	store := a.store
	run := func() tea.Msg {
		return pageLoadedMsg{res: req.Run(store)}
	}
	return tea.Batch(run, a.spinner.Tick)
}

func (a App) detailCmd(ref catalog.EntryRef) tea.Cmd {
	store := a.store
	return func() tea.Msg {
		detail, ok := store.Lookup(ref)
		return detailLoadedMsg{ref: ref, detail: detail, ok: ok}
	}
}

// --- View ---

func (a App) View() string {
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}
	banner := centerBlockUniform(RenderBanner(), width)

	var content string
	switch {
	case a.helpOpen:
		content = a.renderHelp(width)
	case a.detailOpen:
		content = a.renderDetailOverlay(width)
	default:
		content = a.renderBrowser(width)
	}
	content = centerBlockUniform(content, width)

	hints := components.StatusBar(components.BindingHints(a.keys.ShortHelp()...), width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, width*2/3), width)
	} else if a.toast != "" {
		feedback = "\n\n" + centerBlockUniform(components.TitledBox("Info", a.toast, width/2), width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s%s", banner, content, hints, feedback)
}

func (a App) renderBrowser(width int) string {
	v := a.pipeline.Current()
	left, right := components.PaneWidth(width)

	tagsPane := a.tags.View(a.pipeline.IsSelected, len(v.Selected), a.focus == focusTags, left)
	if a.loadingTags {
		tagsPane = components.TitledBox("Tags", a.spinner.View()+" "+MutedStyle.Render("Loading tags…"), left)
	}

	var gridPane string
	if a.loadingEntries {
		gridPane = components.TitledBox("Entries", a.spinner.View()+" "+MutedStyle.Render("Loading entries…"), right)
	} else {
		gridPane = renderGrid(v, a.cursor, a.spinner.View(), a.focus == focusGrid, right)
	}
	pager := centerBlock(renderPager(v.Page), right)
	rightCol := lipgloss.JoinVertical(lipgloss.Left, gridPane, pager)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, tagsPane, "  ", rightCol)
	return a.renderCountLine() + "\n\n" + panes
}

// renderCountLine is the "Showing X of N" line above the panes: entries on
// this page out of the filtered total.
func (a App) renderCountLine() string {
	v := a.pipeline.Current()
	line := fmt.Sprintf("Showing %s of %s", humanize.Comma(int64(len(v.Page.Slice))), humanize.Comma(int64(v.FilteredCount)))
	if len(v.Selected) > 0 {
		line += " · " + strings.Join(v.Selected, ", ")
	}
	return MutedStyle.Render(line)
}

func (a App) renderDetailOverlay(width int) string {
	boxWidth := width * 2 / 3
	if boxWidth < 50 {
		boxWidth = width
	}
	if a.detailLoading {
		name := components.SanitizeOneLine(a.detailRef.Name)
		return components.ActiveTitledBox(name, a.spinner.View()+" "+MutedStyle.Render("Loading details…"), boxWidth)
	}
	return renderDetail(a.detail, boxWidth)
}

func (a App) renderHelp(width int) string {
	body := a.help.View(a.keys) + "\n\n" + MutedStyle.Render("esc to close")
	return components.TitledBox("Help", body, width)
}

func centerBlock(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth >= width {
			continue
		}
		pad := (width - lineWidth) / 2
		lines[i] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(lines, "\n")
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
