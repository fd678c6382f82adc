package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/angkor/internal/browse"
	"github.com/five82/angkor/internal/catalog"
	"github.com/five82/angkor/internal/logtail"
	"github.com/five82/angkor/internal/storage"
	"github.com/five82/angkor/internal/view"
)

// ThemeKey is the storage key holding the last selected theme name.
const ThemeKey = "theme"

const diagnosticsEntries = 200

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *browse.Controller
	Loader     *catalog.Loader
	Storage    storage.Local
	ThemeName  string
	LogPath    string
	Logger     *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	controller *browse.Controller
	loader     *catalog.Loader
	storage    storage.Local
	logPath    string
	logger     *zap.Logger
	keys       keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	screen       view.Screen
	usedFallback bool
	statusErr    error

	// Card selection per page
	cursor map[view.Page]int

	// Search input
	searching bool
	search    textinput.Model

	// Detail page
	detailViewport viewport.Model

	// Overlays
	showHelp        bool
	showDiagnostics bool
	diagnostics     []logtail.Entry
	diagnosticsErr  error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search temples, tags, provinces"
	search.CharLimit = 120

	m := Model{
		ctx:        ctx,
		controller: opts.Controller,
		loader:     opts.Loader,
		storage:    opts.Storage,
		logPath:    opts.LogPath,
		logger:     logger,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(themeName),
		cursor:     make(map[view.Page]int),
		search:     search,
	}
	if m.controller != nil {
		m.screen = m.controller.Screen()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadCatalogCmd(m.ctx, m.loader)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(m.contentWidth(), m.contentHeight())
		}
		m.ready = true
		m.search.Width = max(m.width-6, 10)
		m.syncDetail()
		return m, nil

	case catalogLoadedMsg:
		m.usedFallback = msg.fallback
		if m.controller != nil {
			m.setScreen(m.controller.Loaded(msg.items))
			// Loaded enters the list unfiltered; keep a query typed during loading.
			if m.searching {
				m.setScreen(m.controller.Search(m.search.Value()))
			}
		}
		return m, nil

	case diagnosticsMsg:
		m.diagnostics = msg.entries
		m.diagnosticsErr = msg.err
		return m, nil
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showDiagnostics {
		return m.renderDiagnostics()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes an overlay
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showDiagnostics {
		m.showDiagnostics = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Diagnostics):
		m.showDiagnostics = true
		return m, readDiagnosticsCmd(m.logPath)

	case key.Matches(msg, m.keys.ViewList):
		m.navigate(view.PageList, "")
		return m, nil

	case key.Matches(msg, m.keys.ViewFavorites):
		m.navigate(view.PageFavorites, "")
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.screen.Page == view.PageFavorites {
			m.navigate(view.PageList, "")
		} else {
			m.navigate(view.PageFavorites, "")
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m.startSearch()
	}

	if m.screen.Page == view.PageDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleCardsKey(msg)
}

// handleCardsKey processes keys on the list and favorites pages.
func (m Model) handleCardsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.screen.Page

	if key.Matches(msg, m.keys.Back) {
		if page == view.PageFavorites || m.screen.Query != "" {
			m.navigate(view.PageList, "")
		}
		return m, nil
	}

	count := m.screen.CardCount()
	if count == 0 {
		return m, nil
	}

	cursor := m.cursor[page]
	half := max(m.visibleCards()/2, 1)

	switch {
	case key.Matches(msg, m.keys.Down):
		cursor++
	case key.Matches(msg, m.keys.Up):
		cursor--
	case key.Matches(msg, m.keys.Top):
		cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		cursor = count - 1
	case key.Matches(msg, m.keys.HalfPageDown):
		cursor += half
	case key.Matches(msg, m.keys.HalfPageUp):
		cursor -= half
	case key.Matches(msg, m.keys.Open):
		if card, ok := m.screen.CardAt(cursor); ok {
			m.navigate(view.PageDetail, card.Open.ItemID)
		}
		return m, nil
	case key.Matches(msg, m.keys.Favorite):
		if card, ok := m.screen.CardAt(cursor); ok {
			m.toggleFavorite(card.Toggle.ItemID)
		}
		return m, nil
	}

	m.cursor[page] = clamp(cursor, 0, count-1)
	return m, nil
}

// handleDetailKey processes keys on the detail page.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.navigate(view.PageList, "")
		return m, nil
	case key.Matches(msg, m.keys.Favorite):
		if m.screen.Detail != nil {
			m.toggleFavorite(m.screen.Detail.Toggle.ItemID)
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.detailViewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.detailViewport.LineUp(1)
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.detailViewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.detailViewport.HalfViewUp()
	}
	return m, nil
}

// startSearch focuses the search input and shows the list page.
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.searching = true
	m.search.SetValue(m.screen.Query)
	m.search.CursorEnd()
	if m.controller != nil && m.screen.Page != view.PageList {
		m.setScreen(m.controller.Search(m.search.Value()))
	}
	return m, m.search.Focus()
}

// handleSearchKey filters the list on every keystroke. Enter keeps the
// filter; Esc clears it.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.navigate(view.PageList, "")
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != before && m.controller != nil {
		m.setScreen(m.controller.Search(value))
		m.cursor[view.PageList] = 0
	}
	return m, cmd
}

func (m *Model) navigate(page view.Page, itemID string) {
	if m.controller == nil {
		return
	}
	if page == view.PageList && m.screen.Query != "" {
		m.cursor[view.PageList] = 0
	}
	m.setScreen(m.controller.Navigate(page, itemID))
	if page == view.PageDetail {
		m.detailViewport.GotoTop()
	}
}

func (m *Model) toggleFavorite(itemID string) {
	if m.controller == nil {
		return
	}
	// The store has already logged a failed write.
	screen, err := m.controller.ToggleFavorite(itemID)
	m.statusErr = err
	offset := m.detailViewport.YOffset
	m.setScreen(screen)
	m.detailViewport.SetYOffset(offset)
}

// setScreen installs a freshly rendered screen and keeps cursors in range.
func (m *Model) setScreen(screen view.Screen) {
	m.screen = screen
	if count := screen.CardCount(); count > 0 {
		m.cursor[screen.Page] = clamp(m.cursor[screen.Page], 0, count-1)
	} else {
		m.cursor[screen.Page] = 0
	}
	m.syncDetail()
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.syncDetail()
	if m.storage == nil {
		return
	}
	if err := m.storage.Set(ThemeKey, m.theme.Name); err != nil {
		m.logger.Warn("theme not saved", zap.String("theme", m.theme.Name), zap.Error(err))
	}
}

// syncDetail re-renders the detail viewport for the current size and theme.
func (m *Model) syncDetail() {
	if !m.ready {
		return
	}
	m.detailViewport.Width = m.contentWidth()
	m.detailViewport.Height = m.contentHeight()
	if m.screen.Page != view.PageDetail {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.renderDetailBody(m.screen.Detail, m.contentWidth()))
}

// Messages

type catalogLoadedMsg struct {
	items    []catalog.Temple
	fallback bool
}

type diagnosticsMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

func loadCatalogCmd(ctx context.Context, loader *catalog.Loader) tea.Cmd {
	return func() tea.Msg {
		items, fallback := loader.Load(ctx)
		return catalogLoadedMsg{items: items, fallback: fallback}
	}
}

func readDiagnosticsCmd(path string) tea.Cmd {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	return func() tea.Msg {
		entries, err := logtail.Read(path, diagnosticsEntries)
		return diagnosticsMsg{entries: entries, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
