package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/angkor/internal/browse"
	"github.com/five82/angkor/internal/catalog"
	"github.com/five82/angkor/internal/state"
	"github.com/five82/angkor/internal/storage"
	"github.com/five82/angkor/internal/view"
)

type stubFetcher struct {
	items []catalog.Temple
	err   error
}

func (s stubFetcher) FetchTemples(context.Context) ([]catalog.Temple, error) {
	return s.items, s.err
}

func temples() []catalog.Temple {
	return []catalog.Temple{
		{ID: "A", Title: "Angkor Wat", Summary: "Temple-mountain", Tags: []string{"Khmer"}, Location: catalog.Location{Province: "Siem Reap"}},
		{ID: "B", Title: "Bayon", Summary: "Stone faces", Tags: []string{"Buddhist"}, Location: catalog.Location{Province: "Siem Reap"}},
		{ID: "C", Title: "Preah Vihear", Summary: "Clifftop", Location: catalog.Location{Province: "Preah Vihear"}},
	}
}

func newTestModel(t *testing.T, fetcher catalog.Fetcher, initial map[string]string) (Model, *storage.Memory) {
	t.Helper()
	local := storage.NewMemory(initial)
	controller := browse.NewController(state.NewStore(local, nil), nil)
	m := New(Options{
		Controller: controller,
		Loader:     catalog.NewLoader(fetcher, nil),
		Storage:    local,
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, local
}

func loadedModel(t *testing.T, initial map[string]string) (Model, *storage.Memory) {
	t.Helper()
	m, local := newTestModel(t, stubFetcher{items: temples()}, initial)
	return update(t, m, m.Init()()), local
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, k)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func cardIDs(cards []view.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ItemID)
	}
	return out
}

func TestModel_LoadingThenList(t *testing.T) {
	m, _ := newTestModel(t, stubFetcher{items: temples()}, nil)
	assert.True(t, m.screen.Loading)
	assert.Contains(t, m.View(), "Loading temples")

	m = update(t, m, m.Init()())
	assert.False(t, m.screen.Loading)
	assert.False(t, m.usedFallback)
	assert.Equal(t, []string{"A", "B", "C"}, cardIDs(m.screen.Cards))
	assert.Contains(t, m.View(), "Bayon")
}

func TestModel_FallbackIsFlagged(t *testing.T) {
	m, _ := newTestModel(t, stubFetcher{err: errors.New("offline")}, nil)
	m = update(t, m, m.Init()())

	assert.True(t, m.usedFallback)
	require.NotEmpty(t, m.screen.Cards)
	assert.Equal(t, catalog.Fallback()[0].ID, m.screen.Cards[0].ItemID)
	assert.Contains(t, m.View(), "offline catalog")
}

func TestModel_SearchFiltersLive(t *testing.T) {
	m, _ := loadedModel(t, nil)

	m = press(t, m, runes("/"))
	require.True(t, m.searching)

	m = press(t, m, runes("b"), runes("a"), runes("y"))
	assert.Equal(t, []string{"B"}, cardIDs(m.screen.Cards))
	assert.Equal(t, "bay", m.screen.Query)

	m = press(t, m, enter)
	assert.False(t, m.searching)
	assert.Equal(t, []string{"B"}, cardIDs(m.screen.Cards), "enter keeps the filter")
}

func TestModel_SearchEscClearsFilter(t *testing.T) {
	m, _ := loadedModel(t, nil)

	m = press(t, m, runes("/"), runes("z"), runes("z"))
	assert.Empty(t, m.screen.Cards)
	assert.Contains(t, m.View(), "No temples match")

	m = press(t, m, esc)
	assert.False(t, m.searching)
	assert.Empty(t, m.screen.Query)
	assert.Len(t, m.screen.Cards, 3)
}

func TestModel_SearchFromFavoritesShowsList(t *testing.T) {
	m, _ := loadedModel(t, nil)
	m = press(t, m, runes("2"))
	require.Equal(t, view.PageFavorites, m.screen.Page)

	m = press(t, m, runes("/"))
	assert.Equal(t, view.PageList, m.screen.Page)
}

func TestModel_OpenDetailAndToggleInPlace(t *testing.T) {
	m, local := loadedModel(t, nil)

	m = press(t, m, runes("j"), enter)
	require.Equal(t, view.PageDetail, m.screen.Page)
	require.NotNil(t, m.screen.Detail)
	assert.Equal(t, "B", m.screen.Detail.ItemID)
	assert.False(t, m.screen.Detail.Toggle.Active)

	m = press(t, m, space)
	assert.True(t, m.screen.Detail.Toggle.Active)
	raw, ok := local.Get(state.FavoritesKey)
	require.True(t, ok)
	assert.JSONEq(t, `["B"]`, raw)

	m = press(t, m, esc)
	assert.Equal(t, view.PageList, m.screen.Page)
	assert.True(t, m.screen.Cards[1].Toggle.Active)
}

func TestModel_FavoritesToggleRemovesCard(t *testing.T) {
	m, _ := loadedModel(t, map[string]string{state.FavoritesKey: `["A","C"]`})

	m = press(t, m, runes("2"))
	assert.Equal(t, []string{"A", "C"}, cardIDs(m.screen.Favorites.Cards))

	m = press(t, m, runes("G"), space)
	assert.Equal(t, []string{"A"}, cardIDs(m.screen.Favorites.Cards))
	assert.Equal(t, 0, m.cursor[view.PageFavorites])

	m = press(t, m, space)
	assert.True(t, m.screen.Favorites.Empty)
	assert.Contains(t, m.View(), "No favorite temples yet")
}

func TestModel_CursorStaysInRange(t *testing.T) {
	m, _ := loadedModel(t, nil)

	m = press(t, m, runes("k"))
	assert.Equal(t, 0, m.cursor[view.PageList])

	m = press(t, m, runes("j"), runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 2, m.cursor[view.PageList])

	m = press(t, m, runes("g"))
	assert.Equal(t, 0, m.cursor[view.PageList])
}

func TestModel_PersistFailureShownInFooter(t *testing.T) {
	m, local := loadedModel(t, nil)
	local.FailWrites = true

	m = press(t, m, space)
	require.Error(t, m.statusErr)
	assert.True(t, m.screen.Cards[0].Toggle.Active)
	assert.Contains(t, m.View(), "Favorites not saved")
}

func TestModel_CycleThemePersists(t *testing.T) {
	m, local := loadedModel(t, nil)

	m = press(t, m, runes("T"))
	assert.Equal(t, "Slate", m.theme.Name)
	got, ok := local.Get(ThemeKey)
	require.True(t, ok)
	assert.Equal(t, "Slate", got)
}

func TestModel_Overlays(t *testing.T) {
	m, _ := loadedModel(t, nil)

	m = press(t, m, runes("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")
	m = press(t, m, runes("x"))
	assert.False(t, m.showHelp)

	next, cmd := m.Update(runes("L"))
	m = next.(Model)
	assert.Nil(t, cmd, "no log file configured")
	assert.Contains(t, m.View(), "Logging is disabled")
}

func TestModel_Quit(t *testing.T) {
	m, _ := loadedModel(t, nil)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_DetailShowsEveryTagInFull(t *testing.T) {
	long := "a-very-long-descriptive-tag-name-over-24"
	tags := []string{"temple", "Khmer", "Hindu", "Buddhist", "sunrise", "moat",
		"bas-relief", "causeway", "UNESCO", long, "zzz-last-tag"}
	items := []catalog.Temple{{ID: "A", Title: "Angkor Wat", Tags: tags}}

	m, _ := newTestModel(t, stubFetcher{items: items}, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	m = update(t, m, m.Init()())
	m = press(t, m, enter)
	require.NotNil(t, m.screen.Detail)
	require.Len(t, m.screen.Detail.Tags, len(tags))

	body := m.renderDetailBody(m.screen.Detail, m.contentWidth())
	for _, tag := range tags {
		assert.Contains(t, body, tag)
	}
}

func TestModel_SearchTypedWhileLoadingSurvivesLoad(t *testing.T) {
	m, _ := newTestModel(t, stubFetcher{items: temples()}, nil)
	require.True(t, m.screen.Loading)

	m = press(t, m, runes("/"), runes("b"), runes("a"), runes("y"))
	require.True(t, m.searching)

	m = update(t, m, m.Init()())
	assert.True(t, m.searching)
	assert.Equal(t, "bay", m.screen.Query)
	assert.Equal(t, []string{"B"}, cardIDs(m.screen.Cards))
}
