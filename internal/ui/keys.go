package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	Diagnostics key.Binding
	Tab         key.Binding

	// Pages
	ViewList      key.Binding
	ViewFavorites key.Binding
	Back          key.Binding

	// Catalog actions
	Open     key.Binding
	Favorite key.Binding
	Search   key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Search input
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Diagnostics: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Diagnostics log"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Temples/Favorites"),
		),

		// Pages
		ViewList: key.NewBinding(
			key.WithKeys("1", "l"),
			key.WithHelp("1/l", "Temples"),
		),
		ViewFavorites: key.NewBinding(
			key.WithKeys("2", "f"),
			key.WithHelp("2/f", "Favorites"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "backspace"),
			key.WithHelp("esc/b", "Back to temples"),
		),

		// Catalog actions
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "Explore temple"),
		),
		Favorite: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle favorite"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search temples"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		// Search input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Keep filter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear filter"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Open, k.Favorite, k.ViewFavorites, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ViewList, k.ViewFavorites, k.Tab, k.Back},
		{k.Up, k.Down, k.Top, k.Bottom, k.HalfPageDown, k.HalfPageUp},
		{k.Search, k.Open, k.Favorite},
		{k.CycleTheme, k.Diagnostics, k.Help, k.Quit},
	}
}
