// Package ui provides the terminal user interface for browsing the temple
// catalog.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds only display state: the window
// size, the theme, per-page card selection, the search input and overlay
// flags. Routing, filtering and favorites live in browse.Controller, which
// returns a view.Screen after every action; the model paints that screen and
// never builds its own copy of the catalog.
//
// # Package Structure
//
//   - app.go: Model, Options, update loop, commands and Run
//   - keys.go: key bindings (bubbles/key)
//   - render.go: header, tabs, card stack, detail body and footer
//   - help.go: keyboard shortcut overlay
//   - diagnostics.go: log tail overlay backed by logtail
//   - theme.go: color palettes and lipgloss styles
//
// # Pages
//
//   - Temples: every temple as a card, filtered live by the search input
//   - Favorites: the favorite subset in catalog order, or an empty-state note
//   - Detail: one temple with sections, tags and location, scrollable
//
// # Startup
//
// Init issues a single catalog load. Until it completes the list page shows a
// loading notice; when the remote catalog is unavailable the header marks the
// bundled offline catalog.
package ui
