// Package app is the composition root for angkor.
//
// # Overview
//
// Run wires configuration, logging, local storage, the catalog client and the
// page controller together, then hands control to the Bubble Tea UI until the
// user quits or the context is cancelled.
//
// # Startup
//
//  1. Load ~/.config/angkor/config.toml (missing file means defaults)
//  2. Apply command-line overrides for endpoint, storage and log file
//  3. Open the JSON log file (zap) and the TOML storage file
//  4. Build state.Store, which reads the favorites set from storage
//  5. Build the catalog client and loader, and the browse controller
//  6. Pick the theme: config value, then last stored choice, then Dracula
//  7. Start the TUI; its first command performs the single catalog fetch
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config.toml
//	       ├─────> logging.New()        JSON file logger
//	       ├─────> storage.Open()       Favorites + theme
//	       ├─────> state.NewStore()     Collection + favorites set
//	       ├─────> catalog.NewClient()  HTTP client
//	       ├─────> browse.NewController()
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Malformed config file or fetch_timeout
//   - Log directory that cannot be created
//   - Invalid catalog endpoint
//
// Everything after startup degrades instead: a failed fetch shows the bundled
// offline catalog, a corrupt favorites value starts an empty set, and a failed
// write keeps the change in memory and reports it in the footer.
package app
