// Package config loads angkor's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/angkor/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// Command-line flags are applied afterwards with Config.Override.
//
// # TOML Format
//
//	endpoint = "https://angkor-api.onrender.com/temples"
//	storage_path = "~/.local/share/angkor/storage.toml"
//	log_file = "~/.local/share/angkor/angkor.log"
//	log_level = "info"
//	fetch_timeout = "15s"
//	theme = "Slate"
//
// Every field is optional. Tilde expansion is performed for storage_path and
// log_file. fetch_timeout is a Go duration string; when unset the catalog
// request has no timeout of its own and only ends when it resolves or the
// application quits.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and an invalid fetch_timeout. A missing
// file is not an error.
package config
