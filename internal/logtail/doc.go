// Package logtail reads the tail of angkor's own JSON log so the UI can show
// recent diagnostics (a failed catalog fetch, a storage write error) without
// leaving the terminal.
package logtail
