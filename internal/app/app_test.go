package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/angkor/internal/state"
	"github.com/five82/angkor/internal/storage"
	"github.com/five82/angkor/internal/ui"
)

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		configured, stored, want string
	}{
		{"", "", "Dracula"},
		{"", "Slate", "Slate"},
		{"slate", "Dracula", "Slate"},
		{"Neon", "Slate", "Slate"},
		{"Neon", "", "Dracula"},
	}
	for _, tt := range tests {
		if got := resolveTheme(tt.configured, tt.stored); got != tt.want {
			t.Fatalf("resolveTheme(%q, %q) = %q, want %q", tt.configured, tt.stored, got, tt.want)
		}
	}
}

func TestSetup_WiresStorageAndFlags(t *testing.T) {
	dir := t.TempDir()
	storagePath := filepath.Join(dir, "storage.toml")
	logPath := filepath.Join(dir, "logs", "angkor.log")
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("endpoint = \"https://config.example/temples\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	seed, err := storage.Open(storagePath)
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	if err := seed.Set(state.FavoritesKey, `["a"]`); err != nil {
		t.Fatalf("seed favorites: %v", err)
	}
	if err := seed.Set(ui.ThemeKey, "Slate"); err != nil {
		t.Fatalf("seed theme: %v", err)
	}

	opts, cleanup, err := setup(context.Background(), Options{
		ConfigPath:  cfgPath,
		Endpoint:    "flag.example/temples",
		StoragePath: storagePath,
		LogFile:     logPath,
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer cleanup()

	if opts.ThemeName != "Slate" {
		t.Fatalf("ThemeName = %q, want Slate", opts.ThemeName)
	}
	if opts.LogPath != logPath {
		t.Fatalf("LogPath = %q, want %q", opts.LogPath, logPath)
	}
	if opts.Controller == nil || opts.Loader == nil || opts.Storage == nil {
		t.Fatalf("setup left components nil: %+v", opts)
	}
	if got, _ := opts.Storage.Get(state.FavoritesKey); got != `["a"]` {
		t.Fatalf("favorites = %q, want %q", got, `["a"]`)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestSetup_RejectsBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("endpoint = [\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := setup(context.Background(), Options{ConfigPath: cfgPath}); err == nil {
		t.Fatal("setup accepted malformed config")
	}
}
