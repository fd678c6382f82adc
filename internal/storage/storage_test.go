package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Open("")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if _, ok := s.Get("temple-favorites"); ok {
		t.Fatalf("Get on empty store returned ok=true")
	}
	want := filepath.Join(home, ".local", "share", "angkor", "storage.toml")
	if s.Path() != want {
		t.Fatalf("Path = %q, want %q", s.Path(), want)
	}
}

func TestSet_CreatesFileAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.toml")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := s.Set("temple-favorites", `["angkor-wat","bayon"]`); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := s.Set("theme", "Slate"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if got, _ := reopened.Get("temple-favorites"); got != `["angkor-wat","bayon"]` {
		t.Fatalf("temple-favorites = %q, want %q", got, `["angkor-wat","bayon"]`)
	}
	if got, _ := reopened.Get("theme"); got != "Slate" {
		t.Fatalf("theme = %q, want %q", got, "Slate")
	}
	keys := reopened.Keys()
	if len(keys) != 2 || keys[0] != "temple-favorites" || keys[1] != "theme" {
		t.Fatalf("Keys = %v, want [temple-favorites theme]", keys)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestOpen_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if len(s.Keys()) != 0 {
		t.Fatalf("Keys = %v, want none", s.Keys())
	}

	// The next write replaces the corrupt document.
	if err := s.Set("theme", "Dracula"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	reopened, _ := Open(path)
	if got, _ := reopened.Get("theme"); got != "Dracula" {
		t.Fatalf("theme = %q, want Dracula", got)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "a/b"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory(map[string]string{"a": "1"})
	if got, ok := m.Get("a"); !ok || got != "1" {
		t.Fatalf("Get(a) = %q, %v; want 1, true", got, ok)
	}
	if err := m.Set("b", "2"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	m.FailWrites = true
	if err := m.Set("c", "3"); err != ErrWriteFailed {
		t.Fatalf("Set error = %v, want ErrWriteFailed", err)
	}
	if _, ok := m.Get("c"); ok {
		t.Fatalf("failed Set stored a value")
	}

	var zero Memory
	if err := zero.Set("k", "v"); err != nil {
		t.Fatalf("Set on zero Memory returned error: %v", err)
	}
}
