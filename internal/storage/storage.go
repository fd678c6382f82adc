// Package storage is a small persistent key/value store for client-local
// state such as favorites and the chosen theme. Values are opaque strings;
// callers own their encoding.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Local is the key/value contract shared by File and Memory.
type Local interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

const defaultStoragePath = "~/.local/share/angkor/storage.toml"

// DefaultPath returns the default storage file path.
func DefaultPath() string {
	return defaultStoragePath
}

// File persists every key to a single TOML document. Each Set rewrites the
// whole file; there is no batching.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

var _ Local = (*File)(nil)

// Open loads the store at path, creating nothing until the first Set. A
// missing or unreadable document yields an empty store; only an
// unresolvable path is an error.
func Open(path string) (*File, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	return &File{path: resolved, values: readValues(resolved)}, nil
}

// Path returns the resolved file location.
func (f *File) Path() string {
	return f.path
}

// Get returns the stored value for key.
func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.values[key]
	return value, ok
}

// Set stores value under key and writes the document to disk.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value
	return writeValues(f.path, f.values)
}

// Keys lists stored keys in sorted order.
func (f *File) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func readValues(path string) map[string]string {
	values := make(map[string]string)

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values
		}
		return values // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return values
	}

	var decoded map[string]string
	if err := toml.Unmarshal(bytes, &decoded); err != nil {
		return values
	}
	for k, v := range decoded {
		values[k] = v
	}
	return values
}

func writeValues(path string, values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	bytes, err := toml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal storage: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, bytes, 0o644); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace storage: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultStoragePath)
	}
	return ExpandPath(path)
}

// ExpandPath resolves a leading ~ against the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
