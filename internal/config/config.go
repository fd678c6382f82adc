package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/angkor/internal/catalog"
	"github.com/five82/angkor/internal/storage"
)

// Config captures everything angkor reads from its config file.
type Config struct {
	Endpoint     string
	StoragePath  string
	LogFile      string
	LogLevel     string
	FetchTimeout time.Duration // zero means no timeout
	Theme        string        // empty keeps the stored or default theme
}

const (
	defaultConfigPath = "~/.config/angkor/config.toml"
	defaultLogFile    = "~/.local/share/angkor/angkor.log"
	defaultLogLevel   = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Endpoint:    catalog.DefaultEndpoint,
		StoragePath: mustExpand(storage.DefaultPath()),
		LogFile:     mustExpand(defaultLogFile),
		LogLevel:    defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint     string `toml:"endpoint"`
		StoragePath  string `toml:"storage_path"`
		LogFile      string `toml:"log_file"`
		LogLevel     string `toml:"log_level"`
		FetchTimeout string `toml:"fetch_timeout"`
		Theme        string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Endpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := strings.TrimSpace(raw.StoragePath); v != "" {
		cfg.StoragePath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.FetchTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse fetch_timeout: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("parse fetch_timeout: negative duration %s", d)
		}
		cfg.FetchTimeout = d
	}
	cfg.Theme = strings.TrimSpace(raw.Theme)

	return cfg, nil
}

// Override applies non-empty command-line values on top of c.
func (c Config) Override(endpoint, storagePath, logFile string) Config {
	if v := strings.TrimSpace(endpoint); v != "" {
		c.Endpoint = v
	}
	if v := strings.TrimSpace(storagePath); v != "" {
		c.StoragePath = mustExpand(v)
	}
	if v := strings.TrimSpace(logFile); v != "" {
		c.LogFile = mustExpand(v)
	}
	return c
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
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
