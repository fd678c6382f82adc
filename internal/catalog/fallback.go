package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed fallback.yaml
var fallbackYAML []byte

var fallbackTemples = mustDecodeFallback(fallbackYAML)

// Fallback returns the built-in collection shown when the endpoint can't be
// reached. Each call returns a fresh copy.
func Fallback() []Temple {
	return CloneAll(fallbackTemples)
}

func mustDecodeFallback(data []byte) []Temple {
	items, err := decodeFallback(data)
	if err != nil {
		panic(err)
	}
	return items
}

func decodeFallback(data []byte) ([]Temple, error) {
	var items []Temple
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode fallback: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("decode fallback: no temples")
	}
	return items, nil
}
