package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubFetcher struct {
	items []Temple
	err   error
	calls int
}

func (s *stubFetcher) FetchTemples(context.Context) ([]Temple, error) {
	s.calls++
	return s.items, s.err
}

func TestLoader_ReturnsFetchedItems(t *testing.T) {
	stub := &stubFetcher{items: sampleTemples()}
	items, usedFallback := NewLoader(stub, nil).Load(context.Background())

	assert.False(t, usedFallback)
	assert.Equal(t, ids(sampleTemples()), ids(items))
	assert.Equal(t, 1, stub.calls)
}

func TestLoader_FallsBackAndLogsOnError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	stub := &stubFetcher{err: errors.New("connection refused")}

	items, usedFallback := NewLoader(stub, zap.New(core)).Load(context.Background())

	assert.True(t, usedFallback)
	require.Len(t, items, 1)
	assert.Equal(t, "angkor-wat", items[0].ID)
	assert.Equal(t, 1, stub.calls, "no retries")

	entries := logs.FilterMessage("catalog fetch failed, using fallback").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "connection refused", entries[0].ContextMap()["error"])
}

func TestLoader_NilFetcherUsesFallback(t *testing.T) {
	items, usedFallback := NewLoader(nil, nil).Load(context.Background())
	assert.True(t, usedFallback)
	assert.Len(t, items, 1)
}

func TestFallback_IsIndependentCopy(t *testing.T) {
	first := Fallback()
	require.Len(t, first, 1)
	assert.Equal(t, "Angkor Wat", first[0].Title)
	assert.Equal(t, "Siem Reap", first[0].Location.Province)
	assert.Contains(t, first[0].Tags, "sunrise")
	assert.NotEmpty(t, first[0].CoverURL())

	first[0].Tags[0] = "mutated"
	second := Fallback()
	assert.Equal(t, "temple", second[0].Tags[0])
}

func TestDecodeFallback_RejectsEmpty(t *testing.T) {
	_, err := decodeFallback([]byte("[]"))
	assert.Error(t, err)

	_, err = decodeFallback([]byte("{{"))
	assert.Error(t, err)
}

func TestParsedUpdatedAt(t *testing.T) {
	assert.True(t, Temple{}.ParsedUpdatedAt().IsZero())
	assert.True(t, Temple{UpdatedAt: "yesterday"}.ParsedUpdatedAt().IsZero())
	assert.Equal(t, 2024, Temple{UpdatedAt: "2024-03-09"}.ParsedUpdatedAt().Year())
}
