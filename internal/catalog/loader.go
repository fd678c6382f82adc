package catalog

import (
	"context"

	"go.uber.org/zap"
)

// Loader resolves the collection shown at startup. It never fails: any
// fetch error is logged and replaced by Fallback.
type Loader struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// NewLoader wraps fetcher. A nil logger discards output.
func NewLoader(fetcher Fetcher, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fetcher: fetcher, logger: logger}
}

// Load fetches the collection once. The second return value reports whether
// the fallback collection was substituted.
func (l *Loader) Load(ctx context.Context) ([]Temple, bool) {
	if l == nil || l.fetcher == nil {
		return Fallback(), true
	}
	items, err := l.fetcher.FetchTemples(ctx)
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		if c, ok := l.fetcher.(*Client); ok {
			fields = append(fields, zap.String("endpoint", c.Endpoint()))
		}
		l.logger.Warn("catalog fetch failed, using fallback", fields...)
		return Fallback(), true
	}
	l.logger.Info("catalog loaded", zap.Int("temples", len(items)))
	return items, false
}
