package state

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/five82/angkor/internal/catalog"
	"github.com/five82/angkor/internal/storage"
)

// FavoritesKey is the storage key holding the JSON array of favorite ids.
const FavoritesKey = "temple-favorites"

// Store holds the fetched collection and the favorites set.
type Store struct {
	mu         sync.RWMutex
	collection []catalog.Temple
	favorites  []string
	local      storage.Local
	logger     *zap.Logger
}

// NewStore loads favorites from local. A missing or unparsable value starts
// an empty set. A nil local keeps favorites in memory only.
func NewStore(local storage.Local, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		local:     local,
		logger:    logger,
		favorites: loadFavorites(local, logger),
	}
}

// SetCollection replaces the collection.
func (s *Store) SetCollection(items []catalog.Temple) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection = catalog.CloneAll(items)
}

// Collection returns a copy of the current collection.
func (s *Store) Collection() []catalog.Temple {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.CloneAll(s.collection)
}

// Lookup finds a temple in the collection by id.
func (s *Store) Lookup(id string) (catalog.Temple, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.collection {
		if item.ID == id {
			return item.Clone(), true
		}
	}
	return catalog.Temple{}, false
}

// IsFavorite reports whether id is in the favorites set.
func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.favorites, id)
}

// Favorites returns the favorite ids in insertion order. Ids of temples no
// longer in the collection are kept.
func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites)
}

// FavoriteSet returns the favorites as a lookup set.
func (s *Store) FavoriteSet() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := make(map[string]bool, len(s.favorites))
	for _, id := range s.favorites {
		set[id] = true
	}
	return set
}

// FavoriteItems returns the collection entries whose id is a favorite, in
// collection order.
func (s *Store) FavoriteItems() []catalog.Temple {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []catalog.Temple
	for _, item := range s.collection {
		if slices.Contains(s.favorites, item.ID) {
			out = append(out, item.Clone())
		}
	}
	return out
}

// ToggleFavorite flips membership of id and writes the full set through to
// storage. It returns the new membership. When the write fails the in-memory
// change is kept and the error returned.
func (s *Store) ToggleFavorite(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var member bool
	if idx := slices.Index(s.favorites, id); idx >= 0 {
		s.favorites = slices.Delete(s.favorites, idx, idx+1)
	} else {
		s.favorites = append(s.favorites, id)
		member = true
	}

	if err := s.persistLocked(); err != nil {
		s.logger.Error("persist favorites", zap.String("id", id), zap.Error(err))
		return member, err
	}
	return member, nil
}

func (s *Store) persistLocked() error {
	if s.local == nil {
		return nil
	}
	ids := s.favorites
	if ids == nil {
		ids = []string{}
	}
	encoded, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := s.local.Set(FavoritesKey, string(encoded)); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

func loadFavorites(local storage.Local, logger *zap.Logger) []string {
	if local == nil {
		return nil
	}
	raw, ok := local.Get(FavoritesKey)
	if !ok {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.Warn("ignoring corrupt favorites", zap.String("key", FavoritesKey), zap.Error(err))
		return nil
	}
	// Keep first occurrence so the set stays a set.
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
