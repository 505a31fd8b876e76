package services

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// FavoritesKey is the store key of the favorites set.
const FavoritesKey = "favorites"

// DefaultFavorites seeds the set when nothing usable is persisted.
var DefaultFavorites = []models.CurrencyCode{models.INR, models.EUR}

// FavoritesService owns the set of starred currencies.
type FavoritesService struct {
	store   KeyValueStore
	metrics *metrics.Metrics

	mu        sync.RWMutex
	favorites []models.CurrencyCode
}

// NewFavoritesService creates a registry seeded with DefaultFavorites until Load is called.
func NewFavoritesService(store KeyValueStore, m *metrics.Metrics) *FavoritesService {
	return &FavoritesService{
		store:     store,
		metrics:   m,
		favorites: slices.Clone(DefaultFavorites),
	}
}

// Load reads the persisted favorites. A missing, unreadable or corrupt
// value yields DefaultFavorites.
func (s *FavoritesService) Load(ctx context.Context) []models.CurrencyCode {
	favorites := s.read(ctx)

	s.mu.Lock()
	s.favorites = favorites
	s.mu.Unlock()

	return slices.Clone(favorites)
}

func (s *FavoritesService) read(ctx context.Context) []models.CurrencyCode {
	data, ok, err := s.store.Get(ctx, FavoritesKey)
	if err != nil {
		logger.Log.Warnw("failed to read favorites, using defaults", "error", err)
		s.metrics.PersistenceFailure(FavoritesKey)
		return slices.Clone(DefaultFavorites)
	}
	if !ok {
		return slices.Clone(DefaultFavorites)
	}

	var favorites []models.CurrencyCode
	if err := json.Unmarshal(data, &favorites); err != nil || favorites == nil {
		logger.Log.Warnw("corrupt favorites payload, using defaults", "error", err)
		return slices.Clone(DefaultFavorites)
	}
	return dedupe(favorites)
}

// Current returns a copy of the favorites in insertion order.
func (s *FavoritesService) Current() []models.CurrencyCode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites)
}

// Contains reports whether code is starred.
func (s *FavoritesService) Contains(code models.CurrencyCode) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.favorites, code)
}

// Toggle adds code if absent or removes it if present, then persists the
// result. Store failures are logged and the change stays session-only.
func (s *FavoritesService) Toggle(ctx context.Context, code models.CurrencyCode) []models.CurrencyCode {
	s.mu.Lock()
	var next []models.CurrencyCode
	if i := slices.Index(s.favorites, code); i >= 0 {
		next = slices.Delete(slices.Clone(s.favorites), i, i+1)
	} else {
		next = append(slices.Clone(s.favorites), code)
	}
	s.favorites = next
	s.mu.Unlock()

	s.persist(ctx, next)
	return slices.Clone(next)
}

func (s *FavoritesService) persist(ctx context.Context, favorites []models.CurrencyCode) {
	data, err := json.Marshal(favorites)
	if err == nil {
		err = s.store.Set(ctx, FavoritesKey, data)
	}
	if err != nil {
		logger.Log.Errorw("failed to persist favorites", "favorites", favorites, "error", err)
		s.metrics.PersistenceFailure(FavoritesKey)
	}
}

// Group splits catalog into the favorites and the remaining currencies.
// Favorites keep their insertion order.
func (s *FavoritesService) Group(catalog models.Catalog) (favorites, others []models.CurrencyCode) {
	favorites = s.Current()
	return favorites, AvailableFor(catalog, favorites...)
}

func dedupe(codes []models.CurrencyCode) []models.CurrencyCode {
	out := make([]models.CurrencyCode, 0, len(codes))
	for _, code := range codes {
		if code == "" || slices.Contains(out, code) {
			continue
		}
		out = append(out, code)
	}
	return out
}
