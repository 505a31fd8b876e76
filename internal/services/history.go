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

const (
	// HistoryKey is the store key of the conversion history.
	HistoryKey = "conversionHistory"
	// HistoryLimit caps the number of retained conversions.
	HistoryLimit = 10
)

// HistoryService is the append-only, size-bounded log of conversions.
type HistoryService struct {
	store   KeyValueStore
	metrics *metrics.Metrics

	mu      sync.RWMutex
	entries []models.ConversionRecord
}

// NewHistoryService creates an empty history log.
func NewHistoryService(store KeyValueStore, m *metrics.Metrics) *HistoryService {
	return &HistoryService{store: store, metrics: m}
}

// Load reads the persisted history, newest first. A missing, unreadable or
// corrupt value yields an empty log.
func (s *HistoryService) Load(ctx context.Context) []models.ConversionRecord {
	entries := s.read(ctx)

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	return slices.Clone(entries)
}

func (s *HistoryService) read(ctx context.Context) []models.ConversionRecord {
	data, ok, err := s.store.Get(ctx, HistoryKey)
	if err != nil {
		logger.Log.Warnw("failed to read conversion history, starting empty", "error", err)
		s.metrics.PersistenceFailure(HistoryKey)
		return []models.ConversionRecord{}
	}
	if !ok {
		return []models.ConversionRecord{}
	}

	var entries []models.ConversionRecord
	if err := json.Unmarshal(data, &entries); err != nil || entries == nil {
		logger.Log.Warnw("corrupt conversion history payload, starting empty", "error", err)
		return []models.ConversionRecord{}
	}
	if len(entries) > HistoryLimit {
		entries = entries[:HistoryLimit]
	}
	return entries
}

// Entries returns a copy of the log, newest first.
func (s *HistoryService) Entries() []models.ConversionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// Append prepends record, keeps the newest HistoryLimit entries and
// persists the result. Store failures are logged, never returned.
func (s *HistoryService) Append(ctx context.Context, record models.ConversionRecord) []models.ConversionRecord {
	s.mu.Lock()
	next := make([]models.ConversionRecord, 0, HistoryLimit)
	next = append(next, record)
	for _, entry := range s.entries {
		if len(next) == HistoryLimit {
			break
		}
		next = append(next, entry)
	}
	s.entries = next
	s.mu.Unlock()

	data, err := json.Marshal(next)
	if err == nil {
		err = s.store.Set(ctx, HistoryKey, data)
	}
	if err != nil {
		logger.Log.Errorw("failed to persist conversion history", "record_id", record.ID, "error", err)
		s.metrics.PersistenceFailure(HistoryKey)
	}

	return slices.Clone(next)
}
