package services

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// CatalogService holds the currency catalog fetched from the gateway.
type CatalogService struct {
	gateway RateGateway

	mu      sync.RWMutex
	catalog models.Catalog
}

// NewCatalogService creates an empty catalog backed by gateway.
func NewCatalogService(gateway RateGateway) *CatalogService {
	return &CatalogService{gateway: gateway}
}

// Refresh replaces the catalog with a fresh copy from the gateway.
// On failure the previous catalog stays in place and the error is returned.
func (s *CatalogService) Refresh(ctx context.Context) (models.Catalog, error) {
	catalog, err := s.gateway.ListCurrencies(ctx)
	if err != nil {
		logger.Log.Errorw("failed to refresh currency catalog", "error", err)
		return s.Current(), err
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	logger.Log.Infow("currency catalog refreshed", "size", len(catalog))
	return catalog, nil
}

// Current returns the last successfully fetched catalog.
func (s *CatalogService) Current() models.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Contains reports whether code is known. An unloaded catalog accepts every code.
func (s *CatalogService) Contains(code models.CurrencyCode) bool {
	catalog := s.Current()
	if len(catalog) == 0 {
		return true
	}
	return catalog.Contains(code)
}
