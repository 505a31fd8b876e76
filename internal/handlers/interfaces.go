package handlers

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=handlers

import (
	"context"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// CatalogProvider exposes the currency catalog.
type CatalogProvider interface {
	Current() models.Catalog
	Refresh(ctx context.Context) (models.Catalog, error)
	Contains(code models.CurrencyCode) bool
}

// FavoritesManager reads and toggles starred currencies.
type FavoritesManager interface {
	Current() []models.CurrencyCode
	Toggle(ctx context.Context, code models.CurrencyCode) []models.CurrencyCode
	Group(catalog models.Catalog) (favorites, others []models.CurrencyCode)
}

// HistoryReader lists past conversions.
type HistoryReader interface {
	Entries() []models.ConversionRecord
}

// ConversionSession drives the single-pair conversion.
type ConversionSession interface {
	Snapshot() models.ConversionState
	SetInput(amount *string, source, target models.CurrencyCode) models.ConversionState
	Swap() models.ConversionState
	Acknowledge() models.ConversionState
	Convert(ctx context.Context) (models.ConversionState, error)
}

// ComparisonSession drives the multi-currency comparison.
type ComparisonSession interface {
	Snapshot() models.ComparisonState
	Refresh(ctx context.Context) (models.ComparisonState, error)
	SetBase(ctx context.Context, code models.CurrencyCode) (models.ComparisonState, error)
	AddTarget(ctx context.Context, code models.CurrencyCode) (models.ComparisonState, error)
	RemoveTarget(ctx context.Context, code models.CurrencyCode) (models.ComparisonState, error)
}
