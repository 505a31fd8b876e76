package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// MsgComparisonFailed is shown when a comparison refresh fails.
const MsgComparisonFailed = "Failed to fetch comparison data. Please try again."

// Comparison session defaults.
var (
	DefaultComparisonBase    = models.USD
	DefaultComparisonTargets = []models.CurrencyCode{models.EUR, models.GBP, models.JPY}
)

// ComparisonAggregator builds a chart-ready dataset comparing a base
// currency against a set of targets.
type ComparisonAggregator struct {
	gateway RateGateway
	catalog CatalogReader
	metrics *metrics.Metrics

	mu         sync.Mutex
	base       models.CurrencyCode
	targets    []models.CurrencyCode
	dataset    []models.ComparisonRow
	loading    bool
	errMsg     string
	generation uint64
}

// NewComparisonAggregator creates a session with the default base and targets
// and an empty dataset. catalog and m may be nil.
func NewComparisonAggregator(gateway RateGateway, catalog CatalogReader, m *metrics.Metrics) *ComparisonAggregator {
	return &ComparisonAggregator{
		gateway: gateway,
		catalog: catalog,
		metrics: m,
		base:    DefaultComparisonBase,
		targets: slices.Clone(DefaultComparisonTargets),
	}
}

// Snapshot returns the current comparison state.
func (a *ComparisonAggregator) Snapshot() models.ComparisonState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

func (a *ComparisonAggregator) snapshotLocked() models.ComparisonState {
	var catalog models.Catalog
	if a.catalog != nil {
		catalog = a.catalog.Current()
	}
	var datasetBase models.CurrencyCode
	if len(a.dataset) > 0 {
		datasetBase = a.dataset[0].Currency
	}
	return models.ComparisonState{
		Base:        a.base,
		DatasetBase: datasetBase,
		Targets:     append([]models.CurrencyCode{}, a.targets...),
		Dataset:     append([]models.ComparisonRow{}, a.dataset...),
		Candidates:  AvailableFor(catalog, append([]models.CurrencyCode{a.base}, a.targets...)...),
		Loading:     a.loading,
		Error:       a.errMsg,
	}
}

// Refresh replaces the dataset with a fresh rate snapshot. With no targets
// the dataset is cleared without a gateway call. On failure the previous
// dataset is kept and the error is returned.
func (a *ComparisonAggregator) Refresh(ctx context.Context) (models.ComparisonState, error) {
	a.mu.Lock()
	a.generation++
	token := a.generation
	base, targets := a.base, slices.Clone(a.targets)

	if len(targets) == 0 {
		a.dataset = nil
		a.loading = false
		a.errMsg = ""
		state := a.snapshotLocked()
		a.mu.Unlock()
		return state, nil
	}

	a.loading = true
	a.errMsg = ""
	a.mu.Unlock()

	rates, err := a.gateway.GetRates(ctx, base, targets)

	a.mu.Lock()
	defer a.mu.Unlock()

	if token != a.generation {
		logger.Log.Infow("discarding superseded comparison", "base", base, "targets", targets, "token", token)
		a.metrics.ComparisonRefresh(metrics.OutcomeStale)
		return a.snapshotLocked(), fmt.Errorf("%w: comparison for %s", models.ErrSuperseded, base)
	}

	a.loading = false
	if err != nil {
		a.errMsg = MsgComparisonFailed
		logger.Log.Errorw("comparison refresh failed", "base", base, "targets", targets, "error", err)
		a.metrics.ComparisonRefresh(metrics.OutcomeError)
		return a.snapshotLocked(), err
	}

	a.dataset = buildDataset(base, rates)
	a.metrics.ComparisonRefresh(metrics.OutcomeSuccess)
	return a.snapshotLocked(), nil
}

// SetBase changes the base currency and refreshes. A target equal to the
// new base is dropped from the selection.
func (a *ComparisonAggregator) SetBase(ctx context.Context, code models.CurrencyCode) (models.ComparisonState, error) {
	a.mu.Lock()
	a.base = code
	a.targets = slices.DeleteFunc(a.targets, func(c models.CurrencyCode) bool { return c == code })
	a.mu.Unlock()

	return a.Refresh(ctx)
}

// AddTarget selects code for comparison and refreshes. Adding the base or
// an already selected code is a no-op.
func (a *ComparisonAggregator) AddTarget(ctx context.Context, code models.CurrencyCode) (models.ComparisonState, error) {
	a.mu.Lock()
	if code == a.base || slices.Contains(a.targets, code) {
		state := a.snapshotLocked()
		a.mu.Unlock()
		return state, nil
	}
	a.targets = append(a.targets, code)
	a.mu.Unlock()

	return a.Refresh(ctx)
}

// RemoveTarget deselects code. The dataset is refreshed while targets
// remain and cleared otherwise.
func (a *ComparisonAggregator) RemoveTarget(ctx context.Context, code models.CurrencyCode) (models.ComparisonState, error) {
	a.mu.Lock()
	i := slices.Index(a.targets, code)
	if i < 0 {
		state := a.snapshotLocked()
		a.mu.Unlock()
		return state, nil
	}
	a.targets = slices.Delete(a.targets, i, i+1)
	a.mu.Unlock()

	return a.Refresh(ctx)
}

func buildDataset(base models.CurrencyCode, rates []models.Rate) []models.ComparisonRow {
	rows := make([]models.ComparisonRow, 0, len(rates)+1)
	rows = append(rows, models.ComparisonRow{
		Currency: base,
		Rate:     decimal.NewFromInt(1),
		Color:    models.BaseColor,
	})
	for _, rate := range rates {
		if rate.Currency == base {
			continue
		}
		rows = append(rows, models.ComparisonRow{
			Currency: rate.Currency,
			Rate:     rate.Value,
			Color:    models.TargetColor,
		})
	}
	return rows
}
