package models

import "github.com/shopspring/decimal"

// Display hints for comparison rows.
const (
	BaseColor   = "#4F46E5"
	TargetColor = "#7C3AED"
)

// ComparisonRow is one bar of the comparison chart.
// swagger:model ComparisonRow
type ComparisonRow struct {
	// example: EUR
	Currency CurrencyCode `json:"name"`

	// Rate relative to the base currency
	// example: 0.92
	Rate decimal.Decimal `json:"value"`

	// example: #7C3AED
	Color string `json:"fill"`
}

// ComparisonState is the externally visible view of the comparison session.
// swagger:model ComparisonState
type ComparisonState struct {
	// example: USD
	Base CurrencyCode `json:"base"`

	// Base of the displayed dataset. Differs from Base while a refresh
	// for a new base has not succeeded.
	// example: USD
	DatasetBase CurrencyCode `json:"data_base,omitempty"`

	Targets []CurrencyCode `json:"targets"`

	// Chart-ready dataset, base first
	Dataset []ComparisonRow `json:"data"`

	// Catalog currencies that may still be added as targets
	Candidates []CurrencyCode `json:"candidates"`

	Loading bool `json:"loading"`

	Error string `json:"error,omitempty"`
}
