package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Conversion is the gateway result for a single-pair conversion.
type Conversion struct {
	Rate            decimal.Decimal `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
}

// ConversionRecord is one entry of the conversion history. Immutable once created.
// swagger:model ConversionRecord
type ConversionRecord struct {
	ID uuid.UUID `json:"id"`

	// Source currency
	// example: USD
	Source CurrencyCode `json:"from"`

	// Target currency
	// example: EUR
	Target CurrencyCode `json:"to"`

	// Converted amount
	// example: 100
	Amount decimal.Decimal `json:"amount"`

	// Formatted result
	// example: 92 EUR
	Result string `json:"result"`

	Timestamp time.Time `json:"date"`
}

// ConversionStatus is the state of the conversion session.
type ConversionStatus string

const (
	ConversionIdle       ConversionStatus = "idle"
	ConversionValidating ConversionStatus = "validating"
	ConversionFetching   ConversionStatus = "fetching"
	ConversionSucceeded  ConversionStatus = "succeeded"
	ConversionFailed     ConversionStatus = "failed"
)

// ConversionState is the externally visible view of the conversion session.
// swagger:model ConversionState
type ConversionState struct {
	// Raw amount as entered
	// example: 100
	Amount string `json:"amount"`

	// example: USD
	Source CurrencyCode `json:"from"`

	// example: EUR
	Target CurrencyCode `json:"to"`

	// example: succeeded
	Status ConversionStatus `json:"status"`

	// Formatted result of the last successful conversion
	// example: 92 EUR
	Result string `json:"result,omitempty"`

	// User-facing error of the last attempt
	Error string `json:"error,omitempty"`

	// Set while a conversion request is outstanding
	InFlight bool `json:"in_flight"`
}
