package models

import "github.com/shopspring/decimal"

// CurrencyCode is an uppercase ISO-like currency identifier, e.g. "USD".
type CurrencyCode string

// String returns the code as a plain string.
func (c CurrencyCode) String() string {
	return string(c)
}

// Supported default currencies.
const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	INR CurrencyCode = "INR"
	GBP CurrencyCode = "GBP"
	JPY CurrencyCode = "JPY"
)

// Catalog is the ordered list of currency codes known to the rate provider.
// It is replaced wholesale on refresh and never mutated in place.
type Catalog []CurrencyCode

// Contains reports whether code is part of the catalog.
func (c Catalog) Contains(code CurrencyCode) bool {
	for _, cur := range c {
		if cur == code {
			return true
		}
	}
	return false
}

// Rate is a single exchange rate relative to some base currency.
type Rate struct {
	Currency CurrencyCode    `json:"currency"`
	Value    decimal.Decimal `json:"value"`
}
