package models

// ErrorResponse is the body of every failed API request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid conversion data received
	Error string `json:"error"`
}

// CurrenciesResponse lists the catalog with favorites grouped first.
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	Favorites []CurrencyCode `json:"favorites"`
	Others    []CurrencyCode `json:"others"`
}

// FavoritesResponse lists the starred currencies.
// swagger:model FavoritesResponse
type FavoritesResponse struct {
	Favorites []CurrencyCode `json:"favorites"`
}

// HistoryResponse lists past conversions, newest first.
// swagger:model HistoryResponse
type HistoryResponse struct {
	History []ConversionRecord `json:"history"`
}

// ConversionInputRequest updates the conversion session inputs.
// Empty fields leave the current value untouched.
// swagger:model ConversionInputRequest
type ConversionInputRequest struct {
	// example: 100
	Amount *string `json:"amount,omitempty"`

	// example: USD
	Source CurrencyCode `json:"from,omitempty"`

	// example: EUR
	Target CurrencyCode `json:"to,omitempty"`
}

// CurrencyRequest carries a single currency code.
// swagger:model CurrencyRequest
type CurrencyRequest struct {
	// required: true
	// example: GBP
	Currency CurrencyCode `json:"currency"`
}
