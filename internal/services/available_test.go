package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func TestAvailableFor(t *testing.T) {
	catalog := models.Catalog{"AUD", "EUR", "GBP", "INR", "JPY", "USD"}

	tests := []struct {
		name       string
		exclusions []models.CurrencyCode
		want       []models.CurrencyCode
	}{
		{
			name: "no exclusions",
			want: []models.CurrencyCode{"AUD", "EUR", "GBP", "INR", "JPY", "USD"},
		},
		{
			name:       "favorites excluded",
			exclusions: []models.CurrencyCode{"INR", "EUR"},
			want:       []models.CurrencyCode{"AUD", "GBP", "JPY", "USD"},
		},
		{
			name:       "base and targets excluded",
			exclusions: []models.CurrencyCode{"USD", "EUR", "GBP", "JPY"},
			want:       []models.CurrencyCode{"AUD", "INR"},
		},
		{
			name:       "unknown exclusion ignored",
			exclusions: []models.CurrencyCode{"XXX"},
			want:       []models.CurrencyCode{"AUD", "EUR", "GBP", "INR", "JPY", "USD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailableFor(catalog, tt.exclusions...))
		})
	}
}

func TestAvailableFor_EmptyCatalog(t *testing.T) {
	got := AvailableFor(nil, "USD")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
