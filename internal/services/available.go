package services

import "github.com/sbilibin2017/gw-currency-converter/internal/models"

// AvailableFor returns the catalog entries not listed in exclusions, in catalog order.
func AvailableFor(catalog models.Catalog, exclusions ...models.CurrencyCode) []models.CurrencyCode {
	excluded := make(map[models.CurrencyCode]struct{}, len(exclusions))
	for _, code := range exclusions {
		excluded[code] = struct{}{}
	}

	out := make([]models.CurrencyCode, 0, len(catalog))
	for _, code := range catalog {
		if _, ok := excluded[code]; ok {
			continue
		}
		out = append(out, code)
	}
	return out
}
