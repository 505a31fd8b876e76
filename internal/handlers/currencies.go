package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// NewListCurrenciesHandler returns the catalog grouped into favorites and others.
// @Summary List currencies
// @Description Returns the currency catalog, starred currencies first, both groups in catalog order
// @Tags currencies
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Router /currencies [get]
func NewListCurrenciesHandler(catalog CatalogProvider, favorites FavoritesManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		favs, others := favorites.Group(catalog.Current())
		writeJSON(w, http.StatusOK, models.CurrenciesResponse{
			Favorites: nonNil(favs),
			Others:    nonNil(others),
		})
	}
}

// NewRefreshCurrenciesHandler re-fetches the catalog from the rate provider.
// @Summary Refresh currencies
// @Description Re-fetches the catalog. On failure the previous catalog stays in use.
// @Tags currencies
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Failure 502 {object} models.ErrorResponse "Rate provider unavailable"
// @Router /currencies/refresh [post]
func NewRefreshCurrenciesHandler(catalog CatalogProvider, favorites FavoritesManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fresh, err := catalog.Refresh(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to refresh currency catalog", "error", err)
			writeServiceError(w, err, "Failed to fetch currencies")
			return
		}

		favs, others := favorites.Group(fresh)
		writeJSON(w, http.StatusOK, models.CurrenciesResponse{
			Favorites: nonNil(favs),
			Others:    nonNil(others),
		})
	}
}

func nonNil(codes []models.CurrencyCode) []models.CurrencyCode {
	if codes == nil {
		return []models.CurrencyCode{}
	}
	return codes
}
