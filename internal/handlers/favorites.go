package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// NewListFavoritesHandler returns the starred currencies.
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} models.FavoritesResponse
// @Router /favorites [get]
func NewListFavoritesHandler(favorites FavoritesManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.FavoritesResponse{Favorites: nonNil(favorites.Current())})
	}
}

// NewToggleFavoriteHandler stars or unstars a currency.
// @Summary Toggle favorite
// @Description Adds the currency to favorites when absent, removes it when present
// @Tags favorites
// @Produce json
// @Param code path string true "Currency code" example(EUR)
// @Success 200 {object} models.FavoritesResponse
// @Failure 400 {object} models.ErrorResponse "Unknown currency"
// @Router /favorites/{code} [post]
func NewToggleFavoriteHandler(favorites FavoritesManager, catalog CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := normalizeCode(chi.URLParam(r, "code"))
		if !validCode(catalog, code) {
			logger.Log.Warnw("toggle favorite for unknown currency", "currency", code)
			writeError(w, http.StatusBadRequest, msgUnknownCurrency)
			return
		}

		updated := favorites.Toggle(r.Context(), code)
		writeJSON(w, http.StatusOK, models.FavoritesResponse{Favorites: nonNil(updated)})
	}
}
