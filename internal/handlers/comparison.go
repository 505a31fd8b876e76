package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// NewGetComparisonHandler returns the comparison session state.
// @Summary Comparison state
// @Tags comparison
// @Produce json
// @Success 200 {object} models.ComparisonState
// @Router /comparison [get]
func NewGetComparisonHandler(session ComparisonSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, session.Snapshot())
	}
}

// NewRefreshComparisonHandler re-fetches the comparison dataset.
// @Summary Refresh comparison
// @Description On failure the previous dataset is kept.
// @Tags comparison
// @Produce json
// @Success 200 {object} models.ComparisonState
// @Failure 409 {object} models.ErrorResponse "Superseded by a newer request"
// @Failure 502 {object} models.ErrorResponse "Failed to fetch comparison data. Please try again."
// @Router /comparison/refresh [post]
func NewRefreshComparisonHandler(session ComparisonSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := session.Refresh(r.Context())
		respondComparison(w, state, err)
	}
}

// NewSetComparisonBaseHandler changes the base currency and refreshes.
// @Summary Set comparison base
// @Tags comparison
// @Accept json
// @Produce json
// @Param request body models.CurrencyRequest true "Base currency"
// @Success 200 {object} models.ComparisonState
// @Failure 400 {object} models.ErrorResponse "Invalid request body or unknown currency"
// @Failure 502 {object} models.ErrorResponse "Failed to fetch comparison data. Please try again."
// @Router /comparison/base [put]
func NewSetComparisonBaseHandler(session ComparisonSession, catalog CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := decodeCurrency(w, r, catalog)
		if !ok {
			return
		}
		state, err := session.SetBase(r.Context(), code)
		respondComparison(w, state, err)
	}
}

// NewAddComparisonTargetHandler adds a target currency and refreshes.
// @Summary Add comparison target
// @Description Adding the base or an already selected currency changes nothing.
// @Tags comparison
// @Accept json
// @Produce json
// @Param request body models.CurrencyRequest true "Target currency"
// @Success 200 {object} models.ComparisonState
// @Failure 400 {object} models.ErrorResponse "Invalid request body or unknown currency"
// @Failure 502 {object} models.ErrorResponse "Failed to fetch comparison data. Please try again."
// @Router /comparison/targets [post]
func NewAddComparisonTargetHandler(session ComparisonSession, catalog CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := decodeCurrency(w, r, catalog)
		if !ok {
			return
		}
		state, err := session.AddTarget(r.Context(), code)
		respondComparison(w, state, err)
	}
}

// NewRemoveComparisonTargetHandler removes a target currency and refreshes.
// @Summary Remove comparison target
// @Tags comparison
// @Produce json
// @Param code path string true "Currency code" example(GBP)
// @Success 200 {object} models.ComparisonState
// @Failure 502 {object} models.ErrorResponse "Failed to fetch comparison data. Please try again."
// @Router /comparison/targets/{code} [delete]
func NewRemoveComparisonTargetHandler(session ComparisonSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := normalizeCode(chi.URLParam(r, "code"))
		state, err := session.RemoveTarget(r.Context(), code)
		respondComparison(w, state, err)
	}
}

func decodeCurrency(w http.ResponseWriter, r *http.Request, catalog CatalogProvider) (models.CurrencyCode, bool) {
	var req models.CurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Errorw("failed to decode currency request", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return "", false
	}

	code := normalizeCode(req.Currency.String())
	if !validCode(catalog, code) {
		logger.Log.Warnw("comparison request with unknown currency", "currency", code)
		writeError(w, http.StatusBadRequest, msgUnknownCurrency)
		return "", false
	}
	return code, true
}

func respondComparison(w http.ResponseWriter, state models.ComparisonState, err error) {
	if err != nil {
		if !errors.Is(err, models.ErrSuperseded) {
			logger.Log.Errorw("comparison request failed", "base", state.Base, "error", err)
		}
		writeServiceError(w, err, state.Error)
		return
	}
	writeJSON(w, http.StatusOK, state)
}
