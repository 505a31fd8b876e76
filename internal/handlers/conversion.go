package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// NewGetConversionHandler returns the conversion session state.
// @Summary Conversion state
// @Tags conversion
// @Produce json
// @Success 200 {object} models.ConversionState
// @Router /conversion [get]
func NewGetConversionHandler(session ConversionSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, session.Snapshot())
	}
}

// NewSetConversionInputHandler updates amount, source and target.
// @Summary Set conversion inputs
// @Description Omitted fields keep their current value. The amount is validated only on convert.
// @Tags conversion
// @Accept json
// @Produce json
// @Param request body models.ConversionInputRequest true "Conversion inputs"
// @Success 200 {object} models.ConversionState
// @Failure 400 {object} models.ErrorResponse "Invalid request body or unknown currency"
// @Router /conversion [put]
func NewSetConversionInputHandler(session ConversionSession, catalog CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ConversionInputRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode conversion input", "error", err)
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		source := normalizeCode(req.Source.String())
		target := normalizeCode(req.Target.String())
		for _, code := range []models.CurrencyCode{source, target} {
			if code != "" && !catalog.Contains(code) {
				logger.Log.Warnw("conversion input with unknown currency", "currency", code)
				writeError(w, http.StatusBadRequest, msgUnknownCurrency)
				return
			}
		}

		writeJSON(w, http.StatusOK, session.SetInput(req.Amount, source, target))
	}
}

// NewConvertHandler runs a conversion with the current inputs.
// @Summary Convert
// @Description Validates the amount and converts it. Successful conversions are added to the history.
// @Tags conversion
// @Produce json
// @Success 200 {object} models.ConversionState
// @Failure 400 {object} models.ErrorResponse "Please enter an amount"
// @Failure 409 {object} models.ErrorResponse "Superseded by a newer request"
// @Failure 502 {object} models.ErrorResponse "Error during conversion. Please try again."
// @Router /conversion/convert [post]
func NewConvertHandler(session ConversionSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := session.Convert(r.Context())
		if err != nil {
			if !errors.Is(err, models.ErrValidation) && !errors.Is(err, models.ErrSuperseded) {
				logger.Log.Errorw("conversion request failed", "from", state.Source, "to", state.Target, "error", err)
			}
			writeServiceError(w, err, state.Error)
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}

// NewSwapHandler exchanges source and target without converting.
// @Summary Swap currencies
// @Tags conversion
// @Produce json
// @Success 200 {object} models.ConversionState
// @Router /conversion/swap [post]
func NewSwapHandler(session ConversionSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, session.Swap())
	}
}

// NewAcknowledgeHandler returns a finished session to idle.
// @Summary Acknowledge result
// @Tags conversion
// @Produce json
// @Success 200 {object} models.ConversionState
// @Router /conversion/ack [post]
func NewAcknowledgeHandler(session ConversionSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, session.Acknowledge())
	}
}
