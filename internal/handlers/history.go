package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// NewListHistoryHandler returns past conversions, newest first.
// @Summary Conversion history
// @Description Returns at most the ten most recent successful conversions
// @Tags history
// @Produce json
// @Success 200 {object} models.HistoryResponse
// @Router /history [get]
func NewListHistoryHandler(history HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := history.Entries()
		if entries == nil {
			entries = []models.ConversionRecord{}
		}
		writeJSON(w, http.StatusOK, models.HistoryResponse{History: entries})
	}
}
