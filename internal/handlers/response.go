package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const (
	msgInvalidBody     = "Invalid request body"
	msgUnknownCurrency = "Unknown currency"
	msgInternal        = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// statusFor maps the service error kinds onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, models.ErrNetwork),
		errors.Is(err, models.ErrMalformedResponse),
		errors.Is(err, models.ErrMissingRate):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError answers with the user-facing message recorded by the
// service when there is one.
func writeServiceError(w http.ResponseWriter, err error, userMsg string) {
	status := statusFor(err)
	msg := userMsg
	switch {
	case status == http.StatusConflict:
		msg = models.ErrSuperseded.Error()
	case msg != "":
	case status == http.StatusInternalServerError:
		msg = msgInternal
	default:
		msg = err.Error()
	}
	writeError(w, status, msg)
}

func normalizeCode(raw string) models.CurrencyCode {
	return models.CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
}

// validCode reports whether code is non-empty and known to the catalog.
func validCode(catalog CatalogProvider, code models.CurrencyCode) bool {
	return code != "" && catalog.Contains(code)
}
