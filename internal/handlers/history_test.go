package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func TestListHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	history := handlers.NewMockHistoryReader(ctrl)

	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	history.EXPECT().Entries().Return([]models.ConversionRecord{{
		ID:        id,
		Source:    models.USD,
		Target:    models.EUR,
		Amount:    decimal.NewFromInt(100),
		Result:    "92 EUR",
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}})

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	w := httptest.NewRecorder()

	handlers.NewListHistoryHandler(history)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"history":[{
		"id":"550e8400-e29b-41d4-a716-446655440000",
		"from":"USD",
		"to":"EUR",
		"amount":"100",
		"result":"92 EUR",
		"date":"2024-05-01T12:00:00Z"
	}]}`, w.Body.String())
}

func TestListHistoryHandler_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	history := handlers.NewMockHistoryReader(ctrl)
	history.EXPECT().Entries().Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	w := httptest.NewRecorder()

	handlers.NewListHistoryHandler(history)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"history":[]}`, w.Body.String())
}
