package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func TestListCurrenciesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := handlers.NewMockCatalogProvider(ctrl)
	favorites := handlers.NewMockFavoritesManager(ctrl)

	current := models.Catalog{"EUR", "GBP", "INR", "USD"}
	catalog.EXPECT().Current().Return(current)
	favorites.EXPECT().Group(current).Return(
		[]models.CurrencyCode{"EUR", "INR"},
		[]models.CurrencyCode{"GBP", "USD"},
	)

	req := httptest.NewRequest(http.MethodGet, "/currencies", nil)
	w := httptest.NewRecorder()

	handlers.NewListCurrenciesHandler(catalog, favorites)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.Equal(t, map[string]interface{}{
		"favorites": []interface{}{"EUR", "INR"},
		"others":    []interface{}{"GBP", "USD"},
	}, decodeBody(t, w))
}

func TestListCurrenciesHandler_EmptyCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := handlers.NewMockCatalogProvider(ctrl)
	favorites := handlers.NewMockFavoritesManager(ctrl)

	catalog.EXPECT().Current().Return(nil)
	favorites.EXPECT().Group(gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/currencies", nil)
	w := httptest.NewRecorder()

	handlers.NewListCurrenciesHandler(catalog, favorites)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, map[string]interface{}{
		"favorites": []interface{}{},
		"others":    []interface{}{},
	}, decodeBody(t, w))
}

func TestRefreshCurrenciesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := handlers.NewMockCatalogProvider(ctrl)
	favorites := handlers.NewMockFavoritesManager(ctrl)

	handler := handlers.NewRefreshCurrenciesHandler(catalog, favorites)

	tests := []struct {
		name      string
		mockSetup func()
		wantCode  int
		wantBody  map[string]interface{}
	}{
		{
			name: "success",
			mockSetup: func() {
				fresh := models.Catalog{"AUD", "EUR"}
				catalog.EXPECT().Refresh(gomock.Any()).Return(fresh, nil)
				favorites.EXPECT().Group(fresh).Return([]models.CurrencyCode{"EUR"}, []models.CurrencyCode{"AUD"})
			},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{
				"favorites": []interface{}{"EUR"},
				"others":    []interface{}{"AUD"},
			},
		},
		{
			name: "gateway_failure",
			mockSetup: func() {
				catalog.EXPECT().Refresh(gomock.Any()).
					Return(nil, fmt.Errorf("%w: connection refused", models.ErrNetwork))
			},
			wantCode: http.StatusBadGateway,
			wantBody: map[string]interface{}{"error": "Failed to fetch currencies"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/currencies/refresh", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			require.Equal(t, tt.wantCode, w.Code)
			require.Equal(t, tt.wantBody, decodeBody(t, w))
		})
	}
}
