package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Services bundles what the API routes are served from.
type Services struct {
	Catalog    CatalogProvider
	Favorites  FavoritesManager
	History    HistoryReader
	Conversion ConversionSession
	Comparison ComparisonSession
}

// RegisterRoutes mounts the API on r. The write middlewares wrap only the
// routes that may persist state.
func RegisterRoutes(r chi.Router, svc Services, writeMiddlewares ...func(http.Handler) http.Handler) {
	// Read-only routes
	r.Get("/currencies", NewListCurrenciesHandler(svc.Catalog, svc.Favorites))
	r.Get("/favorites", NewListFavoritesHandler(svc.Favorites))
	r.Get("/history", NewListHistoryHandler(svc.History))
	r.Get("/conversion", NewGetConversionHandler(svc.Conversion))
	r.Get("/comparison", NewGetComparisonHandler(svc.Comparison))

	// Session routes
	r.Post("/currencies/refresh", NewRefreshCurrenciesHandler(svc.Catalog, svc.Favorites))
	r.Put("/conversion", NewSetConversionInputHandler(svc.Conversion, svc.Catalog))
	r.Post("/conversion/swap", NewSwapHandler(svc.Conversion))
	r.Post("/conversion/ack", NewAcknowledgeHandler(svc.Conversion))
	r.Post("/comparison/refresh", NewRefreshComparisonHandler(svc.Comparison))
	r.Put("/comparison/base", NewSetComparisonBaseHandler(svc.Comparison, svc.Catalog))
	r.Post("/comparison/targets", NewAddComparisonTargetHandler(svc.Comparison, svc.Catalog))
	r.Delete("/comparison/targets/{code}", NewRemoveComparisonTargetHandler(svc.Comparison))

	// Persisting routes
	r.Group(func(r chi.Router) {
		r.Use(writeMiddlewares...)
		r.Post("/favorites/{code}", NewToggleFavoriteHandler(svc.Favorites, svc.Catalog))
		r.Post("/conversion/convert", NewConvertHandler(svc.Conversion))
	})
}
