package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers the JSON endpoints. Each one is rate limited.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	limit := func(h http.HandlerFunc) http.Handler {
		if api.rateLimiter == nil {
			return h
		}
		return api.rateLimiter.Handler(h)
	}

	router.Handler(http.MethodGet, "/api/penguins.json", limit(api.penguinsHandler))
	router.Handler(http.MethodGet, "/api/summary.json", limit(api.summaryHandler))
	router.Handler(http.MethodGet, "/api/filter-options.json", limit(api.filterOptionsHandler))
	router.Handler(http.MethodGet, "/api/current-time.json", limit(api.currentTimeHandler))
}
