package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"penguins.dashboard/internal/app"
	"penguins.dashboard/internal/restapi"
	"penguins.dashboard/internal/webui"
)

const unmatchedRoute = "unmatched"

func routes(application *app.Application, api *restapi.RestAPI, ui *webui.WebUI) http.Handler {
	router := httprouter.New()
	router.RedirectTrailingSlash = true
	router.NotFound = http.HandlerFunc(api.SendNotFound)

	ui.SetRoutes(router)
	api.SetRoutes(router)
	router.Handler(http.MethodGet, "/metrics", application.Metrics.Handler())

	// Every registered path is static, so the matched path is the route.
	label := func(r *http.Request) string {
		if handle, _, _ := router.Lookup(r.Method, r.URL.Path); handle != nil {
			return r.URL.Path
		}
		return unmatchedRoute
	}

	var handler http.Handler = router
	handler = restapi.CompressionMiddleware(handler)
	handler = restapi.SecurityHeaders(handler)
	handler = restapi.NewRequestLoggingMiddleware(application.Logger, application.Metrics, label)(handler)
	return handler
}
