package restapi

import (
	"net/http"

	"penguins.dashboard/internal/filtering"
	"penguins.dashboard/internal/models"
	"penguins.dashboard/internal/summary"
)

// penguinsHandler returns the filtered rows together with their summary.
func (api *RestAPI) penguinsHandler(w http.ResponseWriter, r *http.Request) {
	state, fieldErrors := filtering.ParseState(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	view := api.FilteredView(state)
	api.sendResponse(w, r, models.NewEntryResponse(models.NewPenguinsEntry(state, view)))
}

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	state, fieldErrors := filtering.ParseState(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	view := api.FilteredView(state)
	api.sendResponse(w, r, models.NewEntryResponse(models.NewSummaryModel(summary.Summarize(view))))
}

func (api *RestAPI) filterOptionsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(models.NewFilterOptionsModel()))
}
