package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"penguins.dashboard/internal/filtering"
	"penguins.dashboard/internal/summary"
	"penguins.dashboard/internal/table"
)

type debugData struct {
	Title string
	Pre   string
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, r *http.Request, status int, title string, data interface{}) {
	webUI.render(w, r, status, "debug_index.html", debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	dataType := params.Get("dataType")

	state, fieldErrors := filtering.ParseState(params)
	if len(fieldErrors) > 0 {
		webUI.writeDebugData(w, r, http.StatusBadRequest, "Invalid filter parameters", fieldErrors)
		return
	}

	var data interface{}
	var title string

	switch dataType {
	case "dataset":
		data = webUI.Dataset.Rows()
		title = "Penguins - Dataset"
	case "species":
		data = webUI.Dataset.CountBySpecies()
		title = "Penguins - Rows per Species"
	case "state":
		data = state.Query()
		title = "Penguins - Filter State"
	case "filtered":
		data = webUI.FilteredView(state).Rows()
		title = "Penguins - Filtered View"
	case "summary":
		data = summary.Summarize(webUI.FilteredView(state))
		title = "Penguins - Summary"
	case "grid":
		data = table.Build(webUI.FilteredView(state), table.ParseColumnFilters(params)).Rows
		title = "Penguins - Data Grid"
	default:
		data = map[string]string{
			"error": "Please use one of the following: dataset, species, state, filtered, summary, grid.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, r, http.StatusOK, title, data)
}
