package app

import (
	"log/slog"

	"penguins.dashboard/internal/appconf"
	"penguins.dashboard/internal/filtering"
	"penguins.dashboard/internal/metrics"
	"penguins.dashboard/internal/penguins"
)

// Application holds the dependencies shared by the web UI and the JSON API.
// The dataset is loaded once before the Application is built and never
// replaced.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Dataset *penguins.Dataset
	Metrics *metrics.Metrics
}

// FilteredView derives a fresh view for the given state. Every render calls
// this; nothing is cached between requests.
func (app *Application) FilteredView(state filtering.State) filtering.View {
	view := filtering.Apply(app.Dataset, state)
	app.Metrics.ObserveFilter(view.Len())
	if app.Logger != nil {
		app.Logger.Debug("filtered view derived",
			slog.Any("species", state.SpeciesList()),
			slog.Float64("mass_ceiling", state.MassCeiling),
			slog.Int("rows", view.Len()))
	}
	return view
}
