package webui

import (
	"bytes"
	"log/slog"
	"net/http"
	"sort"

	"penguins.dashboard/internal/filtering"
	"penguins.dashboard/internal/logging"
	"penguins.dashboard/internal/penguins"
	"penguins.dashboard/internal/summary"
	"penguins.dashboard/internal/table"
)

const pageTitle = "Penguins Dashboard"

type link struct {
	Label string
	Href  string
}

var sidebarLinks = []link{
	{Label: "GitHub Source", Href: "https://github.com/lauravos/cintel-07-tdash/"},
	{Label: "GitHub App", Href: "https://denisecase.github.io/cintel-07-tdash/"},
	{Label: "GitHub Issues", Href: "https://github.com/lauravos/cintel-07-tdash/issues"},
	{Label: "Go", Href: "https://go.dev/"},
	{Label: "Template: html/template", Href: "https://pkg.go.dev/html/template"},
	{Label: "See also", Href: "https://github.com/denisecase/pyshiny-penguins-dashboard-express"},
}

type speciesOption struct {
	Label   string
	Checked bool
}

type dashboardPage struct {
	Title       string
	Species     []speciesOption
	Mass        float64
	MassMin     float64
	MassMax     float64
	MassStep    float64
	Summary     summary.Text
	PlotURL     string
	Grid        table.Grid
	Links       []link
	FieldErrors []string
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	state, fieldErrors := filtering.ParseState(params)

	status := http.StatusOK
	var messages []string
	if len(fieldErrors) > 0 {
		status = http.StatusBadRequest
		state = filtering.DefaultState()
		messages = flattenFieldErrors(fieldErrors)
	}

	view := webUI.FilteredView(state)

	page := dashboardPage{
		Title:       pageTitle,
		Species:     speciesOptions(state),
		Mass:        state.MassCeiling,
		MassMin:     filtering.MassMin,
		MassMax:     filtering.MassMax,
		MassStep:    filtering.MassStep,
		Summary:     summary.Summarize(view).Text(),
		PlotURL:     "/plot.svg?" + state.Query().Encode(),
		Grid:        table.Build(view, table.ParseColumnFilters(params)),
		Links:       sidebarLinks,
		FieldErrors: messages,
	}

	webUI.render(w, r, status, "dashboard.html", page)
}

func speciesOptions(state filtering.State) []speciesOption {
	all := penguins.AllSpecies()
	options := make([]speciesOption, len(all))
	for i, s := range all {
		options[i] = speciesOption{Label: s.String(), Checked: state.Selected(s)}
	}
	return options
}

func flattenFieldErrors(fieldErrors map[string][]string) []string {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var messages []string
	for _, field := range fields {
		messages = append(messages, fieldErrors[field]...)
	}
	return messages
}

// render executes the template into a buffer first so a failing template
// never leaves a half-written page.
func (webUI *WebUI) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := webUI.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logging.LogError(webUI.Logger, "failed to render template", err,
			slog.String("template", name),
			slog.String("path", r.URL.Path),
			slog.String("component", "webui"))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
