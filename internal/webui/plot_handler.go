package webui

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"penguins.dashboard/internal/filtering"
	"penguins.dashboard/internal/logging"
	"penguins.dashboard/internal/plot"
)

const (
	minPlotSize = 100
	maxPlotSize = 2000
)

func (webUI *WebUI) plotHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	state, fieldErrors := filtering.ParseState(params)
	if len(fieldErrors) > 0 {
		http.Error(w, "invalid filter parameters", http.StatusBadRequest)
		return
	}

	width := plotDimension(params.Get("w"), plot.DefaultWidth)
	height := plotDimension(params.Get("h"), plot.DefaultHeight)

	fig := plot.Scatter(webUI.FilteredView(state))

	var buf bytes.Buffer
	if err := plot.RenderSVG(&buf, fig, width, height); err != nil {
		logging.LogError(webUI.Logger, "failed to render scatterplot", err,
			slog.Int("points", fig.Points()),
			slog.String("component", "webui"))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

// plotDimension parses a size parameter, clamped to a sane range.
func plotDimension(raw string, fallback int) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return max(minPlotSize, min(maxPlotSize, v))
}
