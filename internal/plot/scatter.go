// Package plot renders the bill length versus bill depth scatterplot.
package plot

import (
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"penguins.dashboard/internal/filtering"
	"penguins.dashboard/internal/penguins"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480

	xAxisName = "bill_length_mm"
	yAxisName = "bill_depth_mm"
)

// speciesColors follows the seaborn default palette in hue order.
var speciesColors = map[penguins.Species]drawing.Color{
	penguins.Adelie:    drawing.ColorFromHex("1f77b4"),
	penguins.Gentoo:    drawing.ColorFromHex("ff7f0e"),
	penguins.Chinstrap: drawing.ColorFromHex("2ca02c"),
}

// Series is the set of points plotted for one species.
type Series struct {
	Species penguins.Species
	X       []float64
	Y       []float64
}

// Figure is everything needed to draw the scatterplot.
type Figure struct {
	Series []Series
	XRange Range
	YRange Range
}

type Range struct {
	Min float64
	Max float64
}

// Points is the total number of plotted points.
func (f Figure) Points() int {
	n := 0
	for _, s := range f.Series {
		n += len(s.X)
	}
	return n
}

func (f Figure) Empty() bool {
	return f.Points() == 0
}

// Scatter groups the view into one series per species, in the order species
// first appear in the view. Rows missing either bill measurement are skipped.
func Scatter(view filtering.View) Figure {
	bySpecies := make(map[penguins.Species]*Series)
	var order []penguins.Species

	xs := newExtent()
	ys := newExtent()

	for i := 0; i < view.Len(); i++ {
		row := view.At(i)
		if math.IsNaN(row.BillLengthMM) || math.IsNaN(row.BillDepthMM) {
			continue
		}
		s, ok := bySpecies[row.Species]
		if !ok {
			s = &Series{Species: row.Species}
			bySpecies[row.Species] = s
			order = append(order, row.Species)
		}
		s.X = append(s.X, row.BillLengthMM)
		s.Y = append(s.Y, row.BillDepthMM)
		xs.add(row.BillLengthMM)
		ys.add(row.BillDepthMM)
	}

	fig := Figure{XRange: xs.padded(), YRange: ys.padded()}
	for _, sp := range order {
		fig.Series = append(fig.Series, *bySpecies[sp])
	}
	return fig
}

// RenderSVG writes the figure as SVG. An empty figure is drawn as a
// placeholder since the chart library refuses to render without data.
func RenderSVG(w io.Writer, fig Figure, width, height int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	if fig.Empty() {
		return renderPlaceholder(w, width, height)
	}

	series := make([]chart.Series, 0, len(fig.Series))
	for _, s := range fig.Series {
		series = append(series, chart.ContinuousSeries{
			Name:    s.Species.String(),
			XValues: s.X,
			YValues: s.Y,
			Style:   pointStyle(speciesColors[s.Species]),
		})
	}

	graph := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  xAxisName,
			Range: &chart.ContinuousRange{Min: fig.XRange.Min, Max: fig.XRange.Max},
		},
		YAxis: chart.YAxis{
			Name:  yAxisName,
			Range: &chart.ContinuousRange{Min: fig.YRange.Min, Max: fig.YRange.Max},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("failed to render scatterplot: %w", err)
	}
	return nil
}

// pointStyle renders dots only, without connecting lines.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    3,
		DotColor:    col,
	}
}

func renderPlaceholder(w io.Writer, width, height int) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="white"/>`+
			`<text x="50%%" y="50%%" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="16" fill="gray">No data</text>`+
			`</svg>`,
		width, height, width, height)
	return err
}

type extent struct {
	min, max float64
}

func newExtent() *extent {
	return &extent{min: math.Inf(1), max: math.Inf(-1)}
}

func (e *extent) add(v float64) {
	e.min = math.Min(e.min, v)
	e.max = math.Max(e.max, v)
}

// padded widens the extent by 5% each side, and by one unit when every point
// shares the same value, so the axis never has a zero span.
func (e *extent) padded() Range {
	if math.IsInf(e.min, 1) {
		return Range{}
	}
	pad := (e.max - e.min) * 0.05
	if pad == 0 {
		pad = 1
	}
	return Range{Min: e.min - pad, Max: e.max + pad}
}
