// Package summary computes the scalar value boxes shown above the plot.
package summary

import (
	"fmt"
	"math"
	"strconv"

	"penguins.dashboard/internal/filtering"
)

// NoData is displayed in place of a mean that has nothing to average.
const NoData = "no data"

// Summary holds the scalar aggregates of a filtered view. Means are NaN when
// no row in the view has the measurement.
type Summary struct {
	Count            int
	MeanBillLengthMM float64
	MeanBillDepthMM  float64
}

// Text is the rendered form of a Summary.
type Text struct {
	Count      string
	BillLength string
	BillDepth  string
}

// Summarize aggregates the view. Missing measurements are skipped, so a mean
// is taken over the rows that have the value.
func Summarize(view filtering.View) Summary {
	var lengthSum, depthSum float64
	var lengthN, depthN int

	for i := 0; i < view.Len(); i++ {
		row := view.At(i)
		if !math.IsNaN(row.BillLengthMM) {
			lengthSum += row.BillLengthMM
			lengthN++
		}
		if !math.IsNaN(row.BillDepthMM) {
			depthSum += row.BillDepthMM
			depthN++
		}
	}

	return Summary{
		Count:            view.Len(),
		MeanBillLengthMM: mean(lengthSum, lengthN),
		MeanBillDepthMM:  mean(depthSum, depthN),
	}
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// FormatMM renders a length in millimetres with one decimal place.
func FormatMM(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NoData
	}
	return fmt.Sprintf("%.1f mm", v)
}

func (s Summary) Text() Text {
	return Text{
		Count:      strconv.Itoa(s.Count),
		BillLength: FormatMM(s.MeanBillLengthMM),
		BillDepth:  FormatMM(s.MeanBillDepthMM),
	}
}
