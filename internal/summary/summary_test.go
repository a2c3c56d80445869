package summary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"penguins.dashboard/internal/filtering"
	"penguins.dashboard/internal/penguins"
)

func singleAdelie() *penguins.Dataset {
	return penguins.NewDataset([]penguins.Observation{
		{Species: penguins.Adelie, BillLengthMM: 39.1, BillDepthMM: 18.7, BodyMassG: 3500},
	})
}

func TestSummarizeSingleRow(t *testing.T) {
	view := filtering.Apply(singleAdelie(), filtering.NewState([]penguins.Species{penguins.Adelie}, 4000))

	s := Summarize(view)
	assert.Equal(t, 1, s.Count)
	assert.InDelta(t, 39.1, s.MeanBillLengthMM, 1e-9)
	assert.InDelta(t, 18.7, s.MeanBillDepthMM, 1e-9)

	text := s.Text()
	assert.Equal(t, "1", text.Count)
	assert.Equal(t, "39.1 mm", text.BillLength)
	assert.Equal(t, "18.7 mm", text.BillDepth)
}

func TestSummarizeEmptyView(t *testing.T) {
	view := filtering.Apply(singleAdelie(), filtering.NewState([]penguins.Species{penguins.Adelie}, 3000))

	s := Summarize(view)
	assert.Equal(t, 0, s.Count)
	assert.True(t, math.IsNaN(s.MeanBillLengthMM))
	assert.True(t, math.IsNaN(s.MeanBillDepthMM))

	text := s.Text()
	assert.Equal(t, "0", text.Count)
	assert.Equal(t, NoData, text.BillLength)
	assert.Equal(t, NoData, text.BillDepth)
}

func TestSummarizeNoSpeciesSelected(t *testing.T) {
	view := filtering.Apply(singleAdelie(), filtering.NewState(nil, filtering.MassMax))

	assert.NotPanics(t, func() {
		text := Summarize(view).Text()
		assert.Equal(t, "0", text.Count)
	})
}

func TestSummarizeSkipsMissingMeasurements(t *testing.T) {
	dataset := penguins.NewDataset([]penguins.Observation{
		{Species: penguins.Gentoo, BillLengthMM: 46.0, BillDepthMM: math.NaN(), BodyMassG: 4500},
		{Species: penguins.Gentoo, BillLengthMM: 50.0, BillDepthMM: 16.0, BodyMassG: 5000},
	})

	s := Summarize(filtering.Apply(dataset, filtering.DefaultState()))
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 48.0, s.MeanBillLengthMM, 1e-9)
	assert.InDelta(t, 16.0, s.MeanBillDepthMM, 1e-9)
}

func TestFormatMM(t *testing.T) {
	assert.Equal(t, "43.9 mm", FormatMM(43.92193))
	assert.Equal(t, "17.2 mm", FormatMM(17.15117))
	assert.Equal(t, NoData, FormatMM(math.NaN()))
	assert.Equal(t, NoData, FormatMM(math.Inf(1)))
}
