package table

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"penguins.dashboard/internal/filtering"
	"penguins.dashboard/internal/penguins"
)

func testView() filtering.View {
	dataset := penguins.NewDataset([]penguins.Observation{
		{Species: penguins.Adelie, Island: "Torgersen", BillLengthMM: 39.1, BillDepthMM: 18.7, BodyMassG: 3750},
		{Species: penguins.Gentoo, Island: "Biscoe", BillLengthMM: 50, BillDepthMM: 16.3, BodyMassG: 5700},
		{Species: penguins.Adelie, Island: "Dream", BillLengthMM: math.NaN(), BillDepthMM: 18.3, BodyMassG: 3400},
	})
	return filtering.Apply(dataset, filtering.DefaultState())
}

func TestBuild(t *testing.T) {
	grid := Build(testView(), nil)

	require.Len(t, grid.Columns, 5)
	assert.Equal(t, "species", grid.Columns[0].Label)
	assert.Equal(t, "body_mass_g", grid.Columns[4].Label)
	assert.Equal(t, 3, grid.Total)

	require.Len(t, grid.Rows, 3)
	assert.Equal(t, []string{"Adelie", "Torgersen", "39.1", "18.7", "3750"}, grid.Rows[0])
	assert.Equal(t, []string{"Gentoo", "Biscoe", "50", "16.3", "5700"}, grid.Rows[1])
	assert.Equal(t, "NA", grid.Rows[2][2])
}

func TestBuildWithColumnFilters(t *testing.T) {
	grid := Build(testView(), ColumnFilters{"species": "adel"})
	require.Len(t, grid.Rows, 2)
	assert.Equal(t, 3, grid.Total)

	grid = Build(testView(), ColumnFilters{"species": "adelie", "island": "DREAM"})
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, "Dream", grid.Rows[0][1])

	grid = Build(testView(), ColumnFilters{"body_mass_g": "99"})
	assert.Empty(t, grid.Rows)
}

func TestBuildEmptyView(t *testing.T) {
	dataset := penguins.NewDataset(nil)
	grid := Build(filtering.Apply(dataset, filtering.DefaultState()), nil)
	assert.Empty(t, grid.Rows)
	assert.Zero(t, grid.Total)
}

func TestParseColumnFilters(t *testing.T) {
	params := url.Values{}
	params.Set("filter_island", " Biscoe ")
	params.Set("filter_species", "")
	params.Set("filter_sex", "male")
	params.Set("filter_body_mass_g", "<b></b>")

	filters := ParseColumnFilters(params)
	assert.Equal(t, ColumnFilters{"island": "Biscoe"}, filters)
	assert.Equal(t, "Biscoe", filters.Value("island"))
	assert.Equal(t, "", filters.Value("species"))
}
