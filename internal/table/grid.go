// Package table builds the filtered data grid and its per-column filters.
package table

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"penguins.dashboard/internal/filtering"
	"penguins.dashboard/internal/penguins"
	"penguins.dashboard/internal/utils"
)

const (
	missingCell  = "NA"
	filterPrefix = "filter_"
)

// Column is one displayed column of the grid.
type Column struct {
	Key   string
	Label string
	cell  func(penguins.Observation) string
}

// FilterParam is the query parameter holding this column's filter text.
func (c Column) FilterParam() string {
	return filterPrefix + c.Key
}

// Columns lists the grid columns in display order.
var Columns = []Column{
	{Key: "species", Label: "species", cell: func(o penguins.Observation) string { return o.Species.String() }},
	{Key: "island", Label: "island", cell: func(o penguins.Observation) string { return o.Island }},
	{Key: "bill_length_mm", Label: "bill_length_mm", cell: func(o penguins.Observation) string { return formatNumber(o.BillLengthMM) }},
	{Key: "bill_depth_mm", Label: "bill_depth_mm", cell: func(o penguins.Observation) string { return formatNumber(o.BillDepthMM) }},
	{Key: "body_mass_g", Label: "body_mass_g", cell: func(o penguins.Observation) string { return formatNumber(o.BodyMassG) }},
}

// ColumnFilters maps a column key to the text its cells must contain.
type ColumnFilters map[string]string

// ParseColumnFilters reads filter_<column> parameters. Values are sanitized;
// blank filters and unknown columns are dropped.
func ParseColumnFilters(params url.Values) ColumnFilters {
	filters := ColumnFilters{}
	for _, col := range Columns {
		if v := utils.SanitizeInput(params.Get(col.FilterParam())); v != "" {
			filters[col.Key] = v
		}
	}
	return filters
}

// Grid is the rendered table.
type Grid struct {
	Columns []Column
	Rows    [][]string
	Filters ColumnFilters
	// Total is the number of rows in the view before column filters.
	Total int
}

// Build renders the view as rows of cells, keeping only rows whose cells
// contain every column filter, compared case-insensitively.
func Build(view filtering.View, filters ColumnFilters) Grid {
	grid := Grid{Columns: Columns, Filters: filters, Total: view.Len()}

	needles := make(map[string]string, len(filters))
	for k, v := range filters {
		needles[k] = strings.ToLower(v)
	}

	for i := 0; i < view.Len(); i++ {
		row := view.At(i)
		cells := make([]string, len(Columns))
		keep := true
		for c, col := range Columns {
			cells[c] = col.cell(row)
			if needle, ok := needles[col.Key]; ok && !strings.Contains(strings.ToLower(cells[c]), needle) {
				keep = false
				break
			}
		}
		if keep {
			grid.Rows = append(grid.Rows, cells)
		}
	}

	return grid
}

// Value returns the filter text for a column, or "".
func (f ColumnFilters) Value(key string) string {
	return f[key]
}

func formatNumber(v float64) string {
	if math.IsNaN(v) {
		return missingCell
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
