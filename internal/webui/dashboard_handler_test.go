package webui

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"penguins.dashboard/internal/filtering"
)

func TestDashboardHandlerDefaults(t *testing.T) {
	ui := createTestWebUI(t)
	recorder, body := serve(t, ui, "/")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Contains(t, body, "<title>Penguins Dashboard</title>")
	assert.Contains(t, body, "Filter Controls")
	assert.Contains(t, body, `id="count">14<`)
	assert.Contains(t, body, "Bill Length and Depth")
	assert.Contains(t, body, "Penguin Data")
	assert.Contains(t, body, "14 of 14 rows")
	for _, species := range []string{"Adelie", "Gentoo", "Chinstrap"} {
		assert.Contains(t, body, `value="`+species+`" checked>`)
	}
	assert.NotContains(t, body, `class="errors"`)
	assert.Contains(t, body, `<label for="mass">Mass: 6000</label>`)
}

func TestDashboardHandlerFilters(t *testing.T) {
	ui := createTestWebUI(t)
	recorder, body := serve(t, ui, "/?apply=1&species=Chinstrap&mass=3700")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, body, `id="count">2<`)
	assert.Contains(t, body, `id="bill-length">48.9 mm<`)
	assert.Contains(t, body, `id="bill-depth">18.5 mm<`)
	assert.Contains(t, body, `value="Chinstrap" checked>`)
	assert.Contains(t, body, `value="Adelie">`)
	assert.Contains(t, body, `value="3700"`)
	assert.Contains(t, body, "2 of 2 rows")
	assert.Contains(t, body, "/plot.svg?apply=1&amp;mass=3700&amp;species=Chinstrap")
}

func TestDashboardHandlerEmptySelection(t *testing.T) {
	ui := createTestWebUI(t)
	recorder, body := serve(t, ui, "/?apply=1&mass=6000")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, body, `id="count">0<`)
	assert.Contains(t, body, `class="value no-data" id="bill-length">no data<`)
	assert.Contains(t, body, `class="value no-data" id="bill-depth">no data<`)
	assert.Contains(t, body, "No rows match the current filters.")
	assert.Contains(t, body, "0 of 0 rows")
	assert.NotContains(t, body, " checked>")
}

func TestDashboardHandlerColumnFilter(t *testing.T) {
	ui := createTestWebUI(t)
	_, body := serve(t, ui, "/?species=Adelie&filter_island=dream")

	assert.Contains(t, body, `id="count">7<`, "column filters do not change the summary")
	assert.Contains(t, body, "1 of 7 rows")
	assert.Contains(t, body, `name="filter_island" value="dream"`)
	assert.Contains(t, body, "<td>Dream</td>")
	assert.NotContains(t, body, "<td>Torgersen</td>")
}

func TestDashboardHandlerInvalidParameters(t *testing.T) {
	ui := createTestWebUI(t)
	recorder, body := serve(t, ui, "/?mass=9000&species=Emperor")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, body, `class="errors"`)
	assert.Contains(t, body, "mass must be between 2000 and 6000")
	// the page falls back to the default filters
	assert.Contains(t, body, `id="count">14<`)

	massIdx := strings.Index(body, "mass must be")
	speciesIdx := strings.Index(body, "Invalid field value for field &#34;species&#34;.")
	assert.Positive(t, speciesIdx)
	assert.Less(t, massIdx, speciesIdx, "messages are ordered by field name")
}

func TestSpeciesOptions(t *testing.T) {
	options := speciesOptions(filtering.NewState(nil, filtering.MassMax))
	assert.Len(t, options, 3)
	for _, opt := range options {
		assert.False(t, opt.Checked)
	}

	options = speciesOptions(filtering.DefaultState())
	assert.Equal(t, "Adelie", options[0].Label)
	assert.True(t, options[2].Checked)
}

func TestFlattenFieldErrors(t *testing.T) {
	messages := flattenFieldErrors(map[string][]string{
		"species": {"unknown species"},
		"mass":    {"bad mass", "really bad mass"},
	})
	assert.Equal(t, []string{"bad mass", "really bad mass", "unknown species"}, messages)
	assert.Empty(t, flattenFieldErrors(nil))
}

func TestDashboardHandlerFractionalMassLabel(t *testing.T) {
	ui := createTestWebUI(t)
	_, body := serve(t, ui, "/?mass=3825.5")

	assert.Contains(t, body, `<label for="mass">Mass: 3825.5</label>`)
	assert.Contains(t, body, `value="3825.5"`)
}

func TestDashboardHandlerSidebarLinks(t *testing.T) {
	ui := createTestWebUI(t)
	_, body := serve(t, ui, "/")

	labels := []string{"GitHub Source", "GitHub App", "GitHub Issues", "Go", "Template: html/template", "See also"}
	require.Len(t, sidebarLinks, len(labels))
	for i, label := range labels {
		assert.Equal(t, label, sidebarLinks[i].Label)
		assert.Contains(t, body, `href="`+sidebarLinks[i].Href+`"`)
	}
}
