package models

import (
	"math"

	"penguins.dashboard/internal/filtering"
	"penguins.dashboard/internal/penguins"
	"penguins.dashboard/internal/summary"
)

// PenguinRow is one table row. Missing measurements are null.
type PenguinRow struct {
	Species      string   `json:"species"`
	Island       string   `json:"island"`
	BillLengthMM *float64 `json:"billLengthMm"`
	BillDepthMM  *float64 `json:"billDepthMm"`
	BodyMassG    *float64 `json:"bodyMassG"`
}

func NewPenguinRow(o penguins.Observation) PenguinRow {
	return PenguinRow{
		Species:      o.Species.String(),
		Island:       o.Island,
		BillLengthMM: optionalFloat(o.BillLengthMM),
		BillDepthMM:  optionalFloat(o.BillDepthMM),
		BodyMassG:    optionalFloat(o.BodyMassG),
	}
}

// FilterStateModel echoes the filter state a response was computed from.
type FilterStateModel struct {
	Species     []string `json:"species"`
	MassCeiling float64  `json:"massCeiling"`
}

func NewFilterStateModel(state filtering.State) FilterStateModel {
	list := state.SpeciesList()
	species := make([]string, len(list))
	for i, s := range list {
		species[i] = s.String()
	}
	return FilterStateModel{Species: species, MassCeiling: state.MassCeiling}
}

// SummaryModel carries both raw means (null when there is no data) and the
// display strings shown in the value boxes.
type SummaryModel struct {
	Count            int      `json:"count"`
	BillLength       string   `json:"billLength"`
	BillDepth        string   `json:"billDepth"`
	MeanBillLengthMM *float64 `json:"meanBillLengthMm"`
	MeanBillDepthMM  *float64 `json:"meanBillDepthMm"`
}

func NewSummaryModel(s summary.Summary) SummaryModel {
	text := s.Text()
	return SummaryModel{
		Count:            s.Count,
		BillLength:       text.BillLength,
		BillDepth:        text.BillDepth,
		MeanBillLengthMM: optionalFloat(s.MeanBillLengthMM),
		MeanBillDepthMM:  optionalFloat(s.MeanBillDepthMM),
	}
}

// PenguinsEntry is the payload of /api/penguins.json.
type PenguinsEntry struct {
	State   FilterStateModel `json:"state"`
	Summary SummaryModel     `json:"summary"`
	Rows    []PenguinRow     `json:"rows"`
}

func NewPenguinsEntry(state filtering.State, view filtering.View) PenguinsEntry {
	rows := make([]PenguinRow, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		rows = append(rows, NewPenguinRow(view.At(i)))
	}
	return PenguinsEntry{
		State:   NewFilterStateModel(state),
		Summary: NewSummaryModel(summary.Summarize(view)),
		Rows:    rows,
	}
}

// FilterOptionsModel describes the inputs a client may send.
type FilterOptionsModel struct {
	Species     []string `json:"species"`
	MassMin     float64  `json:"massMin"`
	MassMax     float64  `json:"massMax"`
	MassStep    float64  `json:"massStep"`
	MassDefault float64  `json:"massDefault"`
}

func NewFilterOptionsModel() FilterOptionsModel {
	all := penguins.AllSpecies()
	species := make([]string, len(all))
	for i, s := range all {
		species[i] = s.String()
	}
	return FilterOptionsModel{
		Species:     species,
		MassMin:     filtering.MassMin,
		MassMax:     filtering.MassMax,
		MassStep:    filtering.MassStep,
		MassDefault: filtering.MassDefault,
	}
}

func optionalFloat(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
