package filtering

import (
	"net/url"
	"strconv"

	"penguins.dashboard/internal/penguins"
)

// Bounds of the body mass slider, in grams.
const (
	MassMin     = 2000.0
	MassMax     = 6000.0
	MassStep    = 1.0
	MassDefault = MassMax
)

// State is the user-controlled filter: which species are selected and the
// exclusive upper bound on body mass.
type State struct {
	species     map[penguins.Species]bool
	MassCeiling float64
}

// DefaultState selects every species with the maximum mass ceiling.
func DefaultState() State {
	return NewState(penguins.AllSpecies(), MassDefault)
}

// NewState builds a State from a species selection. Duplicates collapse.
func NewState(species []penguins.Species, massCeiling float64) State {
	set := make(map[penguins.Species]bool, len(species))
	for _, s := range species {
		set[s] = true
	}
	return State{species: set, MassCeiling: massCeiling}
}

func (s State) Selected(species penguins.Species) bool {
	return s.species[species]
}

// SpeciesList returns the selected species in dashboard order.
func (s State) SpeciesList() []penguins.Species {
	list := make([]penguins.Species, 0, len(s.species))
	for _, sp := range penguins.AllSpecies() {
		if s.species[sp] {
			list = append(list, sp)
		}
	}
	return list
}

// Query encodes the state as the query parameters ParseState reads back.
func (s State) Query() url.Values {
	values := url.Values{}
	values.Set(applyParam, "1")
	for _, sp := range s.SpeciesList() {
		values.Add(speciesParam, sp.String())
	}
	values.Set(massParam, strconv.FormatFloat(s.MassCeiling, 'f', -1, 64))
	return values
}
