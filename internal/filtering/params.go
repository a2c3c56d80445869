package filtering

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"penguins.dashboard/internal/penguins"
)

const (
	speciesParam = "species"
	massParam    = "mass"
	// applyParam marks a submitted form, so an unchecked species list means
	// "none selected" rather than "use the default".
	applyParam = "apply"
)

// ParseState reads a filter state from query parameters. Missing parameters
// fall back to DefaultState. Invalid values are reported per field and the
// returned state should not be used when the map is non-empty.
func ParseState(params url.Values) (State, map[string][]string) {
	fieldErrors := make(map[string][]string)
	state := DefaultState()

	if _, ok := params[speciesParam]; ok || params.Has(applyParam) {
		var selected []penguins.Species
		for _, raw := range params[speciesParam] {
			for _, label := range strings.Split(raw, ",") {
				if strings.TrimSpace(label) == "" {
					continue
				}
				sp, err := penguins.ParseSpecies(label)
				if err != nil {
					fieldErrors[speciesParam] = append(fieldErrors[speciesParam],
						fmt.Sprintf("Invalid field value for field %q.", speciesParam))
					continue
				}
				selected = append(selected, sp)
			}
		}
		state = NewState(selected, state.MassCeiling)
	}

	if raw := params.Get(massParam); raw != "" {
		mass, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(mass) {
			fieldErrors[massParam] = append(fieldErrors[massParam],
				fmt.Sprintf("Invalid field value for field %q.", massParam))
		} else if err := ValidateMassCeiling(mass); err != nil {
			fieldErrors[massParam] = append(fieldErrors[massParam], err.Error())
		} else {
			state.MassCeiling = mass
		}
	}

	return state, fieldErrors
}

// ValidateMassCeiling checks the value against the slider bounds.
func ValidateMassCeiling(mass float64) error {
	if mass < MassMin || mass > MassMax {
		return fmt.Errorf("mass must be between %g and %g", MassMin, MassMax)
	}
	return nil
}
