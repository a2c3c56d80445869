package penguins

import (
	"fmt"
	"strings"
)

// Species is one of the three penguin species recorded in the Palmer Station data.
type Species string

const (
	Adelie    Species = "Adelie"
	Gentoo    Species = "Gentoo"
	Chinstrap Species = "Chinstrap"
)

// AllSpecies returns every species in the order the dashboard lists them.
func AllSpecies() []Species {
	return []Species{Adelie, Gentoo, Chinstrap}
}

// ParseSpecies converts a label into a Species. Matching is exact first and
// case-insensitive second, so "adelie" is accepted but "Adélie" is not.
func ParseSpecies(label string) (Species, error) {
	label = strings.TrimSpace(label)
	for _, s := range AllSpecies() {
		if string(s) == label {
			return s, nil
		}
	}
	for _, s := range AllSpecies() {
		if strings.EqualFold(string(s), label) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown species %q", label)
}

func (s Species) String() string {
	return string(s)
}
