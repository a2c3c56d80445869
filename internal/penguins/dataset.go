package penguins

import (
	"math"
	"time"
)

// Observation is one penguin's measured attributes. Measurements missing from
// the source are NaN.
type Observation struct {
	Species         Species
	Island          string
	BillLengthMM    float64
	BillDepthMM     float64
	FlipperLengthMM float64
	BodyMassG       float64
	Sex             string
	Year            int
}

// HasBodyMass reports whether the body mass was recorded.
func (o Observation) HasBodyMass() bool {
	return !math.IsNaN(o.BodyMassG)
}

// Dataset is the immutable, ordered table of observations loaded at startup.
// Nothing outside this package can reach the backing slice.
type Dataset struct {
	rows     []Observation
	source   string
	loadedAt time.Time
}

// NewDataset copies rows into a new Dataset.
func NewDataset(rows []Observation) *Dataset {
	return newDataset(rows, "", time.Now())
}

func newDataset(rows []Observation, source string, loadedAt time.Time) *Dataset {
	owned := make([]Observation, len(rows))
	copy(owned, rows)
	return &Dataset{rows: owned, source: source, loadedAt: loadedAt}
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// At returns a copy of the i-th observation. It panics if i is out of range,
// like a slice index would.
func (d *Dataset) At(i int) Observation {
	return d.rows[i]
}

// Rows returns a copy of every observation in load order.
func (d *Dataset) Rows() []Observation {
	if d == nil {
		return nil
	}
	out := make([]Observation, len(d.rows))
	copy(out, d.rows)
	return out
}

// Source is the file path or URL the dataset was loaded from, if any.
func (d *Dataset) Source() string {
	return d.source
}

func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}

// CountBySpecies tallies rows per species.
func (d *Dataset) CountBySpecies() map[Species]int {
	counts := make(map[Species]int, len(AllSpecies()))
	for _, row := range d.rows {
		counts[row.Species]++
	}
	return counts
}
