package filtering

import "penguins.dashboard/internal/penguins"

// View is a row-order-preserving subset of a dataset. It holds indices into
// the dataset rather than copies of the rows.
type View struct {
	dataset *penguins.Dataset
	indices []int
}

// Apply derives the filtered view: rows whose species is selected and whose
// body mass is strictly below the ceiling. Rows without a recorded mass never
// match.
func Apply(dataset *penguins.Dataset, state State) View {
	n := dataset.Len()
	kept := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if state.Selected(dataset.At(i).Species) {
			kept = append(kept, i)
		}
	}

	indices := kept[:0]
	for _, i := range kept {
		if dataset.At(i).BodyMassG < state.MassCeiling {
			indices = append(indices, i)
		}
	}

	return View{dataset: dataset, indices: indices}
}

func (v View) Len() int {
	return len(v.indices)
}

func (v View) At(i int) penguins.Observation {
	return v.dataset.At(v.indices[i])
}

// Rows copies the observations in the view.
func (v View) Rows() []penguins.Observation {
	rows := make([]penguins.Observation, len(v.indices))
	for i, idx := range v.indices {
		rows[i] = v.dataset.At(idx)
	}
	return rows
}

// Indices returns the dataset positions of the rows in the view.
func (v View) Indices() []int {
	out := make([]int, len(v.indices))
	copy(out, v.indices)
	return out
}
