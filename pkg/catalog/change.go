// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"slices"

	"github.com/selcolors/selcolors/pkg/layer"
)

// SelectionIDs returns the sorted ids of layers. Nil layers are skipped.
func SelectionIDs(layers []*layer.Layer) []layer.ID {
	ids := make([]layer.ID, 0, len(layers))
	for _, l := range layers {
		if l != nil {
			ids = append(ids, l.ID)
		}
	}
	slices.Sort(ids)
	return ids
}

// HasSelectionChanged reports whether two selections differ as sets of ids.
// Neither argument is modified.
func HasSelectionChanged(previous, current []layer.ID) bool {
	if len(previous) != len(current) {
		return true
	}
	a, b := slices.Clone(previous), slices.Clone(current)
	slices.Sort(a)
	slices.Sort(b)
	return !slices.Equal(a, b)
}
