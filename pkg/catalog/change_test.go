// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"slices"
	"testing"

	"github.com/selcolors/selcolors/pkg/layer"
)

func TestHasSelectionChanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		previous []layer.ID
		current  []layer.ID
		want     bool
	}{
		{name: "both empty", want: false},
		{name: "same order", previous: []layer.ID{"a", "b"}, current: []layer.ID{"a", "b"}, want: false},
		{name: "different order", previous: []layer.ID{"b", "a", "c"}, current: []layer.ID{"c", "b", "a"}, want: false},
		{name: "added", previous: []layer.ID{"a"}, current: []layer.ID{"a", "b"}, want: true},
		{name: "removed", previous: []layer.ID{"a", "b"}, current: []layer.ID{"b"}, want: true},
		{name: "replaced", previous: []layer.ID{"a", "b"}, current: []layer.ID{"a", "c"}, want: true},
		{name: "from empty", current: []layer.ID{"a"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prev, cur := slices.Clone(tt.previous), slices.Clone(tt.current)
			if got := HasSelectionChanged(prev, cur); got != tt.want {
				t.Errorf("HasSelectionChanged(%v, %v) = %v, want %v", tt.previous, tt.current, got, tt.want)
			}
			if !slices.Equal(prev, tt.previous) || !slices.Equal(cur, tt.current) {
				t.Error("arguments were modified")
			}
		})
	}
}

func TestSelectionIDs(t *testing.T) {
	t.Parallel()

	got := SelectionIDs([]*layer.Layer{{ID: "c"}, nil, {ID: "a"}, {ID: "b"}})
	if want := []layer.ID{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("SelectionIDs() = %v, want %v", got, want)
	}
	if got := SelectionIDs(nil); len(got) != 0 {
		t.Errorf("SelectionIDs(nil) = %v", got)
	}
}
