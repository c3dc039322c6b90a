// SPDX-License-Identifier: MPL-2.0

package export

import (
	"github.com/selcolors/selcolors/pkg/catalog"
	"github.com/selcolors/selcolors/pkg/layer"
)

type (
	// Report is the exported view of one collection pass.
	Report struct {
		Source    string                  `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
		Status    string                  `json:"status" yaml:"status" toml:"status"`
		Selection []layer.ID              `json:"selection" yaml:"selection" toml:"selection"`
		Summary   catalog.Summary         `json:"summary" yaml:"summary" toml:"summary"`
		Solids    []catalog.SolidEntry    `json:"solids" yaml:"solids" toml:"solids"`
		Gradients []catalog.GradientEntry `json:"gradients" yaml:"gradients" toml:"gradients"`
		Options   []Option                `json:"options" yaml:"options" toml:"options"`
	}

	// Option is a selectable catalog row. Number is the 0-based option
	// index accepted by "selcolors select".
	Option struct {
		Number int                `json:"number" yaml:"number" toml:"number"`
		Kind   catalog.OptionKind `json:"kind" yaml:"kind" toml:"kind"`
		Label  string             `json:"label" yaml:"label" toml:"label"`
	}
)

// NewReport builds a Report from a session result. Every list is non-nil
// so that empty sections serialize as empty lists.
func NewReport(source string, res catalog.Result) Report {
	cat := res.Catalog
	r := Report{
		Source:    source,
		Status:    res.Status.String(),
		Selection: make([]layer.ID, 0, len(res.SelectionIDs)),
		Solids:    []catalog.SolidEntry{},
		Gradients: []catalog.GradientEntry{},
		Options:   []Option{},
	}
	r.Selection = append(r.Selection, res.SelectionIDs...)
	if cat == nil {
		return r
	}

	r.Solids = append(r.Solids, cat.Solids...)
	r.Gradients = append(r.Gradients, cat.Gradients...)
	r.Summary = cat.Summary()
	for i, label := range cat.Labels() {
		r.Options = append(r.Options, Option{Number: i, Kind: cat.Options[i].Kind, Label: label})
	}
	return r
}
