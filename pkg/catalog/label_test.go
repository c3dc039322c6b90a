// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"slices"
	"testing"
)

func TestCountLabel(t *testing.T) {
	t.Parallel()

	for n, want := range map[int]string{0: "0 layers", 1: "1 layer", 2: "2 layers", 12: "12 layers"} {
		if got := CountLabel(n); got != want {
			t.Errorf("CountLabel(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestCatalog_Labels(t *testing.T) {
	t.Parallel()

	cat := Build(Collect(boardTree(), NewSwatchIndex(brandSwatches)))

	want := []string{
		"● Brand Red · 2 layers",
		"● #FF0000 · 2 layers",
		"● #111111 (50%) · 1 layer",
		"◐ Radial · 2 layers",
	}
	if got := cat.Labels(); !slices.Equal(got, want) {
		t.Errorf("Labels() =\n%q\nwant\n%q", got, want)
	}
	if _, ok := cat.OptionLabel(len(want)); ok {
		t.Error("OptionLabel past the end should fail")
	}
}

func TestCatalog_Summary(t *testing.T) {
	t.Parallel()

	s := Build(Collect(boardTree(), NewSwatchIndex(brandSwatches))).Summary()
	if s.SolidHeader() != "SOLID COLORS (3)" || s.GradientHeader() != "GRADIENTS (1)" {
		t.Errorf("headers = %q, %q", s.SolidHeader(), s.GradientHeader())
	}
	if s.String() != "3 solid colors, 1 gradients" {
		t.Errorf("String() = %q", s.String())
	}

	var nilCat *Catalog
	if nilCat.Summary() != (Summary{}) {
		t.Error("nil catalog summary should be zero")
	}
}
