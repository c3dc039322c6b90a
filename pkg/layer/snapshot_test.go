// SPDX-License-Identifier: MPL-2.0

package layer

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/selcolors/selcolors/pkg/paint"
)

func loadBoard(t *testing.T) *Snapshot {
	t.Helper()

	s, err := Parse(filepath.Join("testdata", "board.cue"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return s
}

func selectedIDs(s *Snapshot) []ID {
	var ids []ID
	for _, l := range s.SelectedLayers() {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestParse_Board(t *testing.T) {
	t.Parallel()

	s := loadBoard(t)

	if got := selectedIDs(s); !slices.Equal(got, []ID{"card", "title"}) {
		t.Errorf("SelectedLayers() = %v", got)
	}
	if len(s.Swatches()) != 1 || s.Swatches()[0].Name != "Brand Red" {
		t.Errorf("Swatches() = %+v", s.Swatches())
	}

	card, ok := s.LayerByID("card")
	if !ok {
		t.Fatal("card not found")
	}
	fills := card.Style.Fills
	if len(fills) != 2 {
		t.Fatalf("len(card fills) = %d", len(fills))
	}
	if !fills[0].Enabled {
		t.Error("enabled should default to true")
	}
	if fills[0].FillType != paint.FillColor {
		t.Errorf("fillType default = %q, want Color", fills[0].FillType)
	}
	if fills[1].Enabled {
		t.Error("explicitly disabled fill decoded as enabled")
	}

	badge, ok := s.LayerByID("badge")
	if !ok {
		t.Fatal("nested layer badge not indexed")
	}
	if badge.Type != TypeShape {
		t.Errorf("type default = %q, want Shape", badge.Type)
	}
	g := badge.Style.Fills[0].Gradient
	if g == nil || g.GradientType != "Radial" || len(g.Stops) != 2 {
		t.Errorf("gradient = %+v", g)
	}

	title, _ := s.LayerByID("title")
	if !title.Type.IsText() || title.Style.TextColor != "#33333380" {
		t.Errorf("title = %+v", title)
	}
}

func TestParseBytes_JSON(t *testing.T) {
	t.Parallel()

	data := []byte(`{
  "selection": ["r"],
  "layers": [
    {"id": "r", "type": "Shape", "style": {"fills": [{"color": "#abcdef"}]}}
  ]
}`)
	s, err := ParseBytes(data, "doc.json")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	sel := s.SelectedLayers()
	if len(sel) != 1 || !sel[0].Style.Fills[0].Enabled {
		t.Errorf("SelectedLayers() = %+v", sel)
	}
}

func TestParseBytes_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "duplicate id",
			data:    `layers: [{id: "a"}, {id: "b", layers: [{id: "a"}]}]`,
			wantErr: ErrDuplicateID,
		},
		{
			name:    "blank id",
			data:    `layers: [{id: " "}]`,
			wantMsg: "layers[0].id",
		},
		{
			name:    "unknown field",
			data:    `layers: [{id: "a", colour: "#fff"}]`,
			wantMsg: "colour",
		},
		{
			name:    "stop position out of range",
			data:    `layers: [{id: "a", style: fills: [{fillType: "Gradient", gradient: stops: [{color: "#000", position: 2}]}]}]`,
			wantMsg: "position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseBytes([]byte(tt.data), "bad.cue")
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestSnapshot_SelectedLayersSkipsStaleIDs(t *testing.T) {
	t.Parallel()

	s := NewSnapshot([]*Layer{{ID: "a"}, {ID: "b"}}, nil, "b", "gone", "a")
	if got := selectedIDs(s); !slices.Equal(got, []ID{"b", "a"}) {
		t.Errorf("SelectedLayers() = %v", got)
	}
}

func TestSnapshot_SetSelection(t *testing.T) {
	t.Parallel()

	a, b := &Layer{ID: "a"}, &Layer{ID: "b"}
	s := NewSnapshot([]*Layer{a, b}, nil, "a")
	s.SetSelection([]*Layer{b, nil})

	if !slices.Equal(s.Selection, []ID{"b"}) {
		t.Errorf("Selection = %v, want [b]", s.Selection)
	}
}

func TestSnapshot_RemoveLayer(t *testing.T) {
	t.Parallel()

	s := loadBoard(t)
	if !s.RemoveLayer("badge") {
		t.Fatal("RemoveLayer(badge) = false")
	}
	if _, ok := s.LayerByID("badge"); ok {
		t.Error("badge still indexed after removal")
	}
	if s.RemoveLayer("badge") {
		t.Error("second RemoveLayer(badge) = true")
	}
	if !s.RemoveLayer("card") {
		t.Fatal("RemoveLayer(card) = false")
	}
	if got := selectedIDs(s); !slices.Equal(got, []ID{"title"}) {
		t.Errorf("SelectedLayers() after removal = %v", got)
	}
}

func TestSnapshot_WriteRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"board.cue", "board.json"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := loadBoard(t)
			title, _ := s.LayerByID("title")
			s.SetSelection([]*Layer{title})
			s.SetPath(filepath.Join(t.TempDir(), name))

			if err := s.Write(); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			data, err := os.ReadFile(s.Path())
			if err != nil {
				t.Fatal(err)
			}

			reloaded, err := ParseBytes(data, s.Path())
			if err != nil {
				t.Fatalf("re-parse error = %v\n%s", err, data)
			}
			if got := selectedIDs(reloaded); !slices.Equal(got, []ID{"title"}) {
				t.Errorf("selection after write = %v", got)
			}
			card, ok := reloaded.LayerByID("card")
			if !ok || card.Style.Fills[1].Enabled {
				t.Errorf("card after write = %+v", card)
			}
			if _, ok := reloaded.LayerByID("badge"); !ok {
				t.Error("nested layer lost on write")
			}
		})
	}
}

func TestSnapshot_WriteWithoutPath(t *testing.T) {
	t.Parallel()

	if err := NewSnapshot(nil, nil).Write(); err == nil {
		t.Error("Write() without path should fail")
	}
}

func TestSchema(t *testing.T) {
	t.Parallel()

	if !strings.Contains(string(Schema()), "#Document") {
		t.Error("Schema() does not define #Document")
	}
}
