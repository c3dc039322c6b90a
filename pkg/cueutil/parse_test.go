// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Palette: {
	name:     string
	size:     int & >=1
	shared:   bool | *false
	colors?: [...string]
}
`

type testPalette struct {
	Name   string   `json:"name"`
	Size   int      `json:"size"`
	Shared bool     `json:"shared"`
	Colors []string `json:"colors,omitempty"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid CUE", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
name: "brand"
size: 2
colors: ["#FF0000", "#00FF00"]
`)
		result, err := ParseAndDecode[testPalette]([]byte(testSchema), data, "#Palette")
		if err != nil {
			t.Fatalf("ParseAndDecode() error = %v", err)
		}
		if result.Value.Name != "brand" || result.Value.Size != 2 {
			t.Errorf("decoded = %+v", result.Value)
		}
		if result.Value.Shared {
			t.Error("schema default for shared should be false")
		}
		if len(result.Value.Colors) != 2 {
			t.Errorf("len(Colors) = %d, want 2", len(result.Value.Colors))
		}
	})

	t.Run("valid JSON", func(t *testing.T) {
		t.Parallel()

		data := []byte(`{"name": "json", "size": 1, "shared": true}`)
		result, err := ParseAndDecode[testPalette]([]byte(testSchema), data, "#Palette", WithFilename("p.json"))
		if err != nil {
			t.Fatalf("ParseAndDecode() error = %v", err)
		}
		if !result.Value.Shared {
			t.Error("shared should be true")
		}
	})

	t.Run("constraint violation names file", func(t *testing.T) {
		t.Parallel()

		data := []byte(`name: "x", size: 0`)
		_, err := ParseAndDecode[testPalette]([]byte(testSchema), data, "#Palette", WithFilename("bad.cue"))
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "bad.cue") {
			t.Errorf("error should contain filename, got: %v", err)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseAndDecode[testPalette]([]byte(testSchema), []byte(`size: 3`), "#Palette"); err == nil {
			t.Error("expected error for missing name")
		}
	})

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()

		data := []byte(`name: "brand", size: 2`)
		_, err := ParseAndDecode[testPalette]([]byte(testSchema), data, "#Palette", WithMaxFileSize(4))
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
			t.Errorf("expected size error, got %v", err)
		}
	})

	t.Run("unknown definition", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testPalette]([]byte(testSchema), []byte(`name: "a", size: 1`), "#Missing")
		if err == nil || !strings.Contains(err.Error(), "internal error") {
			t.Errorf("expected internal error, got %v", err)
		}
	})
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	in := testPalette{Name: "brand", Size: 2, Shared: true, Colors: []string{"#FF0000", "#00FF00"}}
	src, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if strings.HasPrefix(strings.TrimSpace(string(src)), "{") {
		t.Errorf("top-level struct should not be wrapped in braces:\n%s", src)
	}

	result, err := ParseAndDecode[testPalette]([]byte(testSchema), src, "#Palette")
	if err != nil {
		t.Fatalf("re-parse error = %v\n%s", err, src)
	}
	out := *result.Value
	if out.Name != in.Name || out.Size != in.Size || out.Shared != in.Shared || len(out.Colors) != 2 {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
