// SPDX-License-Identifier: MPL-2.0

package testutil

import "testing"

// BoardCUE is a small document snapshot: a swatch-linked fill shared by two
// layers, a literal color, a translucent text color and a gradient. The
// selection is "card" and "label".
const BoardCUE = `selection: ["card", "label"]

swatches: [
	{id: "sw-brand", name: "Brand Red", color: "#FF0000"},
]

layers: [
	{
		id:   "card"
		type: "Group"
		style: fills: [{color: "#FF0000", swatchId: "sw-brand"}]
		layers: [
			{
				id: "icon"
				style: {
					fills: [{color: "#FF0000", swatchId: "sw-brand"}]
					borders: [{color: "#0000FF"}]
				}
			},
			{
				id: "glow"
				style: fills: [{fillType: "Gradient", gradient: {
					gradientType: "Radial"
					stops: [
						{color: "#000000", position: 0},
						{color: "#FFFFFF", position: 1},
					]
				}}]
			},
		]
	},
	{
		id:   "label"
		type: "Text"
		style: textColor: "#11111180"
	},
	{
		id: "unselected"
		style: fills: [{color: "#ABCDEF"}]
	},
]
`

// WriteBoard writes BoardCUE to dir/board.cue and returns its path.
func WriteBoard(t testing.TB, dir string) string {
	t.Helper()
	return MustWriteFile(t, dir, "board.cue", BoardCUE)
}
