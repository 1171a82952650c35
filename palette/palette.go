// Package palette maps chamber cell colors to display colors shared by the
// drivers.
package palette

import (
	"image/color"

	"github.com/plus3/cubefall/chamber"
)

var rgba = [...]color.RGBA{
	chamber.Nothing: {0x00, 0x00, 0x00, 0x00},
	chamber.Red:     {0xe5, 0x39, 0x35, 0xff},
	chamber.Orange:  {0xfb, 0x8c, 0x00, 0xff},
	chamber.Yellow:  {0xfd, 0xd8, 0x35, 0xff},
	chamber.Green:   {0x43, 0xa0, 0x47, 0xff},
	chamber.Cyan:    {0x00, 0xac, 0xc1, 0xff},
	chamber.Blue:    {0x1e, 0x88, 0xe5, 0xff},
	chamber.Purple:  {0x8e, 0x24, 0xaa, 0xff},
	chamber.Pink:    {0xec, 0x40, 0x7a, 0xff},
	chamber.White:   {0xee, 0xee, 0xee, 0xff},
}

var names = [...]string{
	chamber.Nothing: "Nothing",
	chamber.Red:     "Red",
	chamber.Orange:  "Orange",
	chamber.Yellow:  "Yellow",
	chamber.Green:   "Green",
	chamber.Cyan:    "Cyan",
	chamber.Blue:    "Blue",
	chamber.Purple:  "Purple",
	chamber.Pink:    "Pink",
	chamber.White:   "White",
}

// RGBA returns the display color of c. Nothing and unknown colors are fully
// transparent.
func RGBA(c chamber.Color) color.RGBA {
	if int(c) >= len(rgba) {
		return color.RGBA{}
	}
	return rgba[c]
}

// Name returns a readable name for c.
func Name(c chamber.Color) string {
	if int(c) >= len(names) {
		return "Unknown"
	}
	return names[c]
}

var runes = [...]rune{
	chamber.Nothing: '.',
	chamber.Red:     'R',
	chamber.Orange:  'O',
	chamber.Yellow:  'Y',
	chamber.Green:   'G',
	chamber.Cyan:    'C',
	chamber.Blue:    'B',
	chamber.Purple:  'V',
	chamber.Pink:    'P',
	chamber.White:   'W',
}

// Rune returns the letter used for c in text views, '.' for an empty cell
// and '?' for an unknown color.
func Rune(c chamber.Color) rune {
	if int(c) >= len(runes) {
		return '?'
	}
	return runes[c]
}

// Dim returns c darkened by factor, which is clamped to [0, 1]. Drivers use
// it to fade layers below the one in focus.
func Dim(c color.RGBA, factor float64) color.RGBA {
	factor = min(max(factor, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
