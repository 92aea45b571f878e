package colormap

import (
	"github.com/lucasb-eyer/go-colorful"
)

// xterm-256 layout: 16 standard ANSI colors, a 6x6x6 color cube at 16-231
// with channel levels {0, 95, 135, 175, 215, 255}, and a 24-step grayscale
// ramp at 232-255 with levels 8 + 10*step.

var cubeLevels = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

var standardAnsi = [16][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0xaa, 0x00, 0x00}, // red
	{0x00, 0xaa, 0x00}, // green
	{0xaa, 0x55, 0x00}, // yellow
	{0x00, 0x00, 0xaa}, // blue
	{0xaa, 0x00, 0xaa}, // magenta
	{0x00, 0xaa, 0xaa}, // cyan
	{0xaa, 0xaa, 0xaa}, // white
	{0x55, 0x55, 0x55}, // bright black
	{0xff, 0x55, 0x55}, // bright red
	{0x55, 0xff, 0x55}, // bright green
	{0xff, 0xff, 0x55}, // bright yellow
	{0x55, 0x55, 0xff}, // bright blue
	{0xff, 0x55, 0xff}, // bright magenta
	{0x55, 0xff, 0xff}, // bright cyan
	{0xff, 0xff, 0xff}, // bright white
}

// RGB returns the 24-bit color of an xterm-256 index.
func (c Color256) RGB() (r, g, b uint8) {
	switch {
	case c < 16:
		e := standardAnsi[c]
		return e[0], e[1], e[2]
	case c >= 232:
		gray := uint8(c-232)*10 + 8
		return gray, gray, gray
	default:
		n := c - 16
		return cubeLevels[n/36], cubeLevels[(n%36)/6], cubeLevels[n%6]
	}
}

// toColorful converts an xterm index to a colorful.Color for Lab-space
// distance comparisons.
func (c Color256) toColorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// NearestColor256 returns the xterm-256 index closest to an RGB color using
// CIE Lab distance. The 16 standard ANSI colors are skipped: their values
// vary between terminal themes, so matching against them is unreliable.
func NearestColor256(r, g, b uint8) Color256 {
	target := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}

	best := Color256(16)
	bestDist := -1.0
	for i := 16; i < 256; i++ {
		c := Color256(i)
		d := target.DistanceLab(c.toColorful())
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
