package colormap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor256RGB(t *testing.T) {
	tests := []struct {
		c       Color256
		r, g, b uint8
	}{
		{0, 0x00, 0x00, 0x00},   // ANSI black
		{15, 0xff, 0xff, 0xff},  // ANSI bright white
		{16, 0x00, 0x00, 0x00},  // cube origin
		{21, 0x00, 0x00, 0xff},  // pure blue corner
		{196, 0xff, 0x00, 0x00}, // pure red corner
		{231, 0xff, 0xff, 0xff}, // cube white
		{232, 0x08, 0x08, 0x08}, // darkest gray
		{255, 0xee, 0xee, 0xee}, // lightest gray
	}

	for _, tt := range tests {
		r, g, b := tt.c.RGB()
		assert.Equal(t, [3]uint8{tt.r, tt.g, tt.b}, [3]uint8{r, g, b}, "index %d", tt.c)
	}
}

func TestNearestColor256(t *testing.T) {
	// Exact cube and ramp colors must map to themselves.
	for _, c := range []Color256{16, 21, 196, 231, 232, 244, 255} {
		r, g, b := c.RGB()
		assert.Equal(t, c, NearestColor256(r, g, b), "index %d", c)
	}

	// Pure grays land on the grayscale ramp or a gray cube corner, never
	// on a theme-dependent ANSI slot.
	got := NearestColor256(0x80, 0x80, 0x80)
	assert.GreaterOrEqual(t, got, Color256(16))
	r, g, b := got.RGB()
	assert.True(t, r == g && g == b, "gray input stays gray, got index %d", got)
}
