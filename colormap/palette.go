package colormap

import (
	"errors"
	"sort"
)

// Color256 is an index into the xterm-256 terminal palette.
type Color256 uint8

// ErrEmptyPalette is returned when a palette is constructed with no colors.
var ErrEmptyPalette = errors.New("colormap: palette needs at least one color")

// Palette is the ordered color universe for one rendering session. Colors
// are deduplicated preserving first occurrence; intensities quantize into
// the palette through uniform bin edges over [0,1].
//
// A palette is immutable once built. Size limits are enforced where slots
// are bound (terminal.Surface.SetActive), not here, so oversized palettes
// can exist long enough to be rejected.
type Palette struct {
	colors   []Color256
	binEdges []float64
}

// NewPalette builds a palette from xterm-256 color indices.
func NewPalette(colors []Color256) (*Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}

	seen := make(map[Color256]bool, len(colors))
	dedup := make([]Color256, 0, len(colors))
	for _, c := range colors {
		if !seen[c] {
			seen[c] = true
			dedup = append(dedup, c)
		}
	}

	// Uniform partition of [0,1]: edges i/K for i in [1, K-1].
	k := len(dedup)
	edges := make([]float64, k-1)
	for i := 1; i < k; i++ {
		edges[i-1] = float64(i) / float64(k)
	}

	return &Palette{colors: dedup, binEdges: edges}, nil
}

// MustPalette is NewPalette for registry literals; panics on empty input.
func MustPalette(colors []Color256) *Palette {
	p, err := NewPalette(colors)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the palette size K.
func (p *Palette) Len() int { return len(p.colors) }

// Color returns the xterm-256 index of palette entry i.
func (p *Palette) Color(i int) Color256 { return p.colors[i] }

// Colors returns a copy of the palette's color sequence.
func (p *Palette) Colors() []Color256 {
	out := make([]Color256, len(p.colors))
	copy(out, p.colors)
	return out
}

// Scale quantizes an intensity in [0,1] to a palette index. Values outside
// the range clamp to the nearest bin.
func (p *Palette) Scale(v float64) int {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return len(p.colors) - 1
	}
	// First edge >= v, matching bisect_left over the bin edges.
	return sort.SearchFloat64s(p.binEdges, v)
}

// Inverted returns a palette with the color order reversed, leaving bin
// edges untouched.
func (p *Palette) Inverted() *Palette {
	rev := make([]Color256, len(p.colors))
	for i, c := range p.colors {
		rev[len(p.colors)-1-i] = c
	}
	edges := make([]float64, len(p.binEdges))
	copy(edges, p.binEdges)
	return &Palette{colors: rev, binEdges: edges}
}
