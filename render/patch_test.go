package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// binQuantizer quantizes [0,1] into k uniform bins, standing in for the
// colormap without importing it.
type binQuantizer int

func (q binQuantizer) Scale(v float64) int {
	if v >= 1 {
		return int(q) - 1
	}
	if v < 0 {
		return 0
	}
	return int(v * float64(q))
}

func (q binQuantizer) Len() int { return int(q) }

func TestEncodePatchOrientation(t *testing.T) {
	q := binQuantizer(4)

	tests := []struct {
		name     string
		top, bot float64
		kind     PatchKind
		lo, hi   int
	}{
		{"bottom brighter", 0.1, 0.9, PatchBottom, 0, 3},
		{"top brighter", 0.9, 0.1, PatchTop, 0, 3},
		{"adjacent bins", 0.3, 0.6, PatchBottom, 1, 2},
		{"both lowest", 0.0, 0.0, PatchEmpty, 0, 0},
		{"both highest", 1.0, 1.0, PatchFull, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, err := EncodePatch(q, tt.top, tt.bot)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, cell.Kind)

			want, err := SlotFor(tt.lo, tt.hi)
			require.NoError(t, err)
			assert.Equal(t, want, cell.Slot)
		})
	}
}

func TestEncodePatchMirrorSymmetry(t *testing.T) {
	// Swapping top and bottom keeps the pair (and slot) and mirrors the
	// glyph vertically.
	q := binQuantizer(8)

	for a := 0; a < 8; a++ {
		for b := 0; b < 8; b++ {
			va := (float64(a) + 0.5) / 8.0
			vb := (float64(b) + 0.5) / 8.0

			fwd, err := EncodePatch(q, va, vb)
			require.NoError(t, err)
			rev, err := EncodePatch(q, vb, va)
			require.NoError(t, err)

			assert.Equal(t, fwd.Slot, rev.Slot, "slot differs for a=%d b=%d", a, b)
			if a == b {
				assert.Equal(t, fwd.Kind, rev.Kind)
				assert.Contains(t, []PatchKind{PatchEmpty, PatchFull}, fwd.Kind,
					"degenerate patch must not use half blocks")
			} else {
				assert.Equal(t, fwd.Kind.Invert(), rev.Kind, "glyphs not mirrored for a=%d b=%d", a, b)
			}
		}
	}
}

func TestEncodeSingleUsesFullGlyphsOnly(t *testing.T) {
	q := binQuantizer(4)

	for _, v := range []float64{0.0, 0.3, 0.6, 1.0} {
		cell, err := EncodeSingle(q, v)
		require.NoError(t, err)
		assert.Contains(t, []PatchKind{PatchEmpty, PatchFull}, cell.Kind, "v=%f", v)
	}
}

func TestPatchKindGlyphs(t *testing.T) {
	assert.Equal(t, ' ', PatchEmpty.Glyph())
	assert.Equal(t, '▀', PatchTop.Glyph())
	assert.Equal(t, '▄', PatchBottom.Glyph())
	assert.Equal(t, '█', PatchFull.Glyph())
}

func TestPatchKindInvertIsInvolution(t *testing.T) {
	kinds := []PatchKind{PatchEmpty, PatchTop, PatchBottom, PatchFull}
	for _, k := range kinds {
		assert.Equal(t, k, k.Invert().Invert())
	}
	assert.Equal(t, PatchBottom, PatchTop.Invert())
	assert.Equal(t, PatchFull, PatchEmpty.Invert())
}
