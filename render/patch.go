package render

// Quantizer maps a scalar intensity in [0,1] to a palette index. The active
// colormap provides this; the encoder never sees colors, only indices.
type Quantizer interface {
	// Scale converts an intensity to a palette index in [0, Len()-1].
	Scale(v float64) int
	// Len returns the palette size K.
	Len() int
}

// EncodePatch converts the two scalar intensities of one character cell into
// a renderable Cell. top fills the upper half, bottom the lower half.
//
// The pair is always stored with lo <= hi; the glyph carries which physical
// half holds the higher (foreground) index: ▀ when the top does, ▄ when the
// bottom does. Equal halves collapse to the degenerate pair (a, a) with a
// space when a is the lowest bin and a full block otherwise, so the
// monochrome case consumes no extra slot.
func EncodePatch(q Quantizer, top, bottom float64) (Cell, error) {
	return encodeIndices(q.Scale(top), q.Scale(bottom))
}

// EncodeSingle converts a lone scalar (a one-row field, no bottom half) into
// a cell using only the space/full-block glyphs.
func EncodeSingle(q Quantizer, v float64) (Cell, error) {
	a := q.Scale(v)
	return encodeIndices(a, a)
}

func encodeIndices(a, b int) (Cell, error) {
	switch {
	case a == b:
		slot, err := SlotFor(a, a)
		if err != nil {
			return Cell{}, err
		}
		kind := PatchFull
		if a == 0 {
			kind = PatchEmpty
		}
		return Cell{Kind: kind, Slot: slot}, nil

	case a < b:
		// Bottom half holds the higher index: foreground paints the bottom.
		slot, err := SlotFor(a, b)
		if err != nil {
			return Cell{}, err
		}
		return Cell{Kind: PatchBottom, Slot: slot}, nil

	default:
		slot, err := SlotFor(b, a)
		if err != nil {
			return Cell{}, err
		}
		return Cell{Kind: PatchTop, Slot: slot}, nil
	}
}
