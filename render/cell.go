package render

// PatchKind selects which halves of a character cell show the foreground
// color. The set is closed: the renderer emits no glyphs outside these four.
type PatchKind uint8

const (
	PatchEmpty  PatchKind = iota // both halves background (space)
	PatchTop                     // upper half foreground (▀)
	PatchBottom                  // lower half foreground (▄)
	PatchFull                    // both halves foreground (█)
)

// Glyph returns the block character for the patch kind.
func (k PatchKind) Glyph() rune {
	switch k {
	case PatchTop:
		return '▀'
	case PatchBottom:
		return '▄'
	case PatchFull:
		return '█'
	default:
		return ' '
	}
}

// Invert swaps the foreground and background halves of the patch.
func (k PatchKind) Invert() PatchKind {
	switch k {
	case PatchEmpty:
		return PatchFull
	case PatchTop:
		return PatchBottom
	case PatchBottom:
		return PatchTop
	default:
		return PatchEmpty
	}
}

// Cell is the minimal renderable unit: a glyph variant plus the slot holding
// its color pair. Cells are built fresh each frame and never retained.
type Cell struct {
	Kind PatchKind
	Slot Slot
}
