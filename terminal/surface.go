package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/inspec/colormap"
	"github.com/lixenwraith/inspec/render"
)

// Surface realizes cell grids against a live terminal. It owns the active
// palette and the native color-pair bindings: logical slots bind lazily to
// tcell styles on first reference and stay valid until the palette changes.
//
// Draw calls stage cells into an internal frame buffer; nothing reaches the
// terminal until Display commits the whole frame. A failed render pass
// therefore never leaves the previous frame half-overwritten.
//
// Surface is single-writer: one rendering pass completes before the next
// begins, and palette switches must be serialized with render passes.
type Surface struct {
	screen tcell.Screen

	palette *colormap.Palette
	styles  map[render.Slot]tcell.Style

	frame  []frameCell
	dirty  []bool
	width  int
	height int
}

type frameCell struct {
	glyph rune
	style tcell.Style
}

// NewSurface opens a tcell screen and takes ownership of the terminal.
// Callers must pair it with Close, normally via defer and HandleCrash.
func NewSurface() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init screen: %w", err)
	}
	screen.HideCursor()

	s := &Surface{screen: screen}
	s.resize()
	return s, nil
}

// newSurfaceFromScreen wires a Surface to an existing screen. Used by tests
// with a tcell simulation screen.
func newSurfaceFromScreen(screen tcell.Screen) *Surface {
	s := &Surface{screen: screen}
	s.resize()
	return s
}

func (s *Surface) resize() {
	s.width, s.height = s.screen.Size()
	s.frame = make([]frameCell, s.width*s.height)
	s.dirty = make([]bool, s.width*s.height)
}

// Close restores the terminal. Safe to call multiple times.
func (s *Surface) Close() {
	s.screen.Fini()
}

// Size returns the frame buffer dimensions in character cells.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Palette returns the active palette, or nil before the first SetActive.
func (s *Surface) Palette() *colormap.Palette {
	return s.palette
}

// SetActive replaces the active palette and invalidates every native
// binding. It fails with ErrPaletteTooLarge for palettes beyond 22 colors
// and leaves the prior palette untouched on failure.
func (s *Surface) SetActive(p *colormap.Palette) error {
	if p.Len() > render.MaxColors {
		return fmt.Errorf("terminal: %d colors: %w", p.Len(), render.ErrPaletteTooLarge)
	}
	if render.SlotCount(p.Len()) > render.MaxSlots {
		// Unreachable while MaxColors holds; kept so capacity disagreement
		// surfaces loudly instead of corrupting colors.
		return render.ErrSlotExhausted
	}
	s.palette = p
	s.styles = make(map[render.Slot]tcell.Style, render.SlotCount(p.Len()))
	return nil
}

// style resolves the native binding for a slot, creating it on first use.
// Binding is on demand: most sessions touch far fewer pairs than the
// theoretical maximum, so bulk pre-registration would waste the budget.
func (s *Surface) style(slot render.Slot) (tcell.Style, error) {
	if s.palette == nil {
		return tcell.StyleDefault, fmt.Errorf("terminal: no active palette: %w", render.ErrSlotOutOfRange)
	}
	if st, ok := s.styles[slot]; ok {
		return st, nil
	}
	if int(slot) > render.MaxSlots || len(s.styles) >= render.MaxSlots {
		return tcell.StyleDefault, render.ErrSlotExhausted
	}

	lo, hi, err := render.PairFor(slot, s.palette.Len())
	if err != nil {
		return tcell.StyleDefault, err
	}

	// The slot keys the unordered pair only; the glyph carries orientation.
	// Foreground is always the higher palette index.
	st := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(s.palette.Color(hi)))).
		Background(tcell.PaletteColor(int(s.palette.Color(lo))))
	s.styles[slot] = st
	return st, nil
}

// Draw stages one cell at (row, col) in the frame buffer. An out-of-bounds
// position is a caller bug, reported as ErrOutOfBounds.
func (s *Surface) Draw(row, col int, cell render.Cell) error {
	if row < 0 || row >= s.height || col < 0 || col >= s.width {
		return fmt.Errorf("terminal: draw at (%d,%d) in %dx%d frame: %w",
			row, col, s.width, s.height, render.ErrOutOfBounds)
	}
	st, err := s.style(cell.Slot)
	if err != nil {
		return err
	}
	idx := row*s.width + col
	s.frame[idx] = frameCell{glyph: cell.Kind.Glyph(), style: st}
	s.dirty[idx] = true
	return nil
}

// DrawGrid stages a whole grid with its top-left cell at (row, col).
func (s *Surface) DrawGrid(row, col int, g *render.Grid) error {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if err := s.Draw(row+r, col+c, g.At(r, c)); err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawText stages a plain text run at (row, col) with explicit xterm-256
// colors, clipping at the right edge. Status lines only; field cells go
// through Draw so they stay inside the slot discipline.
func (s *Surface) DrawText(row, col int, text string, fg, bg colormap.Color256) {
	if row < 0 || row >= s.height {
		return
	}
	st := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(fg))).
		Background(tcell.PaletteColor(int(bg)))
	for _, r := range text {
		if col < 0 || col >= s.width {
			break
		}
		idx := row*s.width + col
		s.frame[idx] = frameCell{glyph: r, style: st}
		s.dirty[idx] = true
		col++
	}
}

// Display commits staged cells to the terminal in one paint. Calling it with
// nothing staged is a no-op redraw and does not flicker.
func (s *Surface) Display() {
	for idx := range s.frame {
		if !s.dirty[idx] {
			continue
		}
		fc := s.frame[idx]
		s.screen.SetContent(idx%s.width, idx/s.width, fc.glyph, nil, fc.style)
		s.dirty[idx] = false
	}
	s.screen.Show()
}

// Clear wipes both the staged frame and the terminal contents.
func (s *Surface) Clear() {
	s.screen.Clear()
	for i := range s.frame {
		s.frame[i] = frameCell{}
		s.dirty[i] = false
	}
}

// PollEvent blocks until the next input, resize, or synthetic event.
func (s *Surface) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// HandleResize resyncs the frame buffer with the terminal after a resize
// event. Staged but undisplayed cells are dropped; callers re-render.
func (s *Surface) HandleResize() {
	s.screen.Sync()
	s.resize()
}
