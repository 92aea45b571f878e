// Package ansi renders cell grids as xterm-256 escape sequences for
// non-interactive output (pipes, files, plain stdout).
package ansi

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lixenwraith/inspec/colormap"
	"github.com/lixenwraith/inspec/render"
)

const reset = "\x1b[0m"

// Render writes a grid to w, one line per grid row, resolving each cell's
// slot back to its color pair against the palette the grid was built with.
// Consecutive cells sharing a color pair reuse the escape sequence.
func Render(w io.Writer, g *render.Grid, p *colormap.Palette) error {
	bw := bufio.NewWriter(w)
	k := p.Len()

	for r := 0; r < g.Rows(); r++ {
		last := render.Slot(0) // slot 0 is never allocated
		for c := 0; c < g.Cols(); c++ {
			cell := g.At(r, c)
			if cell.Slot != last {
				lo, hi, err := render.PairFor(cell.Slot, k)
				if err != nil {
					return fmt.Errorf("ansi: cell (%d,%d): %w", r, c, err)
				}
				fmt.Fprintf(bw, "\x1b[38;5;%dm\x1b[48;5;%dm", p.Color(hi), p.Color(lo))
				last = cell.Slot
			}
			bw.WriteRune(cell.Kind.Glyph())
		}
		bw.WriteString(reset)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
