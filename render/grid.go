package render

// Grid is a row-major 2-D array of cells, the output of tiling a scalar
// field into half-block patches.
type Grid struct {
	cells []Cell
	rows  int
	cols  int
}

// Rows returns the grid height in character cells.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width in character cells.
func (g *Grid) Cols() int { return g.cols }

// At returns the cell at (row, col). Rows count from the top of the field.
func (g *Grid) At(row, col int) Cell {
	return g.cells[row*g.cols+col]
}

// BuildGrid tiles a scalar field of R rows by C columns into a grid of
// ceil(R/2) by C cells, pairing field rows top-down into patches. Column and
// row order are preserved; resampling to terminal dimensions is the
// transform layer's job.
//
// An odd final row pairs with an implicit no-signal bottom half rendered as
// background (the lowest palette bin). Empty input in either dimension, or
// ragged rows, fail with ErrDimensionMismatch.
func BuildGrid(q Quantizer, field [][]float64) (*Grid, error) {
	if len(field) == 0 || len(field[0]) == 0 {
		return nil, ErrDimensionMismatch
	}
	rows := len(field)
	cols := len(field[0])
	for _, r := range field {
		if len(r) != cols {
			return nil, ErrDimensionMismatch
		}
	}

	outRows := (rows + 1) / 2
	g := &Grid{
		cells: make([]Cell, outRows*cols),
		rows:  outRows,
		cols:  cols,
	}

	for r := 0; r < rows; r += 2 {
		for c := 0; c < cols; c++ {
			a := q.Scale(field[r][c])
			b := 0 // implicit background bottom for an odd trailing row
			if r+1 < rows {
				b = q.Scale(field[r+1][c])
			}
			cell, err := encodeIndices(a, b)
			if err != nil {
				return nil, err
			}
			g.cells[(r/2)*cols+c] = cell
		}
	}
	return g, nil
}
