package dsp

import (
	"math"
	"sort"
)

// Default quantiles used to window spectrogram power into [0,1]. Clipping at
// a high quantile instead of the max keeps one loud transient from washing
// out the rest of the frame.
const (
	LowerQuantile = 0.05
	UpperQuantile = 0.998
)

// Resize scales a 2-D field to the target dimensions with bilinear
// interpolation. Input must be non-empty and rectangular.
func Resize(field [][]float64, targetRows, targetCols int) [][]float64 {
	srcRows := len(field)
	srcCols := len(field[0])

	out := make([][]float64, targetRows)
	for i := range out {
		out[i] = make([]float64, targetCols)
	}

	dy := 0.0
	if targetRows > 1 {
		dy = float64(srcRows-1) / float64(targetRows-1)
	}
	dx := 0.0
	if targetCols > 1 {
		dx = float64(srcCols-1) / float64(targetCols-1)
	}

	for i := 0; i < targetRows; i++ {
		refI := float64(i) * dy
		i0 := int(math.Floor(refI))
		i1 := int(math.Ceil(refI))
		if i1 >= srcRows {
			i1 = srcRows - 1
		}
		wi0 := 1.0 - (refI - float64(i0))
		for j := 0; j < targetCols; j++ {
			refJ := float64(j) * dx
			j0 := int(math.Floor(refJ))
			j1 := int(math.Ceil(refJ))
			if j1 >= srcCols {
				j1 = srcCols - 1
			}
			wj0 := 1.0 - (refJ - float64(j0))

			out[i][j] = field[i0][j0]*wi0*wj0 +
				field[i0][j1]*wi0*(1.0-wj0) +
				field[i1][j0]*(1.0-wi0)*wj0 +
				field[i1][j1]*(1.0-wi0)*(1.0-wj0)
		}
	}
	return out
}

// Resize1D linearly resamples a signal to the output length.
func Resize1D(signal []float64, outputLen int) []float64 {
	out := make([]float64, outputLen)
	if len(signal) == 0 || outputLen == 0 {
		return out
	}
	if len(signal) == 1 {
		for i := range out {
			out[i] = signal[0]
		}
		return out
	}
	step := float64(len(signal)-1) / float64(max(outputLen-1, 1))
	for i := range out {
		pos := float64(i) * step
		lo := int(math.Floor(pos))
		hi := int(math.Ceil(pos))
		if hi >= len(signal) {
			hi = len(signal) - 1
		}
		frac := pos - float64(lo)
		out[i] = signal[lo]*(1.0-frac) + signal[hi]*frac
	}
	return out
}

// Normalize windows a field into [0,1] between its lower and upper quantile
// values, clipping outside the window. A flat field maps to all zeros.
func Normalize(field [][]float64, lowerQ, upperQ float64) [][]float64 {
	floor := quantile(field, lowerQ)
	ceil := quantile(field, upperQ)

	out := make([][]float64, len(field))
	for i, row := range field {
		out[i] = make([]float64, len(row))
		if ceil == floor {
			continue
		}
		for j, v := range row {
			u := (v - floor) / (ceil - floor)
			if u < 0 {
				u = 0
			} else if u > 1 {
				u = 1
			}
			out[i][j] = u
		}
	}
	return out
}

// FlipRows reverses row order in place and returns the field. Spectrogram
// rows come out low-frequency first, but the display wants low frequencies
// at the bottom.
func FlipRows(field [][]float64) [][]float64 {
	for i, j := 0, len(field)-1; i < j; i, j = i+1, j-1 {
		field[i], field[j] = field[j], field[i]
	}
	return field
}

// quantile computes the q-th quantile over all field values by linear
// interpolation between order statistics.
func quantile(field [][]float64, q float64) float64 {
	n := 0
	for _, row := range field {
		n += len(row)
	}
	if n == 0 {
		return 0
	}
	flat := make([]float64, 0, n)
	for _, row := range field {
		flat = append(flat, row...)
	}
	sort.Float64s(flat)

	if q <= 0 {
		return flat[0]
	}
	if q >= 1 {
		return flat[len(flat)-1]
	}
	pos := q * float64(len(flat)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return flat[lo]*(1.0-frac) + flat[hi]*frac
}
