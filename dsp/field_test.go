package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeDimensions(t *testing.T) {
	src := [][]float64{
		{0, 1, 2},
		{3, 4, 5},
	}

	tests := []struct {
		name       string
		rows, cols int
	}{
		{"upscale", 4, 6},
		{"downscale", 1, 2},
		{"identity", 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Resize(src, tt.rows, tt.cols)
			require.Len(t, out, tt.rows)
			for _, row := range out {
				assert.Len(t, row, tt.cols)
			}
		})
	}
}

func TestResizePreservesCorners(t *testing.T) {
	src := [][]float64{
		{1, 0, 2},
		{0, 0, 0},
		{3, 0, 4},
	}
	out := Resize(src, 5, 7)

	assert.InDelta(t, 1, out[0][0], 1e-12)
	assert.InDelta(t, 2, out[0][6], 1e-12)
	assert.InDelta(t, 3, out[4][0], 1e-12)
	assert.InDelta(t, 4, out[4][6], 1e-12)
}

func TestResizeInterpolatesLinearly(t *testing.T) {
	src := [][]float64{{0, 10}}
	out := Resize(src, 1, 3)
	assert.InDelta(t, 5, out[0][1], 1e-12)
}

func TestResize1D(t *testing.T) {
	out := Resize1D([]float64{0, 10}, 5)
	want := []float64{0, 2.5, 5, 7.5, 10}
	require.Len(t, out, 5)
	for i := range want {
		assert.InDelta(t, want[i], out[i], 1e-12, "index %d", i)
	}

	assert.Equal(t, []float64{7, 7, 7}, Resize1D([]float64{7}, 3))
	assert.Empty(t, Resize1D(nil, 0))
}

func TestNormalizeClipsToQuantileWindow(t *testing.T) {
	// One huge outlier must not stretch the window.
	field := [][]float64{
		{0, 1, 2, 3},
		{4, 5, 6, 1000},
	}
	out := Normalize(field, 0, 0.8)

	assert.Equal(t, 0.0, out[0][0])
	assert.Equal(t, 1.0, out[1][3], "outlier clips to the top")
	for _, row := range out {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestNormalizeFlatField(t *testing.T) {
	field := [][]float64{{3, 3}, {3, 3}}
	out := Normalize(field, LowerQuantile, UpperQuantile)
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, out)
}

func TestFlipRows(t *testing.T) {
	field := [][]float64{{1}, {2}, {3}}
	out := FlipRows(field)
	assert.Equal(t, [][]float64{{3}, {2}, {1}}, out)
}
