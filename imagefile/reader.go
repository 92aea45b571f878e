package imagefile

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// TermCharAspectRatio is the approximate width/height ratio of a terminal
// character cell. Half-block patches already double vertical resolution;
// this corrects the remaining stretch when fitting images.
const TermCharAspectRatio = 0.5

// IsImageFile reports whether the file extension matches a supported decoder.
func IsImageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}

// Load decodes a PNG, JPEG, or GIF image.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imagefile: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imagefile: decode %s: %w", path, err)
	}
	return img, nil
}

// Luminance converts an image into a scalar field of the given dimensions,
// sampling with a box filter and mapping Rec. 601 luma into [0,1]. When
// keepAspect is set the field is letterboxed (zero padded) instead of
// stretched, using TermCharAspectRatio to correct for cell shape.
func Luminance(img image.Image, rows, cols int, keepAspect bool) [][]float64 {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	field := make([][]float64, rows)
	for i := range field {
		field[i] = make([]float64, cols)
	}
	if srcW == 0 || srcH == 0 || rows == 0 || cols == 0 {
		return field
	}

	fitRows, fitCols := rows, cols
	rowOff, colOff := 0, 0
	if keepAspect {
		// Effective cell grid is cols wide and rows*aspect tall in square
		// pixel terms.
		srcRatio := float64(srcW) / float64(srcH)
		gridRatio := float64(cols) * TermCharAspectRatio / float64(rows)
		if srcRatio > gridRatio {
			fitRows = int(float64(rows) * gridRatio / srcRatio)
			if fitRows < 1 {
				fitRows = 1
			}
			rowOff = (rows - fitRows) / 2
		} else {
			fitCols = int(float64(cols) * srcRatio / gridRatio)
			if fitCols < 1 {
				fitCols = 1
			}
			colOff = (cols - fitCols) / 2
		}
	}

	for r := 0; r < fitRows; r++ {
		y0 := bounds.Min.Y + r*srcH/fitRows
		y1 := bounds.Min.Y + (r+1)*srcH/fitRows
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for c := 0; c < fitCols; c++ {
			x0 := bounds.Min.X + c*srcW/fitCols
			x1 := bounds.Min.X + (c+1)*srcW/fitCols
			if x1 <= x0 {
				x1 = x0 + 1
			}

			sum := 0.0
			n := 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					pr, pg, pb, _ := img.At(x, y).RGBA()
					luma := 0.299*float64(pr) + 0.587*float64(pg) + 0.114*float64(pb)
					sum += luma / 65535.0
					n++
				}
			}
			field[rowOff+r][colOff+c] = sum / float64(n)
		}
	}
	return field
}
