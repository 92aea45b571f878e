package imagefile

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/lixenwraith/inspec/colormap"
	"github.com/lixenwraith/inspec/render"
)

// AdaptivePalette extracts a palette of up to maxColors colors from an image
// with median-cut quantization, maps each to its nearest xterm-256 index,
// and orders the result dark to light so low field intensities stay dark.
// maxColors is clamped to the slot allocator's limit of 22.
func AdaptivePalette(img image.Image, maxColors int) (*colormap.Palette, error) {
	if maxColors < 1 || maxColors > render.MaxColors {
		maxColors = render.MaxColors
	}

	q := quantize.MedianCutQuantizer{}
	pal := q.Quantize(make(color.Palette, 0, maxColors), img)

	type entry struct {
		idx  colormap.Color256
		luma float64
	}
	entries := make([]entry, 0, len(pal))
	for _, c := range pal {
		r, g, b, _ := c.RGBA()
		entries = append(entries, entry{
			idx:  colormap.NearestColor256(uint8(r>>8), uint8(g>>8), uint8(b>>8)),
			luma: 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b),
		})
	}
	// Insertion sort by luma; palettes are tiny.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].luma < entries[j-1].luma; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}

	colors := make([]colormap.Color256, len(entries))
	for i, e := range entries {
		colors[i] = e.idx
	}
	return colormap.NewPalette(colors)
}
