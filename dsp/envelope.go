package dsp

import "math"

// EnvelopeConfig controls the two-sided amplitude envelope view.
type EnvelopeConfig struct {
	// YMax fixes the amplitude mapped to full height. 0 means autoscale to
	// the loudest sample.
	YMax float64
	// GradientLow and GradientHigh set the intensity ramp from the center
	// line outward, both in [0,1] with low <= high.
	GradientLow  float64
	GradientHigh float64
}

// DefaultEnvelopeConfig matches the waveform look of the stdout viewer.
func DefaultEnvelopeConfig() EnvelopeConfig {
	return EnvelopeConfig{GradientLow: 0.3, GradientHigh: 0.7}
}

// AmplitudeEnvelope renders a mono signal as a two-sided amplitude envelope
// field of rows by cols, values already in [0,1]. The envelope grows from
// the vertical center outward, brighter toward the peaks.
func AmplitudeEnvelope(signal []float64, cfg EnvelopeConfig, rows, cols int) [][]float64 {
	ampenv := make([]float64, len(signal))
	for i, v := range signal {
		ampenv[i] = math.Abs(v)
	}
	ampenv = Resize1D(ampenv, cols)

	ymax := cfg.YMax
	if ymax <= 0 {
		for _, v := range ampenv {
			if v > ymax {
				ymax = v
			}
		}
	}
	if ymax == 0 {
		ymax = 1.0
	}

	field := make([][]float64, rows)
	for i := range field {
		field[i] = make([]float64, cols)
	}

	halfHeight := rows / 2
	if halfHeight == 0 {
		return field
	}
	span := cfg.GradientHigh - cfg.GradientLow

	for col, amp := range ampenv {
		fill := int(math.Round(float64(halfHeight) * amp / ymax))
		// The upward mirror reaches halfHeight-fill; a fixed YMax below the
		// signal peak can push fill past it.
		if fill > halfHeight {
			fill = halfHeight
		}
		for i := 0; i < fill; i++ {
			val := cfg.GradientLow + float64(i+1)/float64(halfHeight)*span
			field[halfHeight+i][col] = val
			field[halfHeight-i-1][col] = val
		}
	}
	return field
}
