package app

import (
	"github.com/lixenwraith/inspec/audio"
	"github.com/lixenwraith/inspec/dsp"
	"github.com/lixenwraith/inspec/imagefile"
)

// AudioField converts a decoded clip into a display-ready scalar field of
// rows by cols, values in [0,1].
func AudioField(clip *audio.Clip, cfg *Config, mode Mode, rows, cols int) ([][]float64, error) {
	if mode == ModeWaveform {
		return dsp.AmplitudeEnvelope(clip.Samples, dsp.DefaultEnvelopeConfig(), rows, cols), nil
	}

	spec, err := dsp.ComputeSpectrogram(clip.Samples, clip.SampleRate, cfg.SpectrogramConfig())
	if err != nil {
		return nil, err
	}
	field := dsp.Resize(spec.Power, rows, cols)
	field = dsp.Normalize(field, dsp.LowerQuantile, dsp.UpperQuantile)
	// Spectrogram rows are low frequency first; put them at the bottom.
	return dsp.FlipRows(field), nil
}

// ImageField loads an image and converts it into a luminance field of rows
// by cols, preserving aspect ratio with letterboxing.
func ImageField(path string, rows, cols int) ([][]float64, error) {
	img, err := imagefile.Load(path)
	if err != nil {
		return nil, err
	}
	return imagefile.Luminance(img, rows, cols, true), nil
}
