package app

import (
	"os"
	"strconv"

	"github.com/lixenwraith/inspec/colormap"
	"github.com/lixenwraith/inspec/dsp"
)

// Config carries the viewer settings shared by the CLI commands and the
// interactive app.
type Config struct {
	Cmap           string
	SpecSampleRate int
	FreqSpacing    float64
	MinFreq        float64
	MaxFreq        float64
	Channel        int
	Debug          bool
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	spec := dsp.DefaultSpectrogramConfig()
	return &Config{
		Cmap:           colormap.DefaultName,
		SpecSampleRate: spec.SampleRate,
		FreqSpacing:    spec.FreqSpacing,
		MinFreq:        spec.MinFreq,
		MaxFreq:        spec.MaxFreq,
		Channel:        0,
	}
}

// LoadConfig loads settings from INSPEC_* environment variables, falling
// back to defaults. Malformed values are ignored rather than fatal so a bad
// shell profile cannot brick the viewer.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if cmap := os.Getenv("INSPEC_CMAP"); cmap != "" {
		if _, err := colormap.Load(cmap); err == nil {
			cfg.Cmap = cmap
		}
	}

	if rate := os.Getenv("INSPEC_SPEC_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SpecSampleRate = val
		}
	}

	if spacing := os.Getenv("INSPEC_FREQ_SPACING"); spacing != "" {
		if val, err := strconv.ParseFloat(spacing, 64); err == nil && val > 0 {
			cfg.FreqSpacing = val
		}
	}

	if minFreq := os.Getenv("INSPEC_MIN_FREQ"); minFreq != "" {
		if val, err := strconv.ParseFloat(minFreq, 64); err == nil && val >= 0 {
			cfg.MinFreq = val
		}
	}

	if maxFreq := os.Getenv("INSPEC_MAX_FREQ"); maxFreq != "" {
		if val, err := strconv.ParseFloat(maxFreq, 64); err == nil && val > 0 {
			cfg.MaxFreq = val
		}
	}

	if debug := os.Getenv("INSPEC_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = val
		}
	}

	return cfg
}

// SpectrogramConfig converts the viewer settings into DSP parameters.
func (c *Config) SpectrogramConfig() dsp.SpectrogramConfig {
	spec := dsp.DefaultSpectrogramConfig()
	spec.SampleRate = c.SpecSampleRate
	spec.FreqSpacing = c.FreqSpacing
	spec.MinFreq = c.MinFreq
	spec.MaxFreq = c.MaxFreq
	return spec
}
