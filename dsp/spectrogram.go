package dsp

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrShortSignal is returned when a signal is too short to window.
var ErrShortSignal = errors.New("dsp: signal too short for spectrogram")

// SpectrogramConfig controls the Gaussian-windowed STFT.
type SpectrogramConfig struct {
	// SampleRate is the spectrogram rate in columns per second of signal.
	SampleRate int
	// FreqSpacing is the desired frequency resolution in Hz; together with
	// NStd it fixes the analysis window length.
	FreqSpacing float64
	// NStd is the width of the Gaussian window in standard deviations.
	NStd float64
	// MinFreq and MaxFreq bound the returned frequency rows. MaxFreq of 0
	// means the Nyquist frequency.
	MinFreq float64
	MaxFreq float64
}

// DefaultSpectrogramConfig returns the settings tuned for speech and
// birdsong style audio on a terminal-sized canvas.
func DefaultSpectrogramConfig() SpectrogramConfig {
	return SpectrogramConfig{
		SampleRate:  1000,
		FreqSpacing: 50,
		NStd:        6,
		MinFreq:     250,
		MaxFreq:     10000,
	}
}

// Spectrogram is a time/frequency power field. Power is row-major with one
// row per frequency, ordered low to high; values are raw magnitudes.
type Spectrogram struct {
	Times []float64
	Freqs []float64
	Power [][]float64
}

// ComputeSpectrogram runs a Gaussian-windowed short-time Fourier transform
// over a mono signal. Window length is NStd/(2*pi*FreqSpacing) seconds,
// forced to an odd sample count; the signal is zero-padded by half a window
// on both sides so every column sees a full window.
func ComputeSpectrogram(signal []float64, sampleRate int, cfg SpectrogramConfig) (*Spectrogram, error) {
	if len(signal) == 0 || sampleRate <= 0 {
		return nil, ErrShortSignal
	}

	maxFreq := cfg.MaxFreq
	if maxFreq <= 0 {
		maxFreq = float64(sampleRate) / 2.0
	}

	windowLength := cfg.NStd / (2.0 * math.Pi * cfg.FreqSpacing)
	winSize := int(float64(sampleRate) * windowLength)
	if winSize%2 == 0 {
		winSize++
	}
	if len(signal) < winSize {
		winSize = len(signal)
		if winSize%2 == 0 {
			winSize--
		}
	}
	if winSize < 1 {
		return nil, ErrShortSignal
	}
	halfWin := winSize / 2

	nIncrement := int(math.Round(float64(sampleRate) / float64(cfg.SampleRate)))
	if nIncrement < 1 {
		nIncrement = 1
	}
	nWindows := len(signal) / nIncrement
	if nWindows == 0 {
		return nil, ErrShortSignal
	}

	// Gaussian window, normalized.
	window := make([]float64, winSize)
	sigma := float64(winSize) / cfg.NStd
	norm := sigma * math.Sqrt(2.0*math.Pi)
	for i := range window {
		t := float64(i - halfWin)
		window[i] = math.Exp(-(t*t)/(2.0*sigma*sigma)) / norm
	}

	// Frequency rows kept from the real FFT output.
	fft := fourier.NewFFT(winSize)
	nCoeff := winSize/2 + 1
	keep := make([]int, 0, nCoeff)
	freqs := make([]float64, 0, nCoeff)
	for k := 0; k < nCoeff; k++ {
		f := float64(k) * float64(sampleRate) / float64(winSize)
		if f >= cfg.MinFreq && f <= maxFreq {
			keep = append(keep, k)
			freqs = append(freqs, f)
		}
	}
	if len(keep) == 0 {
		return nil, ErrShortSignal
	}

	// Zero-pad by half a window on both sides.
	padded := make([]float64, len(signal)+2*halfWin)
	copy(padded[halfWin:], signal)

	power := make([][]float64, len(keep))
	for i := range power {
		power[i] = make([]float64, nWindows)
	}
	times := make([]float64, nWindows)

	windowed := make([]float64, winSize)
	coeff := make([]complex128, nCoeff)
	for w := 0; w < nWindows; w++ {
		center := w*nIncrement + halfWin
		slice := padded[center-halfWin : center+halfWin+1]
		for i := range windowed {
			windowed[i] = slice[i] * window[i]
		}
		coeff = fft.Coefficients(coeff, windowed)
		for i, k := range keep {
			power[i][w] = cmplxAbs(coeff[k])
		}
		times[w] = float64(w*nIncrement) / float64(sampleRate)
	}

	return &Spectrogram{Times: times, Freqs: freqs, Power: power}, nil
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
