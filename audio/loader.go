package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupportedFormat is returned for file extensions no decoder handles.
var ErrUnsupportedFormat = errors.New("audio: unsupported file format")

// Metadata describes a loaded audio file.
type Metadata struct {
	SampleRate int
	Frames     int
	Channels   int
	Duration   time.Duration
}

// Clip is a fully decoded mono signal. Decoding happens up front; render
// passes never block on file I/O.
type Clip struct {
	Samples    []float64
	SampleRate int
	Metadata   Metadata
}

// Duration returns the clip length.
func (c *Clip) Duration() time.Duration {
	return c.Metadata.Duration
}

// Slice returns the sub-clip covering [start, start+dur), clamped to the
// clip bounds. A zero dur means everything from start onward.
func (c *Clip) Slice(start, dur time.Duration) *Clip {
	lo := int(start.Seconds() * float64(c.SampleRate))
	if lo < 0 {
		lo = 0
	}
	if lo > len(c.Samples) {
		lo = len(c.Samples)
	}
	hi := len(c.Samples)
	if dur > 0 {
		hi = lo + int(dur.Seconds()*float64(c.SampleRate))
		if hi > len(c.Samples) {
			hi = len(c.Samples)
		}
	}

	sub := c.Samples[lo:hi]
	return &Clip{
		Samples:    sub,
		SampleRate: c.SampleRate,
		Metadata: Metadata{
			SampleRate: c.SampleRate,
			Frames:     len(sub),
			Channels:   c.Metadata.Channels,
			Duration:   time.Duration(float64(len(sub)) / float64(c.SampleRate) * float64(time.Second)),
		},
	}
}

// decode opens a file and picks the decoder by extension.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("audio: open %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".ogg", ".oga":
		return vorbis.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// IsAudioFile reports whether a decoder exists for the file extension.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".flac", ".mp3", ".ogg", ".oga":
		return true
	}
	return false
}

// Load decodes an entire audio file into a mono clip. channel selects which
// source channel to keep; -1 averages all channels.
func Load(path string, channel int) (*Clip, error) {
	streamer, format, err := decode(path)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	if channel >= format.NumChannels {
		return nil, fmt.Errorf("audio: channel %d out of %d channels", channel, format.NumChannels)
	}

	samples := make([]float64, 0, streamer.Len())
	buf := make([][2]float64, 2048)
	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			// beep streams stereo frames; mono sources carry the same value
			// in both channels.
			switch {
			case channel < 0:
				samples = append(samples, (buf[i][0]+buf[i][1])/2.0)
			case channel == 0 || format.NumChannels == 1:
				samples = append(samples, buf[i][0])
			default:
				samples = append(samples, buf[i][1])
			}
		}
		if !ok {
			break
		}
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}

	sr := int(format.SampleRate)
	return &Clip{
		Samples:    samples,
		SampleRate: sr,
		Metadata: Metadata{
			SampleRate: sr,
			Frames:     len(samples),
			Channels:   format.NumChannels,
			Duration:   time.Duration(float64(len(samples)) / float64(sr) * float64(time.Second)),
		},
	}, nil
}
