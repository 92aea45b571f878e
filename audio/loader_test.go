package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.wav", true},
		{"song.FLAC", true},
		{"song.mp3", true},
		{"song.ogg", true},
		{"song.oga", true},
		{"cover.png", false},
		{"noext", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsAudioFile(tt.path), tt.path)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o644))

	_, err := Load(path, 0)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "gone.wav"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// sliceStreamer feeds fixed stereo frames into the wav encoder.
type sliceStreamer struct {
	frames [][2]float64
	pos    int
}

func (s *sliceStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.frames) {
		return 0, false
	}
	n := copy(samples, s.frames[s.pos:])
	s.pos += n
	return n, true
}

func (s *sliceStreamer) Err() error { return nil }

func writeWav(t *testing.T, frames [][2]float64, sampleRate int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	require.NoError(t, wav.Encode(f, &sliceStreamer{frames: frames}, format))
	return path
}

func TestLoadChannels(t *testing.T) {
	frames := make([][2]float64, 800)
	for i := range frames {
		frames[i] = [2]float64{0.5, -0.5}
	}
	path := writeWav(t, frames, 8000)

	left, err := Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 8000, left.SampleRate)
	assert.Equal(t, 2, left.Metadata.Channels)
	assert.Len(t, left.Samples, 800)
	assert.InDelta(t, 0.5, left.Samples[0], 1e-3)

	right, err := Load(path, 1)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, right.Samples[0], 1e-3)

	mixed, err := Load(path, -1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, mixed.Samples[0], 1e-3)

	_, err = Load(path, 2)
	assert.Error(t, err, "channel index beyond the source")
}

func TestClipSlice(t *testing.T) {
	clip := &Clip{
		Samples:    make([]float64, 1000),
		SampleRate: 100,
		Metadata:   Metadata{SampleRate: 100, Frames: 1000, Channels: 1, Duration: 10 * time.Second},
	}
	for i := range clip.Samples {
		clip.Samples[i] = float64(i)
	}

	tests := []struct {
		name       string
		start, dur time.Duration
		wantLen    int
		wantFirst  float64
	}{
		{"middle window", 2 * time.Second, 3 * time.Second, 300, 200},
		{"zero dur runs to end", 8 * time.Second, 0, 200, 800},
		{"dur clamps at end", 9 * time.Second, 5 * time.Second, 100, 900},
		{"start past end", 20 * time.Second, time.Second, 0, 0},
		{"negative start clamps", -time.Second, time.Second, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := clip.Slice(tt.start, tt.dur)
			require.Len(t, sub.Samples, tt.wantLen)
			assert.Equal(t, tt.wantLen, sub.Metadata.Frames)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, sub.Samples[0])
			}
			assert.Equal(t, clip.SampleRate, sub.SampleRate)
		})
	}

	assert.Equal(t, 3*time.Second, clip.Slice(2*time.Second, 3*time.Second).Duration())
}
