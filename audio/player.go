package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// The speaker initializes once per process; the outcome, success or not,
// holds for every Player after that.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// Player streams decoded files to the system speaker. The speaker is
// initialized once at a fixed rate; clips at other rates are resampled.
type Player struct {
	sampleRate beep.SampleRate

	mu      sync.Mutex
	current *beep.Ctrl
}

// NewPlayer initializes the speaker with a tenth of a second of buffer.
func NewPlayer() (*Player, error) {
	const rate = beep.SampleRate(44100)
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(rate, rate.N(time.Second/10))
	})
	if speakerErr != nil {
		return nil, speakerErr
	}
	return &Player{sampleRate: rate}, nil
}

// Play starts a file from the beginning, replacing whatever is playing.
// Playback is asynchronous; done (if non-nil) is called from the speaker
// goroutine when the stream ends.
func (p *Player) Play(path string, done func()) error {
	streamer, format, err := decode(path)
	if err != nil {
		return err
	}

	var stream beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		stream = beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
	}

	ctrl := &beep.Ctrl{Streamer: stream}

	p.mu.Lock()
	if p.current != nil {
		// Pause the previous stream; the sequence callback below closes it.
		speaker.Lock()
		p.current.Paused = true
		p.current.Streamer = nil
		speaker.Unlock()
	}
	p.current = ctrl
	p.mu.Unlock()

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		streamer.Close()
		if done != nil {
			done()
		}
	})))
	return nil
}

// Stop halts the current playback, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return
	}
	speaker.Lock()
	p.current.Paused = true
	p.current.Streamer = nil
	speaker.Unlock()
	p.current = nil
}
