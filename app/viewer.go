package app

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/inspec/audio"
	"github.com/lixenwraith/inspec/colormap"
	"github.com/lixenwraith/inspec/render"
	"github.com/lixenwraith/inspec/terminal"
)

// Mode selects how audio files are visualized.
type Mode uint8

const (
	ModeSpectrogram Mode = iota
	ModeWaveform
)

func (m Mode) String() string {
	if m == ModeWaveform {
		return "wave"
	}
	return "spec"
}

// Viewer is the interactive file browser: one file on screen at a time,
// colormap and view mode switchable from the keyboard.
type Viewer struct {
	cfg     *Config
	surface *terminal.Surface

	files []string
	idx   int

	cmaps    []string
	cmapIdx  int
	inverted bool
	mode     Mode

	player  *audio.Player
	playing bool

	// clips caches decoded audio; prefetch fills it from a background
	// goroutine, so access goes through mu.
	mu    sync.Mutex
	clips map[string]*audio.Clip
}

// NewViewer prepares a viewer over the given files. The surface is not
// opened until Run, so construction is safe in tests.
func NewViewer(cfg *Config, files []string) (*Viewer, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("app: no files to view")
	}

	cmaps := colormap.Names()
	cmapIdx := 0
	for i, name := range cmaps {
		if name == cfg.Cmap {
			cmapIdx = i
			break
		}
	}

	return &Viewer{
		cfg:     cfg,
		files:   files,
		cmaps:   cmaps,
		cmapIdx: cmapIdx,
		clips:   make(map[string]*audio.Clip),
	}, nil
}

// Run opens the terminal and blocks in the event loop until quit.
func (v *Viewer) Run() error {
	surface, err := terminal.NewSurface()
	if err != nil {
		return err
	}
	v.surface = surface
	defer surface.Close()

	v.redraw()

	for {
		switch ev := surface.PollEvent().(type) {
		case *tcell.EventResize:
			surface.HandleResize()
			v.redraw()

		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey applies one key event; false means quit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRight:
		v.step(1)
		return true
	case tcell.KeyLeft:
		v.step(-1)
		return true
	case tcell.KeyUp:
		v.cycleCmap(1)
		return true
	case tcell.KeyDown:
		v.cycleCmap(-1)
		return true
	case tcell.KeyRune:
		// Handled below.
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'l':
		v.step(1)
	case 'h':
		v.step(-1)
	case 'k':
		v.cycleCmap(1)
	case 'j':
		v.cycleCmap(-1)
	case 'i':
		v.inverted = !v.inverted
		v.redraw()
	case 'w':
		v.mode = ModeWaveform
		v.redraw()
	case 's':
		v.mode = ModeSpectrogram
		v.redraw()
	case 'p':
		v.togglePlayback()
	case 'r':
		v.surface.Clear()
		v.redraw()
	}
	return true
}

func (v *Viewer) step(delta int) {
	v.idx = (v.idx + delta + len(v.files)) % len(v.files)
	v.redraw()
}

func (v *Viewer) cycleCmap(delta int) {
	v.cmapIdx = (v.cmapIdx + delta + len(v.cmaps)) % len(v.cmaps)
	v.redraw()
}

func (v *Viewer) palette() *colormap.Palette {
	p, err := colormap.Load(v.cmaps[v.cmapIdx])
	if err != nil {
		// Registry names are self-generated; a miss here is a bug.
		panic(err)
	}
	if v.inverted {
		p = p.Inverted()
	}
	return p
}

// redraw renders the current file into the surface and commits the frame.
func (v *Viewer) redraw() {
	width, height := v.surface.Size()
	if width < 1 || height < 2 {
		return
	}
	contentRows := height - 1 // bottom row is the status line

	path := v.files[v.idx]
	palette := v.palette()

	if err := v.surface.SetActive(palette); err != nil {
		v.status(fmt.Sprintf("palette error: %v", err))
		v.surface.Display()
		return
	}

	field, err := v.buildField(path, contentRows, width)
	if err != nil {
		log.Printf("render %s failed: %v", path, err)
		v.status(fmt.Sprintf("%s: %v", filepath.Base(path), err))
		v.surface.Display()
		return
	}

	grid, err := render.BuildGrid(palette, field)
	if err != nil {
		v.status(fmt.Sprintf("%s: %v", filepath.Base(path), err))
		v.surface.Display()
		return
	}

	if err := v.surface.DrawGrid(0, 0, grid); err != nil {
		log.Printf("draw %s failed: %v", path, err)
		v.status(fmt.Sprintf("%s: %v", filepath.Base(path), err))
		v.surface.Display()
		return
	}

	v.status(fmt.Sprintf(" %s  [%d/%d]  cmap=%s  mode=%s ",
		filepath.Base(path), v.idx+1, len(v.files), v.cmaps[v.cmapIdx], v.mode))
	v.surface.Display()

	v.prefetch()
}

// prefetch decodes the next audio file in the background so paging does not
// stall on file I/O. Runs under terminal.Go so a decoder panic still
// restores the terminal.
func (v *Viewer) prefetch() {
	if len(v.files) < 2 {
		return
	}
	next := v.files[(v.idx+1)%len(v.files)]
	if !audio.IsAudioFile(next) {
		return
	}

	v.mu.Lock()
	_, cached := v.clips[next]
	v.mu.Unlock()
	if cached {
		return
	}

	terminal.Go(func() {
		// Errors surface when the file is actually viewed.
		_, _ = v.clip(next)
	})
}

// status writes the bottom status line, padded across the full width.
func (v *Viewer) status(text string) {
	width, height := v.surface.Size()
	v.surface.DrawText(height-1, 0, padLine(text, width), 231, 236)
}

// padLine pads or truncates text to exactly width runes. Byte-based slicing
// would cut multibyte filenames mid-rune.
func padLine(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return text + strings.Repeat(" ", width-len(runes))
}

// buildField produces the scalar field for the current file sized for a
// cell grid of contentRows by cols (field height is doubled by patches).
func (v *Viewer) buildField(path string, contentRows, cols int) ([][]float64, error) {
	fieldRows := contentRows * 2

	if audio.IsAudioFile(path) {
		clip, err := v.clip(path)
		if err != nil {
			return nil, err
		}
		return AudioField(clip, v.cfg, v.mode, fieldRows, cols)
	}
	return ImageField(path, fieldRows, cols)
}

// clip loads an audio file, caching decoded samples for fast paging. A
// prefetch racing the event loop may decode the same file twice; the second
// result simply replaces the first.
func (v *Viewer) clip(path string) (*audio.Clip, error) {
	v.mu.Lock()
	c, ok := v.clips[path]
	v.mu.Unlock()
	if ok {
		return c, nil
	}

	c, err := audio.Load(path, v.cfg.Channel)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	v.clips[path] = c
	v.mu.Unlock()
	return c, nil
}

func (v *Viewer) togglePlayback() {
	path := v.files[v.idx]
	if !audio.IsAudioFile(path) {
		return
	}

	if v.player == nil {
		p, err := audio.NewPlayer()
		if err != nil {
			log.Printf("audio init failed: %v", err)
			v.status(fmt.Sprintf("audio unavailable: %v", err))
			v.surface.Display()
			return
		}
		v.player = p
	}

	if v.playing {
		v.player.Stop()
		v.playing = false
		v.redraw()
		return
	}

	if err := v.player.Play(path, nil); err != nil {
		log.Printf("playback failed: %v", err)
		v.status(fmt.Sprintf("playback failed: %v", err))
		v.surface.Display()
		return
	}
	v.playing = true
}
