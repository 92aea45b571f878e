package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/inspec/ansi"
	"github.com/lixenwraith/inspec/app"
	"github.com/lixenwraith/inspec/audio"
	"github.com/lixenwraith/inspec/colormap"
	"github.com/lixenwraith/inspec/imagefile"
	"github.com/lixenwraith/inspec/render"
)

// termSize returns the terminal dimensions, with a sane fallback when
// stdout is not a terminal (pipes, CI).
func termSize() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols < 1 || rows < 1 {
		return 80, 24
	}
	return cols, rows
}

func sizeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "width", Aliases: []string{"w"}, Usage: "output width in columns (0 = terminal width)"},
		&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: "output height in rows (0 = terminal height)"},
	}
}

func resolveSize(c *cli.Context) (cols, rows int) {
	cols, rows = termSize()
	rows-- // leave the prompt line
	if w := c.Int("width"); w > 0 {
		cols = w
	}
	if h := c.Int("height"); h > 0 {
		rows = h
	}
	return cols, rows
}

// renderField quantizes a field against a colormap and writes it to stdout.
func renderField(field [][]float64, cmapName string) error {
	palette, err := colormap.Load(cmapName)
	if err != nil {
		return err
	}
	grid, err := render.BuildGrid(palette, field)
	if err != nil {
		return err
	}
	return ansi.Render(os.Stdout, grid, palette)
}

func showCommand(cfg *app.Config) *cli.Command {
	flags := append(sizeFlags(),
		&cli.Float64Flag{Name: "time", Aliases: []string{"t"}, Usage: "start time in seconds"},
		&cli.Float64Flag{Name: "duration", Aliases: []string{"d"}, Usage: "duration in seconds (0 = to end)"},
		&cli.IntFlag{Name: "channel", Usage: "audio channel (-1 = mix)"},
		&cli.BoolFlag{Name: "amp", Aliases: []string{"a"}, Usage: "show amplitude envelope instead of spectrogram"},
		&cli.BoolFlag{Name: "both", Aliases: []string{"b"}, Usage: "show spectrogram and amplitude envelope stacked"},
	)

	return &cli.Command{
		Name:      "show",
		Usage:     "Render an audio file to stdout",
		ArgsUsage: "FILE...",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowCommandHelpAndExit(c, "show", 1)
			}

			cols, rows := resolveSize(c)
			if c.Bool("both") {
				rows /= 2
			}

			for _, path := range c.Args().Slice() {
				clip, err := audio.Load(path, c.Int("channel"))
				if err != nil {
					return err
				}
				start := time.Duration(c.Float64("time") * float64(time.Second))
				dur := time.Duration(c.Float64("duration") * float64(time.Second))
				if start > 0 || dur > 0 {
					clip = clip.Slice(start, dur)
				}

				modes := []app.Mode{app.ModeSpectrogram}
				if c.Bool("amp") {
					modes = []app.Mode{app.ModeWaveform}
				} else if c.Bool("both") {
					modes = []app.Mode{app.ModeSpectrogram, app.ModeWaveform}
				}

				for _, mode := range modes {
					field, err := app.AudioField(clip, cfg, mode, rows*2, cols)
					if err != nil {
						return err
					}
					if err := renderField(field, cfg.Cmap); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

func imshowCommand(cfg *app.Config) *cli.Command {
	flags := append(sizeFlags(),
		&cli.BoolFlag{Name: "adaptive", Usage: "build the palette from the image instead of the colormap"},
	)

	return &cli.Command{
		Name:      "imshow",
		Usage:     "Render an image file to stdout",
		ArgsUsage: "FILE...",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowCommandHelpAndExit(c, "imshow", 1)
			}

			cols, rows := resolveSize(c)

			for _, path := range c.Args().Slice() {
				field, err := app.ImageField(path, rows*2, cols)
				if err != nil {
					return err
				}

				cmapName := cfg.Cmap
				if c.Bool("adaptive") {
					img, err := imagefile.Load(path)
					if err != nil {
						return err
					}
					palette, err := imagefile.AdaptivePalette(img, render.MaxColors)
					if err != nil {
						return err
					}
					grid, err := render.BuildGrid(palette, field)
					if err != nil {
						return err
					}
					if err := ansi.Render(os.Stdout, grid, palette); err != nil {
						return err
					}
					continue
				}

				if err := renderField(field, cmapName); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func openCommand(cfg *app.Config) *cli.Command {
	return &cli.Command{
		Name:      "open",
		Usage:     "Open files in the interactive viewer",
		ArgsUsage: "FILE...",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowCommandHelpAndExit(c, "open", 1)
			}
			viewer, err := app.NewViewer(cfg, c.Args().Slice())
			if err != nil {
				return err
			}
			return viewer.Run()
		},
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "Play an audio file",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowCommandHelpAndExit(c, "play", 1)
			}

			player, err := audio.NewPlayer()
			if err != nil {
				return err
			}

			done := make(chan struct{})
			if err := player.Play(c.Args().First(), func() { close(done) }); err != nil {
				return err
			}
			fmt.Printf("Playing %s (ctrl-c to stop)\n", c.Args().First())
			<-done
			return nil
		},
	}
}
