package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/lixenwraith/inspec/app"
	"github.com/lixenwraith/inspec/colormap"
	"github.com/lixenwraith/inspec/terminal"
)

func main() {
	// Panic recovery: restore the terminal before the stack trace prints,
	// otherwise the trace lands in the alternate screen and vanishes.
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	cfg := app.LoadConfig()

	cliApp := &cli.App{
		Name:  "inspec",
		Usage: "inspect audio and image files directly in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "cmap",
				Aliases: []string{"c"},
				EnvVars: []string{"INSPEC_CMAP"},
				Value:   cfg.Cmap,
				Usage:   "colormap name (see 'inspec cmaps')",
			},
			&cli.BoolFlag{
				Name:    "debug",
				EnvVars: []string{"INSPEC_DEBUG"},
				Value:   cfg.Debug,
				Usage:   "write debug logs to ./logs",
			},
		},
		Before: func(c *cli.Context) error {
			logFile := setupLogging(c.Bool("debug"))
			if logFile != nil {
				// Leaked intentionally; the process owns it until exit.
				_ = logFile
			}
			cfg.Cmap = c.String("cmap")
			cfg.Debug = c.Bool("debug")
			return nil
		},
		Commands: []*cli.Command{
			showCommand(cfg),
			imshowCommand(cfg),
			openCommand(cfg),
			playCommand(),
			cmapsCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cmapsCommand() *cli.Command {
	return &cli.Command{
		Name:  "cmaps",
		Usage: "List available colormaps",
		Action: func(c *cli.Context) error {
			for _, name := range colormap.Names() {
				fmt.Println(name)
			}
			fmt.Printf("Default: %s\n", colormap.DefaultName)
			return nil
		},
	}
}
