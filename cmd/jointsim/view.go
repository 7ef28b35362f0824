package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"joint-engine/internal/cli"
	"joint-engine/internal/debug"
	"joint-engine/internal/fonts"
	"joint-engine/internal/graphics"
	"joint-engine/internal/logger"
	"joint-engine/internal/render"
	"joint-engine/internal/terminal"
)

const (
	overlayFontSize  = 40
	maxTicksPerFrame = 8
)

type viewOptions struct {
	*cli.RootOptions
	LogFile    string
	Width      int
	Height     int
	Fullscreen bool
	Paused     bool
}

func newViewCommand(rootOpts *cli.RootOptions) *cobra.Command {
	opts := &viewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "view [script]",
		Short: "Open a window on a scene script",
		Long: `Run a scene script and show the result in a window, stepping the world at the
prefs tick rate. ESC opens the command terminal, which accepts the same commands as
scripts; with it closed the mouse and WASD fly the camera.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return view(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.LogFile, "log", "logs/jointsim.log", "engine log file")
	cmd.Flags().IntVar(&opts.Width, "width", 1280, "window width (0 = monitor)")
	cmd.Flags().IntVar(&opts.Height, "height", 720, "window height (0 = monitor)")
	cmd.Flags().BoolVar(&opts.Fullscreen, "fullscreen", false, "fullscreen window")
	cmd.Flags().BoolVar(&opts.Paused, "paused", false, "start without stepping the world")

	return cmd
}

func view(opts *viewOptions, args []string, cmd *cobra.Command) error {
	p, err := opts.Prefs()
	if err != nil {
		return err
	}
	log := logger.New(opts.LogFile)
	r := cli.NewSession(p, log)
	r.SetOutput(cmd.OutOrStdout())
	if len(args) == 1 {
		f, err := cli.Open(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		runErr := r.Run(f)
		f.Close()
		if runErr != nil {
			return fmt.Errorf("%s: %w", args[0], runErr)
		}
	}

	viewer := render.NewViewer()
	viewer.GridVisible = p.GridVisible
	viewer.Adorn = r.AdornOptions()
	term := terminal.New(log, r)
	dbg := debug.New()
	dbg.ShowFPS = p.ShowFPS
	dbg.ShowMemAlloc = p.ShowMemAlloc
	dbg.ShowJoints = true

	world := r.Workspace().World()
	fontLoaded := false
	paused := opts.Paused

	graphics.Run(graphics.Window{
		Title:      "jointsim",
		Width:      opts.Width,
		Height:     opts.Height,
		Fullscreen: opts.Fullscreen,
		TargetFPS:  p.TickRate,
	}, graphics.Loop{
		Dt:       p.Dt(),
		MaxTicks: maxTicksPerFrame,
		Tick: func(dt float32) {
			if !paused {
				r.Step(dt, 1)
			}
		},
		Update: func() {
			if !fontLoaded {
				fontLoaded = true
				if path, err := fonts.Find(fonts.Dirs(), p.Font); err == nil {
					font := rl.LoadFontEx(path, overlayFontSize, nil)
					rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
					term.SetFont(font)
					dbg.SetFont(font)
				}
			}
			term.Update()
			if !term.IsOpen() && rl.IsKeyPressed(rl.KeyP) {
				paused = !paused
				log.Logf("paused=%t", paused)
			}
			viewer.Adorn = r.AdornOptions()
			viewer.Update(!term.IsOpen())
		},
		Draw: func() {
			viewer.Draw(r.Root())
			term.Draw()
			dbg.Draw(world)
		},
	})
	return nil
}
