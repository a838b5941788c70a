// SPDX-License-Identifier: Unlicense OR MIT

// Command monosim runs the monoui demo application in a terminal
// simulator or on a Linux framebuffer.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"monoui.org/app"
	"monoui.org/config"
	"monoui.org/key"
	"monoui.org/raster"
	"monoui.org/text"
	"monoui.org/view"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	config string
	fps    int
	log    string
	debug  bool
}

func rootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:     "monosim",
		Short:   "Run the monoui demo in a terminal",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulator(&opts)
		},
	}
	f := root.PersistentFlags()
	f.StringVarP(&opts.config, "config", "c", "", "configuration file (default: built-in settings)")
	f.IntVar(&opts.fps, "fps", 0, "override the frame rate (0 = use config)")
	f.StringVar(&opts.log, "log", "", "write logs to this file")
	f.BoolVar(&opts.debug, "debug", false, "log at debug level")

	root.AddCommand(snapshotCmd(&opts), panelCmd(&opts))
	return root
}

func snapshotCmd(opts *options) *cobra.Command {
	var (
		keys   string
		frames int
		ascii  bool
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the demo after a key sequence and print the screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseKeys(keys)
			if err != nil {
				return err
			}
			s, closeLog, err := setup(opts)
			if err != nil {
				return err
			}
			defer closeLog()
			bm := snapshot(s.rt, s.cfg, s.face, seq, frames)
			out := bm.HalfBlocks()
			if ascii {
				out = bm.String()
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&keys, "keys", "k", "", "comma separated key names delivered one per frame")
	cmd.Flags().IntVarP(&frames, "frames", "n", 120, "frames to run after the last key")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "print one character per pixel")
	return cmd
}

func panelCmd(opts *options) *cobra.Command {
	var dev string
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Run the demo on a framebuffer, reading key names from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeLog, err := setup(opts)
			if err != nil {
				return err
			}
			defer closeLog()
			if dev == "" {
				dev = s.cfg.Display.Device
			}
			if dev == "" {
				return fmt.Errorf("no framebuffer device configured")
			}
			panel, closer, err := openPanel(dev)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			d := newPanelDriver(panel, s.cfg.Display.Width, s.cfg.Display.Height, s.face)
			go d.readKeys(ctx, cmd.InOrStdin(), s.rt.Ctx.Logger)
			return s.rt.Run(ctx, d, s.cfg.Display.FPS)
		},
	}
	cmd.Flags().StringVar(&dev, "device", "", "framebuffer device (default: display.device from config)")
	return cmd
}

// session is a configured demo application.
type session struct {
	cfg  *config.Config
	rt   *app.Runtime
	face text.Face
}

// setup loads the configuration, opens the log and builds the demo.
// The returned function closes the log.
func setup(opts *options) (*session, func(), error) {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return nil, nil, err
	}
	if opts.fps > 0 {
		cfg.Display.FPS = opts.fps
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}
	face, err := cfg.Face()
	if err != nil {
		return nil, nil, err
	}
	logger, closeLog, err := openLog(opts.log, opts.debug)
	if err != nil {
		return nil, nil, err
	}
	ctx := view.NewContext(cfg.Screen(), cfg.Theme())
	ctx.Logger = logger
	rt := app.New(ctx)
	newDemo(rt)
	logger.Info("started", "version", version, "screen", cfg.Screen(), "fps", cfg.Display.FPS, "font", cfg.Font.Face)
	return &session{cfg: cfg, rt: rt, face: face}, closeLog, nil
}

func openLog(path string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(h), func() { f.Close() }, nil
}

// parseKeys parses a comma separated list of key names.
func parseKeys(s string) ([]key.Code, error) {
	var codes []key.Code
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k, err := key.Parse(name)
		if err != nil {
			return nil, err
		}
		codes = append(codes, k)
	}
	return codes, nil
}

// snapshot delivers keys one per frame, runs settle more frames and
// returns the final screen.
func snapshot(rt *app.Runtime, cfg *config.Config, face text.Face, keys []key.Code, settle int) *raster.Bitmap {
	bm := raster.NewBitmap(cfg.Display.Width, cfg.Display.Height)
	c := raster.NewCanvas(bm, face)
	for _, k := range keys {
		rt.Step(c, k)
	}
	for range settle {
		rt.Step(c, key.None)
	}
	return bm
}

func runSimulator(opts *options) error {
	s, closeLog, err := setup(opts)
	if err != nil {
		return err
	}
	defer closeLog()
	p := tea.NewProgram(newSimulator(s.rt, s.cfg, s.face), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
