package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/photo-rings/internal/config"
	"github.com/iburimskiy/photo-rings/internal/game"
)

func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		imageDir   string
		letter     string
		musicPath  string
		width      int
		height     int
		perSecond  bool
		breathe    bool
	)

	cmd := &cobra.Command{
		Use:          "photo-rings",
		Short:        "Photo gallery laid out on drifting hexagonal rings",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(level)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("images") {
				cfg.ImageDir = imageDir
			}
			if flags.Changed("letter") {
				cfg.Letter = letter
			}
			if flags.Changed("music") {
				cfg.Music = musicPath
			}
			if flags.Changed("width") {
				cfg.Width = width
			}
			if flags.Changed("height") {
				cfg.Height = height
			}
			if flags.Changed("smooth-per-second") {
				cfg.SmoothPerSecond = perSecond
			}
			if flags.Changed("breathe-while-enlarged") {
				cfg.BreatheWhileEnlarged = breathe
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			prefsPath, err := config.PrefsPath()
			if err != nil {
				logger.Warn("theme will not be remembered", "err", err)
			}

			logger.Debug("starting", "images", len(cfg.Images), "dir", cfg.ImageDir, "letter", cfg.Letter)
			return run(cmd.Context(), cfg, prefsPath, logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "TOML config file")
	f.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	f.StringVar(&imageDir, "images", "images", "directory the image list is resolved against")
	f.StringVar(&letter, "letter", "letter.txt", "background letter path or http(s) URL")
	f.StringVar(&musicPath, "music", "", "background music file (wav, mp3, flac)")
	f.IntVar(&width, "width", config.WindowWidth, "initial window width")
	f.IntVar(&height, "height", config.WindowHeight, "initial window height")
	f.BoolVar(&perSecond, "smooth-per-second", false, "scale easing by elapsed time instead of per frame")
	f.BoolVar(&breathe, "breathe-while-enlarged", false, "keep the breathing animation running under the overlay")
	return cmd
}

func run(ctx context.Context, cfg config.Config, prefsPath string, logger *log.Logger) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Photo Rings - click a photo, Esc: close, Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(ctx, cfg, prefsPath, logger)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
