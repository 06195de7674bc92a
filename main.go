package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wiggle/config"
	"github.com/milk9111/wiggle/logger"
)

func main() {
	configPath := flag.String("config", "", "YAML config layered over the built-in defaults")
	variant := flag.String("variant", "", "motion variant: physical, wiggle or still")
	debug := flag.Bool("debug", false, "enable debug logging and the HUD")
	watch := flag.Bool("watch", false, "reload -config when the file changes")
	flag.Parse()

	if err := run(*configPath, *variant, *debug, *watch); err != nil {
		slog.Error("wiggle exited", "error", err)
		os.Exit(1)
	}
}

func run(configPath, variant string, debug, watch bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if variant != "" {
		cfg.Motion.Variant = variant
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if debug {
		cfg.Logging.Level = "debug"
	}
	log := logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	var watcher *config.Watcher
	if watch {
		if configPath == "" {
			log.Warn("-watch has no effect without -config")
		} else {
			watcher, err = config.NewWatcher(configPath)
			if err != nil {
				return err
			}
			defer watcher.Close()
			log.Info("watching config", "path", configPath)
		}
	}

	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game, err := NewGame(cfg, configPath, watcher, debug, log)
	if err != nil {
		return err
	}
	log.Info("starting", "motion", game.client.Model().Name(), "width", cfg.Window.Width, "height", cfg.Window.Height)

	return ebiten.RunGame(game)
}
