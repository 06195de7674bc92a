package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/milk9111/wiggle/config"
	"github.com/milk9111/wiggle/logger"
	"github.com/milk9111/wiggle/replay"
)

func main() {
	configPath := flag.String("config", "", "YAML config layered over the built-in defaults")
	timelinePath := flag.String("timeline", "", "replay timeline (YAML)")
	variant := flag.String("variant", "", "override the motion variant")
	every := flag.Int("every", 1, "print every n-th frame")
	sync := flag.Bool("sync", false, "deliver key events on the stepping goroutine")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(*configPath, *timelinePath, *variant, *every, !*sync, *debug, os.Stdout); err != nil {
		slog.Error("headless exited", "error", err)
		os.Exit(1)
	}
}

func run(configPath, timelinePath, variant string, every int, async, debug bool, out io.Writer) error {
	if timelinePath == "" {
		return errors.New("-timeline is required")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if debug {
		cfg.Logging.Level = "debug"
	}
	log := logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	tl, err := replay.Load(timelinePath)
	if err != nil {
		return err
	}
	if variant != "" {
		tl.Variant = variant
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := replay.Run(ctx, tl, cfg.Motion, replay.Options{Async: async, Log: log})
	if err != nil {
		return err
	}

	every = max(every, 1)
	fmt.Fprintf(out, "# variant=%s frames=%d dt=%g\n", res.Variant, tl.Frames, tl.Dt)
	for i, p := range res.Positions {
		if i%every != 0 && i != len(res.Positions)-1 {
			continue
		}
		fmt.Fprintf(out, "%d\t%.4f\t%.4f\n", i, p.X, p.Y)
	}
	log.Info("replay done", "timeline", timelinePath, "variant", res.Variant, "frames", res.Stats.Frames)
	return nil
}
