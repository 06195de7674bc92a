package replay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/wiggle/client"
	"github.com/milk9111/wiggle/config"
	"github.com/milk9111/wiggle/geom"
	"github.com/milk9111/wiggle/input"
	"github.com/milk9111/wiggle/motion"
)

var ErrInvalidTimeline = errors.New("replay: invalid timeline")

// Event is a key going down or up before the given frame is stepped. Key is
// a raw key name as a host would report it, e.g. "ArrowLeft" or "Shift".
type Event struct {
	Frame int    `yaml:"frame"`
	Key   string `yaml:"key"`
	Down  bool   `yaml:"down"`
}

// Timeline is a scripted input session.
type Timeline struct {
	// Variant overrides motion.variant when set.
	Variant string  `yaml:"variant"`
	Frames  int     `yaml:"frames"`
	Dt      float32 `yaml:"dt"`
	Events  []Event `yaml:"events"`
}

func Load(path string) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: load %s: %w", path, err)
	}
	tl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("replay: %s: %w", path, err)
	}
	return tl, nil
}

func Parse(data []byte) (*Timeline, error) {
	var tl Timeline
	if err := yaml.Unmarshal(data, &tl); err != nil {
		return nil, err
	}
	if err := tl.Validate(); err != nil {
		return nil, err
	}
	return &tl, nil
}

func (tl *Timeline) Validate() error {
	if tl.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrInvalidTimeline, tl.Frames)
	}
	if tl.Dt < 0 {
		return fmt.Errorf("%w: dt must not be negative, got %v", ErrInvalidTimeline, tl.Dt)
	}
	for i, ev := range tl.Events {
		if ev.Frame < 0 || ev.Frame >= tl.Frames {
			return fmt.Errorf("%w: event %d: frame %d outside [0,%d)", ErrInvalidTimeline, i, ev.Frame, tl.Frames)
		}
		if ev.Key == "" {
			return fmt.Errorf("%w: event %d: empty key", ErrInvalidTimeline, i)
		}
	}
	return nil
}

// eventsByFrame groups events by frame, keeping file order within a frame.
func (tl *Timeline) eventsByFrame() [][]Event {
	byFrame := make([][]Event, tl.Frames)
	events := slices.Clone(tl.Events)
	slices.SortStableFunc(events, func(a, b Event) int { return a.Frame - b.Frame })
	for _, ev := range events {
		byFrame[ev.Frame] = append(byFrame[ev.Frame], ev)
	}
	return byFrame
}

// Options control a replay run.
type Options struct {
	// Async delivers key events from a separate goroutine, the way a
	// windowing system would. Results are identical to a synchronous run.
	Async bool
	// Width and Height size the fake surface.
	Width, Height int
	Log           *slog.Logger
}

// Result holds the per-frame trajectory of a run.
type Result struct {
	Variant   string
	Positions []geom.Vec2
	Stats     client.Stats
}

// Run drives a client with a recording backend through tl and returns the
// position drawn on every frame.
func Run(ctx context.Context, tl *Timeline, cfg config.Motion, opts Options) (*Result, error) {
	if err := tl.Validate(); err != nil {
		return nil, err
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	if tl.Variant != "" {
		cfg.Variant = tl.Variant
	}
	model, err := motion.New(cfg, log)
	if err != nil {
		return nil, err
	}

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = 800, 600
	}
	rec := &client.Recorder{}
	c := client.New(input.NewState(), model, rec, client.NewFixedSurface(w, h), log)

	byFrame := tl.eventsByFrame()
	if opts.Async {
		err = runAsync(ctx, c, tl, byFrame)
	} else {
		err = runSync(ctx, c, tl, byFrame)
	}
	if err != nil {
		return nil, err
	}

	log.Debug("replay finished", "variant", model.Name(), "frames", tl.Frames, "events", len(tl.Events))
	return &Result{Variant: model.Name(), Positions: rec.Trail, Stats: c.Stats()}, nil
}

func deliver(keys *input.State, events []Event) {
	for _, ev := range events {
		if ev.Down {
			keys.OnKeyDown(ev.Key)
		} else {
			keys.OnKeyUp(ev.Key)
		}
	}
}

func runSync(ctx context.Context, c *client.Client, tl *Timeline, byFrame [][]Event) error {
	for f := range tl.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		deliver(c.Keys(), byFrame[f])
		c.Update(tl.Dt)
		c.Render()
	}
	return nil
}

// runAsync hands each frame's events to a feeder goroutine and waits for it
// to finish delivering before stepping the frame.
func runAsync(ctx context.Context, c *client.Client, tl *Timeline, byFrame [][]Event) error {
	g, ctx := errgroup.WithContext(ctx)
	tick := make(chan int)
	delivered := make(chan struct{})

	g.Go(func() error {
		for f := range tick {
			deliver(c.Keys(), byFrame[f])
			select {
			case delivered <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	g.Go(func() error {
		defer close(tick)
		for f := range tl.Frames {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case tick <- f:
			case <-ctx.Done():
				return ctx.Err()
			}
			select {
			case <-delivered:
			case <-ctx.Done():
				return ctx.Err()
			}
			c.Update(tl.Dt)
			c.Render()
		}
		return nil
	})

	return g.Wait()
}
