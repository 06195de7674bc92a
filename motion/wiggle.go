package motion

import (
	"log/slog"
	"math"

	"github.com/milk9111/wiggle/config"
	"github.com/milk9111/wiggle/geom"
	"github.com/milk9111/wiggle/input"
)

// Lissajous is the built-in wander: a bounded figure whose amplitude swings
// between -2 and 6 times twelve units.
func Lissajous(t float64) geom.Vec2 {
	intensity := math.Cos(t*0.001)*4 + 2
	return geom.V(
		intensity*math.Cos(t*0.006)*12,
		intensity*math.Sin(t*0.01)*12,
	)
}

// Wiggle is a procedural wander around a steerable centre.
//
// Turbo grows the steering speed each step until released. Up runs the clock
// at FastFactor, Down at SlowFactor; Down wins when both are held.
type Wiggle struct {
	params config.Wiggle
	log    *slog.Logger
	script *Script

	time   float64
	speed  float64
	center geom.Vec2
	offset geom.Vec2

	scriptFailed bool
}

// NewWiggle builds the wander model. When params.Script is set the script
// replaces the built-in offset.
func NewWiggle(params config.Wiggle, log *slog.Logger) (*Wiggle, error) {
	if log == nil {
		log = slog.Default()
	}
	w := &Wiggle{params: params, log: log, speed: params.BaseSpeed}
	if params.Script != "" {
		s, err := LoadScript(params.Script)
		if err != nil {
			return nil, err
		}
		w.script = s
	}
	w.offset = w.offsetAt(0)
	return w, nil
}

func (w *Wiggle) Name() string { return config.VariantWiggle }

func (w *Wiggle) Step(dt float64, keys KeySource) {
	if keys.IsDown(input.Turbo) {
		w.speed += w.params.TurboStep
	} else {
		w.speed = w.params.BaseSpeed
	}

	if keys.IsDown(input.Left) {
		w.center.X -= w.speed
	}
	if keys.IsDown(input.Right) {
		w.center.X += w.speed
	}

	switch {
	case keys.IsDown(input.Down):
		dt *= w.params.SlowFactor
	case keys.IsDown(input.Up):
		dt *= w.params.FastFactor
	}
	w.time += dt

	w.offset = w.offsetAt(w.time)
}

func (w *Wiggle) offsetAt(time float64) geom.Vec2 {
	if w.script != nil {
		off, err := w.script.Offset(time)
		if err == nil {
			w.scriptFailed = false
			return off
		}
		if !w.scriptFailed {
			w.log.Warn("wiggle script failed, using built-in offset", "script", w.script.Name(), "error", err)
			w.scriptFailed = true
		}
	}
	return Lissajous(time)
}

func (w *Wiggle) Position() geom.Vec2 { return w.center.Add(w.offset) }
func (w *Wiggle) Center() geom.Vec2   { return w.center }
func (w *Wiggle) Offset() geom.Vec2   { return w.offset }
func (w *Wiggle) Time() float64       { return w.time }
func (w *Wiggle) Speed() float64      { return w.speed }

// Tune swaps in new constants, reloading the script when its name changed,
// and recomputes the offset so the next draw reflects the new source.
// On error the previous parameters stay in effect.
func (w *Wiggle) Tune(cfg config.Motion) error {
	next := cfg.Wiggle
	if next.Script != w.params.Script {
		if next.Script == "" {
			w.script = nil
		} else {
			s, err := LoadScript(next.Script)
			if err != nil {
				return err
			}
			w.script = s
		}
		w.scriptFailed = false
	}
	w.params = next
	w.offset = w.offsetAt(w.time)
	return nil
}
