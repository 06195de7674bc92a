package motion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/wiggle/config"
	"github.com/milk9111/wiggle/geom"
	"github.com/milk9111/wiggle/input"
)

var ErrUnknownVariant = errors.New("motion: unknown variant")

// KeySource answers which logical keys are held. *input.State satisfies it.
type KeySource interface {
	IsDown(k input.Key) bool
}

// Model advances a single moving point once per frame.
type Model interface {
	// Step advances the model by dt milliseconds of host time.
	Step(dt float64, keys KeySource)
	Position() geom.Vec2
	Name() string
}

// Tunable models accept new parameters without losing their state.
type Tunable interface {
	Tune(cfg config.Motion) error
}

// New builds the model named by cfg.Variant.
func New(cfg config.Motion, log *slog.Logger) (Model, error) {
	switch cfg.Variant {
	case config.VariantPhysical:
		return NewPhysical(cfg.Physical), nil
	case config.VariantWiggle:
		w, err := NewWiggle(cfg.Wiggle, log)
		if err != nil {
			return nil, err
		}
		return w, nil
	case config.VariantStill:
		return Still{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, cfg.Variant)
	}
}

// Still keeps the point at the origin and ignores input.
type Still struct{}

func (Still) Step(float64, KeySource) {}
func (Still) Position() geom.Vec2     { return geom.Vec2{} }
func (Still) Name() string            { return config.VariantStill }
