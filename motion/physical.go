package motion

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/wiggle/config"
	"github.com/milk9111/wiggle/geom"
	"github.com/milk9111/wiggle/input"
)

// Physical is a run-and-jump body under constant gravity.
//
// Velocities are in units per nominal frame and the position advances by
// velocity*dt/TimeScale, so with dt in milliseconds the motion depends on the
// host frame rate. Gravity is applied once per step regardless of dt unless
// ScaleGravityByDt is set.
//
// The jump latch re-arms when Up is released, not on landing; there is no
// ground, so a player can jump again mid-air by tapping Up.
type Physical struct {
	params   config.Physical
	position cp.Vector
	velocity cp.Vector
	canJump  bool
}

func NewPhysical(params config.Physical) *Physical {
	return &Physical{params: params, canJump: true}
}

func (p *Physical) Name() string { return config.VariantPhysical }

func (p *Physical) Step(dt float64, keys KeySource) {
	var vx float64
	if keys.IsDown(input.Left) {
		vx -= p.params.Speed
	}
	if keys.IsDown(input.Right) {
		vx += p.params.Speed
	}
	p.velocity.X = vx

	if keys.IsDown(input.Up) {
		if p.canJump {
			p.canJump = false
			p.velocity.Y = p.params.JumpSpeed
		}
	} else {
		p.canJump = true
	}

	gravity := cp.Vector{Y: -p.params.Gravity}
	if p.params.ScaleGravityByDt {
		gravity = gravity.Mult(dt / p.params.FrameMillis)
	}
	p.velocity = p.velocity.Add(gravity)

	p.position = p.position.Add(p.velocity.Mult(dt / p.params.TimeScale))
}

func (p *Physical) Position() geom.Vec2 { return geom.FromCP(p.position) }
func (p *Physical) Velocity() geom.Vec2 { return geom.FromCP(p.velocity) }
func (p *Physical) CanJump() bool       { return p.canJump }

// Tune swaps in new constants; position, velocity and the jump latch carry
// over.
func (p *Physical) Tune(cfg config.Motion) error {
	p.params = cfg.Physical
	return nil
}
