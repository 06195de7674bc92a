package client

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/wiggle/config"
	"github.com/milk9111/wiggle/input"
	"github.com/milk9111/wiggle/motion"
)

// Backend is the render side of the frame loop. It owns shaders, buffers
// and textures; the client only pushes values and asks for a frame.
type Backend interface {
	SetDisplacement(x, y float32)
	SetCanvasSize(w, h float32)
	DrawFrame()
}

// Surface exposes the drawing buffer and the size it is displayed at.
type Surface interface {
	BufferSize() (w, h int)
	DisplaySize() (w, h int)
	ResizeBuffer(w, h int)
}

// Stats are counters for the debug overlay.
type Stats struct {
	Updates int
	Frames  int
	Resizes int
}

// Client is the composition root of a session: it owns the held-set and
// the motion model and drives the backend once per frame. The host calls
// Update then Render on a single goroutine; only the input state is shared
// with event callbacks.
type Client struct {
	keys    *input.State
	model   motion.Model
	backend Backend
	surface Surface
	log     *slog.Logger

	stats Stats
}

func New(keys *input.State, model motion.Model, backend Backend, surface Surface, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		keys:    keys,
		model:   model,
		backend: backend,
		surface: surface,
		log:     log.With("component", "client"),
	}
}

// Keys returns the shared held-set; hosts route key events into it.
func (c *Client) Keys() *input.State { return c.keys }

func (c *Client) Model() motion.Model { return c.model }

func (c *Client) Stats() Stats { return c.stats }

// Update advances the motion model by dt milliseconds.
func (c *Client) Update(dt float32) {
	c.stats.Updates++
	c.model.Step(float64(dt), c.keys)
}

// Render syncs the surface size and the model position with the backend
// and draws one frame.
func (c *Client) Render() {
	c.syncSize()

	pos := c.model.Position()
	c.backend.SetDisplacement(pos.XY())
	c.backend.DrawFrame()
	c.stats.Frames++
}

func (c *Client) syncSize() {
	bw, bh := c.surface.BufferSize()
	dw, dh := c.surface.DisplaySize()
	if bw == dw && bh == dh {
		return
	}
	c.surface.ResizeBuffer(dw, dh)
	c.backend.SetCanvasSize(float32(dw), float32(dh))
	c.stats.Resizes++
	c.log.Debug("canvas resized", "from_w", bw, "from_h", bh, "w", dw, "h", dh)
}

// SetModel replaces the motion model, e.g. when the player picks another
// variant. The new model starts from its initial state.
func (c *Client) SetModel(m motion.Model) {
	if m == nil {
		return
	}
	c.log.Info("motion model changed", "from", c.model.Name(), "to", m.Name())
	c.model = m
}

// Retune applies reloaded motion settings. A variant change builds a fresh
// model; otherwise tunable models keep their state.
func (c *Client) Retune(cfg config.Motion) error {
	if cfg.Variant != c.model.Name() {
		m, err := motion.New(cfg, c.log)
		if err != nil {
			return err
		}
		c.SetModel(m)
		return nil
	}
	t, ok := c.model.(motion.Tunable)
	if !ok {
		return nil
	}
	if err := t.Tune(cfg); err != nil {
		return fmt.Errorf("client: retune %s: %w", c.model.Name(), err)
	}
	return nil
}
