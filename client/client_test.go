package client

import (
	"errors"
	"testing"

	"github.com/milk9111/wiggle/config"
	"github.com/milk9111/wiggle/geom"
	"github.com/milk9111/wiggle/input"
	"github.com/milk9111/wiggle/logger"
	"github.com/milk9111/wiggle/motion"
)

func defaultMotion(t *testing.T) config.Motion {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default: %v", err)
	}
	return cfg.Motion
}

func newTestClient(t *testing.T, variant string) (*Client, *Recorder, *FixedSurface) {
	t.Helper()
	cfg := defaultMotion(t)
	cfg.Variant = variant
	m, err := motion.New(cfg, logger.Discard())
	if err != nil {
		t.Fatalf("motion.New(%q): %v", variant, err)
	}
	rec := &Recorder{}
	surf := NewFixedSurface(800, 600)
	return New(input.NewState(), m, rec, surf, logger.Discard()), rec, surf
}

func TestRenderResizesOncePerChange(t *testing.T) {
	tests := []struct {
		name        string
		sizes       [][2]int
		wantResizes int
	}{
		{name: "steady", sizes: [][2]int{{800, 600}, {800, 600}, {800, 600}}, wantResizes: 1},
		{name: "one_change", sizes: [][2]int{{800, 600}, {800, 600}, {1024, 768}, {1024, 768}}, wantResizes: 2},
		{name: "back_and_forth", sizes: [][2]int{{800, 600}, {640, 480}, {800, 600}}, wantResizes: 3},
		{name: "height_only", sizes: [][2]int{{800, 600}, {800, 601}}, wantResizes: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec, surf := newTestClient(t, config.VariantStill)
			for _, sz := range tt.sizes {
				surf.SetDisplaySize(sz[0], sz[1])
				// Several frames per size; only the first may resize.
				for range 5 {
					c.Render()
				}
			}
			if surf.ResizeCalls != tt.wantResizes {
				t.Fatalf("ResizeBuffer calls = %d, want %d", surf.ResizeCalls, tt.wantResizes)
			}
			if rec.CanvasCalls != tt.wantResizes {
				t.Fatalf("SetCanvasSize calls = %d, want %d", rec.CanvasCalls, tt.wantResizes)
			}
			last := tt.sizes[len(tt.sizes)-1]
			if rec.CanvasSize != geom.V(float64(last[0]), float64(last[1])) {
				t.Fatalf("canvas size = %v, want %v", rec.CanvasSize, last)
			}
			if got := c.Stats().Resizes; got != tt.wantResizes {
				t.Fatalf("Stats().Resizes = %d, want %d", got, tt.wantResizes)
			}
		})
	}
}

func TestRenderPushesPosition(t *testing.T) {
	c, rec, _ := newTestClient(t, config.VariantPhysical)

	c.Keys().OnKeyDown("ArrowRight")
	c.Update(60)
	c.Render()

	want := c.Model().Position()
	if rec.Displacement != want {
		t.Fatalf("displacement = %v, want %v", rec.Displacement, want)
	}
	if want.X != 15 {
		t.Fatalf("position.x = %v, want 15", want.X)
	}
	if rec.Frames != 1 || len(rec.Trail) != 1 {
		t.Fatalf("frames = %d trail = %d, want 1", rec.Frames, len(rec.Trail))
	}
}

func TestUpdateSeesEventsBetweenFrames(t *testing.T) {
	c, rec, _ := newTestClient(t, config.VariantPhysical)

	c.Update(60)
	c.Render()
	c.Keys().OnKeyDown("ArrowLeft")
	c.Update(60)
	c.Render()
	c.Keys().OnKeyUp("ArrowLeft")
	c.Update(60)
	c.Render()

	xs := []float64{rec.Trail[0].X, rec.Trail[1].X, rec.Trail[2].X}
	want := []float64{0, -15, -15}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("frame %d x = %v, want %v", i, xs[i], want[i])
		}
	}
	if got := c.Stats(); got.Updates != 3 || got.Frames != 3 {
		t.Fatalf("stats = %+v, want 3 updates and 3 frames", got)
	}
}

func TestStillNeverMoves(t *testing.T) {
	c, rec, _ := newTestClient(t, config.VariantStill)
	for _, name := range []string{"ArrowUp", "ArrowLeft", "Shift"} {
		c.Keys().OnKeyDown(name)
	}
	for range 10 {
		c.Update(16)
		c.Render()
	}
	for i, p := range rec.Trail {
		if p != (geom.Vec2{}) {
			t.Fatalf("frame %d displacement = %v, want origin", i, p)
		}
	}
}

func TestRetune(t *testing.T) {
	c, _, _ := newTestClient(t, config.VariantPhysical)
	c.Keys().OnKeyDown("ArrowRight")
	c.Update(60)
	before := c.Model()

	cfg := defaultMotion(t)
	cfg.Physical.Speed = 30
	if err := c.Retune(cfg); err != nil {
		t.Fatalf("Retune same variant: %v", err)
	}
	if c.Model() != before {
		t.Fatalf("same-variant retune replaced the model")
	}
	c.Update(60)
	if got := c.Model().Position().X; got != 45 {
		t.Fatalf("x after retune = %v, want 45", got)
	}

	cfg.Variant = config.VariantWiggle
	if err := c.Retune(cfg); err != nil {
		t.Fatalf("Retune to wiggle: %v", err)
	}
	if got := c.Model().Name(); got != config.VariantWiggle {
		t.Fatalf("model = %q, want wiggle", got)
	}

	cfg.Variant = "bouncy"
	if err := c.Retune(cfg); !errors.Is(err, motion.ErrUnknownVariant) {
		t.Fatalf("Retune unknown variant err = %v, want ErrUnknownVariant", err)
	}
	if got := c.Model().Name(); got != config.VariantWiggle {
		t.Fatalf("failed retune changed model to %q", got)
	}

	cfg.Variant = config.VariantWiggle
	cfg.Wiggle.Script = "missing.tengo"
	if err := c.Retune(cfg); err == nil {
		t.Fatalf("Retune with missing script succeeded")
	}
}

func TestSetModelIgnoresNil(t *testing.T) {
	c, _, _ := newTestClient(t, config.VariantStill)
	c.SetModel(nil)
	if c.Model() == nil {
		t.Fatalf("SetModel(nil) cleared the model")
	}
}
