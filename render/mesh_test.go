package render

import (
	"errors"
	"testing"

	"github.com/milk9111/wiggle/config"
	"github.com/milk9111/wiggle/geom"
)

func TestToScreen(t *testing.T) {
	canvas := geom.V(800, 600)
	tests := []struct {
		name string
		p    geom.Vec2
		disp geom.Vec2
		want geom.Vec2
	}{
		{name: "origin", want: geom.V(400, 300)},
		{name: "up_is_smaller_y", p: geom.V(0, 10), want: geom.V(400, 290)},
		{name: "displaced", p: geom.V(-60, -60), disp: geom.V(15, 5), want: geom.V(355, 355)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToScreen(tt.p, tt.disp, canvas); got != tt.want {
				t.Fatalf("ToScreen = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuadCorners(t *testing.T) {
	pos, uv := QuadCorners(60)
	for i, p := range pos {
		if (p.X != 60 && p.X != -60) || (p.Y != 60 && p.Y != -60) {
			t.Fatalf("corner %d = %v, want ±60", i, p)
		}
		// Top of the quad samples the top of the texture.
		if (p.Y > 0) != (uv[i].Y == 0) {
			t.Fatalf("corner %d uv = %v, flipped", i, uv[i])
		}
	}
	for _, idx := range quadIndices {
		if int(idx) >= len(pos) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestPolylineMesh(t *testing.T) {
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default: %v", err)
	}
	pl := cfg.Polyline

	verts, idx, err := PolylineMesh(pl)
	if err != nil {
		t.Fatalf("PolylineMesh: %v", err)
	}
	if want := 2 * len(pl.Points); len(verts) != want {
		t.Fatalf("vertices = %d, want %d", len(verts), want)
	}
	if want := 6 * (len(pl.Points) - 1); len(idx) != want {
		t.Fatalf("indices = %d, want %d", len(idx), want)
	}

	// The first pair straddles the first point at half the scaled width.
	first := geom.V(pl.Points[0][0], pl.Points[0][1]).Mul(pl.Scale)
	half := pl.Width * pl.Scale / 2
	for _, v := range verts[:2] {
		if d := v.Sub(first).Len(); d < half-1e-3 || d > half+1e-3 {
			t.Fatalf("endpoint vertex %v is %v from %v, want %v", v, d, first, half)
		}
	}
	for i, v := range verts {
		if !v.Finite() {
			t.Fatalf("vertex %d not finite: %v", i, v)
		}
	}

	pl.Points = pl.Points[:2]
	if _, _, err := PolylineMesh(pl); !errors.Is(err, geom.ErrTooFewPoints) {
		t.Fatalf("two points err = %v, want ErrTooFewPoints", err)
	}
}

func TestSurface(t *testing.T) {
	s := NewSurface(640, 480)
	if w, h := s.BufferSize(); w != 640 || h != 480 {
		t.Fatalf("buffer = %dx%d", w, h)
	}
	s.SetDisplaySize(0, -3)
	if w, h := s.DisplaySize(); w != 1 || h != 1 {
		t.Fatalf("display clamped = %dx%d, want 1x1", w, h)
	}
	s.ResizeBuffer(1, 1)
	if w, h := s.BufferSize(); w != 1 || h != 1 {
		t.Fatalf("buffer after resize = %dx%d", w, h)
	}
}
