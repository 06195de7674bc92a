package client

import "github.com/milk9111/wiggle/geom"

// Recorder is a Backend that keeps what it was told. Headless runs and
// tests use it in place of a GPU.
type Recorder struct {
	Displacement geom.Vec2
	CanvasSize   geom.Vec2
	CanvasCalls  int
	Frames       int

	// Trail holds the displacement of every drawn frame.
	Trail []geom.Vec2
}

func (r *Recorder) SetDisplacement(x, y float32) {
	r.Displacement = geom.V(float64(x), float64(y))
}

func (r *Recorder) SetCanvasSize(w, h float32) {
	r.CanvasSize = geom.V(float64(w), float64(h))
	r.CanvasCalls++
}

func (r *Recorder) DrawFrame() {
	r.Frames++
	r.Trail = append(r.Trail, r.Displacement)
}

// FixedSurface is a Surface whose display size is set by the caller.
type FixedSurface struct {
	BufferW, BufferH   int
	DisplayW, DisplayH int
	ResizeCalls        int
}

func NewFixedSurface(w, h int) *FixedSurface {
	return &FixedSurface{DisplayW: w, DisplayH: h}
}

func (s *FixedSurface) BufferSize() (int, int)  { return s.BufferW, s.BufferH }
func (s *FixedSurface) DisplaySize() (int, int) { return s.DisplayW, s.DisplayH }

func (s *FixedSurface) ResizeBuffer(w, h int) {
	s.BufferW, s.BufferH = w, h
	s.ResizeCalls++
}

// SetDisplaySize simulates the window being resized.
func (s *FixedSurface) SetDisplaySize(w, h int) { s.DisplayW, s.DisplayH = w, h }
