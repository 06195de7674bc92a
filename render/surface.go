package render

// Surface tracks the drawing-buffer size against the size the window shows
// it at. Game.Layout feeds the display size and reports the buffer size.
type Surface struct {
	bufferW, bufferH   int
	displayW, displayH int
}

// NewSurface starts with a buffer of the given size.
func NewSurface(w, h int) *Surface {
	return &Surface{bufferW: w, bufferH: h, displayW: w, displayH: h}
}

func (s *Surface) SetDisplaySize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s.displayW, s.displayH = w, h
}

func (s *Surface) BufferSize() (int, int)  { return s.bufferW, s.bufferH }
func (s *Surface) DisplaySize() (int, int) { return s.displayW, s.displayH }
func (s *Surface) ResizeBuffer(w, h int)   { s.bufferW, s.bufferH = w, h }
