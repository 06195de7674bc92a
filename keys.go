package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keySink receives raw key events by name.
type keySink interface {
	OnKeyDown(name string)
	OnKeyUp(name string)
}

// keyPoller turns ebiten's polled keyboard into down/up events.
type keyPoller struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

func (p *keyPoller) Poll(sink keySink) {
	p.pressed = inpututil.AppendJustPressedKeys(p.pressed[:0])
	p.released = inpututil.AppendJustReleasedKeys(p.released[:0])
	deliverKeys(sink, p.pressed, p.released)
}

func deliverKeys(sink keySink, pressed, released []ebiten.Key) {
	for _, k := range pressed {
		sink.OnKeyDown(keyName(k))
	}
	for _, k := range released {
		sink.OnKeyUp(keyName(k))
	}
}

// keyName returns the browser-style name for k. Keys the client does not
// map keep ebiten's own name.
func keyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowUp:
		return "ArrowUp"
	case ebiten.KeyArrowDown:
		return "ArrowDown"
	case ebiten.KeyArrowLeft:
		return "ArrowLeft"
	case ebiten.KeyArrowRight:
		return "ArrowRight"
	case ebiten.KeyShift:
		return "Shift"
	}
	return k.String()
}
