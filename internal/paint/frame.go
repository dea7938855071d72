package paint

// Frame is the draggable window chrome. Its position is never clamped.
type Frame struct {
	pos      Point
	offset   Point
	dragging bool
}

// NewFrame places a frame with its top-left at pos.
func NewFrame(pos Point) *Frame { return &Frame{pos: pos} }

func (f *Frame) Position() Point { return f.pos }
func (f *Frame) Dragging() bool  { return f.dragging }

// MoveTo sets the top-left directly.
func (f *Frame) MoveTo(p Point) { f.pos = p }

func (f *Frame) handle(ev PointerEvent) {
	if ev.releases() {
		f.dragging = false
		return
	}
	p, ok := ev.Position()
	if !ok {
		return
	}
	switch ev.Phase {
	case PhaseDown:
		f.offset = p.Sub(f.pos)
		f.dragging = true
	case PhaseMove:
		if f.dragging {
			f.pos = p.Sub(f.offset)
		}
	}
}
