package paint

import "image"

// Picker is the gradient color picker: a hue ramp bitmap sampled under the pointer.
type Picker struct {
	width, height int
	layout        Layout
	bitmap        *image.RGBA
	visible       bool
	picking       bool
}

// NewPicker returns a hidden picker whose bitmap will be w x h once opened.
func NewPicker(w, h int) *Picker {
	return &Picker{width: w, height: h}
}

func (p *Picker) Visible() bool { return p.visible }
func (p *Picker) Picking() bool { return p.picking }

// Bitmap is nil until the picker has been opened once.
func (p *Picker) Bitmap() *image.RGBA { return p.bitmap }

func (p *Picker) Layout() Layout     { return p.layout }
func (p *Picker) SetLayout(l Layout) { p.layout = l }

// Toggle flips visibility, regenerating the bitmap on open. Closing also ends any pick.
func (p *Picker) Toggle() {
	p.visible = !p.visible
	if p.visible {
		p.bitmap = NewGradient(p.width, p.height)
		return
	}
	p.picking = false
}

// Sample reads the bitmap at local point q.
func (p *Picker) Sample(q Point) (string, bool) {
	if p.bitmap == nil || q.X < 0 || q.Y < 0 {
		return "", false
	}
	pt := image.Pt(int(q.X), int(q.Y))
	if !pt.In(p.bitmap.Bounds()) {
		return "", false
	}
	return FormatHex(p.bitmap.RGBAAt(pt.X, pt.Y)), true
}

// handle applies ev and returns the sampled color, if any.
func (p *Picker) handle(ev PointerEvent) (string, bool) {
	if ev.releases() {
		p.picking = false
		return "", false
	}
	if !p.visible {
		return "", false
	}
	client, ok := ev.Position()
	if !ok {
		return "", false
	}
	switch ev.Phase {
	case PhaseDown:
		p.picking = true
	case PhaseMove:
		if !p.picking {
			return "", false
		}
	}
	return p.Sample(p.layout.ToLocal(client, p.width, p.height))
}
