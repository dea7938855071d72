package paint

import "strings"

const (
	DefaultWidth        = 600
	DefaultHeight       = 400
	DefaultPickerWidth  = 200
	DefaultPickerHeight = 30

	Title = "untitled - wvclb"
)

// Segment is one rendered line between consecutive pointer samples.
type Segment struct {
	From  Point       `json:"from"`
	To    Point       `json:"to"`
	Tool  Tool        `json:"tool"`
	Style StrokeStyle `json:"-"`
}

// Options configures a [Controller]. Zero dimensions fall back to the defaults.
type Options struct {
	Width, Height             int
	PickerWidth, PickerHeight int
	Frame                     Point
}

// Controller owns the paint widget state and routes pointer events to it.
type Controller struct {
	surface *Surface
	picker  *Picker
	frame   *Frame

	tool    Tool
	color   string
	hovered string

	drawing  bool
	last     Point
	segments []Segment
	strokes  int
}

// NewController builds a controller with a white surface, brush tool and black color.
func NewController(opts Options) *Controller {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.PickerWidth <= 0 {
		opts.PickerWidth = DefaultPickerWidth
	}
	if opts.PickerHeight <= 0 {
		opts.PickerHeight = DefaultPickerHeight
	}
	return &Controller{
		surface: NewSurface(opts.Width, opts.Height),
		picker:  NewPicker(opts.PickerWidth, opts.PickerHeight),
		frame:   NewFrame(opts.Frame),
		tool:    Brush,
		color:   DefaultColor,
	}
}

func (c *Controller) Surface() *Surface { return c.surface }
func (c *Controller) Picker() *Picker   { return c.picker }
func (c *Controller) Frame() *Frame     { return c.frame }
func (c *Controller) Tool() Tool        { return c.tool }
func (c *Controller) Color() string     { return c.color }
func (c *Controller) Drawing() bool     { return c.drawing }

// Segments returns the segments drawn by the current (or most recent) stroke session.
func (c *Controller) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// Strokes counts stroke sessions begun since construction.
func (c *Controller) Strokes() int { return c.strokes }

// PointerDown begins a stroke session at local point p.
func (c *Controller) PointerDown(p Point) {
	c.drawing = true
	c.last = p
	c.segments = c.segments[:0]
	c.strokes++
}

// PointerMove extends the stroke to p. Ignored unless a stroke is active.
func (c *Controller) PointerMove(p Point) {
	if !c.drawing {
		return
	}
	style := StyleFor(c.tool, c.color)
	c.surface.DrawSegment(c.last, p, style)
	c.segments = append(c.segments, Segment{From: c.last, To: p, Tool: c.tool, Style: style})
	c.last = p
}

// PointerUp ends the stroke session. Drawn segments stay in the raster.
func (c *Controller) PointerUp() { c.drawing = false }

// PointerLeave behaves like PointerUp.
func (c *Controller) PointerLeave() { c.drawing = false }

// HandleCanvas maps ev into surface coordinates and applies it.
func (c *Controller) HandleCanvas(ev PointerEvent) {
	if ev.releases() {
		c.PointerUp()
		return
	}
	client, ok := ev.Position()
	if !ok {
		return
	}
	p := c.surface.ToLocal(client)
	switch ev.Phase {
	case PhaseDown:
		c.PointerDown(p)
	case PhaseMove:
		c.PointerMove(p)
	}
}

// HandlePicker applies ev to the gradient picker and adopts any sampled color.
func (c *Controller) HandlePicker(ev PointerEvent) {
	if hex, ok := c.picker.handle(ev); ok {
		c.color = hex
	}
}

// HandleTitleBar applies ev to the window frame drag.
func (c *Controller) HandleTitleBar(ev PointerEvent) { c.frame.handle(ev) }

// SelectTool switches between brush and eraser.
func (c *Controller) SelectTool(t Tool) { c.tool = t }

// SelectSwatch sets the active color to swatch i. Out of range indices are ignored.
func (c *Controller) SelectSwatch(i int) bool {
	hex, ok := Swatch(i)
	if ok {
		c.color = hex
	}
	return ok
}

// SetColor sets the active color from a hex string or color name.
func (c *Controller) SetColor(s string) error {
	hex, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.color = hex
	return nil
}

// HoverSwatch shows swatch i's tooltip.
func (c *Controller) HoverSwatch(i int) {
	if hex, ok := Swatch(i); ok {
		c.hovered = hex
	}
}

func (c *Controller) UnhoverSwatch() { c.hovered = "" }

// Tooltip is the uppercase hex of the hovered swatch, or "".
func (c *Controller) Tooltip() string { return strings.ToUpper(c.hovered) }

// TogglePicker shows or hides the gradient picker. The active color is kept on close.
func (c *Controller) TogglePicker() { c.picker.Toggle() }

// Clear whitewashes the surface. There is no undo.
func (c *Controller) Clear() { c.surface.Clear() }

// State is a serialisable snapshot of the controller.
type State struct {
	Tool          string `json:"tool"`
	Color         string `json:"color"`
	Tooltip       string `json:"tooltip,omitempty"`
	Drawing       bool   `json:"drawing"`
	Picking       bool   `json:"picking"`
	Dragging      bool   `json:"dragging"`
	PickerVisible bool   `json:"pickerVisible"`
	Frame         Point  `json:"frame"`
	Segments      int    `json:"segments"`
	Strokes       int    `json:"strokes"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
}

// Snapshot captures the current state.
func (c *Controller) Snapshot() State {
	return State{
		Tool:          c.tool.String(),
		Color:         c.color,
		Tooltip:       c.Tooltip(),
		Drawing:       c.drawing,
		Picking:       c.picker.Picking(),
		Dragging:      c.frame.Dragging(),
		PickerVisible: c.picker.Visible(),
		Frame:         c.frame.Position(),
		Segments:      len(c.segments),
		Strokes:       c.strokes,
		Width:         c.surface.Width(),
		Height:        c.surface.Height(),
	}
}
