package paint

import (
	"strings"
	"testing"
)

func TestStrokeSession(t *testing.T) {
	t.Run("down then N moves renders N connected segments", func(t *testing.T) {
		for _, n := range []int{0, 1, 2, 7, 25} {
			c := NewController(Options{})
			start := Pt(10, 10)
			c.HandleCanvas(Mouse(PhaseDown, start.X, start.Y))

			points := []Point{start}
			for i := 1; i <= n; i++ {
				p := Pt(10+float64(i)*7, 10+float64(i*i%13))
				points = append(points, p)
				c.HandleCanvas(Mouse(PhaseMove, p.X, p.Y))
			}
			c.HandleCanvas(Mouse(PhaseUp, points[n].X, points[n].Y))

			segs := c.Segments()
			if len(segs) != n {
				t.Fatalf("n=%d: got %d segments", n, len(segs))
			}
			for i, s := range segs {
				if s.From != points[i] || s.To != points[i+1] {
					t.Errorf("n=%d: segment %d = %v->%v, want %v->%v", n, i, s.From, s.To, points[i], points[i+1])
				}
			}
		}
	})

	t.Run("brush paints the active color along the segment", func(t *testing.T) {
		c := NewController(Options{})
		c.PointerDown(Pt(10, 20))
		c.PointerMove(Pt(60, 20))
		c.PointerUp()

		for _, pt := range [][2]int{{30, 19}, {30, 20}, {55, 20}} {
			if got, _ := c.Surface().At(pt[0], pt[1]); got != "#000000" {
				t.Errorf("pixel %v = %s, want #000000", pt, got)
			}
		}
		if got, _ := c.Surface().At(30, 25); got != "#FFFFFF" {
			t.Errorf("pixel off the stroke = %s, want #FFFFFF", got)
		}
	})

	t.Run("move without down draws nothing", func(t *testing.T) {
		c := NewController(Options{})
		c.HandleCanvas(Mouse(PhaseMove, 10, 10))
		c.HandleCanvas(Mouse(PhaseMove, 50, 10))
		if len(c.Segments()) != 0 || c.Drawing() {
			t.Fatal("expected no stroke")
		}
	})

	for _, release := range []PointerEvent{
		Mouse(PhaseUp, 5000, -300),
		Mouse(PhaseLeave, 0, 0),
		{Phase: PhaseUp, Source: SourceTouch},
	} {
		t.Run("release "+release.Phase.String()+" clears drawing-active", func(t *testing.T) {
			c := NewController(Options{})
			c.HandleCanvas(Mouse(PhaseDown, 10, 100))
			c.HandleCanvas(Mouse(PhaseMove, 40, 100))
			c.HandleCanvas(release)

			if c.Drawing() {
				t.Fatal("drawing-active survived release")
			}
			c.HandleCanvas(Mouse(PhaseMove, 40, 300))
			if got := len(c.Segments()); got != 1 {
				t.Errorf("segments = %d after release, want 1", got)
			}
			if got, _ := c.Surface().At(40, 200); got != "#FFFFFF" {
				t.Errorf("move after release painted %s", got)
			}
		})
	}

	t.Run("a new down starts a fresh session", func(t *testing.T) {
		c := NewController(Options{})
		c.PointerDown(Pt(1, 1))
		c.PointerMove(Pt(5, 5))
		c.PointerUp()
		c.PointerDown(Pt(100, 100))
		if len(c.Segments()) != 0 || c.Strokes() != 2 {
			t.Errorf("segments=%d strokes=%d", len(c.Segments()), c.Strokes())
		}
	})
}

func TestCoordinateMapping(t *testing.T) {
	c := NewController(Options{Width: 600, Height: 400})
	c.Surface().SetLayout(Layout{Left: 100, Top: 50, Width: 300, Height: 200})

	c.HandleCanvas(Mouse(PhaseDown, 250, 150))
	c.HandleCanvas(Mouse(PhaseMove, 260, 150))

	segs := c.Segments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments", len(segs))
	}
	if segs[0].From != Pt(300, 200) || segs[0].To != Pt(320, 200) {
		t.Errorf("mapped segment %v->%v", segs[0].From, segs[0].To)
	}
}

func TestTouchInput(t *testing.T) {
	t.Run("first active touch is used", func(t *testing.T) {
		c := NewController(Options{})
		c.HandleCanvas(Touch(PhaseDown, Pt(10, 10), Pt(300, 300)))
		c.HandleCanvas(Touch(PhaseMove, Pt(20, 10), Pt(310, 300)))
		segs := c.Segments()
		if len(segs) != 1 || segs[0].To != Pt(20, 10) {
			t.Fatalf("segments = %+v", segs)
		}
	})

	t.Run("no touch points is a no-op", func(t *testing.T) {
		c := NewController(Options{})
		c.HandleCanvas(Touch(PhaseDown))
		if c.Drawing() {
			t.Error("touch without points started a stroke")
		}
	})

	t.Run("changed touches are a fallback", func(t *testing.T) {
		ev := PointerEvent{Phase: PhaseMove, Source: SourceTouch, ChangedTouches: []Point{Pt(4, 2)}}
		p, ok := ev.Position()
		if !ok || p != Pt(4, 2) {
			t.Errorf("Position() = %v, %v", p, ok)
		}
	})
}

func TestSwatches(t *testing.T) {
	if len(Swatches) != 28 {
		t.Fatalf("palette has %d swatches", len(Swatches))
	}

	c := NewController(Options{})
	for i, hex := range Swatches {
		if !c.SelectSwatch(i) {
			t.Fatalf("SelectSwatch(%d) rejected", i)
		}
		if c.Color() != strings.ToUpper(hex) {
			t.Errorf("swatch %d: color %s, want %s", i, c.Color(), strings.ToUpper(hex))
		}
	}

	t.Run("out of range keeps the color", func(t *testing.T) {
		c.SelectSwatch(0)
		if c.SelectSwatch(28) || c.SelectSwatch(-1) {
			t.Error("expected out of range indices to be rejected")
		}
		if c.Color() != "#000000" {
			t.Errorf("color changed to %s", c.Color())
		}
	})

	t.Run("hover tooltip", func(t *testing.T) {
		c.HoverSwatch(10)
		if c.Tooltip() != "#0080FF" {
			t.Errorf("tooltip = %q", c.Tooltip())
		}
		c.UnhoverSwatch()
		if c.Tooltip() != "" {
			t.Errorf("tooltip after unhover = %q", c.Tooltip())
		}
	})
}

func TestPicker(t *testing.T) {
	t.Run("samples red, cyan and near-red across the ramp", func(t *testing.T) {
		c := NewController(Options{})
		c.TogglePicker()
		p := c.Picker()

		tc := []struct {
			x    float64
			want string
		}{
			{0, "#FF0000"},
			{DefaultPickerWidth / 2, "#00FFFF"},
		}
		for _, tt := range tc {
			if got, ok := p.Sample(Pt(tt.x, 10)); !ok || got != tt.want {
				t.Errorf("Sample(%v) = %s, want %s", tt.x, got, tt.want)
			}
		}

		got, ok := p.Sample(Pt(DefaultPickerWidth-1, 10))
		if !ok {
			t.Fatal("rightmost pixel out of bounds")
		}
		c2, _ := ParseHex(got)
		if c2.R != 0xFF || c2.G != 0 || c2.B > 0x10 {
			t.Errorf("rightmost pixel %s is not close to red", got)
		}
	})

	t.Run("press and drag sample until release", func(t *testing.T) {
		c := NewController(Options{})
		c.TogglePicker()

		c.HandlePicker(Mouse(PhaseDown, 0, 5))
		if c.Color() != "#FF0000" || !c.Picker().Picking() {
			t.Fatalf("after press: color %s picking %v", c.Color(), c.Picker().Picking())
		}
		c.HandlePicker(Mouse(PhaseMove, 100, 5))
		if c.Color() != "#00FFFF" {
			t.Errorf("after drag: color %s", c.Color())
		}
		c.HandlePicker(Mouse(PhaseUp, 100, 5))
		c.HandlePicker(Mouse(PhaseMove, 0, 5))
		if c.Color() != "#00FFFF" || c.Picker().Picking() {
			t.Errorf("move after release changed state: color %s", c.Color())
		}
	})

	t.Run("hidden picker ignores input", func(t *testing.T) {
		c := NewController(Options{})
		c.HandlePicker(Mouse(PhaseDown, 0, 5))
		if c.Color() != DefaultColor || c.Picker().Picking() {
			t.Error("hidden picker sampled")
		}
	})

	t.Run("out of bounds samples are ignored", func(t *testing.T) {
		c := NewController(Options{})
		c.TogglePicker()
		c.HandlePicker(Mouse(PhaseDown, 250, 5))
		c.HandlePicker(Mouse(PhaseMove, -1, 5))
		if c.Color() != DefaultColor {
			t.Errorf("color = %s", c.Color())
		}
	})

	t.Run("closing keeps the active color", func(t *testing.T) {
		c := NewController(Options{})
		c.TogglePicker()
		c.HandlePicker(Mouse(PhaseDown, 100, 5))
		c.TogglePicker()
		if c.Picker().Visible() || c.Picker().Picking() {
			t.Error("picker still open or picking")
		}
		if c.Color() != "#00FFFF" {
			t.Errorf("color reset to %s", c.Color())
		}
	})

	t.Run("layout offsets the sample point", func(t *testing.T) {
		c := NewController(Options{})
		c.TogglePicker()
		c.Picker().SetLayout(Layout{Left: 40, Top: 300})
		c.HandlePicker(Mouse(PhaseDown, 140, 310))
		if c.Color() != "#00FFFF" {
			t.Errorf("color = %s", c.Color())
		}
	})
}

func TestClear(t *testing.T) {
	c := NewController(Options{Width: 120, Height: 80})
	c.SelectSwatch(16)
	c.PointerDown(Pt(0, 0))
	c.PointerMove(Pt(119, 79))
	c.PointerMove(Pt(0, 79))
	c.PointerUp()

	c.Clear()

	s := c.Surface()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got, _ := s.At(x, y); got != "#FFFFFF" {
				t.Fatalf("pixel (%d,%d) = %s after clear", x, y, got)
			}
		}
	}
}

func TestEraser(t *testing.T) {
	c := NewController(Options{})
	c.PointerDown(Pt(10, 50))
	c.PointerMove(Pt(200, 50))
	c.PointerUp()
	if got, _ := c.Surface().At(100, 50); got != "#000000" {
		t.Fatalf("brush stroke missing: %s", got)
	}

	c.SelectTool(Eraser)
	c.PointerDown(Pt(10, 50))
	c.PointerMove(Pt(200, 50))
	c.PointerUp()

	for y := 45; y <= 55; y++ {
		for x := 5; x <= 205; x++ {
			if got, _ := c.Surface().At(x, y); got != "#FFFFFF" {
				t.Fatalf("pixel (%d,%d) = %s after erasing", x, y, got)
			}
		}
	}

	if segs := c.Segments(); segs[0].Style.Width != EraserWidth || segs[0].Tool != Eraser {
		t.Errorf("eraser segment style = %+v", segs[0])
	}
}

func TestFrameDrag(t *testing.T) {
	tc := []struct {
		name   string
		start  Point
		grab   Point
		dx, dy float64
	}{
		{name: "from origin", start: Pt(0, 0), grab: Pt(12, 8), dx: 50, dy: 30},
		{name: "negative delta", start: Pt(200, 150), grab: Pt(220, 160), dx: -80, dy: -40},
		{name: "off screen", start: Pt(-30, 400), grab: Pt(-10, 410), dx: -500, dy: 900},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(Options{Frame: tt.start})
			c.HandleTitleBar(Mouse(PhaseDown, tt.grab.X, tt.grab.Y))
			if !c.Frame().Dragging() {
				t.Fatal("press did not start drag")
			}
			for i := 1; i <= 4; i++ {
				f := float64(i) / 4
				c.HandleTitleBar(Mouse(PhaseMove, tt.grab.X+tt.dx*f, tt.grab.Y+tt.dy*f))
			}
			c.HandleTitleBar(Mouse(PhaseUp, 0, 0))

			want := tt.start.Add(Pt(tt.dx, tt.dy))
			if got := c.Frame().Position(); got != want {
				t.Errorf("frame at %v, want %v", got, want)
			}
			if c.Frame().Dragging() {
				t.Error("drag flag survived release")
			}

			c.HandleTitleBar(Mouse(PhaseMove, 9999, 9999))
			if got := c.Frame().Position(); got != want {
				t.Errorf("move after release moved frame to %v", got)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	c := NewController(Options{})
	c.SelectTool(Eraser)
	c.TogglePicker()
	c.PointerDown(Pt(1, 1))
	c.PointerMove(Pt(2, 2))

	s := c.Snapshot()
	if s.Tool != "eraser" || !s.Drawing || !s.PickerVisible || s.Segments != 1 || s.Width != DefaultWidth {
		t.Errorf("unexpected snapshot %+v", s)
	}
}
