package paint

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHex(t *testing.T) {
	t.Run("FormatHex pads and uppercases", func(t *testing.T) {
		if got := FormatHex(color.RGBA{R: 1, G: 0xAB, B: 0x0C, A: 0xFF}); got != "#01AB0C" {
			t.Errorf("FormatHex = %s", got)
		}
	})

	tc := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "#ff8040", want: "#FF8040"},
		{in: "00ff80", want: "#00FF80"},
		{in: "#abc", want: "#AABBCC"},
		{in: "tomato", want: "#FF6347"},
		{in: "Navy", want: "#000080"},
		{in: "#12345", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tc {
		t.Run("ParseColor "+tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGradient(t *testing.T) {
	t.Run("stops are exact", func(t *testing.T) {
		for _, s := range HueStops {
			if got := RampAt(s.Offset); got != s.Color {
				t.Errorf("RampAt(%v) = %v, want %v", s.Offset, got, s.Color)
			}
		}
	})

	t.Run("bitmap rows are identical", func(t *testing.T) {
		img := NewGradient(64, 4)
		for x := 0; x < 64; x++ {
			top := img.RGBAAt(x, 0)
			if img.RGBAAt(x, 3) != top {
				t.Fatalf("column %d differs between rows", x)
			}
		}
	})

	t.Run("midpoint column is cyan", func(t *testing.T) {
		img := NewGradient(50, 1)
		if got := FormatHex(img.RGBAAt(25, 0)); got != "#00FFFF" {
			t.Errorf("midpoint = %s", got)
		}
	})

	t.Run("empty bitmap", func(t *testing.T) {
		if !NewGradient(0, 0).Bounds().Empty() {
			t.Error("expected empty bitmap")
		}
	})
}

func TestToolStyle(t *testing.T) {
	b := StyleFor(Brush, "#FF0000")
	if b.Width != BrushWidth || b.Color != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("brush style = %+v", b)
	}
	e := StyleFor(Eraser, "#FF0000")
	if e.Width != EraserWidth || e.Color != Background {
		t.Errorf("eraser style = %+v", e)
	}
	if _, err := ParseTool("pencil"); err == nil {
		t.Error("expected unknown tool error")
	}
}

func TestSurface(t *testing.T) {
	t.Run("zero-length segment draws a dot", func(t *testing.T) {
		s := NewSurface(20, 20)
		s.DrawSegment(Pt(10, 10), Pt(10, 10), StrokeStyle{Color: color.RGBA{A: 0xFF}, Width: 6})
		if got, _ := s.At(10, 10); got != "#000000" {
			t.Errorf("dot centre = %s", got)
		}
	})

	t.Run("segments outside the surface are clipped", func(t *testing.T) {
		s := NewSurface(20, 20)
		s.DrawSegment(Pt(-50, -50), Pt(-40, -40), StrokeStyle{Color: color.RGBA{A: 0xFF}, Width: 2})
		s.DrawSegment(Pt(15, 10), Pt(60, 10), StrokeStyle{Color: color.RGBA{A: 0xFF}, Width: 2})
		if got, _ := s.At(19, 10); got != "#000000" {
			t.Errorf("edge pixel = %s", got)
		}
	})

	t.Run("At outside bounds", func(t *testing.T) {
		s := NewSurface(4, 4)
		if _, ok := s.At(4, 0); ok {
			t.Error("expected out of bounds")
		}
	})

	t.Run("nil surface is a no-op", func(t *testing.T) {
		var s *Surface
		s.Clear()
		s.DrawSegment(Pt(0, 0), Pt(1, 1), StyleFor(Brush, DefaultColor))
		if _, ok := s.At(0, 0); ok {
			t.Error("nil surface returned a pixel")
		}
	})
}

func TestRunScript(t *testing.T) {
	t.Run("replays strokes, tools and picks", func(t *testing.T) {
		script := strings.Join([]string{
			"# red line then erase the middle",
			"color red",
			"down 10 20",
			"move 100 20",
			"up",
			"tool eraser",
			"down 50 20",
			"move 60 20",
			"up",
			"tool brush",
			"picker",
			"pick 100 5",
			"pick-move 0 5",
			"pick-up",
			"pick-move 100 5",
			"swatch 4",
		}, "\n")

		c := NewController(Options{Width: 120, Height: 40})
		if err := RunScript(strings.NewReader(script), c); err != nil {
			t.Fatalf("RunScript: %v", err)
		}
		s := c.Surface()
		if got, _ := s.At(20, 20); got != "#FF0000" {
			t.Errorf("stroke pixel = %s", got)
		}
		if got, _ := s.At(55, 20); got != "#FFFFFF" {
			t.Errorf("erased pixel = %s", got)
		}
		if c.Color() != "#008000" {
			t.Errorf("final color = %s", c.Color())
		}
		if c.Tool() != Brush || !c.Picker().Visible() || c.Picker().Picking() {
			t.Errorf("unexpected state %+v", c.Snapshot())
		}
	})

	t.Run("picker samples into the active color", func(t *testing.T) {
		c := NewController(Options{})
		if err := RunScript(strings.NewReader("picker\npick 100 5\n"), c); err != nil {
			t.Fatal(err)
		}
		if c.Color() != "#00FFFF" {
			t.Errorf("color = %s", c.Color())
		}
	})

	tc := []struct {
		name   string
		script string
		line   int
	}{
		{name: "unknown command", script: "down 1 1\nfly 2 2", line: 2},
		{name: "bad coordinate", script: "move x 2", line: 1},
		{name: "missing argument", script: "\n\ncolor", line: 3},
		{name: "bad swatch", script: "swatch 99", line: 1},
		{name: "bad tool", script: "tool pencil", line: 1},
		{name: "bad color", script: "color #XYZXYZ", line: 1},
	}
	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			err := RunScript(strings.NewReader(tt.script), NewController(Options{}))
			var se *ScriptError
			if !errors.As(err, &se) {
				t.Fatalf("expected ScriptError, got %v", err)
			}
			if se.Line != tt.line {
				t.Errorf("line = %d, want %d", se.Line, tt.line)
			}
		})
	}
}

func TestExport(t *testing.T) {
	c := NewController(Options{Width: 80, Height: 60})
	c.PointerDown(Pt(5, 30))
	c.PointerMove(Pt(70, 30))
	c.PointerUp()

	t.Run("png round trips pixels", func(t *testing.T) {
		var buf bytes.Buffer
		if err := EncodePNG(&buf, c.Surface()); err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 60 {
			t.Errorf("bounds = %v", img.Bounds())
		}
		if got := FormatHex(img.At(40, 30)); got != "#000000" {
			t.Errorf("stroke pixel = %s", got)
		}
		if got := FormatHex(img.At(40, 5)); got != "#FFFFFF" {
			t.Errorf("background pixel = %s", got)
		}
	})

	t.Run("pdf output", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WritePDF(&buf, c.Surface(), Title); err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Errorf("missing pdf header: %q", buf.Bytes()[:min(8, buf.Len())])
		}
	})

	t.Run("pdf file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "canvas.pdf")
		if err := ExportPDF(path, c.Surface(), Title); err != nil {
			t.Fatal(err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("pdf not written: %v", err)
		}
	})

	t.Run("nil surface", func(t *testing.T) {
		if err := EncodePNG(&bytes.Buffer{}, nil); err == nil {
			t.Error("expected error")
		}
	})
}
