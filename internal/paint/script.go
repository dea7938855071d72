package paint

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ScriptError locates a failing line in a paint script.
type ScriptError struct {
	Line int
	Text string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// RunScript replays a line-oriented paint script onto c. Blank lines and lines starting
// with # are skipped. Coordinates are surface-local pixels.
//
//	tool brush|eraser
//	color #RRGGBB | name
//	swatch N
//	down X Y | move X Y | up
//	clear
//	picker
//	pick X Y | pick-move X Y | pick-up
//
// Pick coordinates are local to the gradient bitmap.
func RunScript(r io.Reader, c *Controller) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runLine(c, strings.Fields(line)); err != nil {
			return &ScriptError{Line: n, Text: line, Err: err}
		}
	}
	return sc.Err()
}

func runLine(c *Controller, f []string) error {
	cmd, args := strings.ToLower(f[0]), f[1:]
	switch cmd {
	case "tool":
		if err := arity(args, 1); err != nil {
			return err
		}
		t, err := ParseTool(args[0])
		if err != nil {
			return err
		}
		c.SelectTool(t)
	case "color":
		if err := arity(args, 1); err != nil {
			return err
		}
		return c.SetColor(args[0])
	case "swatch":
		if err := arity(args, 1); err != nil {
			return err
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("swatch index: %w", err)
		}
		if !c.SelectSwatch(i) {
			return fmt.Errorf("swatch index %d out of range", i)
		}
	case "down", "move", "pick", "pick-move":
		p, err := point(args)
		if err != nil {
			return err
		}
		switch cmd {
		case "down":
			c.PointerDown(p)
		case "move":
			c.PointerMove(p)
		case "pick":
			c.HandlePicker(c.pickerEvent(PhaseDown, p))
		case "pick-move":
			c.HandlePicker(c.pickerEvent(PhaseMove, p))
		}
	case "up":
		c.PointerUp()
	case "pick-up":
		c.HandlePicker(PointerEvent{Phase: PhaseUp})
	case "clear":
		c.Clear()
	case "picker":
		c.TogglePicker()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// pickerEvent builds a mouse event whose client position lands on local point p.
func (c *Controller) pickerEvent(phase Phase, p Point) PointerEvent {
	l := c.picker.Layout()
	if l.Width > 0 {
		p.X = p.X * l.Width / float64(c.picker.width)
	}
	if l.Height > 0 {
		p.Y = p.Y * l.Height / float64(c.picker.height)
	}
	return Mouse(phase, l.Left+p.X, l.Top+p.Y)
}

func arity(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected %d argument(s), got %d", n, len(args))
	}
	return nil
}

func point(args []string) (Point, error) {
	if err := arity(args, 2); err != nil {
		return Point{}, err
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("y: %w", err)
	}
	return Pt(x, y), nil
}
