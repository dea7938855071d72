package paint

import (
	"fmt"
	"image/color"
)

// Tool selects the stroke style applied to canvas segments.
type Tool int

const (
	Brush Tool = iota
	Eraser
)

const (
	BrushWidth  = 2.0
	EraserWidth = 20.0
)

func (t Tool) String() string {
	switch t {
	case Eraser:
		return "eraser"
	default:
		return "brush"
	}
}

// ParseTool maps "brush" or "eraser" to a Tool.
func ParseTool(s string) (Tool, error) {
	switch s {
	case "brush":
		return Brush, nil
	case "eraser":
		return Eraser, nil
	}
	return Brush, fmt.Errorf("unknown tool %q", s)
}

// StrokeStyle is what a segment is drawn with. Caps and joins are always round.
type StrokeStyle struct {
	Color color.RGBA
	Width float64
}

// StyleFor returns the style for tool given the active hex color. An unparseable active
// color falls back to black.
func StyleFor(tool Tool, active string) StrokeStyle {
	if tool == Eraser {
		return StrokeStyle{Color: Background, Width: EraserWidth}
	}
	c, err := ParseHex(active)
	if err != nil {
		c = color.RGBA{A: 0xFF}
	}
	return StrokeStyle{Color: c, Width: BrushWidth}
}
