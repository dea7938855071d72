package paint

import "math"

// Point is a position in either client (screen) or surface-local coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Layout is where an element is rendered on screen. A zero Width or Height means the
// element is rendered at its pixel size.
type Layout struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToLocal maps a client position into pixel coordinates of an element whose backing
// bitmap is pixelW x pixelH, correcting for any scaling between the two.
func (l Layout) ToLocal(client Point, pixelW, pixelH int) Point {
	sx, sy := 1.0, 1.0
	if l.Width > 0 {
		sx = float64(pixelW) / l.Width
	}
	if l.Height > 0 {
		sy = float64(pixelH) / l.Height
	}
	return Point{
		X: (client.X - l.Left) * sx,
		Y: (client.Y - l.Top) * sy,
	}
}
