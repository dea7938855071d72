package paint

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// capSteps is the number of chords used to approximate each semicircular cap.
const capSteps = 12

// coverageThreshold is the minimum mask alpha at which a pixel takes the stroke color.
const coverageThreshold = 0x80

// Surface is the opaque raster the canvas draws into.
type Surface struct {
	img    *image.RGBA
	layout Layout
}

// NewSurface allocates a w x h surface filled with [Background].
func NewSurface(w, h int) *Surface {
	s := &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	s.Clear()
	return s
}

// Image exposes the backing raster. Callers must not retain it across mutations they do
// not own.
func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Width() int  { return s.img.Bounds().Dx() }
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

// Layout returns where the surface is rendered on screen.
func (s *Surface) Layout() Layout { return s.layout }

// SetLayout records the on-screen placement used for client coordinate mapping.
func (s *Surface) SetLayout(l Layout) { s.layout = l }

// ToLocal maps a client position to surface pixel coordinates.
func (s *Surface) ToLocal(client Point) Point {
	return s.layout.ToLocal(client, s.Width(), s.Height())
}

// Clear repaints every pixel opaque white.
func (s *Surface) Clear() {
	if s == nil || s.img == nil {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
}

// At returns the hex color of pixel (x, y). ok is false outside the surface.
func (s *Surface) At(x, y int) (hex string, ok bool) {
	if s == nil || s.img == nil || !(image.Point{X: x, Y: y}).In(s.img.Bounds()) {
		return "", false
	}
	return FormatHex(s.img.RGBAAt(x, y)), true
}

// DrawSegment strokes a round-capped line from a to b. A zero-length segment draws a dot.
func (s *Surface) DrawSegment(a, b Point, style StrokeStyle) {
	if s == nil || s.img == nil || style.Width <= 0 {
		return
	}
	r := style.Width / 2
	box := image.Rect(
		int(math.Floor(math.Min(a.X, b.X)-r)),
		int(math.Floor(math.Min(a.Y, b.Y)-r)),
		int(math.Ceil(math.Max(a.X, b.X)+r)),
		int(math.Ceil(math.Max(a.Y, b.Y)+r)),
	).Intersect(s.img.Bounds())
	if box.Empty() {
		return
	}

	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	origin := Pt(float64(box.Min.X), float64(box.Min.Y))
	z := vector.NewRasterizer(box.Dx(), box.Dy())
	capsule(z, a.Sub(origin), b.Sub(origin), r)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	c := color.RGBA{R: style.Color.R, G: style.Color.G, B: style.Color.B, A: 0xFF}
	for y := 0; y < box.Dy(); y++ {
		for x := 0; x < box.Dx(); x++ {
			if mask.AlphaAt(x, y).A >= coverageThreshold {
				s.img.SetRGBA(box.Min.X+x, box.Min.Y+y, c)
			}
		}
	}
}

// capsule adds the outline of the stadium around segment ab with radius r.
func capsule(z *vector.Rasterizer, a, b Point, r float64) {
	angle := 0.0
	if d := b.Sub(a); d.X != 0 || d.Y != 0 {
		angle = math.Atan2(d.Y, d.X)
	}
	// Walk the left edge forward, around b, back along the right edge, around a.
	start := angle - math.Pi/2
	z.MoveTo(float32(a.X+r*math.Cos(start)), float32(a.Y+r*math.Sin(start)))
	arc(z, b, r, start)
	arc(z, a, r, start+math.Pi)
	z.ClosePath()
}

func arc(z *vector.Rasterizer, c Point, r, from float64) {
	for i := 0; i <= capSteps; i++ {
		theta := from + math.Pi*float64(i)/capSteps
		z.LineTo(float32(c.X+r*math.Cos(theta)), float32(c.Y+r*math.Sin(theta)))
	}
}
