package paint

import (
	"image"
	"image/color"
	"math"
)

// Stop is a color at a fractional position along the hue ramp.
type Stop struct {
	Offset float64
	Color  color.RGBA
}

// HueStops is the fixed red-to-red ramp used by the gradient picker.
var HueStops = []Stop{
	{0, color.RGBA{0xFF, 0x00, 0x00, 0xFF}},
	{0.17, color.RGBA{0xFF, 0xFF, 0x00, 0xFF}},
	{0.33, color.RGBA{0x00, 0xFF, 0x00, 0xFF}},
	{0.5, color.RGBA{0x00, 0xFF, 0xFF, 0xFF}},
	{0.67, color.RGBA{0x00, 0x00, 0xFF, 0xFF}},
	{0.83, color.RGBA{0xFF, 0x00, 0xFF, 0xFF}},
	{1, color.RGBA{0xFF, 0x00, 0x00, 0xFF}},
}

// RampAt interpolates HueStops at t, clamped to [0, 1].
func RampAt(t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	for i := 1; i < len(HueStops); i++ {
		lo, hi := HueStops[i-1], HueStops[i]
		if t > hi.Offset {
			continue
		}
		f := (t - lo.Offset) / (hi.Offset - lo.Offset)
		return color.RGBA{
			R: lerp(lo.Color.R, hi.Color.R, f),
			G: lerp(lo.Color.G, hi.Color.G, f),
			B: lerp(lo.Color.B, hi.Color.B, f),
			A: 0xFF,
		}
	}
	return HueStops[len(HueStops)-1].Color
}

func lerp(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}

// NewGradient renders a w x h horizontal hue ramp. Column x samples the ramp at x/w, so
// column w/2 is exact cyan only for even w.
func NewGradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	row := make([]color.RGBA, w)
	for x := range row {
		row[x] = RampAt(float64(x) / float64(w))
	}
	for y := 0; y < h; y++ {
		for x, c := range row {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
