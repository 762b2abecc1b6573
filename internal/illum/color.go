package illum

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBW is one addressable element's color, each channel in [0, 255].
type RGBW struct {
	R, G, B, W uint8
}

// String returns the tuple form, e.g. "(0,0,64,0)".
func (c RGBW) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", c.R, c.G, c.B, c.W)
}

// Pressed is the override color shown while a key is held: RGB off, white
// channel at full brightness.
var Pressed = RGBW{W: 255}

// DefaultBaseColors returns the reference per-layer idle colors: dim blue,
// dim green, dim red, cyan.
func DefaultBaseColors() []RGBW {
	return []RGBW{
		{B: 64},
		{G: 64},
		{R: 64},
		{G: 64, B: 64},
	}
}

// Limit caps a color's brightness at max per channel. The RGB part goes
// through HSV so the hue survives the cap; the white channel is capped
// directly. A max of 0 disables limiting.
func Limit(c RGBW, max uint8) RGBW {
	if max == 0 {
		return c
	}
	out := c
	if c.W > max {
		out.W = max
	}
	if c.R > max || c.G > max || c.B > max {
		h, s, v := colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}.Hsv()
		if limit := float64(max) / 255; v > limit {
			v = limit
		}
		scaled := colorful.Hsv(h, s, v).Clamped()
		out.R = uint8(scaled.R*255 + 0.5)
		out.G = uint8(scaled.G*255 + 0.5)
		out.B = uint8(scaled.B*255 + 0.5)
	}
	return out
}
