package game

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel color without alpha. Alpha is carried
// separately by whatever draws it.
type RGB struct {
	R, G, B uint8
}

// RGBA converts to a premultiplication-free color.RGBA with the given alpha.
func (c RGB) RGBA(alpha float64) color.RGBA {
	a := Clamp(alpha, 0, 1)
	return color.RGBA{c.R, c.G, c.B, uint8(a * 255)}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	return RGB{clamp8(c.R * 255), clamp8(c.G * 255), clamp8(c.B * 255)}
}

// BlendRGB interpolates linearly between two colors in RGB space.
func BlendRGB(a, b RGB, t float64) RGB {
	return fromColorful(a.colorful().BlendRgb(b.colorful(), Clamp(t, 0, 1)))
}

// ScaleRGB multiplies all channels by s, clamping to [0, 255].
func ScaleRGB(c RGB, s float64) RGB {
	return RGB{clamp8(float64(c.R) * s), clamp8(float64(c.G) * s), clamp8(float64(c.B) * s)}
}

// ModulateRGB multiplies two colors channel-wise.
func ModulateRGB(a, b RGB) RGB {
	return RGB{
		clamp8(float64(a.R) * float64(b.R) / 255),
		clamp8(float64(a.G) * float64(b.G) / 255),
		clamp8(float64(a.B) * float64(b.B) / 255),
	}
}

// InterpolateScheme picks a color at position t in [0, 1] along an ordered
// color scheme, blending between adjacent entries.
func InterpolateScheme(scheme []RGB, t float64) RGB {
	if len(scheme) == 0 {
		return RGB{}
	}
	if len(scheme) == 1 {
		return scheme[0]
	}
	segment := Clamp(t, 0, 1) * float64(len(scheme)-1)
	index := int(segment)
	if index >= len(scheme)-1 {
		return scheme[len(scheme)-1]
	}
	return BlendRGB(scheme[index], scheme[index+1], segment-float64(index))
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
