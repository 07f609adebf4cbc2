package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/memory-drift/game"
)

// ebitenCanvas adapts an ebiten.Image to the game.Canvas drawing surface.
// The global alpha multiplier is folded into each color before drawing
// (ebiten colors are alpha-premultiplied).
type ebitenCanvas struct {
	dst   *ebiten.Image
	alpha float64
}

func newCanvas(dst *ebiten.Image) *ebitenCanvas {
	return &ebitenCanvas{dst: dst, alpha: 1}
}

func (c *ebitenCanvas) SetAlpha(a float64) {
	c.alpha = game.Clamp(a, 0, 1)
}

func (c *ebitenCanvas) FillCircle(x, y, r float64, col color.RGBA) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), c.scale(col), true)
}

func (c *ebitenCanvas) StrokeCircle(x, y, r, width float64, col color.RGBA) {
	vector.StrokeCircle(c.dst, float32(x), float32(y), float32(r), float32(width), c.scale(col), true)
}

func (c *ebitenCanvas) Line(x1, y1, x2, y2, width float64, col color.RGBA) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c.scale(col), true)
}

func (c *ebitenCanvas) Polyline(pts []game.Vec2, width float64, col color.RGBA) {
	scaled := c.scale(col)
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(c.dst,
			float32(pts[i-1].X), float32(pts[i-1].Y),
			float32(pts[i].X), float32(pts[i].Y),
			float32(width), scaled, true)
	}
}

func (c *ebitenCanvas) scale(col color.RGBA) color.RGBA {
	a := c.alpha * float64(col.A) / 255
	return color.RGBA{
		R: uint8(float64(col.R) * a),
		G: uint8(float64(col.G) * a),
		B: uint8(float64(col.B) * a),
		A: uint8(255 * a),
	}
}
