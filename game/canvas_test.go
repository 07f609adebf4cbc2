package game

import "image/color"

// recordingCanvas counts primitive calls for draw-path assertions.
type recordingCanvas struct {
	fills     int
	strokes   int
	lines     int
	polylines int
	alpha     float64
}

func (c *recordingCanvas) FillCircle(x, y, r float64, col color.RGBA) { c.fills++ }

func (c *recordingCanvas) StrokeCircle(x, y, r, width float64, col color.RGBA) { c.strokes++ }

func (c *recordingCanvas) Line(x1, y1, x2, y2, width float64, col color.RGBA) { c.lines++ }

func (c *recordingCanvas) Polyline(pts []Vec2, width float64, col color.RGBA) { c.polylines++ }

func (c *recordingCanvas) SetAlpha(a float64) { c.alpha = a }
