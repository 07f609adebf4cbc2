package game

import "image/color"

// Canvas is the immediate-mode drawing surface the simulation renders to.
// Implementations live outside this package; the core only issues these
// primitive calls and never touches the windowing layer.
//
// SetAlpha sets a global alpha multiplier applied to subsequent draws until
// the next SetAlpha. Additive compositing is the caller's concern: the engine
// is handed a separate Canvas for the particle glow layer.
type Canvas interface {
	FillCircle(x, y, r float64, c color.RGBA)
	StrokeCircle(x, y, r, width float64, c color.RGBA)
	Line(x1, y1, x2, y2, width float64, c color.RGBA)
	Polyline(pts []Vec2, width float64, c color.RGBA)
	SetAlpha(a float64)
}

// strokePolygon draws a closed outline through pts.
func strokePolygon(cv Canvas, pts []Vec2, width float64, c color.RGBA) {
	if len(pts) < 2 {
		return
	}
	closed := append(append([]Vec2{}, pts...), pts[0])
	cv.Polyline(closed, width, c)
}
