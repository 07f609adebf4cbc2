package game

// Gravity well tuning constants
const (
	WellStrength = 500.0
	WellLifetime = 3.0
	WellRadius   = 100.0
)

// GravityWell is a transient point attractor spawned by a click. It pulls
// fragments toward it with inverse-square force until its lifetime runs out.
type GravityWell struct {
	Pos         Vec2
	Strength    float64
	Lifetime    float64
	MaxLifetime float64
	Radius      float64
}

func NewGravityWell(x, y float64) GravityWell {
	return GravityWell{
		Pos:         Vec2{x, y},
		Strength:    WellStrength,
		Lifetime:    WellLifetime,
		MaxLifetime: WellLifetime,
		Radius:      WellRadius,
	}
}

// Expired reports whether the well has decayed away.
func (w *GravityWell) Expired() bool {
	return w.Lifetime <= 0
}

// ForceOn returns the acceleration the well exerts at pos, or the zero
// vector outside its radius.
func (w *GravityWell) ForceOn(pos Vec2) Vec2 {
	delta := w.Pos.Sub(pos)
	dist := delta.Len()
	if dist == 0 || dist >= w.Radius {
		return Vec2{}
	}
	return delta.Normalize().Scale(w.Strength / (dist * dist))
}
