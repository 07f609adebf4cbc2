package game

import "math"

// Vec2 is a 2D vector. All operations return new values.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector, or the zero vector for zero length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SeededRandom is a cheap deterministic hash of seed into [0, 1), used for
// reproducible per-fragment pattern and color variance.
func SeededRandom(seed float64) float64 {
	v := math.Sin(seed) * 10000
	return v - math.Floor(v)
}

// seededSeq draws a deterministic sequence of values from a single seed.
type seededSeq struct {
	seed float64
	n    int
}

func (s *seededSeq) next() float64 {
	v := SeededRandom(s.seed + float64(s.n)*12.9898)
	s.n++
	return v
}
