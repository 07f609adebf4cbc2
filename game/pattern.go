package game

import (
	"math"
	"math/rand"
)

// Layout tuning constants
const (
	ConstellationMargin   = 100.0
	ConstellationMinDist  = 80.0
	ConstellationAttempts = 50
	MandalaRings          = 3
)

// LayoutType selects the target-position layout for a level.
type LayoutType int

const (
	LayoutCircle LayoutType = iota
	LayoutSpiral
	LayoutGrid
	LayoutConstellation
	LayoutMandala
)

func (t LayoutType) String() string {
	switch t {
	case LayoutCircle:
		return "circle"
	case LayoutSpiral:
		return "spiral"
	case LayoutGrid:
		return "grid"
	case LayoutConstellation:
		return "constellation"
	case LayoutMandala:
		return "mandala"
	}
	return "unknown"
}

// Layout produces count target positions for the given layout type inside a
// width x height playfield. Only the constellation layout consumes the rng.
func Layout(t LayoutType, count int, width, height float64, rng *rand.Rand) []Vec2 {
	cx, cy := width/2, height/2
	switch t {
	case LayoutSpiral:
		return SpiralLayout(count, cx, cy)
	case LayoutGrid:
		return GridLayout(count, width, height)
	case LayoutConstellation:
		return ConstellationLayout(count, width, height, rng)
	case LayoutMandala:
		return MandalaLayout(count, cx, cy)
	default:
		return CircleLayout(count, cx, cy, math.Min(width, height)*0.3)
	}
}

// CircleLayout spaces count points evenly on a circle.
func CircleLayout(count int, cx, cy, radius float64) []Vec2 {
	pts := make([]Vec2, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		pts = append(pts, Vec2{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)})
	}
	return pts
}

// SpiralLayout walks a five-armed spiral outward from the center.
func SpiralLayout(count int, cx, cy float64) []Vec2 {
	pts := make([]Vec2, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / 5
		radius := 50 + float64(i)*25
		pts = append(pts, Vec2{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)})
	}
	return pts
}

// GridLayout fills a near-square grid, ceil(sqrt(count)) columns, centered
// with even spacing.
func GridLayout(count int, width, height float64) []Vec2 {
	pts := make([]Vec2, 0, count)
	if count == 0 {
		return pts
	}
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	spacing := math.Min(width, height) / float64(cols+1)
	offX := (width - spacing*float64(cols)) / 2
	offY := (height - spacing*float64(cols)) / 2
	for i := 0; i < count; i++ {
		row := i / cols
		col := i % cols
		pts = append(pts, Vec2{
			X: float64(col+1)*spacing + offX,
			Y: float64(row+1)*spacing + offY,
		})
	}
	return pts
}

// ConstellationLayout rejection-samples random points keeping a minimum
// pairwise separation. After ConstellationAttempts failed draws the last
// candidate is accepted regardless of overlap, so the layout always yields
// exactly count points.
func ConstellationLayout(count int, width, height float64, rng *rand.Rand) []Vec2 {
	pts := make([]Vec2, 0, count)
	for i := 0; i < count; i++ {
		var candidate Vec2
		for attempt := 0; attempt < ConstellationAttempts; attempt++ {
			candidate = Vec2{
				X: ConstellationMargin + rng.Float64()*(width-2*ConstellationMargin),
				Y: ConstellationMargin + rng.Float64()*(height-2*ConstellationMargin),
			}
			ok := true
			for _, p := range pts {
				if candidate.Dist(p) < ConstellationMinDist {
					ok = false
					break
				}
			}
			if ok {
				break
			}
		}
		pts = append(pts, candidate)
	}
	return pts
}

// MandalaLayout distributes points over three concentric rings.
func MandalaLayout(count int, cx, cy float64) []Vec2 {
	pts := make([]Vec2, 0, count)
	perRing := count / MandalaRings
	if perRing < 1 {
		perRing = 1
	}
	for i := 0; i < count; i++ {
		ring := i % MandalaRings
		radius := 80 + float64(ring)*80
		angle := 2 * math.Pi * float64(i) / float64(perRing)
		pts = append(pts, Vec2{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)})
	}
	return pts
}

// PatternType classifies a fragment's decorative geometry.
type PatternType int

const (
	PatternGeometric PatternType = iota
	PatternOrganic
	PatternCrystalline
)

func (t PatternType) String() string {
	switch t {
	case PatternGeometric:
		return "geometric"
	case PatternOrganic:
		return "organic"
	}
	return "crystalline"
}

// PrimitiveKind tags a drawable primitive.
type PrimitiveKind int

const (
	PrimPolygon PrimitiveKind = iota
	PrimCircle
	PrimCurve
	PrimLine
)

// Primitive is one stroke of a fragment pattern in fragment-local
// coordinates (origin at the fragment center). Layer in [0, 1] selects the
// color along the fragment's scheme.
type Primitive struct {
	Kind   PrimitiveKind
	Points []Vec2 // polygon / curve / line vertices
	Radius float64
	Width  float64
	Layer  float64
}

// Pattern is a fragment's generated decorative geometry.
type Pattern struct {
	Type       PatternType
	Primitives []Primitive
}

// GeneratePattern builds the decorative geometry for a fragment of the given
// size. Deterministic: the same seed always yields the same pattern.
func GeneratePattern(seed, size float64) Pattern {
	seq := seededSeq{seed: seed}
	t := PatternType(int(seq.next()*3) % 3)
	switch t {
	case PatternGeometric:
		return Pattern{Type: t, Primitives: geometricPrimitives(size)}
	case PatternOrganic:
		return Pattern{Type: t, Primitives: organicPrimitives(size)}
	default:
		return Pattern{Type: t, Primitives: crystallinePrimitives(size)}
	}
}

// geometricPrimitives nests hexagons and circles.
func geometricPrimitives(size float64) []Primitive {
	prims := make([]Primitive, 0, 3)
	for i := 0; i < 3; i++ {
		factor := 1 - float64(i)*0.3
		layer := float64(i) / 3
		if i%2 == 0 {
			pts := make([]Vec2, 0, 6)
			for j := 0; j < 6; j++ {
				angle := 2 * math.Pi * float64(j) / 6
				pts = append(pts, Vec2{size * factor * math.Cos(angle), size * factor * math.Sin(angle)})
			}
			prims = append(prims, Primitive{Kind: PrimPolygon, Points: pts, Width: 2, Layer: layer})
		} else {
			prims = append(prims, Primitive{Kind: PrimCircle, Radius: size * factor, Width: 2, Layer: layer})
		}
	}
	return prims
}

// organicPrimitives draws five flowing curves swinging in and out of a
// half-turn arc.
func organicPrimitives(size float64) []Primitive {
	prims := make([]Primitive, 0, 5)
	for i := 0; i < 5; i++ {
		start := 2 * math.Pi * float64(i) / 5
		pts := make([]Vec2, 0, 20)
		for t := 0; t < 20; t++ {
			angle := start + float64(t)/20*math.Pi
			radius := size * (0.5 + 0.3*math.Sin(float64(t)/3))
			pts = append(pts, Vec2{radius * math.Cos(angle), radius * math.Sin(angle)})
		}
		prims = append(prims, Primitive{Kind: PrimCurve, Points: pts, Width: 2, Layer: float64(i) / 5})
	}
	return prims
}

// crystallinePrimitives draws eight spokes from the center plus an inner web
// connecting them.
func crystallinePrimitives(size float64) []Primitive {
	prims := make([]Primitive, 0, 16)
	for i := 0; i < 8; i++ {
		layer := float64(i) / 8
		angle := 2 * math.Pi * float64(i) / 8
		next := 2 * math.Pi * float64((i+1)%8) / 8

		prims = append(prims, Primitive{
			Kind:   PrimLine,
			Points: []Vec2{{}, {size * math.Cos(angle), size * math.Sin(angle)}},
			Width:  2,
			Layer:  layer,
		})
		prims = append(prims, Primitive{
			Kind: PrimLine,
			Points: []Vec2{
				{size * 0.7 * math.Cos(angle), size * 0.7 * math.Sin(angle)},
				{size * 0.7 * math.Cos(next), size * 0.7 * math.Sin(next)},
			},
			Width: 1,
			Layer: layer,
		})
	}
	return prims
}
