package game

import (
	"math"
	"math/rand"
)

// Fragment tuning constants
const (
	BaseHealRate       = 0.01
	MaxAcceleratedHeal = 0.5
	HealAccelDecay     = 0.95
	DriftAmplitude     = 10.0
	HealedThreshold    = 0.3
)

// MemoryFragment is one healable, drifting unit of the playfield. Pos is the
// rendered position; Base is the drift anchor that gravity wells and
// target-seeking act on.
type MemoryFragment struct {
	Pos  Vec2
	Base Vec2
	Vel  Vec2
	Mass float64
	Size float64

	// CorruptionLevel is 1 fully corrupted, 0 fully healed. It only ever
	// decreases and stays inside [0, 1].
	CorruptionLevel float64

	ColorScheme []RGB
	Pattern     Pattern
	Seed        float64

	Rotation      float64
	RotationSpeed float64
	PulsePhase    float64
	DriftPhase    float64

	HealRate            float64
	AcceleratedHealRate float64
}

// NewMemoryFragment creates a fragment at (x, y) with its pattern generated
// deterministically from seed. Rotation, spin, and phases are randomized for
// visual variety.
func NewMemoryFragment(x, y, size, corruption float64, scheme []RGB, seed float64, rng *rand.Rand) *MemoryFragment {
	return &MemoryFragment{
		Pos:             Vec2{x, y},
		Base:            Vec2{x, y},
		Mass:            1,
		Size:            size,
		CorruptionLevel: Clamp(corruption, 0, 1),
		ColorScheme:     scheme,
		Pattern:         GeneratePattern(seed, size),
		Seed:            seed,
		Rotation:        rng.Float64() * math.Pi * 2,
		RotationSpeed:   rng.Float64() - 0.5,
		PulsePhase:      rng.Float64() * math.Pi * 2,
		DriftPhase:      rng.Float64() * math.Pi * 2,
		HealRate:        BaseHealRate,
	}
}

// Update advances the fragment's drift, rotation, pulse, and passive healing.
// Pointer proximity inside influenceRadius calms the drift and speeds
// everything else up.
func (f *MemoryFragment) Update(dt float64, pointer Vec2, influenceRadius float64) {
	influence := 0.0
	if influenceRadius > 0 {
		influence = math.Max(0, 1-f.Pos.Dist(pointer)/influenceRadius)
	}

	f.DriftPhase += dt * 0.5
	drift := Vec2{
		X: math.Sin(f.DriftPhase) * DriftAmplitude,
		Y: math.Cos(f.DriftPhase*0.7) * DriftAmplitude,
	}
	f.Pos = f.Base.Add(drift.Scale(1 - influence*0.5))

	f.Rotation += f.RotationSpeed * dt * (1 + influence)
	f.PulsePhase += dt * 2 * (1 + influence)

	heal := (f.HealRate + f.AcceleratedHealRate) * (1 + influence*2)
	f.CorruptionLevel = math.Max(0, f.CorruptionLevel-heal*dt)

	f.AcceleratedHealRate *= HealAccelDecay
}

// AccelerateHealing bumps the temporary heal rate, capped at
// MaxAcceleratedHeal no matter how often it is called.
func (f *MemoryFragment) AccelerateHealing(amount float64) {
	f.AcceleratedHealRate = math.Min(MaxAcceleratedHeal, f.AcceleratedHealRate+amount)
}

// CurrentColor is the scheme's base color desaturated and darkened by the
// corruption level: fully healed returns the pure base color, fully
// corrupted a dark gray of it.
func (f *MemoryFragment) CurrentColor() RGB {
	if len(f.ColorScheme) == 0 {
		return RGB{}
	}
	base := f.ColorScheme[0]
	if f.CorruptionLevel <= 0 {
		return base
	}

	brightness := 1 - f.CorruptionLevel*0.7
	r := float64(base.R) * brightness
	g := float64(base.G) * brightness
	b := float64(base.B) * brightness

	gray := (r + g + b) / 3
	t := f.CorruptionLevel
	return RGB{
		clamp8(Lerp(r, gray, t)),
		clamp8(Lerp(g, gray, t)),
		clamp8(Lerp(b, gray, t)),
	}
}

// Healed reports whether the fragment is healed enough to form connections.
func (f *MemoryFragment) Healed() bool {
	return f.CorruptionLevel < HealedThreshold
}

// Draw renders the pattern rotated and pulse-scaled, faded by corruption,
// with a layered glow once the fragment is nearly healed.
func (f *MemoryFragment) Draw(cv Canvas) {
	pulse := 1 + math.Sin(f.PulsePhase)*0.1*(1-f.CorruptionLevel)
	alpha := 1 - f.CorruptionLevel*0.8
	tint := f.CurrentColor()

	sin, cos := math.Sincos(f.Rotation)
	transform := func(p Vec2) Vec2 {
		p = p.Scale(pulse)
		return Vec2{
			X: f.Pos.X + p.X*cos - p.Y*sin,
			Y: f.Pos.Y + p.X*sin + p.Y*cos,
		}
	}

	cv.SetAlpha(alpha)
	for _, prim := range f.Pattern.Primitives {
		col := ModulateRGB(InterpolateScheme(f.ColorScheme, prim.Layer), tint)
		rgba := col.RGBA(1)
		switch prim.Kind {
		case PrimCircle:
			cv.StrokeCircle(f.Pos.X, f.Pos.Y, prim.Radius*pulse, prim.Width, rgba)
		case PrimPolygon:
			pts := transformAll(prim.Points, transform)
			strokePolygon(cv, pts, prim.Width, rgba)
		case PrimCurve:
			cv.Polyline(transformAll(prim.Points, transform), prim.Width, rgba)
		case PrimLine:
			if len(prim.Points) == 2 {
				a := transform(prim.Points[0])
				b := transform(prim.Points[1])
				cv.Line(a.X, a.Y, b.X, b.Y, prim.Width, rgba)
			}
		}
	}

	if f.CorruptionLevel < HealedThreshold && len(f.ColorScheme) > 0 {
		intensity := (HealedThreshold - f.CorruptionLevel) / HealedThreshold
		glowRadius := f.Size * pulse * (1 + (HealedThreshold - f.CorruptionLevel))
		glow := f.ColorScheme[len(f.ColorScheme)-1].RGBA(1)
		cv.SetAlpha(intensity * 100.0 / 255.0)
		for i := 0; i < 3; i++ {
			r := glowRadius - float64(i)*5
			if r > 0 {
				cv.StrokeCircle(f.Pos.X, f.Pos.Y, r, 1, glow)
			}
		}
	}
	cv.SetAlpha(1)
}

func transformAll(pts []Vec2, fn func(Vec2) Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = fn(p)
	}
	return out
}
