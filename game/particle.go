package game

import (
	"math"
	"math/rand"
)

// Particle tuning constants
const (
	MaxParticles      = 500
	ParticleDrag      = 0.98
	ParticleFloat     = -20.0 // vertical velocity adjustment per second; net visual is a slow upward float
	ParticleMinSpeed  = 20.0
	ParticleMaxSpeed  = 80.0
	ParticleMinLife   = 0.5
	ParticleMaxLife   = 1.5
	ParticleMinSize   = 2.0
	ParticleMaxSize   = 5.0
	ParticleJitter    = 10.0
	ParticleColorVary = 20
)

// Particle is a single short-lived visual feedback particle.
type Particle struct {
	Pos         Vec2
	Vel         Vec2
	Color       RGB
	Lifetime    float64
	MaxLifetime float64
	Size        float64
}

// Alpha is the remaining-life fraction used for fading.
func (p *Particle) Alpha() float64 {
	if p.MaxLifetime <= 0 {
		return 0
	}
	return Clamp(p.Lifetime/p.MaxLifetime, 0, 1)
}

// ParticleSystem owns the pool of all live particles.
type ParticleSystem struct {
	Particles []Particle
	rng       *rand.Rand
}

func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		Particles: make([]Particle, 0, MaxParticles),
		rng:       rng,
	}
}

// Emit spawns count particles around (x, y) with positional and per-channel
// color jitter. If the pool overflows, only the most recently added
// MaxParticles survive.
func (ps *ParticleSystem) Emit(x, y float64, count int, c RGB) {
	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * math.Pi * 2
		speed := ps.uniform(ParticleMinSpeed, ParticleMaxSpeed)
		life := ps.uniform(ParticleMinLife, ParticleMaxLife)

		ps.Particles = append(ps.Particles, Particle{
			Pos: Vec2{
				X: x + ps.uniform(-ParticleJitter, ParticleJitter),
				Y: y + ps.uniform(-ParticleJitter, ParticleJitter),
			},
			Vel: Vec2{
				X: math.Cos(angle) * speed,
				Y: math.Sin(angle) * speed,
			},
			Color:       ps.varyColor(c),
			Lifetime:    life,
			MaxLifetime: life,
			Size:        ps.uniform(ParticleMinSize, ParticleMaxSize),
		})
	}
	if len(ps.Particles) > MaxParticles {
		trimmed := len(ps.Particles) - MaxParticles
		copy(ps.Particles, ps.Particles[trimmed:])
		ps.Particles = ps.Particles[:MaxParticles]
	}
}

// Update advances all particles and compacts out the dead ones.
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.Particles[:0]
	for i := range ps.Particles {
		p := ps.Particles[i]

		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel.Y += ParticleFloat * dt
		p.Vel = p.Vel.Scale(ParticleDrag)
		p.Lifetime -= dt

		if p.Lifetime > 0 {
			alive = append(alive, p)
		}
	}
	ps.Particles = alive
}

// Draw renders every particle: three widening glow rings plus a solid core,
// both scaled by the particle's remaining-life alpha. Intended for an
// additive layer.
func (ps *ParticleSystem) Draw(cv Canvas) {
	for i := range ps.Particles {
		p := &ps.Particles[i]
		alpha := p.Alpha()
		if alpha <= 0 {
			continue
		}
		size := p.Size * alpha

		glow := RGB{
			clamp8(float64(p.Color.R) + 50),
			clamp8(float64(p.Color.G) + 50),
			clamp8(float64(p.Color.B) + 50),
		}
		for ring := 0; ring < 3; ring++ {
			r := size * float64(3-ring)
			if r <= 0 {
				continue
			}
			cv.SetAlpha(alpha * 0.3 / float64(ring+1))
			cv.FillCircle(p.Pos.X, p.Pos.Y, r, glow.RGBA(1))
		}

		cv.SetAlpha(alpha)
		cv.FillCircle(p.Pos.X, p.Pos.Y, size, p.Color.RGBA(1))
	}
	cv.SetAlpha(1)
}

// Clear empties the pool.
func (ps *ParticleSystem) Clear() {
	ps.Particles = ps.Particles[:0]
}

// Count returns the number of live particles.
func (ps *ParticleSystem) Count() int {
	return len(ps.Particles)
}

func (ps *ParticleSystem) uniform(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

func (ps *ParticleSystem) varyColor(c RGB) RGB {
	v := func(ch uint8) uint8 {
		return clamp8(float64(ch) + float64(ps.rng.Intn(2*ParticleColorVary+1)-ParticleColorVary))
	}
	return RGB{v(c.R), v(c.G), v(c.B)}
}
