package game

import (
	"math"
	"math/rand"
	"testing"
)

func newTestParticles() *ParticleSystem {
	return NewParticleSystem(rand.New(rand.NewSource(1)))
}

func TestEmitCount(t *testing.T) {
	ps := newTestParticles()
	ps.Emit(100, 100, 5, RGB{255, 255, 255})
	if ps.Count() != 5 {
		t.Errorf("Count = %d, want 5", ps.Count())
	}
	for _, p := range ps.Particles {
		if math.Abs(p.Pos.X-100) > ParticleJitter || math.Abs(p.Pos.Y-100) > ParticleJitter {
			t.Errorf("particle at %v outside jitter range around (100, 100)", p.Pos)
		}
		if p.Lifetime < ParticleMinLife || p.Lifetime > ParticleMaxLife {
			t.Errorf("lifetime %v outside [%v, %v]", p.Lifetime, ParticleMinLife, ParticleMaxLife)
		}
		if p.Size < ParticleMinSize || p.Size > ParticleMaxSize {
			t.Errorf("size %v outside [%v, %v]", p.Size, ParticleMinSize, ParticleMaxSize)
		}
		speed := p.Vel.Len()
		if speed < ParticleMinSpeed-1e-9 || speed > ParticleMaxSpeed+1e-9 {
			t.Errorf("speed %v outside [%v, %v]", speed, ParticleMinSpeed, ParticleMaxSpeed)
		}
	}
}

func TestEmitPoolCap(t *testing.T) {
	ps := newTestParticles()
	ps.Emit(0, 0, 600, RGB{255, 255, 255})
	if ps.Count() != MaxParticles {
		t.Errorf("Count after burst = %d, want %d", ps.Count(), MaxParticles)
	}

	// The survivors must be the most recently added: emit an old batch far
	// from a new batch and check only new positions remain.
	ps.Clear()
	ps.Emit(0, 0, 300, RGB{255, 0, 0})
	ps.Emit(1000, 1000, 300, RGB{0, 0, 255})
	if ps.Count() != MaxParticles {
		t.Fatalf("Count = %d, want %d", ps.Count(), MaxParticles)
	}
	newBatch := 0
	for _, p := range ps.Particles {
		if p.Pos.X > 500 {
			newBatch++
		}
	}
	if newBatch != 300 {
		t.Errorf("new batch survivors = %d, want all 300", newBatch)
	}
	if ps.Particles[len(ps.Particles)-1].Pos.X < 500 {
		t.Error("pool tail should hold the newest particles")
	}
}

func TestParticlePhysics(t *testing.T) {
	ps := newTestParticles()
	ps.Particles = append(ps.Particles, Particle{
		Pos:         Vec2{0, 0},
		Vel:         Vec2{10, 0},
		Lifetime:    1,
		MaxLifetime: 1,
		Size:        3,
	})
	ps.Update(1)

	p := ps.Particles[0]
	if p.Pos != (Vec2{10, 0}) {
		t.Errorf("Pos = %v, want {10 0} (position integrates before the velocity step)", p.Pos)
	}
	if math.Abs(p.Vel.X-9.8) > 1e-9 {
		t.Errorf("Vel.X = %v, want 9.8 (drag)", p.Vel.X)
	}
	if math.Abs(p.Vel.Y-(-19.6)) > 1e-9 {
		t.Errorf("Vel.Y = %v, want -19.6 (float adjustment then drag)", p.Vel.Y)
	}
	if p.Lifetime != 0 {
		t.Errorf("Lifetime = %v, want 0", p.Lifetime)
	}
}

func TestParticleRemoval(t *testing.T) {
	ps := newTestParticles()
	ps.Particles = append(ps.Particles, Particle{
		Lifetime:    0.01,
		MaxLifetime: 1.0,
	})
	ps.Update(0.02)
	if ps.Count() != 0 {
		t.Errorf("Count = %d, want 0 after lifetime expiry", ps.Count())
	}
}

func TestParticleAlpha(t *testing.T) {
	p := Particle{Lifetime: 0.5, MaxLifetime: 1.0}
	if got := p.Alpha(); got != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", got)
	}
	p = Particle{Lifetime: 2, MaxLifetime: 1}
	if got := p.Alpha(); got != 1 {
		t.Errorf("Alpha = %v, want clamped to 1", got)
	}
	p = Particle{}
	if got := p.Alpha(); got != 0 {
		t.Errorf("Alpha of zero particle = %v, want 0", got)
	}
}

func TestColorJitterClamped(t *testing.T) {
	ps := newTestParticles()
	ps.Emit(0, 0, 50, RGB{250, 5, 128})
	for _, p := range ps.Particles {
		if p.Color.R < 250-ParticleColorVary && p.Color.R != 255 {
			t.Errorf("R channel %d drifted more than %d below base", p.Color.R, ParticleColorVary)
		}
		if int(p.Color.G) > 5+ParticleColorVary {
			t.Errorf("G channel %d drifted more than %d above base", p.Color.G, ParticleColorVary)
		}
	}
}

func TestClearAndDraw(t *testing.T) {
	ps := newTestParticles()
	ps.Emit(10, 10, 2, RGB{200, 200, 200})

	rec := &recordingCanvas{}
	ps.Draw(rec)
	// 3 glow rings plus a core per particle
	if rec.fills != 8 {
		t.Errorf("fill calls = %d, want 8", rec.fills)
	}

	ps.Clear()
	if ps.Count() != 0 {
		t.Errorf("Count after Clear = %d, want 0", ps.Count())
	}
}
