package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestCircleLayout(t *testing.T) {
	const (
		cx, cy = 640.0, 360.0
		radius = 200.0
	)
	for _, count := range []int{0, 1, 5, 12} {
		pts := CircleLayout(count, cx, cy, radius)
		if len(pts) != count {
			t.Fatalf("count %d: got %d points", count, len(pts))
		}
		center := Vec2{cx, cy}
		for i, p := range pts {
			if d := p.Dist(center); math.Abs(d-radius) > 1e-9 {
				t.Errorf("count %d: point %d at distance %v, want %v", count, i, d, radius)
			}
		}
	}
}

func TestSpiralLayout(t *testing.T) {
	pts := SpiralLayout(8, 640, 360)
	if len(pts) != 8 {
		t.Fatalf("got %d points, want 8", len(pts))
	}
	center := Vec2{640, 360}
	for i, p := range pts {
		want := 50 + float64(i)*25
		if d := p.Dist(center); math.Abs(d-want) > 1e-9 {
			t.Errorf("point %d at radius %v, want %v", i, d, want)
		}
	}
}

func TestGridLayout(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		wantCols int
	}{
		{"Perfect square", 9, 3},
		{"One over square", 10, 4},
		{"Two", 2, 2},
		{"Single", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := GridLayout(tt.count, 1280, 720)
			if len(pts) != tt.count {
				t.Fatalf("got %d points, want %d", len(pts), tt.count)
			}
			xs := map[float64]bool{}
			for _, p := range pts {
				xs[p.X] = true
			}
			cols := tt.wantCols
			if tt.count < cols {
				cols = tt.count
			}
			if len(xs) != cols {
				t.Errorf("distinct columns = %d, want %d", len(xs), cols)
			}
		})
	}
	if pts := GridLayout(0, 1280, 720); len(pts) != 0 {
		t.Errorf("count 0: got %d points", len(pts))
	}
}

func TestConstellationLayout(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pts := ConstellationLayout(5, 1280, 720, rng)
	if len(pts) != 5 {
		t.Fatalf("got %d points, want 5", len(pts))
	}
	for _, p := range pts {
		if p.X < ConstellationMargin || p.X > 1280-ConstellationMargin ||
			p.Y < ConstellationMargin || p.Y > 720-ConstellationMargin {
			t.Errorf("point %v outside margins", p)
		}
	}
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if d := pts[i].Dist(pts[j]); d < ConstellationMinDist {
				t.Errorf("points %d and %d only %v apart", i, j, d)
			}
		}
	}
}

func TestConstellationAlwaysYieldsCount(t *testing.T) {
	// Cramming 40 points into a space that cannot hold them all at minimum
	// separation must still produce exactly 40 (overlap accepted after the
	// attempt cap).
	rng := rand.New(rand.NewSource(2))
	pts := ConstellationLayout(40, 400, 400, rng)
	if len(pts) != 40 {
		t.Errorf("got %d points, want 40", len(pts))
	}
}

func TestMandalaLayout(t *testing.T) {
	for _, count := range []int{0, 2, 9, 20} {
		pts := MandalaLayout(count, 640, 360)
		if len(pts) != count {
			t.Fatalf("count %d: got %d points", count, len(pts))
		}
		center := Vec2{640, 360}
		for i, p := range pts {
			want := 80 + float64(i%MandalaRings)*80
			if d := p.Dist(center); math.Abs(d-want) > 1e-9 {
				t.Errorf("count %d: point %d at radius %v, want %v", count, i, d, want)
			}
		}
	}
}

func TestLayoutDispatch(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, lt := range []LayoutType{LayoutCircle, LayoutSpiral, LayoutGrid, LayoutConstellation, LayoutMandala} {
		t.Run(lt.String(), func(t *testing.T) {
			pts := Layout(lt, 6, 1280, 720, rng)
			if len(pts) != 6 {
				t.Errorf("got %d points, want 6", len(pts))
			}
		})
	}
}

func TestGeneratePatternDeterministic(t *testing.T) {
	a := GeneratePattern(3, 40)
	b := GeneratePattern(3, 40)
	if a.Type != b.Type {
		t.Fatalf("same seed produced types %v and %v", a.Type, b.Type)
	}
	if len(a.Primitives) != len(b.Primitives) {
		t.Fatalf("same seed produced %d and %d primitives", len(a.Primitives), len(b.Primitives))
	}
	for i := range a.Primitives {
		pa, pb := a.Primitives[i], b.Primitives[i]
		if pa.Kind != pb.Kind || pa.Radius != pb.Radius || pa.Layer != pb.Layer {
			t.Errorf("primitive %d differs between identical seeds", i)
		}
	}
}

func TestGeneratePatternShapes(t *testing.T) {
	seen := map[PatternType]bool{}
	for seed := 0; seed < 50; seed++ {
		p := GeneratePattern(float64(seed), 40)
		seen[p.Type] = true
		if len(p.Primitives) == 0 {
			t.Fatalf("seed %d: empty pattern", seed)
		}
		for i, prim := range p.Primitives {
			if prim.Layer < 0 || prim.Layer > 1 {
				t.Errorf("seed %d primitive %d: layer %v outside [0, 1]", seed, i, prim.Layer)
			}
			if prim.Width <= 0 {
				t.Errorf("seed %d primitive %d: non-positive width", seed, i)
			}
		}
	}
	for _, pt := range []PatternType{PatternGeometric, PatternOrganic, PatternCrystalline} {
		if !seen[pt] {
			t.Errorf("50 seeds never produced a %v pattern", pt)
		}
	}
}
