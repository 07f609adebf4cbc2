package game

import "testing"

func TestEngineDraw(t *testing.T) {
	e := newTestEngine()
	e.StartLevel(0)
	e.CreateGravityWell(640, 360)
	e.Update(0.016)

	scene := &recordingCanvas{}
	glow := &recordingCanvas{}
	e.Draw(scene, glow)

	total := scene.fills + scene.strokes + scene.lines + scene.polylines
	if total == 0 {
		t.Fatal("scene draw produced no primitive calls")
	}
	if scene.strokes == 0 {
		t.Error("expected the influence ring and well ring to be stroked")
	}
	if glow.fills == 0 {
		t.Error("glow layer got no particle draws")
	}
}

func TestDrawIsSideEffectOnly(t *testing.T) {
	e := newTestEngine()
	e.StartLevel(0)
	e.Update(0.016)

	before := make([]float64, len(e.Fragments))
	for i, f := range e.Fragments {
		before[i] = f.CorruptionLevel
	}
	particles := e.Particles.Count()

	e.Draw(&recordingCanvas{}, &recordingCanvas{})

	for i, f := range e.Fragments {
		if f.CorruptionLevel != before[i] {
			t.Fatalf("fragment %d mutated by Draw", i)
		}
	}
	if e.Particles.Count() != particles {
		t.Error("particle pool mutated by Draw")
	}
}

func TestConnectionRendering(t *testing.T) {
	e := newTestEngine()
	e.StartLevel(0)
	placeFragments(e,
		[]float64{0.1, 0.1},
		[]Vec2{{100, 100}, {150, 100}})
	e.Update(0)

	scene := &recordingCanvas{}
	e.Draw(scene, &recordingCanvas{})
	if scene.lines == 0 {
		t.Error("connected fragments should be drawn with a link line")
	}
}
