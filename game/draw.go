package game

// Draw renders the playfield onto scene and the particle pool onto glow.
// The host composites glow additively over scene. Pure side effect: no
// simulation state changes here, so the last frame keeps rendering while
// paused.
func (e *Engine) Draw(scene, glow Canvas) {
	for _, c := range e.Connections {
		a, b := e.Fragments[c.From], e.Fragments[c.To]
		col := ScaleRGB(RGB{50, 100, 150}, c.Strength)
		width := 3 * c.Strength
		if width < 1 {
			width = 1
		}
		scene.Line(a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y, width, col.RGBA(1))
	}

	for i := range e.Wells {
		w := &e.Wells[i]
		fade := w.Lifetime / w.MaxLifetime
		scene.SetAlpha(fade * 0.5)
		scene.StrokeCircle(w.Pos.X, w.Pos.Y, w.Radius*(1-fade*0.3), 1, RGB{120, 120, 200}.RGBA(1))
		scene.SetAlpha(1)
	}

	for _, f := range e.Fragments {
		f.Draw(scene)
	}

	e.Particles.Draw(glow)

	if e.State == StatePlaying {
		scene.StrokeCircle(e.Pointer.X, e.Pointer.Y, InfluenceRadius, 1, RGB{50, 50, 100}.RGBA(1))
	}
}
