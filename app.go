package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/memory-drift/game"
)

// App wires the simulation engine to Ebitengine: input sampling, frame
// timing, HUD, and the additive particle layer.
type App struct {
	cfg        Config
	engine     *game.Engine
	background *ebiten.Image
	glowLayer  *ebiten.Image
	last       time.Time
}

func NewApp(cfg Config, engine *game.Engine, seed int64) *App {
	return &App{
		cfg:        cfg,
		engine:     engine,
		background: generateBackground(cfg.Width, cfg.Height, seed),
		glowLayer:  ebiten.NewImage(cfg.Width, cfg.Height),
		last:       time.Now(),
	}
}

// Update is called each tick by Ebitengine.
func (a *App) Update() error {
	now := time.Now()
	dt := now.Sub(a.last).Seconds()
	a.last = now
	if dt > 0.1 {
		dt = 0.1 // ignore long stalls (window drag, suspend)
	}

	mx, my := ebiten.CursorPosition()
	a.engine.SetPointer(float64(mx), float64(my))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && a.engine.State == game.StatePlaying {
		a.engine.Click(float64(mx), float64(my))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch a.engine.State {
		case game.StateMenu:
			a.engine.StartLevel(a.engine.CurrentLevel)
		case game.StateLevelComplete:
			a.engine.NextLevel()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		switch a.engine.State {
		case game.StatePlaying, game.StatePaused:
			a.engine.TogglePause()
		case game.StateMenu:
			return ebiten.Termination
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && a.engine.State == game.StatePlaying {
		a.engine.RestartLevel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && a.engine.State != game.StateMenu {
		a.engine.ReturnToMenu()
	}

	a.engine.Update(dt)
	return nil
}

// Draw is called each frame by Ebitengine.
func (a *App) Draw(screen *ebiten.Image) {
	screen.DrawImage(a.background, nil)

	if a.engine.State == game.StateMenu {
		a.drawMenu(screen)
		return
	}

	a.glowLayer.Clear()
	a.engine.Draw(newCanvas(screen), newCanvas(a.glowLayer))

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendLighter
	screen.DrawImage(a.glowLayer, op)

	a.drawHUD(screen)

	switch a.engine.State {
	case game.StatePaused:
		a.drawOverlay(screen, 0.5, color.RGBA{0, 0, 0, 255})
		center(screen, "PAUSED  -  ESC to resume", a.cfg.Height/2)
	case game.StateLevelComplete:
		a.drawOverlay(screen, 0.25, color.RGBA{255, 255, 255, 255})
		center(screen, "Memory Restored!  -  SPACE to continue", a.cfg.Height/2)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

func (a *App) drawMenu(screen *ebiten.Image) {
	center(screen, "M E M O R Y   D R I F T", a.cfg.Height/3)
	lines := []string{
		"Help the AI restore its memories",
		"Move the pointer to soothe fragments, click to open gravity wells",
		"Heal every fragment and link them all together",
		"",
		"SPACE  begin",
		"ESC    quit",
	}
	y := a.cfg.Height / 2
	for _, line := range lines {
		center(screen, line, y)
		y += 20
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	barWidth, barHeight := 300, 12
	x := (a.cfg.Width - barWidth) / 2
	y := a.cfg.Height - 40

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(barWidth), float32(barHeight),
		color.RGBA{50, 50, 50, 255}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(float64(barWidth)*a.engine.Progress), float32(barHeight),
		color.RGBA{100, 200, 100, 255}, false)

	label := fmt.Sprintf("Memory %d", a.engine.CurrentLevel+1)
	ebitenutil.DebugPrintAt(screen, label, a.cfg.Width/2-len(label)*3, y-20)
}

func (a *App) drawOverlay(screen *ebiten.Image, alpha float64, col color.RGBA) {
	c := color.RGBA{
		R: uint8(float64(col.R) * alpha),
		G: uint8(float64(col.G) * alpha),
		B: uint8(float64(col.B) * alpha),
		A: uint8(255 * alpha),
	}
	vector.DrawFilledRect(screen, 0, 0, float32(a.cfg.Width), float32(a.cfg.Height), c, false)
}

func center(screen *ebiten.Image, text string, y int) {
	w := screen.Bounds().Dx()
	ebitenutil.DebugPrintAt(screen, text, w/2-len(text)*3, y)
}
