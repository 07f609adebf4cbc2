package game

import (
	"math/rand"
	"time"
)

// Engine tuning constants
const (
	InfluenceRadius    = 150.0
	EdgeMargin         = 50.0
	SpawnMargin        = 100.0
	FragmentDamping    = 0.95
	TargetAttraction   = 50.0
	TargetSnapDist     = 20.0
	TargetHealDist     = 50.0
	TargetHealRate     = 0.5
	ConnectionDist     = 80.0
	ClickHealBoost     = 0.1
	ClickParticles     = 10
	WellParticles      = 15
	HealParticleChance = 0.1
	HealParticles      = 3
	SaveKey            = "progress"
)

// State is the session state machine.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateLevelComplete
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	}
	return "level_complete"
}

// Connection is a derived edge between two healed, nearby fragments,
// recomputed every tick. Indices refer into Engine.Fragments.
type Connection struct {
	From, To int
	Strength float64
}

// Engine owns the whole simulation for a session: fragments, gravity wells,
// the connection graph, the particle pool, and the state machine. It is
// single-threaded: the host calls SetPointer/Click from its input step and
// Update once per tick.
type Engine struct {
	Width, Height float64

	State        State
	Levels       []Level
	CurrentLevel int

	Fragments   []*MemoryFragment
	Wells       []GravityWell
	Connections []Connection
	Targets     []Vec2
	Particles   *ParticleSystem

	// Pointer is the position sampled at the start of the current tick;
	// stable for the whole tick regardless of input timing.
	Pointer  Vec2
	Progress float64

	pointerInput  Vec2
	pendingClicks []Vec2

	dispatcher *Dispatcher
	store      Store
	rng        *rand.Rand
}

// NewEngine builds a session. The saved level index is restored through the
// injected store; a missing or corrupt save falls back to level 0.
func NewEngine(width, height float64, store Store, rng *rand.Rand) *Engine {
	e := &Engine{
		Width:      width,
		Height:     height,
		State:      StateMenu,
		Levels:     DefaultLevels(),
		Particles:  NewParticleSystem(rng),
		dispatcher: NewDispatcher(),
		store:      store,
		rng:        rng,
	}
	saved := store.Load(SaveKey, SaveData{})
	if saved.CurrentLevel >= 0 && saved.CurrentLevel < len(e.Levels) {
		e.CurrentLevel = saved.CurrentLevel
	}
	e.Pointer = Vec2{width / 2, height / 2}
	e.pointerInput = e.Pointer
	e.dispatcher.Emit(Event{Type: EventInitialized})
	return e
}

// Subscribe registers a UI callback for one event type.
func (e *Engine) Subscribe(t EventType, fn Handler) {
	e.dispatcher.Subscribe(t, fn)
}

// SetPointer records the latest pointer position. It is applied at the next
// tick boundary.
func (e *Engine) SetPointer(x, y float64) {
	e.pointerInput = Vec2{x, y}
}

// Click queues a well-creation request for the next tick.
func (e *Engine) Click(x, y float64) {
	e.pendingClicks = append(e.pendingClicks, Vec2{x, y})
}

// StartLevel resets the playfield for the given level and begins play.
// Indices past the catalog wrap to level 0; negative indices clamp to 0.
func (e *Engine) StartLevel(index int) {
	if index < 0 || index >= len(e.Levels) {
		index = 0
	}
	e.CurrentLevel = index
	level := e.Levels[index]

	e.Fragments = e.Fragments[:0]
	e.Wells = e.Wells[:0]
	e.Connections = e.Connections[:0]
	e.pendingClicks = e.pendingClicks[:0]
	e.Particles.Clear()
	e.Progress = 0

	e.Targets = Layout(level.Layout, level.FragmentCount, e.Width, e.Height, e.rng)
	for i := 0; i < level.FragmentCount; i++ {
		x := SpawnMargin + e.rng.Float64()*(e.Width-2*SpawnMargin)
		y := SpawnMargin + e.rng.Float64()*(e.Height-2*SpawnMargin)
		size := 30 + e.rng.Float64()*30
		e.Fragments = append(e.Fragments,
			NewMemoryFragment(x, y, size, level.BaseCorruption, level.ColorScheme, float64(i), e.rng))
	}

	e.State = StatePlaying
	e.dispatcher.Emit(Event{Type: EventLevelStarted, Level: index})
}

// CreateGravityWell spawns a well at (x, y) and boosts healing on fragments
// inside the influence radius around it. Only meaningful while playing.
func (e *Engine) CreateGravityWell(x, y float64) {
	if e.State != StatePlaying {
		return
	}
	e.Wells = append(e.Wells, NewGravityWell(x, y))
	e.Particles.Emit(x, y, WellParticles, e.levelColor())

	click := Vec2{x, y}
	for _, f := range e.Fragments {
		if f.Pos.Dist(click) < InfluenceRadius {
			f.AccelerateHealing(ClickHealBoost)
			e.Particles.Emit(f.Pos.X, f.Pos.Y, ClickParticles, f.CurrentColor())
		}
	}
}

// Update advances one tick. Outside PLAYING it does nothing, so pausing
// freezes physics and healing while the host keeps drawing the last frame.
func (e *Engine) Update(dt float64) {
	if e.State != StatePlaying {
		return
	}

	e.Pointer = e.pointerInput
	for _, c := range e.pendingClicks {
		e.CreateGravityWell(c.X, c.Y)
	}
	e.pendingClicks = e.pendingClicks[:0]

	e.updateWells(dt)
	e.updateFragments(dt)
	e.rebuildConnections()

	if e.checkCompletion() {
		e.State = StateLevelComplete
		e.dispatcher.Emit(Event{Type: EventLevelComplete, Level: e.CurrentLevel})
	}

	e.Particles.Update(dt)

	e.Progress = e.computeProgress()
	e.dispatcher.Emit(Event{Type: EventProgressUpdate, Progress: e.Progress})
}

// updateWells decays lifetimes and compacts out expired wells.
func (e *Engine) updateWells(dt float64) {
	alive := e.Wells[:0]
	for i := range e.Wells {
		w := e.Wells[i]
		w.Lifetime -= dt
		if !w.Expired() {
			alive = append(alive, w)
		}
	}
	e.Wells = alive
}

// updateFragments applies well attraction and target-seeking, integrates the
// drift anchors, and runs each fragment's own animation/healing step.
func (e *Engine) updateFragments(dt float64) {
	for i, f := range e.Fragments {
		for j := range e.Wells {
			f.Vel = f.Vel.Add(e.Wells[j].ForceOn(f.Pos).Scale(dt))
		}

		if i < len(e.Targets) {
			toTarget := e.Targets[i].Sub(f.Pos)
			dist := toTarget.Len()
			if dist > TargetSnapDist {
				f.Vel = f.Vel.Add(toTarget.Normalize().Scale(TargetAttraction * dt))
			}
			if dist < TargetHealDist {
				f.CorruptionLevel = Clamp(f.CorruptionLevel-TargetHealRate*dt, 0, 1)
				if e.rng.Float64() < HealParticleChance {
					e.Particles.Emit(f.Pos.X, f.Pos.Y, HealParticles, f.CurrentColor())
				}
			}
		}

		f.Base = f.Base.Add(f.Vel.Scale(dt))
		f.Vel = f.Vel.Scale(FragmentDamping)
		f.Base.X = Clamp(f.Base.X, EdgeMargin, e.Width-EdgeMargin)
		f.Base.Y = Clamp(f.Base.Y, EdgeMargin, e.Height-EdgeMargin)

		f.Update(dt, e.Pointer, InfluenceRadius)
	}
}

// rebuildConnections recomputes the edge list from scratch: every unordered
// pair of healed fragments closer than ConnectionDist.
func (e *Engine) rebuildConnections() {
	e.Connections = e.Connections[:0]
	for i := 0; i < len(e.Fragments); i++ {
		for j := i + 1; j < len(e.Fragments); j++ {
			a, b := e.Fragments[i], e.Fragments[j]
			if !a.Healed() || !b.Healed() {
				continue
			}
			if a.Pos.Dist(b.Pos) >= ConnectionDist {
				continue
			}
			strength := 1 - max(a.CorruptionLevel, b.CorruptionLevel)
			e.Connections = append(e.Connections, Connection{From: i, To: j, Strength: strength})
		}
	}
}

// checkCompletion reports whether every fragment is healed and the
// connection graph forms a single component spanning all of them.
func (e *Engine) checkCompletion() bool {
	if len(e.Fragments) == 0 {
		return false
	}
	for _, f := range e.Fragments {
		if !f.Healed() {
			return false
		}
	}

	adj := make(map[int][]int, len(e.Fragments))
	for _, c := range e.Connections {
		adj[c.From] = append(adj[c.From], c.To)
		adj[c.To] = append(adj[c.To], c.From)
	}

	visited := make([]bool, len(e.Fragments))
	stack := []int{0}
	visited[0] = true
	reached := 1
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, m := range adj[n] {
			if !visited[m] {
				visited[m] = true
				reached++
				stack = append(stack, m)
			}
		}
	}
	return reached == len(e.Fragments)
}

// computeProgress blends mean healing with connection-graph density.
func (e *Engine) computeProgress() float64 {
	n := len(e.Fragments)
	if n == 0 {
		return 0
	}
	healed := 0.0
	for _, f := range e.Fragments {
		healed += 1 - f.CorruptionLevel
	}
	healed /= float64(n)

	connectivity := 0.0
	if maxEdges := n * (n - 1) / 2; maxEdges > 0 {
		connectivity = float64(len(e.Connections)) / float64(maxEdges)
	}
	return Clamp(0.5*healed+0.5*connectivity, 0, 1)
}

// TogglePause flips between PLAYING and PAUSED; a no-op in any other state.
func (e *Engine) TogglePause() {
	switch e.State {
	case StatePlaying:
		e.State = StatePaused
		e.dispatcher.Emit(Event{Type: EventPaused})
	case StatePaused:
		e.State = StatePlaying
		e.dispatcher.Emit(Event{Type: EventResumed})
	}
}

// NextLevel advances to the next level (wrapping past the catalog end) and
// persists the new index.
func (e *Engine) NextLevel() {
	next := e.CurrentLevel + 1
	if next >= len(e.Levels) {
		next = 0
	}
	e.StartLevel(next)
	e.saveProgress()
}

// RestartLevel replays the current level from scratch.
func (e *Engine) RestartLevel() {
	e.StartLevel(e.CurrentLevel)
}

// ReturnToMenu abandons the active level and goes back to the menu.
func (e *Engine) ReturnToMenu() {
	e.Fragments = e.Fragments[:0]
	e.Wells = e.Wells[:0]
	e.Connections = e.Connections[:0]
	e.Targets = nil
	e.pendingClicks = e.pendingClicks[:0]
	e.Particles.Clear()
	e.Progress = 0
	e.State = StateMenu
	e.dispatcher.Emit(Event{Type: EventReturnedToMenu})
}

// Level returns the active level definition.
func (e *Engine) Level() Level {
	return e.Levels[e.CurrentLevel]
}

func (e *Engine) levelColor() RGB {
	scheme := e.Level().ColorScheme
	if len(scheme) == 0 {
		return RGB{255, 255, 255}
	}
	return scheme[0]
}

func (e *Engine) saveProgress() {
	e.store.Save(SaveKey, SaveData{
		CurrentLevel: e.CurrentLevel,
		Timestamp:    time.Now().Unix(),
	})
}
