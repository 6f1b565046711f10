package arena

import (
	"time"

	"github.com/polygonkind/arena/internal/config"
	"github.com/polygonkind/arena/internal/core"
	"github.com/polygonkind/arena/internal/registry"
)

// Game adapts the arena simulation to the platform's game interface. The
// world itself knows nothing about screens or input frames; this layer maps
// platform actions onto the discrete action space and ticks the world at the
// platform's fixed rate.
type Game struct {
	style   ControlStyle
	runtime core.RuntimeConfig
	cfg     config.ArenaConfig
	world   *World

	tick     uint64
	paused   bool
	gameOver bool

	minScreenW, minScreenH int
	screenTooSmall         bool
}

// Package-level knobs set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates an arena game with the rotate-and-thrust control style.
func New() *Game {
	return &Game{style: StylePilot}
}

// NewPad creates an arena game with the four-directional control style.
func NewPad() *Game {
	return &Game{style: StylePad}
}

func init() {
	registry.Register("arena", func() registry.Game {
		return New()
	})
	registry.Register("arena_pad", func() registry.Game {
		return NewPad()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.style == StylePad {
		return "arena_pad"
	}
	return "arena"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.style == StylePad {
		return "Arena (Pad Controls)"
	}
	return "Arena"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadArena(configPath)
	if err != nil {
		cfg = config.DefaultArenaConfig()
	}
	if difficultyPreset != "" {
		config.ApplyArenaPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.world = NewWorld(cfg, seed)
	g.world.Reset(cfg.Difficulty.Initial)

	g.tick = 0
	g.paused = false
	g.gameOver = false

	g.minScreenW = 40
	g.minScreenH = 20
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.world.ApplyAction(g.style, g.actionFor(in))

	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.world.Update(1.0 / float64(tickRate))

	if !g.world.Alive() {
		g.gameOver = true
	}
	return core.StepResult{State: g.State()}
}

// actionFor maps a platform input frame onto the world's discrete action
// space for the active control style. Shooting wins over movement when both
// are held, matching the single-action-per-tick contract.
func (g *Game) actionFor(in core.InputFrame) int {
	if g.style == StylePad {
		switch {
		case in.Has(core.ActionShoot):
			return PadShoot
		case in.Has(core.ActionUp):
			return PadUp
		case in.Has(core.ActionDown):
			return PadDown
		case in.Has(core.ActionLeft):
			return PadLeft
		case in.Has(core.ActionRight):
			return PadRight
		}
		return PadNone
	}
	switch {
	case in.Has(core.ActionShoot):
		return PilotShoot
	case in.Has(core.ActionTurnLeft):
		return PilotLeft
	case in.Has(core.ActionTurnRight):
		return PilotRight
	case in.Has(core.ActionForward):
		return PilotForward
	}
	return PilotNone
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = int(g.world.Score())
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// World exposes the underlying simulation, mainly for training harnesses
// that want raw observations instead of rendered frames.
func (g *Game) World() *World {
	return g.world
}

// RunStats reports the difficulty reached and the run duration in seconds,
// for run-history persistence.
func (g *Game) RunStats() (difficulty, durationSecs int) {
	if g.world == nil {
		return 0, 0
	}
	return g.world.Difficulty(), int(g.world.Now() / 1000)
}
