// Package game is the top-level simulation context. It owns every
// component, runs them in a fixed order each frame, routes events between
// them and implements registry.Game so the platform can host it.
package game

import (
	"github.com/vovakirdan/tui-galaga/internal/appearance"
	"github.com/vovakirdan/tui-galaga/internal/attack"
	"github.com/vovakirdan/tui-galaga/internal/capture"
	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/enemy"
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/formation"
	"github.com/vovakirdan/tui-galaga/internal/player"
	"github.com/vovakirdan/tui-galaga/internal/registry"
	"github.com/vovakirdan/tui-galaga/internal/score"
)

// State is the game flow state.
type State uint8

const (
	StateStartStage State = iota
	StatePlaying
	StatePlayerDead
	StateWaitReady
	StateWaitReady2
	StateCapturing
	StateCaptured
	StateRecapturing
	StateStageClear
	StateGameOver
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateStartStage:
		return "StartStage"
	case StatePlaying:
		return "Playing"
	case StatePlayerDead:
		return "PlayerDead"
	case StateWaitReady:
		return "WaitReady"
	case StateWaitReady2:
		return "WaitReady2"
	case StateCapturing:
		return "Capturing"
	case StateCaptured:
		return "Captured"
	case StateRecapturing:
		return "Recapturing"
	case StateStageClear:
		return "StageClear"
	case StateGameOver:
		return "GameOver"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Frame counts for the timed states.
const (
	startStageFrames = 90
	playerDeadFrames = 60
	waitReadyFrames  = 60
	stageClearFrames = 60
	gameOverFrames   = 35 * 60 / 10
	capturedBanner   = 120
)

// Mode selects the rule set.
type Mode int

const (
	ModeNormal   Mode = iota // Limited lives, game over at zero
	ModePractice             // Lost ships are always replaced
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startStage stores the first stage set via CLI (zero based)
var startStageOverride = -1

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetStartStage overrides the first stage (1 based). Zero or less restores
// the configured value.
func SetStartStage(stage int) {
	if stage <= 0 {
		startStageOverride = -1
		return
	}
	startStageOverride = stage - 1
}

func init() {
	registry.Register("galaga", func() registry.Game { return New() })
	registry.Register("galaga_practice", func() registry.Game { return NewPractice() })
}

// Game is the simulation context.
type Game struct {
	mode Mode

	trig  *fixed.Trig
	rng   *fixed.RNG
	queue *event.Queue
	pad   *core.Pad

	formation  *formation.Formation
	enemies    *enemy.Manager
	appearance *appearance.Manager
	attack     *attack.Manager
	capture    *capture.Controller
	player     *player.Player
	score      *score.Holder
	effects    effects

	state          State
	count          int
	frame          uint64
	stage          int
	appearanceDone bool
	paused         bool
	fighterIndex   formation.Index
	recaptureIndex formation.Index

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.GalagaConfig
	difficulty *config.DifficultyManager
	env        *env

	// Per-game overrides of the CLI settings
	preset        config.DifficultyPreset
	startStageOpt int

	sounds    []event.PlaySe
	highScore uint32
	observer  func(event.Event)
}

// New creates a game in normal mode.
func New() *Game {
	return &Game{mode: ModeNormal, startStageOpt: -1}
}

// NewPractice creates a game in practice mode.
func NewPractice() *Game {
	return &Game{mode: ModePractice, startStageOpt: -1}
}

// Configure overrides the package-wide start stage (1 based) and difficulty
// preset for this game only, from the next Reset on. Zero stage or an empty
// preset keeps the package-wide value.
func (g *Game) Configure(stage int, preset string) {
	g.startStageOpt = -1
	if stage > 0 {
		g.startStageOpt = stage - 1
	}
	g.preset = ""
	if p, ok := config.ParsePreset(preset); ok {
		g.preset = p
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "galaga_practice"
	}
	return "galaga"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Galaga (Practice)"
	}
	return "Galaga"
}

// SetHighScore seeds the high score, usually from storage. It takes effect
// immediately and survives Reset.
func (g *Game) SetHighScore(high uint32) {
	g.highScore = max(g.highScore, high)
	if g.score != nil {
		g.score.RaiseHighScore(high)
	}
}

// HighScore returns the best score seen by this game.
func (g *Game) HighScore() uint32 {
	if g.score == nil {
		return g.highScore
	}
	return g.score.HighScore()
}

// Observe registers fn to see every event in delivery order.
func (g *Game) Observe(fn func(event.Event)) {
	g.observer = fn
}

// Sounds returns the sound effects requested during the last Step.
func (g *Game) Sounds() []event.PlaySe {
	return g.sounds
}

// Stage returns the current stage, zero based.
func (g *Game) Stage() int {
	return g.stage
}

// Phase returns the flow state.
func (g *Game) Phase() State {
	return g.state
}

// CaptureState returns the capture sequence phase.
func (g *Game) CaptureState() event.CaptureState {
	return g.capture.State()
}

// Lives returns the ships left, the one in play included.
func (g *Game) Lives() int {
	return g.player.Lives()
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadGalaga(configPath)
	if err != nil {
		cfg = config.DefaultGalagaConfig()
	}

	// Apply difficulty preset if set
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyGalagaPreset(&cfg, preset)
	}
	switch {
	case g.startStageOpt >= 0:
		cfg.Gameplay.StartStage = g.startStageOpt
	case startStageOverride >= 0:
		cfg.Gameplay.StartStage = startStageOverride
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.stage = max(cfg.Gameplay.StartStage, 0)

	if g.score != nil {
		g.highScore = max(g.highScore, g.score.HighScore())
	}

	g.trig = fixed.NewTrig()
	g.rng = fixed.NewRNG(runtime.Seed)
	g.queue = event.NewQueue()
	g.pad = core.NewPad()
	g.env = &env{g: g}

	g.formation = formation.New(g.trig)
	g.enemies = enemy.NewManager(g.trig, g.formation)
	g.appearance = appearance.New(g.rng)
	g.attack = attack.New(g.rng, g.attackConfig())
	g.capture = capture.New(g.queue)
	g.player = player.New(g.trig, max(cfg.Gameplay.Lives, 1))
	g.score = score.NewHolder(g.highScore)
	g.effects = effects{}

	g.frame = 0
	g.paused = false
	g.appearanceDone = false
	g.sounds = g.sounds[:0]

	g.state = StateStartStage
	g.count = 0
	g.playSe(event.ChBomb, event.SeCountStage)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateFinished) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.state != StateFinished {
		g.paused = !g.paused
	}

	g.sounds = g.sounds[:0]
	if g.paused || g.state == StateFinished {
		return core.StepResult{State: g.State()}
	}

	g.pad.Update(in)
	g.frame++

	g.player.Update(g.pad, g.env)
	g.player.UpdateShots()
	g.updateEnemies()
	g.queue.Drain(g.handleEvent)

	g.checkCollision()
	g.capture.Update(g.env)
	if g.capture.State() == event.Recapturing {
		_, flying := g.player.Escort()
		switch {
		case g.player.IsDual():
			g.capture.EndRecapture(true)
		case g.player.Active() && !flying:
			// The fighter came back as the only ship: no dual.
			g.capture.EndRecapture(false)
		}
	}
	g.queue.Drain(g.handleEvent)

	g.effects.update()
	g.updateState()

	return core.StepResult{State: g.State()}
}

func (g *Game) updateEnemies() {
	for _, req := range g.appearance.Update(g.enemies) {
		g.enemies.Spawn(req.Kind, req.Index, req.Traj(g.trig))
	}
	if !g.appearanceDone && g.appearance.Done() && g.state != StateStartStage {
		g.appearanceDone = true
		g.formation.DoneAppearance()
		g.attack.SetEnabled(true)
	}

	g.formation.Update()

	canCapture := g.capture.CanCaptureAttack() && !g.player.IsDual()
	if launch, ok := g.attack.Update(g.enemies, canCapture); ok {
		g.enemies.StartAttack(launch.Index, launch.Capture, g.env)
	}

	g.enemies.Update(g.env)
}

func (g *Game) updateState() {
	switch g.state {
	case StateStartStage:
		g.count++
		if g.count >= startStageFrames {
			var fighter *formation.Index
			if g.capture.State() == event.Captured {
				if idx, ok := g.capture.Owner(); ok {
					fighter = &idx
				}
			}
			g.startStage(fighter)
			g.state = StatePlaying
			g.count = 0
		}
	case StatePlaying:
		if g.appearanceDone && g.enemies.AliveCount() == 0 && g.enemies.NoShots() {
			g.state = StateStageClear
			g.count = 0
		}
	case StateCapturing, StateRecapturing:
	case StateCaptured:
		g.count++
	case StatePlayerDead:
		g.count++
		if g.count >= playerDeadFrames {
			g.state = StateWaitReady
			g.count = 0
		}
	case StateWaitReady:
		if g.attack.NoAttacker() {
			g.count++
			if g.count >= waitReadyFrames {
				g.nextPlayer()
			}
		}
	case StateWaitReady2:
		g.count++
		if g.count >= waitReadyFrames {
			g.player.SetShotEnabled(true)
			g.pauseAttack(false)
			g.state = StatePlaying
			g.count = 0
		}
	case StateStageClear:
		g.count++
		if g.count >= stageClearFrames {
			g.stage++
			g.state = StateStartStage
			g.count = 0
			g.playSe(event.ChBomb, event.SeCountStage)
		}
	case StateGameOver:
		g.count++
		if g.count >= gameOverFrames {
			g.state = StateFinished
		}
	}
}

// startStage restarts the stage components. fighter is the slot of a
// captured fighter that re-enters with the fleet.
func (g *Game) startStage(fighter *formation.Index) {
	g.enemies.Restart()
	g.formation.Restart()
	g.appearance.Restart(g.stage, fighter)
	g.attack.Restart(g.attackConfig())
	g.appearanceDone = false
}

func (g *Game) nextPlayer() {
	if g.mode == ModePractice {
		g.player.Restart()
	} else if !g.player.DecrementAndRestart() {
		g.pauseAttack(true)
		g.state = StateGameOver
		g.count = 0
		return
	}
	g.player.SetShotEnabled(false)
	g.state = StateWaitReady2
	g.count = 0
}

func (g *Game) pauseAttack(paused bool) {
	g.attack.Pause(paused)
	g.appearance.Pause(paused)
}

func (g *Game) attackConfig() attack.Config {
	a := g.cfg.Attack
	return attack.Config{
		Cooldown:     g.difficulty.Cooldown(a.Cooldown, g.stage),
		InitialWait:  a.InitialWait,
		MaxAttackers: g.difficulty.Attackers(a.MaxAttackers, g.stage),
	}
}

// shotSpeed is the enemy shot speed for the current stage.
func (g *Game) shotSpeed() int32 {
	s := g.cfg.Shots
	n := int32(max(s.MaxStage, 1))       //#nosec G115 -- small config value
	stage := int32(min(g.stage, int(n))) //#nosec G115 -- bounded by n
	lo, hi := int32(s.MinSpeed*fixed.One), int32(s.MaxSpeed*fixed.One)
	return fixed.Lerp(lo, hi, stage, n)
}

// playSe queues a sound outside the event flow; it is delivered with the
// next frame's events.
func (g *Game) playSe(ch event.Channel, sound event.Sound) {
	g.queue.Push(event.PlaySe{Channel: ch, Sound: sound})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.score == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.score.Score()),
		Stage:    g.stage + 1,
		Lives:    g.Lives(),
		GameOver: g.state == StateFinished,
		Paused:   g.paused,
	}
}
