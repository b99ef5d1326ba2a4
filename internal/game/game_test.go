package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/formation"
	"github.com/vovakirdan/tui-galaga/internal/player"
	"github.com/vovakirdan/tui-galaga/internal/registry"
)

func newTestGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")
	SetStartStage(0)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: seed})
	return g
}

func empty() core.InputFrame {
	return core.NewInputFrame()
}

func drain(g *Game) {
	g.queue.Drain(g.handleEvent)
}

func hasSound(g *Game, sound event.Sound) bool {
	for _, s := range g.Sounds() {
		if s.Sound == sound {
			return true
		}
	}
	return false
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		game  *Game
		id    string
		title string
	}{
		{New(), "galaga", "Galaga"},
		{NewPractice(), "galaga_practice", "Galaga (Practice)"},
	}

	for _, tt := range tests {
		if tt.game.ID() != tt.id {
			t.Errorf("ID() = %q, expected %q", tt.game.ID(), tt.id)
		}
		if tt.game.Title() != tt.title {
			t.Errorf("Title() = %q, expected %q", tt.game.Title(), tt.title)
		}
		if !registry.Exists(tt.id) {
			t.Errorf("registry.Exists(%q) = false, expected true", tt.id)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := newTestGame(t, New(), seed)
		for i := 0; i < 3000; i++ {
			if g.Step(Autopilot(g)).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run(12345)
	snap2 := run(12345)
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Frame != snap2.Frame {
		t.Errorf("Determinism failed: frames differ. Run1=%d, Run2=%d", snap1.Frame, snap2.Frame)
	}

	other := run(54321)
	if other.RNGState == snap1.RNGState {
		t.Error("different seeds ended with the same RNG state")
	}
}

func TestAutopilotScores(t *testing.T) {
	g := newTestGame(t, New(), 7)
	for i := 0; i < 3000; i++ {
		g.Step(Autopilot(g))
	}
	if g.State().Score == 0 {
		t.Error("autopilot scored nothing in 3000 frames")
	}
}

func TestStartStageSpawnsFleet(t *testing.T) {
	g := newTestGame(t, New(), 1)
	kills := 0
	g.Observe(func(e event.Event) {
		if _, ok := e.(event.EnemyExplosion); ok {
			kills++
		}
	})

	if !hasSoundAfterStep(g, event.SeCountStage) {
		t.Error("no stage count sound on the first frame")
	}
	for i := 1; i < startStageFrames; i++ {
		g.Step(empty())
	}
	if g.Phase() != StatePlaying {
		t.Fatalf("Phase() = %v after %d frames, expected Playing", g.Phase(), startStageFrames)
	}

	for i := 0; i < 5000 && !g.appearanceDone; i++ {
		g.Step(empty())
	}
	if !g.appearanceDone {
		t.Fatal("appearance never finished")
	}
	if total := g.enemies.AliveCount() + kills; total != 40 {
		t.Errorf("alive + destroyed = %d, expected 40", total)
	}
	if !g.attack.Enabled() {
		t.Error("attacks not enabled after appearance")
	}
}

func hasSoundAfterStep(g *Game, sound event.Sound) bool {
	g.Step(empty())
	return hasSound(g, sound)
}

func TestPauseFreezes(t *testing.T) {
	g := newTestGame(t, New(), 3)
	for i := 0; i < 100; i++ {
		g.Step(empty())
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("State().Paused = false after pause")
	}

	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(empty())
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("state changed while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("State().Paused = true after resuming")
	}
}

func TestNextPlayer(t *testing.T) {
	tests := []struct {
		name   string
		game   *Game
		deaths int
		lives  int
		phase  State
	}{
		{"normal first death", New(), 1, 2, StateWaitReady2},
		{"normal last ship", New(), 3, 0, StateGameOver},
		{"practice", NewPractice(), 5, 3, StateWaitReady2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.game, 1)
			for i := 0; i < tt.deaths; i++ {
				g.nextPlayer()
			}
			if g.Lives() != tt.lives {
				t.Errorf("Lives() = %d, expected %d", g.Lives(), tt.lives)
			}
			if g.Phase() != tt.phase {
				t.Errorf("Phase() = %v, expected %v", g.Phase(), tt.phase)
			}
		})
	}
}

func TestDeadPlayerFlow(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.state = StatePlaying
	g.handleEvent(event.DeadPlayer{})
	if g.Phase() != StatePlayerDead {
		t.Fatalf("Phase() = %v, expected PlayerDead", g.Phase())
	}

	for i := 0; i < playerDeadFrames; i++ {
		g.updateState()
	}
	if g.Phase() != StateWaitReady {
		t.Fatalf("Phase() = %v, expected WaitReady", g.Phase())
	}

	for i := 0; i < waitReadyFrames; i++ {
		g.updateState()
	}
	if g.Phase() != StateWaitReady2 || g.Lives() != 2 {
		t.Fatalf("Phase() = %v with %d lives, expected WaitReady2 with 2", g.Phase(), g.Lives())
	}

	for i := 0; i < waitReadyFrames; i++ {
		g.updateState()
	}
	if g.Phase() != StatePlaying {
		t.Errorf("Phase() = %v, expected Playing", g.Phase())
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.state = StateGameOver
	for i := 0; i < gameOverFrames; i++ {
		g.updateState()
	}
	if !g.State().GameOver {
		t.Fatal("State().GameOver = false after the game over banner")
	}

	g.score.Add(1200)
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.State().GameOver || g.Phase() != StateStartStage {
		t.Errorf("Phase() = %v after restart, expected StartStage", g.Phase())
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d after restart, expected 0", g.State().Score)
	}
	if g.HighScore() != 1200 {
		t.Errorf("HighScore() = %d, expected 1200", g.HighScore())
	}
}

func TestExtendAddsShip(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.sounds = g.sounds[:0]
	g.queue.Clear()

	g.queue.Push(event.AddScore{Points: 20000})
	drain(g)
	if g.Lives() != 4 {
		t.Errorf("Lives() = %d, expected 4", g.Lives())
	}
	if !hasSound(g, event.SeExtendShip) {
		t.Error("no extend sound")
	}
}

func TestSetHighScore(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.SetHighScore(5000)
	g.SetHighScore(300)
	if g.HighScore() != 5000 {
		t.Errorf("HighScore() = %d, expected 5000", g.HighScore())
	}
	g.Reset(g.runtime)
	if g.HighScore() != 5000 {
		t.Errorf("HighScore() after Reset = %d, expected 5000", g.HighScore())
	}
}

func TestConfigureOverridesStartStage(t *testing.T) {
	g := New()
	g.Configure(4, "hard")
	newTestGame(t, g, 1)
	if g.Stage() != 3 {
		t.Errorf("Stage() = %d, expected 3", g.Stage())
	}
	if st := g.State(); st.Stage != 4 || st.Lives != g.Lives() {
		t.Errorf("State() = %+v, expected stage 4 with %d lives", st, g.Lives())
	}

	SetStartStage(2)
	defer SetStartStage(0)
	g.Configure(0, "")
	g.Reset(g.runtime)
	if g.Stage() != 1 {
		t.Errorf("Stage() after clearing the override = %d, expected 1", g.Stage())
	}
}

func TestShotSpeed(t *testing.T) {
	tests := []struct {
		stage    int
		expected int32
	}{
		{0, 5 * fixed.One / 2},
		{32, 5*fixed.One/2 + (3*fixed.One/2)*32/64},
		{64, 4 * fixed.One},
		{200, 4 * fixed.One},
	}

	g := newTestGame(t, New(), 1)
	for _, tt := range tests {
		g.stage = tt.stage
		if got := g.shotSpeed(); got != tt.expected {
			t.Errorf("shotSpeed() at stage %d = %d, expected %d", tt.stage, got, tt.expected)
		}
	}
}

var (
	owlIndex     = formation.Index{X: 4, Y: 1}
	fighterIndex = formation.Index{X: 4, Y: 0}
)

// captureShip runs the events of a successful capture by the owl at
// owlIndex, ending with the next ship in play.
func captureShip(t *testing.T, g *Game) {
	t.Helper()
	g.state = StatePlaying
	g.capture.StartCaptureAttack(owlIndex)
	g.queue.Push(event.CapturePlayer{Pos: fixed.V(112, 200)})
	drain(g)
	if g.Phase() != StateCapturing || g.CaptureState() != event.Capturing {
		t.Fatalf("Phase() = %v, CaptureState() = %v, expected Capturing/Capturing", g.Phase(), g.CaptureState())
	}
	if g.player.State() != player.Capturing {
		t.Fatalf("player State() = %v, expected Capturing", g.player.State())
	}

	g.queue.Push(event.SpawnCapturedFighter{Pos: fixed.V(112, 184), Index: fighterIndex})
	g.queue.Push(event.CapturePlayerCompleted{})
	drain(g)
	if g.Phase() != StateCaptured || g.CaptureState() != event.Captured {
		t.Fatalf("Phase() = %v, CaptureState() = %v, expected Captured/Captured", g.Phase(), g.CaptureState())
	}
	if !g.enemies.IsLiveAt(fighterIndex) {
		t.Fatal("captured fighter not spawned")
	}
	if owner, ok := g.capture.Owner(); !ok || owner != fighterIndex {
		t.Errorf("Owner() = %v, %v, expected the fighter slot", owner, ok)
	}

	g.queue.Push(event.CaptureSequenceEnded{})
	drain(g)
	if g.Phase() != StateWaitReady2 || g.Lives() != 2 {
		t.Fatalf("Phase() = %v with %d lives, expected WaitReady2 with 2", g.Phase(), g.Lives())
	}
	g.state = StatePlaying
}

func TestCaptureAndRecapture(t *testing.T) {
	g := newTestGame(t, New(), 1)
	captureShip(t, g)
	// Keep the arena from clearing the stage.
	g.enemies.SpawnInFormation(event.Bee, formation.Index{X: 0, Y: 5})

	g.sounds = g.sounds[:0]
	g.queue.Push(event.RecapturePlayer{Index: fighterIndex})
	drain(g)
	if g.Phase() != StateRecapturing || g.CaptureState() != event.Recapturing {
		t.Fatalf("Phase() = %v, CaptureState() = %v, expected Recapturing/Recapturing", g.Phase(), g.CaptureState())
	}
	if g.enemies.IsLiveAt(fighterIndex) {
		t.Error("rescued fighter still in the fleet")
	}
	if _, ok := g.player.Escort(); !ok {
		t.Error("no escort flying to the ship")
	}
	if !hasSound(g, event.SeRecapture) {
		t.Error("no recapture jingle")
	}

	// Let the escort dock.
	for i := 0; i < 1000 && !g.player.IsDual(); i++ {
		g.Step(empty())
	}
	if !g.player.IsDual() {
		t.Fatal("ship never became dual")
	}
	if g.CaptureState() != event.Dual {
		t.Errorf("CaptureState() = %v, expected Dual", g.CaptureState())
	}
	if g.Phase() != StatePlaying {
		t.Errorf("Phase() = %v, expected Playing", g.Phase())
	}
}

func TestStartCaptureAttackEvent(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.state = StatePlaying
	g.queue.Push(event.StartCaptureAttack{Index: owlIndex})
	drain(g)
	if g.CaptureState() != event.CaptureAttacking {
		t.Fatalf("CaptureState() = %v, expected CaptureAttacking", g.CaptureState())
	}
	if owner, ok := g.capture.Owner(); !ok || owner != owlIndex {
		t.Errorf("Owner() = %v, %v, expected the owl slot", owner, ok)
	}

	// A second dive while one is under way leaves the sequence alone.
	g.queue.Push(event.StartCaptureAttack{Index: formation.Index{X: 5, Y: 1}})
	drain(g)
	if owner, _ := g.capture.Owner(); owner != owlIndex {
		t.Errorf("Owner() = %v after a second dive, expected %v", owner, owlIndex)
	}
}

func TestRecaptureWhileShipHeld(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.enemies.SpawnInFormation(event.Bee, formation.Index{X: 0, Y: 5})
	g.state = StatePlaying
	g.capture.StartCaptureAttack(owlIndex)
	g.queue.Push(event.CapturePlayer{Pos: fixed.V(112, 200)})
	g.queue.Push(event.SpawnCapturedFighter{Pos: fixed.V(112, 184), Index: fighterIndex})
	g.queue.Push(event.CapturePlayerCompleted{})
	drain(g)
	if g.player.State() != player.CaptureCompleted {
		t.Fatalf("player State() = %v, expected CaptureCompleted", g.player.State())
	}
	lives := g.Lives()

	// The owl is shot on its way home with the ship.
	g.queue.Push(event.RecapturePlayer{Index: fighterIndex})
	drain(g)
	if g.Phase() != StateRecapturing || g.CaptureState() != event.Recapturing {
		t.Fatalf("Phase() = %v, CaptureState() = %v, expected Recapturing/Recapturing", g.Phase(), g.CaptureState())
	}
	if g.enemies.IsLiveAt(fighterIndex) {
		t.Error("rescued fighter still in the fleet")
	}

	for i := 0; i < 2000 && !g.player.Active(); i++ {
		g.Step(empty())
	}
	if !g.player.Active() {
		t.Fatal("rescued fighter never came back as the ship")
	}
	if g.player.IsDual() {
		t.Error("IsDual() = true with a single ship")
	}
	if g.player.Pos().Y != player.Y {
		t.Errorf("Pos().Y = %d, expected the ship line %d", g.player.Pos().Y, player.Y)
	}
	if g.CaptureState() != event.NoCapture {
		t.Errorf("CaptureState() = %v, expected NoCapture", g.CaptureState())
	}
	if g.Phase() != StatePlaying {
		t.Errorf("Phase() = %v, expected Playing", g.Phase())
	}
	if g.Lives() != lives {
		t.Errorf("Lives() = %d, expected %d", g.Lives(), lives)
	}
}

func TestDeathDuringRecapture(t *testing.T) {
	g := newTestGame(t, New(), 1)
	captureShip(t, g)

	ended := 0
	g.Observe(func(e event.Event) {
		if r, ok := e.(event.RecaptureEnded); ok {
			ended++
			if r.Success {
				t.Error("RecaptureEnded reported success")
			}
		}
	})

	g.queue.Push(event.RecapturePlayer{Index: fighterIndex})
	drain(g)
	g.queue.Push(event.DeadPlayer{})
	drain(g)

	if ended != 1 {
		t.Errorf("RecaptureEnded delivered %d times, expected 1", ended)
	}
	if g.CaptureState() != event.NoCapture {
		t.Errorf("CaptureState() = %v, expected NoCapture", g.CaptureState())
	}
	if g.Phase() != StatePlayerDead {
		t.Errorf("Phase() = %v, expected PlayerDead", g.Phase())
	}
	if !g.enemies.IsLiveAt(fighterIndex) {
		t.Error("fighter did not return to the fleet")
	}
}

func TestEscapeCapturing(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.state = StatePlaying
	g.capture.StartCaptureAttack(owlIndex)
	g.queue.Push(event.CapturePlayer{Pos: fixed.V(112, 200)})
	drain(g)

	g.queue.Push(event.EscapeCapturing{})
	drain(g)
	if g.CaptureState() != event.NoCapture {
		t.Errorf("CaptureState() = %v, expected NoCapture", g.CaptureState())
	}
	if g.player.State() != player.EscapeCapturing {
		t.Errorf("player State() = %v, expected EscapeCapturing", g.player.State())
	}

	g.queue.Push(event.EscapeEnded{})
	drain(g)
	if g.Phase() != StatePlaying {
		t.Errorf("Phase() = %v, expected Playing", g.Phase())
	}
}

func TestCapturedFighterDestroyed(t *testing.T) {
	g := newTestGame(t, New(), 1)
	captureShip(t, g)

	g.enemies.Remove(fighterIndex)
	g.queue.Push(event.CapturedFighterDestroyed{})
	drain(g)
	if g.CaptureState() != event.NoCapture {
		t.Errorf("CaptureState() = %v, expected NoCapture", g.CaptureState())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New(), 1)
	screen := core.NewScreen(80, 40)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"1UP", "HIGH SCORE", "STAGE 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output lacks %q", want)
		}
	}

	small := core.NewScreen(20, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("small screen did not show the size warning")
	}
}

type spriteRecorder struct {
	names []string
}

func (s *spriteRecorder) DrawSprite(name string, _ fixed.Vec2) {
	s.names = append(s.names, name)
}

func (s *spriteRecorder) DrawSpriteRotated(name string, _ fixed.Vec2, _ int32) {
	s.names = append(s.names, name)
}

func (s *spriteRecorder) DrawText(int, int, core.Color, string) {}

func TestBeamStripesScroll(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.enemies.SpawnInFormation(event.Owl, owlIndex)
	g.enemies.StartAttack(owlIndex, true, g.env)
	owl, _ := g.enemies.At(owlIndex)
	for i := 0; i < 1000; i++ {
		if b, ok := owl.Beam(); ok && b.Rows() >= 2 {
			break
		}
		g.enemies.Update(g.env)
	}
	if b, ok := owl.Beam(); !ok || b.Rows() < 2 {
		t.Fatal("owl never opened its beam")
	}

	stripes := func() []string {
		rec := &spriteRecorder{}
		g.drawEnemies(rec)
		var out []string
		for _, name := range rec.names {
			if strings.HasPrefix(name, "beam") {
				out = append(out, name)
			}
		}
		return out
	}

	first := stripes()
	if len(first) < 2 || first[0] == first[1] {
		t.Fatalf("beam rows = %v, expected alternating stripes", first)
	}
	for i := 0; i < 4; i++ {
		g.enemies.Update(g.env)
	}
	if next := stripes(); next[0] == first[0] {
		t.Errorf("top stripe = %s after 4 frames, expected it to scroll", next[0])
	}
}
