package game

import (
	"github.com/vovakirdan/tui-galaga/internal/enemy"
	"github.com/vovakirdan/tui-galaga/internal/player"
)

// Snapshot is the observable game state, flattened to primitive values for
// determinism checks.
type Snapshot struct {
	Frame        uint64
	Stage        int
	State        int
	Count        int
	Score        uint32
	HighScore    uint32
	Lives        int
	PlayerX      int32
	PlayerY      int32
	PlayerState  int
	Dual         bool
	CaptureState int
	AliveCount   int

	// Each enemy is 6 ints: Slot, Kind, X, Y, Angle, State
	EnemyData []int

	// Each shot is 2 ints: X, Y. Player shots come first.
	ShotData []int

	EffectCount int
	RNGState    uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]int, 0, g.enemies.AliveCount()*6)
	g.enemies.Each(func(e *enemy.Enemy) {
		pos := e.Pos()
		enemyData = append(enemyData,
			e.Index().Slot(), int(e.Kind()), int(pos.X), int(pos.Y), int(e.Angle()), int(e.State()))
	})

	var shotData []int
	g.player.Shots(func(_ int, s player.Shot) {
		shotData = append(shotData, int(s.Pos.X), int(s.Pos.Y))
	})
	g.enemies.Shots(func(s enemy.Shot) {
		shotData = append(shotData, int(s.Pos.X), int(s.Pos.Y))
	})

	pos := g.player.Pos()
	return Snapshot{
		Frame:        g.frame,
		Stage:        g.stage,
		State:        int(g.state),
		Count:        g.count,
		Score:        g.score.Score(),
		HighScore:    g.score.HighScore(),
		Lives:        g.player.Lives(),
		PlayerX:      pos.X,
		PlayerY:      pos.Y,
		PlayerState:  int(g.player.State()),
		Dual:         g.player.IsDual(),
		CaptureState: int(g.capture.State()),
		AliveCount:   g.enemies.AliveCount(),
		EnemyData:    enemyData,
		ShotData:     shotData,
		EffectCount:  g.effects.count(),
		RNGState:     g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Stage)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Count)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerState)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CaptureState) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AliveCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EffectCount)  //#nosec G115 -- hash computation
	if snap.Dual {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ShotData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
