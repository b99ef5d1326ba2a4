// Package score keeps the running score, the high score and the
// extra-ship schedule.
package score

import "math"

const (
	firstExtend = 20000
	everyExtend = 50000
)

// Holder owns the score for one game. Additions saturate at the uint32 limit
// and the high score never decreases.
type Holder struct {
	score     uint32
	highScore uint32
}

// NewHolder creates a holder seeded with a persisted high score.
func NewHolder(highScore uint32) *Holder {
	return &Holder{highScore: highScore}
}

// Reset clears the score but keeps the high score.
func (h *Holder) Reset() {
	h.score = 0
}

// Add adds points and reports whether the addition crossed an extend
// threshold.
func (h *Holder) Add(points uint32) (extend bool) {
	before := h.score
	if points > math.MaxUint32-h.score {
		h.score = math.MaxUint32
	} else {
		h.score += points
	}
	if h.score > h.highScore {
		h.highScore = h.score
	}
	return uint64(before)+uint64(points) >= NextExtend(before)
}

// RaiseHighScore lifts the high score to at least high, as when a better
// persisted score is loaded mid-game.
func (h *Holder) RaiseHighScore(high uint32) {
	h.highScore = max(h.highScore, high)
}

// Score returns the current score.
func (h *Holder) Score() uint32 {
	return h.score
}

// HighScore returns the best score seen so far.
func (h *Holder) HighScore() uint32 {
	return h.highScore
}

// NextExtend returns the score that awards the next ship for a player
// currently at score: 20000 first, then every multiple of 50000.
func NextExtend(score uint32) uint64 {
	if score < firstExtend {
		return firstExtend
	}
	return (uint64(score)/everyExtend + 1) * everyExtend
}
