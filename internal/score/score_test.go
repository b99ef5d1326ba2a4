package score

import (
	"math"
	"testing"
)

func TestAddSaturates(t *testing.T) {
	h := NewHolder(0)
	h.Add(math.MaxUint32 - 10)
	h.Add(100)
	if h.Score() != math.MaxUint32 {
		t.Errorf("Score() = %d, expected %d", h.Score(), uint32(math.MaxUint32))
	}
}

func TestHighScoreMonotonic(t *testing.T) {
	h := NewHolder(5000)
	h.Add(1000)
	if h.HighScore() != 5000 {
		t.Errorf("HighScore() = %d, expected 5000", h.HighScore())
	}
	h.Add(4500)
	if h.HighScore() != 5500 {
		t.Errorf("HighScore() = %d, expected 5500", h.HighScore())
	}
	h.Reset()
	if h.Score() != 0 || h.HighScore() != 5500 {
		t.Errorf("after Reset() score=%d high=%d, expected 0 and 5500", h.Score(), h.HighScore())
	}
}

func TestNextExtend(t *testing.T) {
	tests := []struct {
		score    uint32
		expected uint64
	}{
		{0, 20000},
		{19999, 20000},
		{20000, 50000},
		{49999, 50000},
		{50000, 100000},
		{50001, 100000},
		{120000, 150000},
	}

	for _, tt := range tests {
		if got := NextExtend(tt.score); got != tt.expected {
			t.Errorf("NextExtend(%d) = %d, expected %d", tt.score, got, tt.expected)
		}
	}
}

func TestAddReportsExtend(t *testing.T) {
	h := NewHolder(0)
	if h.Add(19950) {
		t.Error("Add() extended below 20000")
	}
	if !h.Add(50) {
		t.Error("Add() did not extend at 20000")
	}
	if h.Add(29000) {
		t.Error("Add() extended below 50000")
	}
	if !h.Add(1000) {
		t.Error("Add() did not extend at 50000")
	}
	if h.Add(100) {
		t.Error("Add() extended right after 50000")
	}
}
