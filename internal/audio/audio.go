// Package audio plays the game's sound effects through the system speaker.
// Sounds are synthesized on demand, so no asset files are needed.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-galaga/internal/event"
)

const (
	SampleRate = beep.SampleRate(44100)

	defaultVolume = 0.5
)

// Player mixes sound effects onto a fixed set of channels. Starting a sound
// on a busy channel cuts the previous one. All methods are safe to call
// before Initialize or after a failed one; they do nothing then.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	channels    [event.ChannelCount]*beep.Ctrl
	volume      float64
	initialized bool
}

// NewPlayer creates a player with the default volume.
func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// SetVolume sets the master volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = min(max(v, 0), 1)
}

// Initialize opens the speaker.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts every sound in list. Unknown sounds are ignored.
func (p *Player) Play(list []event.PlaySe) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || len(list) == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, se := range list {
		p.start(se)
	}
}

// start must be called with the speaker locked.
func (p *Player) start(se event.PlaySe) {
	if int(se.Channel) >= len(p.channels) {
		return
	}
	s, ok := Synth(se.Sound, SampleRate)
	if !ok {
		return
	}

	if prev := p.channels[se.Channel]; prev != nil {
		prev.Streamer = nil
	}
	ctrl := &beep.Ctrl{Streamer: volume(s, p.volume)}
	p.channels[se.Channel] = ctrl
	p.mixer.Add(ctrl)
}

// Cleanup stops all sounds and closes the speaker.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	for i := range p.channels {
		p.channels[i] = nil
	}
	speaker.Close()
	p.initialized = false
}
