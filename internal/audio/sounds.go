package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-galaga/internal/event"
)

type voice func(rate beep.SampleRate) beep.Streamer

// voices synthesizes every sound effect the game emits. Player explosions
// share the enemy explosion sound.
var voices = map[event.Sound]voice{
	event.SeMyShot: func(rate beep.SampleRate) beep.Streamer {
		d := 120 * time.Millisecond
		return NewEnvelope(NewSweep(1800, 400, d, WaveSquare, rate), d, time.Millisecond, d/2, rate)
	},
	event.SeDamage: func(rate beep.SampleRate) beep.Streamer {
		return note(330, 80*time.Millisecond, WaveSquare, rate)
	},
	event.SeBombZako: func(rate beep.SampleRate) beep.Streamer {
		d := 300 * time.Millisecond
		return NewEnvelope(NewTone(0, d, WaveNoise, rate), d, time.Millisecond, d*2/3, rate)
	},
	event.SeBombCaptured: func(rate beep.SampleRate) beep.Streamer {
		d := 600 * time.Millisecond
		return beep.Mix(
			volume(NewEnvelope(NewSweep(900, 120, d, WaveSaw, rate), d, time.Millisecond, d/2, rate), 0.6),
			volume(NewEnvelope(NewTone(0, d, WaveNoise, rate), d, time.Millisecond, d/2, rate), 0.4),
		)
	},
	event.SeAttackStart: func(rate beep.SampleRate) beep.Streamer {
		d := 400 * time.Millisecond
		return NewEnvelope(NewSweep(1200, 300, d, WaveSine, rate), d, 10*time.Millisecond, d/4, rate)
	},
	event.SeTractorBeam1: func(rate beep.SampleRate) beep.Streamer {
		return blip(660, 60*time.Millisecond, 40*time.Millisecond, 12, rate)
	},
	event.SeTractorBeam2: func(rate beep.SampleRate) beep.Streamer {
		return blip(880, 60*time.Millisecond, 40*time.Millisecond, 6, rate)
	},
	event.SeCountStage: func(rate beep.SampleRate) beep.Streamer {
		return arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 90*time.Millisecond, WaveSquare, rate)
	},
	event.SeExtendShip: func(rate beep.SampleRate) beep.Streamer {
		return arpeggio([]float64{783.99, 1046.5, 783.99, 1046.5, 1318.5}, 80*time.Millisecond, WaveSquare, rate)
	},
	event.SeRecapture: func(rate beep.SampleRate) beep.Streamer {
		return arpeggio([]float64{392, 523.25, 659.25, 783.99, 659.25, 783.99, 1046.5}, 110*time.Millisecond, WaveSine, rate)
	},
}

// Synth returns a fresh streamer for sound, or false for an unknown name.
func Synth(sound event.Sound, rate beep.SampleRate) (beep.Streamer, bool) {
	v, ok := voices[sound]
	if !ok {
		return nil, false
	}
	return v(rate), true
}
