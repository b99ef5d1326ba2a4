package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-galaga/internal/event"
)

// drain streams s to the end and returns the sample count, failing on any
// sample outside [-1, 1].
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				if buf[i][c] < -1 || buf[i][c] > 1 {
					t.Fatalf("sample %d out of range: %f", total+i, buf[i][c])
				}
			}
		}
		total += n
		if !ok || n == 0 {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise}
	for _, w := range waves {
		got := drain(t, NewTone(440, 100*time.Millisecond, w, rate))
		if got != rate.N(100*time.Millisecond) {
			t.Errorf("NewTone(wave %d) streamed %d samples, expected %d", w, got, rate.N(100*time.Millisecond))
		}
	}
}

func TestSquareValues(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewTone(220, 50*time.Millisecond, WaveSquare, rate)

	buf := make([][2]float64, 200)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != -1 && v != 1 {
			t.Errorf("square sample %d = %f, expected -1 or 1", i, v)
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewTone(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Stream() = %d samples, expected 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("middle sample = %f, expected 1", buf[50][0])
	}
	if buf[99][0] >= 0.2 {
		t.Errorf("last sample = %f, expected a faded value", buf[99][0])
	}
}

func TestSweepEndsLower(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := time.Second

	// Count zero crossings in the first and last tenth of a falling sweep.
	osc := NewSweep(800, 100, d, WaveSquare, rate)
	buf := make([][2]float64, rate.N(d))
	n, _ := osc.Stream(buf)

	crossings := func(from, to int) int {
		c := 0
		for i := from + 1; i < to; i++ {
			if buf[i][0] != buf[i-1][0] {
				c++
			}
		}
		return c
	}
	head := crossings(0, n/10)
	tail := crossings(n-n/10, n)
	if head <= tail {
		t.Errorf("sweep crossings head %d tail %d, expected the head to be busier", head, tail)
	}
}

func TestEverySoundSynthesizes(t *testing.T) {
	sounds := []event.Sound{
		event.SeCountStage,
		event.SeMyShot,
		event.SeDamage,
		event.SeBombZako,
		event.SeBombPlayer,
		event.SeBombCaptured,
		event.SeAttackStart,
		event.SeTractorBeam1,
		event.SeTractorBeam2,
		event.SeExtendShip,
		event.SeRecapture,
	}

	for _, sound := range sounds {
		t.Run(string(sound), func(t *testing.T) {
			s, ok := Synth(sound, SampleRate)
			if !ok {
				t.Fatalf("Synth(%q) not found", sound)
			}
			n := drain(t, s)
			if n == 0 {
				t.Errorf("Synth(%q) streamed nothing", sound)
			}
			if n > SampleRate.N(3*time.Second) {
				t.Errorf("Synth(%q) streamed %d samples, expected under 3s", sound, n)
			}
		})
	}
}

func TestSynthUnknown(t *testing.T) {
	if _, ok := Synth("nope", SampleRate); ok {
		t.Error("Synth(unknown) ok = true, expected false")
	}
}

func TestVolumeSilent(t *testing.T) {
	s := volume(NewTone(440, 10*time.Millisecond, WaveSquare, SampleRate), 0)
	buf := make([][2]float64, 64)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("silent sample %d = %f, expected 0", i, buf[i][0])
		}
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without a speaker: %v", r)
		}
	}()

	p.SetVolume(2)
	p.Play([]event.PlaySe{{Channel: event.ChShot, Sound: event.SeMyShot}})
	p.Cleanup()

	if p.volume != 1 {
		t.Errorf("volume = %f, expected clamp to 1", p.volume)
	}
}

func TestPlayerChannelCut(t *testing.T) {
	p := NewPlayer()

	// Drive start directly; the speaker lock is not needed without playback.
	p.start(event.PlaySe{Channel: event.ChJingle, Sound: event.SeCountStage})
	first := p.channels[event.ChJingle]
	p.start(event.PlaySe{Channel: event.ChJingle, Sound: event.SeExtendShip})

	if first.Streamer != nil {
		t.Error("previous sound on the channel was not cut")
	}
	if p.channels[event.ChJingle] == first {
		t.Error("channel still holds the previous sound")
	}
	if p.mixer.Len() != 2 {
		t.Errorf("mixer.Len() = %d, expected 2 before the cut sound drains", p.mixer.Len())
	}
}
