// Package audio plays short synthesized chimes for game feedback cues.
// Audio is optional: every operation is a no-op until Initialize succeeds.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/zukko-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Note is one tone of a chime.
type Note struct {
	Freq float64 // Hz; 0 is a rest
	Dur  time.Duration
}

// Melody returns the notes played for a cue.
func Melody(c core.Cue) []Note {
	switch c {
	case core.CueCatch:
		return []Note{{880, 60 * time.Millisecond}}
	case core.CueCorrect:
		return []Note{{659, 90 * time.Millisecond}, {988, 140 * time.Millisecond}}
	case core.CueWrong:
		return []Note{{330, 120 * time.Millisecond}, {262, 180 * time.Millisecond}}
	case core.CueMatch:
		return []Note{{784, 80 * time.Millisecond}, {1047, 120 * time.Millisecond}}
	case core.CueFinish:
		return []Note{
			{523, 110 * time.Millisecond},
			{659, 110 * time.Millisecond},
			{784, 110 * time.Millisecond},
			{1047, 260 * time.Millisecond},
		}
	default:
		return nil
	}
}

// Stream renders a melody as one finite streamer.
func Stream(sr beep.SampleRate, notes []Note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, beep.Take(sr.N(n.Dur), NewToneGenerator(sr, n.Freq, n.Dur)))
	}
	return beep.Seq(parts...)
}

// Chimes mixes cue sounds onto the speaker.
type Chimes struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChimes creates an uninitialized player.
func NewChimes() *Chimes {
	return &Chimes{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (c *Chimes) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues the chime for a cue.
func (c *Chimes) Play(cue core.Cue) {
	notes := Melody(cue)
	if len(notes) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	s := Stream(sampleRate, notes)
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (c *Chimes) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// ToneGenerator is a sine tone with a short attack and a linear release so
// consecutive notes do not click.
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

// NewToneGenerator creates a tone lasting dur.
func NewToneGenerator(sr beep.SampleRate, freq float64, dur time.Duration) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, total: max(sr.N(dur), 1)}
}

// Stream fills samples with the enveloped tone. It never drains; wrap it in
// beep.Take to bound it.
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(g.sr.N(5 * time.Millisecond))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		env := 1.0
		if p := float64(g.pos); p < attack {
			env = p / attack
		}
		env *= math.Max(0, 1-float64(g.pos)/float64(g.total))

		sample := 0.0
		if g.freq > 0 {
			sample = 0.25 * env * math.Sin(2*math.Pi*g.freq*t)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil; a generated tone cannot fail.
func (g *ToneGenerator) Err() error {
	return nil
}
