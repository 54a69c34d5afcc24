package audio

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/zukko-arcade/internal/core"
)

func TestMelodies(t *testing.T) {
	if Melody(core.CueNone) != nil {
		t.Error("CueNone should be silent")
	}
	for _, c := range []core.Cue{core.CueCatch, core.CueCorrect, core.CueWrong, core.CueMatch, core.CueFinish} {
		if len(Melody(c)) == 0 {
			t.Errorf("%s has no melody", c)
		}
	}
}

func TestStreamLength(t *testing.T) {
	notes := Melody(core.CueFinish)
	want := 0
	for _, n := range notes {
		want += sampleRate.N(n.Dur)
	}

	s := Stream(sampleRate, notes)
	buf := make([][2]float64, 512)
	got := 0
	for {
		n, ok := s.Stream(buf)
		got += n
		if !ok {
			break
		}
	}

	if got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
}

func TestToneGeneratorEnvelope(t *testing.T) {
	g := NewToneGenerator(sampleRate, 440, 100*time.Millisecond)
	buf := make([][2]float64, 4096)
	g.Stream(buf)

	for i, s := range buf {
		if math.Abs(s[0]) > 0.25 {
			t.Fatalf("sample %d = %v exceeds amplitude", i, s[0])
		}
		if s[0] != s[1] {
			t.Fatalf("sample %d is not mono", i)
		}
	}
	if buf[0][0] != 0 {
		t.Errorf("tone should start silent, got %v", buf[0][0])
	}
}

func TestToneGeneratorNeverDrains(t *testing.T) {
	g := NewToneGenerator(sampleRate, 440, 10*time.Millisecond)
	buf := make([][2]float64, sampleRate.N(50*time.Millisecond))

	n, ok := g.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream = (%d, %v), want (%d, true) past the tone's end", n, ok, len(buf))
	}
	if last := buf[len(buf)-1][0]; last != 0 {
		t.Errorf("tail after the release = %v, want silence", last)
	}
	if err := g.Err(); err != nil {
		t.Errorf("Err = %v", err)
	}
}

func TestRestIsSilent(t *testing.T) {
	g := NewToneGenerator(sampleRate, 0, 0)
	buf := make([][2]float64, 256)
	g.Stream(buf)
	for i, s := range buf {
		if s[0] != 0 {
			t.Fatalf("rest sample %d = %v", i, s[0])
		}
	}
}

func TestChimesGracefulWithoutInit(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("chimes panicked without initialization: %v", r)
		}
	}()

	c := NewChimes()
	c.Play(core.CueCatch)
	c.Play(core.CueNone)
	c.Close()
}
