package session

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/cwbudde/algo-pitch/beat"
	"github.com/cwbudde/algo-pitch/internal/audiotest"
	"github.com/cwbudde/algo-pitch/music/note"
)

const testRate = 48000.0

// recordingSink captures everything the session schedules.
type recordingSink struct {
	clicks []time.Duration
	tones  []toneCall
}

type toneCall struct {
	freq float64
	at   time.Duration
	dur  time.Duration
}

func (r *recordingSink) ScheduleClick(at time.Duration) {
	r.clicks = append(r.clicks, at)
}

func (r *recordingSink) ScheduleTone(freq float64, at, dur time.Duration) {
	r.tones = append(r.tones, toneCall{freq: freq, at: at, dur: dur})
}

func newTestSession(t *testing.T) (*Session, *recordingSink) {
	t.Helper()

	sink := &recordingSink{}

	s, err := New(Config{SampleRate: testRate}, sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return s, sink
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{SampleRate: testRate}, nil); !errors.Is(err, ErrNilSink) {
		t.Errorf("nil sink: got %v, want ErrNilSink", err)
	}

	if _, err := New(Config{}, &recordingSink{}); err == nil {
		t.Error("zero sample rate: expected an error")
	}

	if _, err := New(Config{SampleRate: testRate, BPM: 999}, &recordingSink{}); !errors.Is(err, beat.ErrTempoRange) {
		t.Errorf("bad bpm: got %v, want ErrTempoRange", err)
	}
}

func TestNew_DefaultBPM(t *testing.T) {
	s, _ := newTestSession(t)

	if s.BPM() != beat.DefaultBPM {
		t.Errorf("BPM: got %g, want %g", s.BPM(), beat.DefaultBPM)
	}
}

func TestProcessBlock_Voiced(t *testing.T) {
	s, _ := newTestSession(t)

	block := audiotest.Sine(440, 0.8, testRate, 2048)

	r, err := s.ProcessBlock(block)
	if err != nil {
		t.Fatalf("ProcessBlock: %v", err)
	}

	if !r.Voiced {
		t.Fatal("expected a voiced reading")
	}
	if math.Abs(r.Frequency-440)/440 > 0.02 {
		t.Errorf("Frequency: got %.2f, want ~440", r.Frequency)
	}
	if r.Note.String() != "A4" {
		t.Errorf("Note: got %s, want A4", r.Note)
	}
	if r.Accuracy != 100 {
		t.Errorf("Accuracy: got %d, want 100", r.Accuracy)
	}
}

func TestProcessBlock_Silence(t *testing.T) {
	s, _ := newTestSession(t)

	r, err := s.ProcessBlock(audiotest.Silence(2048))
	if err != nil {
		t.Fatalf("ProcessBlock: %v", err)
	}

	if r.Voiced {
		t.Error("silence: expected unvoiced reading")
	}
	if r.Accuracy != 0 {
		t.Errorf("silence Accuracy: got %d, want 0", r.Accuracy)
	}
}

func TestProcessBlock_Empty(t *testing.T) {
	s, _ := newTestSession(t)

	if _, err := s.ProcessBlock(nil); !errors.Is(err, ErrEmptyBlock) {
		t.Errorf("got %v, want ErrEmptyBlock", err)
	}
}

func TestLifecycle(t *testing.T) {
	s, _ := newTestSession(t)

	if s.Listening() {
		t.Fatal("new session already listening")
	}

	if err := s.Start(0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !s.Listening() {
		t.Fatal("Listening after Start: got false")
	}

	if err := s.Start(time.Second); !errors.Is(err, ErrStarted) {
		t.Errorf("second Start: got %v, want ErrStarted", err)
	}

	s.Stop()
	if s.Listening() {
		t.Error("Listening after Stop: got true")
	}

	// Stop is idempotent and a fresh Start succeeds.
	s.Stop()
	if err := s.Start(2 * time.Second); err != nil {
		t.Errorf("restart: %v", err)
	}
}

func TestPump_ForwardsTicks(t *testing.T) {
	s, sink := newTestSession(t)

	if err := s.Start(0); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var now time.Duration
	for i := 0; i < 30; i++ {
		now += 100 * time.Millisecond
		s.Pump(now)
	}

	if len(sink.clicks) < 4 {
		t.Fatalf("expected several clicks, got %d", len(sink.clicks))
	}

	// Clicks arrive at exactly the 120 bpm grid, 500ms apart.
	for i := 1; i < len(sink.clicks); i++ {
		if d := sink.clicks[i] - sink.clicks[i-1]; d != 500*time.Millisecond {
			t.Fatalf("click %d spacing: got %v, want 500ms", i, d)
		}
	}
}

func TestPump_StoppedSchedulesNothing(t *testing.T) {
	s, sink := newTestSession(t)

	s.Pump(time.Second)

	if len(sink.clicks) != 0 {
		t.Errorf("idle session scheduled %d clicks", len(sink.clicks))
	}
}

func TestSetBPM(t *testing.T) {
	s, _ := newTestSession(t)

	if err := s.SetBPM(90); err != nil {
		t.Fatalf("SetBPM(90): %v", err)
	}
	if s.BPM() != 90 {
		t.Errorf("BPM: got %g, want 90", s.BPM())
	}

	if err := s.SetBPM(10); !errors.Is(err, beat.ErrTempoRange) {
		t.Errorf("SetBPM(10): got %v, want ErrTempoRange", err)
	}
}

func TestPlayGuideTone(t *testing.T) {
	s, sink := newTestSession(t)

	s.PlayGuideTone("A4", time.Second)

	if len(sink.tones) != 1 {
		t.Fatalf("expected 1 tone, got %d", len(sink.tones))
	}

	tone := sink.tones[0]
	if math.Abs(tone.freq-440) > 1e-9 {
		t.Errorf("freq: got %g, want 440", tone.freq)
	}
	if tone.at != time.Second {
		t.Errorf("at: got %v, want 1s", tone.at)
	}
	if tone.dur != GuideToneDuration {
		t.Errorf("dur: got %v, want %v", tone.dur, GuideToneDuration)
	}
}

func TestPlayGuideTone_NamedPitch(t *testing.T) {
	s, sink := newTestSession(t)

	s.PlayGuideTone("c#5", 0)

	want, err := note.ParseFrequency("C#5")
	if err != nil {
		t.Fatalf("ParseFrequency: %v", err)
	}

	if got := sink.tones[0].freq; math.Abs(got-want) > 1e-9 {
		t.Errorf("freq: got %g, want %g", got, want)
	}
}

func TestPlayGuideTone_BadNameFallsBack(t *testing.T) {
	s, sink := newTestSession(t)

	s.PlayGuideTone("H#9", 0)

	if got := sink.tones[0].freq; got != DefaultGuideFrequency {
		t.Errorf("freq: got %g, want %g", got, float64(DefaultGuideFrequency))
	}
}
