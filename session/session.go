package session

import (
	"errors"
	"time"

	"github.com/cwbudde/algo-pitch/beat"
	"github.com/cwbudde/algo-pitch/dsp/pitch"
	"github.com/cwbudde/algo-pitch/music/note"
	"github.com/cwbudde/algo-pitch/music/score"
)

// Errors returned by session construction and lifecycle calls.
var (
	ErrNilSink    = errors.New("session: sink must not be nil")
	ErrEmptyBlock = errors.New("session: empty audio block")
	ErrStarted    = errors.New("session: already started")
)

// GuideToneDuration is how long a requested guide tone rings.
const GuideToneDuration = time.Second

// DefaultGuideFrequency is played when a guide-tone request cannot be
// parsed; the session degrades to concert A rather than failing.
const DefaultGuideFrequency = note.ReferenceFrequency

// Sink is the audio output boundary. Implementations schedule actual sound
// on the same monotonic clock the session's timestamps refer to.
type Sink interface {
	// ScheduleClick realizes a metronome click at the given timestamp.
	ScheduleClick(at time.Duration)

	// ScheduleTone ramps a tone of the given frequency up and back down
	// between at and at+dur.
	ScheduleTone(freq float64, at, dur time.Duration)
}

// Config holds session parameters. SampleRate is required; zero values
// elsewhere select defaults.
type Config struct {
	// SampleRate of incoming microphone blocks in Hz.
	SampleRate float64

	// Tolerance is the in-tune band in cents (default score.DefaultTolerance).
	Tolerance int

	// BPM is the initial tempo (default beat.DefaultBPM).
	BPM float64

	// Pitch carries estimator overrides; its SampleRate is taken from the
	// session's SampleRate.
	Pitch pitch.Config

	// Beat carries scheduler overrides.
	Beat beat.Config
}

// Reading is the outcome of analyzing one microphone block. When Voiced is
// false the Note and Accuracy fields are zero.
type Reading struct {
	Frequency float64
	RMS       float64
	Voiced    bool
	Note      note.Note
	Accuracy  int
}

// Session owns one active practice context: estimator, tuning scorer,
// tempo, scheduler, and the output sink. It is a single-owner object; see
// the package comment for the threading model.
type Session struct {
	est       *pitch.Estimator
	scorer    *score.Scorer
	tempo     *beat.Tempo
	sched     *beat.Scheduler
	sink      Sink
	listening bool
	plan      []time.Duration
}

// New creates a Session. The sink must not be nil and the sample rate must
// be positive.
func New(cfg Config, sink Sink) (*Session, error) {
	if sink == nil {
		return nil, ErrNilSink
	}

	pcfg := cfg.Pitch
	pcfg.SampleRate = cfg.SampleRate

	est, err := pitch.NewEstimator(pcfg)
	if err != nil {
		return nil, err
	}

	bpm := cfg.BPM
	if bpm == 0 {
		bpm = beat.DefaultBPM
	}

	tempo, err := beat.NewTempo(bpm)
	if err != nil {
		return nil, err
	}

	sched, err := beat.NewScheduler(tempo, cfg.Beat)
	if err != nil {
		return nil, err
	}

	return &Session{
		est:    est,
		scorer: score.NewScorer(cfg.Tolerance),
		tempo:  tempo,
		sched:  sched,
		sink:   sink,
	}, nil
}

// Start begins playback: the metronome sequence anchors at now plus the
// scheduler lead time. Starting an already running session is an error;
// there is at most one active session per context.
func (s *Session) Start(now time.Duration) error {
	if s.listening {
		return ErrStarted
	}

	s.listening = true
	s.sched.Start(now)

	return nil
}

// Stop ends playback and discards all scheduling state. Stopping an idle
// session is a no-op.
func (s *Session) Stop() {
	s.listening = false
	s.sched.Stop()
}

// Listening reports whether the session is between Start and Stop.
func (s *Session) Listening() bool {
	return s.listening
}

// SetBPM updates the tempo; the change applies from the next planned beat
// interval.
func (s *Session) SetBPM(bpm float64) error {
	return s.tempo.Set(bpm)
}

// BPM returns the current tempo.
func (s *Session) BPM() float64 {
	return s.tempo.BPM()
}

// ProcessBlock analyzes one microphone block and returns the tuning
// reading. An empty block is a caller error; silence or absence of
// periodicity is a valid unvoiced reading with zero accuracy.
func (s *Session) ProcessBlock(block []float64) (Reading, error) {
	if len(block) == 0 {
		return Reading{}, ErrEmptyBlock
	}

	res := s.est.Analyze(block)

	r := Reading{Frequency: res.Frequency, RMS: res.RMS, Voiced: res.Voiced}
	if !res.Voiced {
		return r, nil
	}

	n, err := note.FromFrequency(res.Frequency)
	if err != nil {
		// A voiced result always carries a positive frequency; treat any
		// mapping failure as unvoiced rather than surfacing it.
		r.Voiced = false
		return r, nil
	}

	r.Note = n
	r.Accuracy = s.scorer.Rate(n.Cents)

	return r, nil
}

// Pump plans pending metronome ticks and forwards each to the sink. Call
// it on a steady cadence; correctness only requires now to be monotonic.
func (s *Session) Pump(now time.Duration) {
	s.plan = s.sched.AppendPlan(s.plan[:0], now)
	for _, at := range s.plan {
		s.sink.ScheduleClick(at)
	}
}

// PlayGuideTone schedules a reference tone for the named pitch starting at
// now. Unparseable names degrade to the 440 Hz reference.
func (s *Session) PlayGuideTone(name string, now time.Duration) {
	freq := DefaultGuideFrequency
	if n, err := note.Parse(name); err == nil {
		freq = n.Frequency()
	}

	s.sink.ScheduleTone(freq, now, GuideToneDuration)
}
