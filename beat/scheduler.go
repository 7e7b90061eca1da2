package beat

import (
	"errors"
	"time"
)

// ErrNilTempo reports a Scheduler constructed without a tempo context.
var ErrNilTempo = errors.New("beat: tempo must not be nil")

const (
	defaultLookahead = 100 * time.Millisecond
	defaultLeadTime  = 200 * time.Millisecond
)

// Clock reports elapsed monotonic time. Timestamps planned by a Scheduler
// are offsets on the same clock the audio sink schedules against.
type Clock func() time.Duration

// NewMonotonicClock returns a Clock anchored at the moment of the call,
// backed by the runtime's monotonic reading of time.Since.
func NewMonotonicClock() Clock {
	start := time.Now()

	return func() time.Duration {
		return time.Since(start)
	}
}

// Config holds scheduling parameters. Zero values select the defaults.
type Config struct {
	// Lookahead is the planning horizon: Plan emits every tick that falls
	// within this window after "now". Default 100ms.
	Lookahead time.Duration

	// LeadTime offsets the first tick after Start so it is not already in
	// the past by the time the sink receives it. Default 200ms.
	LeadTime time.Duration
}

// Scheduler plans metronome tick timestamps at a target tempo. It owns a
// cursor pointing at the next unemitted tick; the cursor persists across
// planning passes and is only discarded by Stop.
type Scheduler struct {
	cfg     Config
	tempo   *Tempo
	cursor  time.Duration
	running bool
}

// NewScheduler creates a Scheduler reading the given tempo context.
func NewScheduler(tempo *Tempo, cfg Config) (*Scheduler, error) {
	if tempo == nil {
		return nil, ErrNilTempo
	}

	if cfg.Lookahead <= 0 {
		cfg.Lookahead = defaultLookahead
	}

	if cfg.LeadTime <= 0 {
		cfg.LeadTime = defaultLeadTime
	}

	return &Scheduler{cfg: cfg, tempo: tempo}, nil
}

// Start anchors the tick sequence at now plus the configured lead time.
// Starting an already running scheduler re-anchors it.
func (s *Scheduler) Start(now time.Duration) {
	s.cursor = now + s.cfg.LeadTime
	s.running = true
}

// Stop discards the cursor. No tick history survives a stop; a subsequent
// Start anchors a fresh sequence.
func (s *Scheduler) Stop() {
	s.cursor = 0
	s.running = false
}

// Running reports whether the scheduler has been started and not stopped.
func (s *Scheduler) Running() bool {
	return s.running
}

// Plan returns the timestamps of all ticks that fall within the lookahead
// window of now, each planned exactly once. See AppendPlan.
func (s *Scheduler) Plan(now time.Duration) []time.Duration {
	return s.AppendPlan(nil, now)
}

// AppendPlan appends pending tick timestamps to dst and returns it,
// advancing the cursor by one beat interval per emitted tick. The interval
// is re-read from the tempo per tick, so a tempo change affects the next
// interval without disturbing ticks already planned. A stopped scheduler
// plans nothing.
func (s *Scheduler) AppendPlan(dst []time.Duration, now time.Duration) []time.Duration {
	if !s.running {
		return dst
	}

	horizon := now + s.cfg.Lookahead
	for s.cursor < horizon {
		dst = append(dst, s.cursor)
		s.cursor += s.tempo.Interval()
	}

	return dst
}
