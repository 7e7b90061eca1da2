package beat

import (
	"errors"
	"fmt"
	"time"
)

// Playable tempo range in beats per minute.
const (
	MinBPM = 40.0
	MaxBPM = 240.0

	// DefaultBPM is used when a caller does not specify a tempo.
	DefaultBPM = 120.0
)

// ErrTempoRange reports a tempo outside [MinBPM, MaxBPM].
var ErrTempoRange = errors.New("beat: tempo out of playable range")

// Tempo holds a validated beats-per-minute setting. It is owned by a single
// scheduling context and read by the Scheduler on every pass, so a change
// applies to the next planned interval.
type Tempo struct {
	bpm float64
}

// NewTempo creates a Tempo, rejecting values outside the playable range.
func NewTempo(bpm float64) (*Tempo, error) {
	t := &Tempo{}
	if err := t.Set(bpm); err != nil {
		return nil, err
	}

	return t, nil
}

// Set updates the tempo, rejecting values outside the playable range.
func (t *Tempo) Set(bpm float64) error {
	if bpm < MinBPM || bpm > MaxBPM {
		return fmt.Errorf("%w: %g bpm (want %g..%g)", ErrTempoRange, bpm, MinBPM, MaxBPM)
	}

	t.bpm = bpm

	return nil
}

// BPM returns the current tempo.
func (t *Tempo) BPM() float64 {
	return t.bpm
}

// Interval returns the duration of one beat at the current tempo. Equal
// tempos always yield the identical Duration, so consecutive ticks planned
// at a fixed tempo are spaced exactly.
func (t *Tempo) Interval() time.Duration {
	return time.Duration(float64(time.Minute) / t.bpm)
}
