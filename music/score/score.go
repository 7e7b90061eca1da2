// Package score rates tuning accuracy on a 0..100 scale from a cents
// deviation. The shape is a deliberately simple piecewise-linear reward:
// full marks inside the tolerance band, zero beyond a whole semitone, and
// a linear ramp in between.
package score

import "math"

const (
	// DefaultTolerance is the in-tune band in cents.
	DefaultTolerance = 25

	// maxCents is the deviation at and beyond which the rating is zero.
	maxCents = 100
)

// Scorer rates cents deviations against a fixed tolerance band.
// The zero value is not usable; construct with NewScorer.
type Scorer struct {
	tolerance int
}

// NewScorer creates a Scorer with the given in-tune tolerance in cents.
// Non-positive tolerances fall back to DefaultTolerance; tolerances at or
// above the zero point are clamped just below it.
func NewScorer(tolerance int) *Scorer {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	if tolerance >= maxCents {
		tolerance = maxCents - 1
	}

	return &Scorer{tolerance: tolerance}
}

// Tolerance returns the in-tune band in cents.
func (s *Scorer) Tolerance() int {
	return s.tolerance
}

// Rate maps a cents deviation to an accuracy in [0, 100]. The result is
// monotonically non-increasing in the magnitude of the deviation.
func (s *Scorer) Rate(cents int) int {
	c := cents
	if c < 0 {
		c = -c
	}

	switch {
	case c <= s.tolerance:
		return 100
	case c > maxCents:
		return 0
	}

	v := int(math.Round(100 * float64(maxCents-c) / float64(maxCents-s.tolerance)))
	if v < 0 {
		v = 0
	}

	return v
}

var defaultScorer = NewScorer(DefaultTolerance)

// Rate maps a cents deviation to an accuracy using DefaultTolerance.
func Rate(cents int) int {
	return defaultScorer.Rate(cents)
}
