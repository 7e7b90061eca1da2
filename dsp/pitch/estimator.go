package pitch

import (
	"errors"
	"math"
)

// Errors returned by estimator construction.
var (
	ErrSampleRate = errors.New("pitch: sample rate must be positive")
)

const (
	defaultSilenceRMS        = 0.01
	defaultMinCorrelation    = 0.9
	defaultAcceptCorrelation = 0.92

	// minBlockLength is the shortest block that admits any lag scan.
	minBlockLength = 4

	// minOffset is the first candidate lag; lags 0 and 1 are trivially
	// self-similar and carry no pitch information.
	minOffset = 2
)

// Config holds pitch estimation parameters. Zero values for thresholds are
// replaced by defaults; SampleRate is required.
type Config struct {
	// SampleRate of the analyzed blocks in Hz. Must be positive.
	SampleRate float64

	// SilenceRMS gates blocks whose RMS falls below it. Default 0.01 on a
	// [-1, 1] sample scale.
	SilenceRMS float64

	// MinCorrelation is the similarity a peak must exceed to qualify for
	// early termination of the lag scan. Default 0.9.
	MinCorrelation float64

	// AcceptCorrelation is the bar the best similarity of a completed
	// (non-terminated) scan must clear. Default 0.92.
	AcceptCorrelation float64

	// UseFFT computes the similarity curve from a normalized
	// autocorrelation obtained through an FFT instead of the direct
	// mean-absolute-difference scan. The peak selection policy is
	// identical; detected frequencies can differ slightly for
	// harmonic-rich input. If the FFT plan cannot be built the direct
	// scan is used.
	UseFFT bool
}

// Result holds the outcome of analyzing one block.
type Result struct {
	Frequency float64 // fundamental in Hz, 0 when Voiced is false
	RMS       float64
	Voiced    bool
}

// Estimator detects the fundamental frequency of monophonic audio blocks.
// It holds no state between calls and is safe for concurrent use.
type Estimator struct {
	cfg Config
}

// NewEstimator creates an Estimator for the given configuration.
func NewEstimator(cfg Config) (*Estimator, error) {
	if cfg.SampleRate <= 0 {
		return nil, ErrSampleRate
	}

	return &Estimator{cfg: normalizeConfig(cfg)}, nil
}

// Estimate is a one-shot detection over a single block. It returns the
// fundamental frequency and whether a pitch was found.
func Estimate(block []float64, sampleRate float64) (float64, bool) {
	e, err := NewEstimator(Config{SampleRate: sampleRate})
	if err != nil {
		return 0, false
	}

	res := e.Analyze(block)

	return res.Frequency, res.Voiced
}

// Analyze runs detection on one block. Blocks shorter than four samples or
// below the silence gate yield an unvoiced result, never an error. The
// block is only read; the estimator does not retain it.
func (e *Estimator) Analyze(block []float64) Result {
	n := len(block)
	if n < minBlockLength {
		return Result{}
	}

	level := rms(block)
	if level < e.cfg.SilenceRMS {
		return Result{RMS: level}
	}

	if e.cfg.UseFFT {
		if curve, err := similarityCurve(block); err == nil {
			freq, ok := e.scan(n, func(offset int) float64 { return curve[offset] })
			return Result{Frequency: freq, RMS: level, Voiced: ok}
		}
	}

	half := n / 2
	freq, ok := e.scan(n, func(offset int) float64 {
		return directSimilarity(block, offset, half)
	})

	return Result{Frequency: freq, RMS: level, Voiced: ok}
}

// scan walks lags from 2 to len/2, tracking the best similarity seen. The
// scan terminates at the first descending step after a peak above
// MinCorrelation and reports the best lag so far; a scan that runs to
// completion only reports a pitch if its best similarity clears
// AcceptCorrelation.
func (e *Estimator) scan(n int, similarity func(offset int) float64) (float64, bool) {
	var (
		best       float64
		bestOffset int
		qualified  bool
	)

	// A lag of zero matches perfectly, so the scan begins on a descending
	// baseline; a qualifying peak must first rise back above it.
	last := 1.0

	for offset := minOffset; offset <= n/2; offset++ {
		corr := similarity(offset)

		if corr > e.cfg.MinCorrelation && corr > last {
			qualified = true

			if corr > best {
				best = corr
				bestOffset = offset
			}
		} else if qualified {
			// First descending step after a qualifying peak: the earliest
			// strong periodicity is the fundamental for monophonic input.
			return e.cfg.SampleRate / float64(bestOffset), true
		}

		last = corr
	}

	if best > e.cfg.AcceptCorrelation {
		return e.cfg.SampleRate / float64(bestOffset), true
	}

	return 0, false
}

// directSimilarity measures self-similarity at one lag as one minus the
// mean absolute difference over the first half of the block, so 1 means a
// perfect period match and values fall off toward -1 for anti-phase lags.
func directSimilarity(block []float64, offset, half int) float64 {
	var diff float64

	for i := 0; i < half; i++ {
		diff += math.Abs(block[i] - block[i+offset])
	}

	return 1 - diff/float64(half)
}

func rms(block []float64) float64 {
	var sumSq float64
	for _, x := range block {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(block)))
}

func normalizeConfig(cfg Config) Config {
	if cfg.SilenceRMS <= 0 {
		cfg.SilenceRMS = defaultSilenceRMS
	}

	if cfg.MinCorrelation <= 0 {
		cfg.MinCorrelation = defaultMinCorrelation
	}

	if cfg.AcceptCorrelation <= 0 {
		cfg.AcceptCorrelation = defaultAcceptCorrelation
	}

	return cfg
}
