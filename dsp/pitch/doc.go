// Package pitch estimates the fundamental frequency of monophonic audio
// blocks, tuned for sung or hummed vocal input.
//
// The detector scans candidate periods (lags) of the block, measuring
// self-similarity as one minus the normalized mean absolute difference
// between the block and a shifted copy of itself. The scan stops at the
// first local similarity maximum above a qualifying threshold: for
// monophonic voice the first strong periodicity is the true fundamental,
// and stopping there is both cheaper and more robust against picking an
// octave-below harmonic later in the scan.
//
// Silence is gated up front by an RMS threshold so that near-silent blocks
// report "no pitch" instead of a spurious low-confidence match. Absence of
// pitch is a value, never an error.
//
// # Usage
//
// One-shot estimation:
//
//	freq, ok := pitch.Estimate(block, 48000)
//
// Reusable estimator with custom thresholds:
//
//	e, err := pitch.NewEstimator(pitch.Config{SampleRate: 48000})
//	res := e.Analyze(block)
//	if res.Voiced {
//	    fmt.Println(res.Frequency)
//	}
package pitch
