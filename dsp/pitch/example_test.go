package pitch_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pitch/dsp/pitch"
)

func ExampleEstimate() {
	sampleRate := 44100.0

	// One block of a 441 Hz sine, a hair above concert A.
	block := make([]float64, 2048)
	for i := range block {
		block[i] = 0.8 * math.Sin(2*math.Pi*441*float64(i)/sampleRate)
	}

	freq, ok := pitch.Estimate(block, sampleRate)

	fmt.Printf("voiced=%v freq=%.0f Hz\n", ok, freq)
	// Output:
	// voiced=true freq=441 Hz
}
