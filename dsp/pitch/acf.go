package pitch

import (
	"errors"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// errFlatSignal reports a block with no energy at lag zero; the silence
// gate normally catches these before the curve is computed.
var errFlatSignal = errors.New("pitch: no energy in block")

// similarityCurve computes the normalized autocorrelation of the block for
// lags 0..len/2 via a zero-padded FFT (Wiener-Khinchin). The curve is
// unbiased: each lag is rescaled by n/(n-lag) to undo the linear
// autocorrelation taper, so a perfectly periodic block scores close to 1
// at its period regardless of how late in the scan it falls.
func similarityCurve(block []float64) ([]float64, error) {
	n := len(block)

	fftSize := nextPowerOf2(2 * n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, fftSize)
	for i, x := range block {
		in[i] = complex(x, 0)
	}

	out := make([]complex128, fftSize)

	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	re := make([]float64, fftSize)
	im := make([]float64, fftSize)

	for i, c := range out {
		re[i] = real(c)
		im[i] = imag(c)
	}

	power := make([]float64, fftSize)
	vecmath.Power(power, re, im)

	for i := range out {
		out[i] = complex(power[i], 0)
	}

	if err := plan.Inverse(in, out); err != nil {
		return nil, err
	}

	zeroLag := real(in[0])
	if zeroLag <= 0 {
		return nil, errFlatSignal
	}

	curve := make([]float64, n/2+1)
	for k := range curve {
		curve[k] = real(in[k]) / zeroLag * float64(n) / float64(n-k)
	}

	return curve, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
