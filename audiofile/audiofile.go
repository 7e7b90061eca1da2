package audiofile

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Clip holds decoded mono audio.
type Clip struct {
	Samples    []float64 // normalized to [-1, 1]
	SampleRate int       // Hz
}

// Duration returns the clip length in time.
func (c *Clip) Duration() time.Duration {
	if c == nil || c.SampleRate <= 0 {
		return 0
	}

	seconds := float64(len(c.Samples)) / float64(c.SampleRate)

	return time.Duration(seconds * float64(time.Second))
}

// Read loads a clip, dispatching on the file extension. Supported
// extensions are .wav and .mp3.
func Read(path string) (*Clip, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return ReadWAV(path)
	case ".mp3":
		return ReadMP3(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// mixdown averages interleaved frames into mono and rescales by scale.
func mixdown(data []int, channels int, scale float64) []float64 {
	if channels < 1 {
		channels = 1
	}

	frames := len(data) / channels
	samples := make([]float64, frames)

	for i := range samples {
		var sum float64
		for ch := 0; ch < channels; ch++ {
			sum += float64(data[i*channels+ch])
		}

		samples[i] = sum / float64(channels) * scale
	}

	return samples
}
