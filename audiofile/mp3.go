package audiofile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// ReadMP3 loads an MP3 file as a mono clip. go-mp3 always emits 16-bit
// little-endian stereo PCM; the two channels are averaged.
func ReadMP3(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audiofile: %w", err)
	}
	defer f.Close()

	dec, err := gomp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("audiofile: %w", err)
	}

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("audiofile: %w", err)
	}

	const frameBytes = 4 // 2 channels * int16

	frames := len(data) / frameBytes
	if frames == 0 {
		return nil, ErrEmptyClip
	}

	samples := make([]float64, frames)
	for i := range samples {
		left := int16(binary.LittleEndian.Uint16(data[frameBytes*i:]))
		right := int16(binary.LittleEndian.Uint16(data[frameBytes*i+2:]))

		samples[i] = (float64(left) + float64(right)) / 2 / 32768
	}

	return &Clip{Samples: samples, SampleRate: dec.SampleRate()}, nil
}
