package audiofile

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ReadWAV loads a PCM WAV file as a mono clip.
func ReadWAV(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audiofile: %w", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrNotWAV, path)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audiofile: %w", err)
	}

	if buf == nil || len(buf.Data) == 0 {
		return nil, ErrEmptyClip
	}

	bitDepth := int(d.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}

	scale := 1.0 / float64(int(1)<<(bitDepth-1))

	return &Clip{
		Samples:    mixdown(buf.Data, buf.Format.NumChannels, scale),
		SampleRate: buf.Format.SampleRate,
	}, nil
}

// WriteWAV stores a mono clip as 16-bit PCM. Samples outside [-1, 1] are
// clipped.
func WriteWAV(path string, clip *Clip) error {
	if clip == nil || len(clip.Samples) == 0 {
		return ErrEmptyClip
	}

	if clip.SampleRate <= 0 {
		return ErrBadSampleRate
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audiofile: %w", err)
	}

	e := wav.NewEncoder(f, clip.SampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: clip.SampleRate},
		Data:           make([]int, len(clip.Samples)),
		SourceBitDepth: 16,
	}

	for i, x := range clip.Samples {
		v := int(math.Round(x * 32767))
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}

		buf.Data[i] = v
	}

	if err := e.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("audiofile: %w", err)
	}

	if err := e.Close(); err != nil {
		f.Close()
		return fmt.Errorf("audiofile: %w", err)
	}

	return f.Close()
}
