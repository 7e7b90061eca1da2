package audiofile

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cwbudde/algo-pitch/dsp/pitch"
	"github.com/cwbudde/algo-pitch/internal/audiotest"
)

func TestWriteReadWAV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")

	in := &Clip{
		Samples:    audiotest.Sine(440, 0.8, 44100, 44100),
		SampleRate: 44100,
	}

	if err := WriteWAV(path, in); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	out, err := ReadWAV(path)
	if err != nil {
		t.Fatalf("ReadWAV: %v", err)
	}

	if out.SampleRate != in.SampleRate {
		t.Errorf("SampleRate: got %d, want %d", out.SampleRate, in.SampleRate)
	}
	if len(out.Samples) != len(in.Samples) {
		t.Fatalf("length: got %d, want %d", len(out.Samples), len(in.Samples))
	}

	// 16-bit quantization bounds the per-sample error.
	for i := range out.Samples {
		if math.Abs(out.Samples[i]-in.Samples[i]) > 1.0/32768+1e-9 {
			t.Fatalf("sample %d: got %g, want %g", i, out.Samples[i], in.Samples[i])
		}
	}
}

func TestReadWAV_FeedsEstimator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a4.wav")

	clip := &Clip{
		Samples:    audiotest.Sine(440, 0.8, 44100, 4096),
		SampleRate: 44100,
	}

	if err := WriteWAV(path, clip); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	loaded, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	freq, ok := pitch.Estimate(loaded.Samples[:2048], float64(loaded.SampleRate))
	if !ok {
		t.Fatal("no pitch detected in decoded clip")
	}
	if math.Abs(freq-440)/440 > 0.02 {
		t.Errorf("got %.2f Hz, want ~440", freq)
	}
}

func TestClip_Duration(t *testing.T) {
	clip := &Clip{Samples: make([]float64, 22050), SampleRate: 44100}

	if got := clip.Duration(); got != 500*time.Millisecond {
		t.Errorf("Duration: got %v, want 500ms", got)
	}

	var empty *Clip
	if got := empty.Duration(); got != 0 {
		t.Errorf("nil clip Duration: got %v, want 0", got)
	}
}

func TestRead_UnsupportedExtension(t *testing.T) {
	if _, err := Read("clip.flac"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}

func TestReadWAV_NotWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.wav")
	if err := os.WriteFile(path, []byte("definitely not riff data"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := ReadWAV(path); !errors.Is(err, ErrNotWAV) {
		t.Errorf("got %v, want ErrNotWAV", err)
	}
}

func TestReadWAV_Missing(t *testing.T) {
	if _, err := ReadWAV(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWriteWAV_Validation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")

	if err := WriteWAV(path, nil); !errors.Is(err, ErrEmptyClip) {
		t.Errorf("nil clip: got %v, want ErrEmptyClip", err)
	}

	if err := WriteWAV(path, &Clip{Samples: []float64{0.5}}); !errors.Is(err, ErrBadSampleRate) {
		t.Errorf("zero rate: got %v, want ErrBadSampleRate", err)
	}
}

func TestWriteWAV_ClipsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hot.wav")

	in := &Clip{Samples: []float64{2.0, -2.0, 0}, SampleRate: 8000}
	if err := WriteWAV(path, in); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	out, err := ReadWAV(path)
	if err != nil {
		t.Fatalf("ReadWAV: %v", err)
	}

	if out.Samples[0] < 0.99 || out.Samples[0] > 1 {
		t.Errorf("sample 0: got %g, want ~1", out.Samples[0])
	}
	if out.Samples[1] > -0.99 || out.Samples[1] < -1 {
		t.Errorf("sample 1: got %g, want ~-1", out.Samples[1])
	}
}
