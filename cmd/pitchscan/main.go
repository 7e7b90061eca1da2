// Command pitchscan reports the detected pitch of an audio file block by
// block, with the note name, cents deviation, and tuning accuracy of each
// voiced block.
//
// Usage:
//
//	pitchscan [flags] file.{wav,mp3}
//
// It can also answer one-shot lookups without a file:
//
//	pitchscan -note C#5
//	pitchscan -freq 452.3
//
// Examples:
//
//	pitchscan take.wav
//	pitchscan -block 4096 -tolerance 10 take.wav
//	pitchscan -bpm 90 take.wav
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-pitch/audiofile"
	"github.com/cwbudde/algo-pitch/beat"
	"github.com/cwbudde/algo-pitch/dsp/pitch"
	"github.com/cwbudde/algo-pitch/music/note"
	"github.com/cwbudde/algo-pitch/music/score"
)

func main() {
	blockSize := flag.Int("block", 2048, "analysis block length in samples")
	tolerance := flag.Int("tolerance", score.DefaultTolerance, "in-tune band in cents")
	bpm := flag.Float64("bpm", 0, "also print the metronome click grid at this tempo")
	useFFT := flag.Bool("fft", false, "use the FFT-based similarity curve")
	noteName := flag.String("note", "", "print the frequency of a note name and exit")
	freq := flag.Float64("freq", 0, "print the nearest note of a frequency and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pitchscan [flags] file.{wav,mp3}\n\n")
		fmt.Fprintf(os.Stderr, "Reports detected pitch per block of an audio file.\n")
		fmt.Fprintf(os.Stderr, "\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *noteName != "" {
		lookupNote(*noteName)
		return
	}

	if *freq != 0 {
		lookupFrequency(*freq)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := scanFile(flag.Arg(0), *blockSize, *tolerance, *bpm, *useFFT); err != nil {
		fmt.Fprintf(os.Stderr, "pitchscan: %v\n", err)
		os.Exit(1)
	}
}

func lookupNote(name string) {
	n, err := note.Parse(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pitchscan: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s\tMIDI %d\t%.2f Hz\n", n, n.MIDI, n.Frequency())
}

func lookupFrequency(freq float64) {
	n, err := note.FromFrequency(freq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pitchscan: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%.2f Hz\t%s\t%+d cents\taccuracy %d\n", freq, n, n.Cents, score.Rate(n.Cents))
}

func scanFile(path string, blockSize, tolerance int, bpm float64, useFFT bool) error {
	clip, err := audiofile.Read(path)
	if err != nil {
		return err
	}

	est, err := pitch.NewEstimator(pitch.Config{
		SampleRate: float64(clip.SampleRate),
		UseFFT:     useFFT,
	})
	if err != nil {
		return err
	}

	scorer := score.NewScorer(tolerance)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "time\tfreq\tnote\tcents\taccuracy")

	for start := 0; start+blockSize <= len(clip.Samples); start += blockSize {
		at := time.Duration(float64(start) / float64(clip.SampleRate) * float64(time.Second))

		res := est.Analyze(clip.Samples[start : start+blockSize])
		if !res.Voiced {
			fmt.Fprintf(w, "%v\t-\t-\t-\t0\n", at.Round(time.Millisecond))
			continue
		}

		n, err := note.FromFrequency(res.Frequency)
		if err != nil {
			continue
		}

		fmt.Fprintf(w, "%v\t%.1f Hz\t%s\t%+d\t%d\n",
			at.Round(time.Millisecond), res.Frequency, n, n.Cents, scorer.Rate(n.Cents))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if bpm > 0 {
		return printClickGrid(bpm, clip.Duration())
	}

	return nil
}

// printClickGrid prints the drift-free metronome grid the scheduler would
// realize over the clip's duration.
func printClickGrid(bpm float64, total time.Duration) error {
	tempo, err := beat.NewTempo(bpm)
	if err != nil {
		return err
	}

	s, err := beat.NewScheduler(tempo, beat.Config{LeadTime: time.Nanosecond})
	if err != nil {
		return err
	}

	s.Start(0)

	fmt.Printf("\nclick grid at %g bpm:\n", bpm)

	for _, tick := range s.Plan(total) {
		fmt.Printf("  %v\n", tick.Round(time.Millisecond))
	}

	return nil
}
