package note

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by note mapping and parsing.
var (
	ErrBadName      = errors.New("note: unrecognized note name")
	ErrBadFrequency = errors.New("note: frequency must be positive and finite")
)

// Equal-temperament tuning reference: A4 = MIDI note 69 = 440 Hz.
const (
	ReferenceFrequency = 440.0
	ReferenceMIDI      = 69
)

// names lists the twelve pitch classes in chromatic order starting at C,
// aligned with the MIDI convention (MIDI 60 = C4).
var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Note identifies an equal-tempered pitch together with the signed cents
// deviation of the frequency it was derived from.
type Note struct {
	MIDI   int
	Name   string
	Octave int
	Cents  int
}

// String renders the note identity in scientific pitch notation ("A4", "C#5").
// The cents deviation is not part of the name.
func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Name, n.Octave)
}

// Frequency returns the equal-tempered frequency of the note identity,
// ignoring the cents deviation.
func (n Note) Frequency() float64 {
	return MIDIFrequency(n.MIDI)
}

// MIDIFrequency returns the equal-tempered frequency of a MIDI note number:
// 440 * 2^((midi-69)/12).
func MIDIFrequency(midi int) float64 {
	return ReferenceFrequency * mathExp2(float64(midi-ReferenceMIDI)/12)
}

// FromFrequency maps a frequency in Hz to the nearest equal-tempered note.
// Cents carries the deviation from that note, floored to an integer, so
// exact tempered frequencies map to 0 cents and flat inputs are negative.
// Non-positive or non-finite frequencies are a caller error.
func FromFrequency(freq float64) (Note, error) {
	if freq <= 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return Note{}, fmt.Errorf("%w: %g", ErrBadFrequency, freq)
	}

	midi := int(math.Round(12*mathLog2(freq/ReferenceFrequency))) + ReferenceMIDI
	cents := int(math.Floor(1200 * mathLog2(freq/MIDIFrequency(midi))))

	return Note{
		MIDI:   midi,
		Name:   names[pitchClass(midi)],
		Octave: octaveOf(midi),
		Cents:  cents,
	}, nil
}

// FromMIDI builds the note identity of a MIDI note number with zero cents.
func FromMIDI(midi int) Note {
	return Note{
		MIDI:   midi,
		Name:   names[pitchClass(midi)],
		Octave: octaveOf(midi),
	}
}

func pitchClass(midi int) int {
	pc := midi % 12
	if pc < 0 {
		pc += 12
	}

	return pc
}

// octaveOf applies the MIDI-to-scientific octave convention (MIDI 60 = C4).
// Floor division keeps the convention intact below MIDI 0.
func octaveOf(midi int) int {
	return int(math.Floor(float64(midi)/12)) - 1
}
