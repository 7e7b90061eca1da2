// Package note maps between frequencies, MIDI note numbers, and scientific
// pitch names using twelve-tone equal temperament anchored at A4 = 440 Hz.
//
// The mapping follows the standard MIDI convention: note number 69 is A4,
// note number 60 is C4, and each step is one semitone. Deviations from the
// nearest tempered pitch are reported in cents (hundredths of a semitone).
//
// # Usage
//
// Map a detected frequency to its nearest note:
//
//	n, err := note.FromFrequency(442.1)
//	// n.String() == "A4", n.Cents == 8
//
// Resolve a pitch name to its reference frequency:
//
//	n, err := note.Parse("C#5")
//	freq := n.Frequency() // 554.37 Hz
package note
