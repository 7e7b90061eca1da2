package note

import (
	"fmt"
	"strconv"
	"strings"
)

// letterClass maps natural note letters to their pitch class index.
var letterClass = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Parse resolves a scientific pitch name such as "A4" or "c#5" to its note
// identity. Matching is case-insensitive and accepts sharps only; flats are
// spelled as the enharmonic sharp. Callers that can degrade gracefully
// should fall back to the 440 Hz reference on ErrBadName.
func Parse(name string) (Note, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if len(s) < 2 {
		return Note{}, fmt.Errorf("%w: %q", ErrBadName, name)
	}

	pc, ok := letterClass[s[0]]
	if !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrBadName, name)
	}

	rest := s[1:]
	if rest[0] == '#' {
		pc++
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Note{}, fmt.Errorf("%w: %q", ErrBadName, name)
	}

	// B# wraps into the next octave's C; FromMIDI renormalizes the name.
	return FromMIDI(12*(octave+1) + pc), nil
}

// ParseFrequency resolves a pitch name directly to its tempered frequency.
func ParseFrequency(name string) (float64, error) {
	n, err := Parse(name)
	if err != nil {
		return 0, err
	}

	return n.Frequency(), nil
}
