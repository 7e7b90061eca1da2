// Package session wires the pitch, note, score, and beat packages into a
// single practice session with an explicit start/stop lifecycle.
//
// A Session is driven cooperatively by a host loop: feed it microphone
// blocks through ProcessBlock as they arrive, and call Pump once per
// render tick to forward pending metronome clicks to the audio sink. The
// session owns the tempo and scheduler cursor; the caller owns the audio
// block for the duration of each ProcessBlock call.
//
// The audio output boundary is the Sink interface. The session only
// supplies timestamps and frequencies; the sink owns sound generation.
package session
