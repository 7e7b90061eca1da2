package audiofile

import "errors"

// Errors returned when loading or storing clips.
var (
	ErrUnsupportedFormat = errors.New("audiofile: unsupported file format")
	ErrNotWAV            = errors.New("audiofile: not a valid WAV file")
	ErrEmptyClip         = errors.New("audiofile: clip holds no samples")
	ErrBadSampleRate     = errors.New("audiofile: sample rate must be positive")
)
