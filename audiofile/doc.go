// Package audiofile loads audio clips from disk for offline analysis.
//
// Clips are returned as normalized mono float64 samples in [-1, 1] plus
// the source sample rate, ready to feed the pitch estimator block by
// block. Multi-channel sources are mixed down by averaging. WAV and MP3
// containers are supported; WriteWAV exists so tests and tools can
// round-trip synthetic material without binary fixtures.
package audiofile
