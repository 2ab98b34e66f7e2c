// Package nwav parses RIFF/WAV containers that are fully loaded in memory.
//
// The package walks the top-level chunks of a byte buffer without copying
// audio payload and decodes the well-known chunk bodies into typed views:
//
//   - RIFF: the container form type (usually "WAVE")
//   - fmt : the canonical 16-byte PCM format record
//   - LIST: INFO key/value metadata
//   - data: a borrowed view over the audio bytes
//
// Every other chunk is reported by the walker but decodes to nil.
//
// Truncated or inconsistent input never panics; it is reported as an error
// wrapping ErrMalformedInput. All functions are read-only over the buffer,
// so one buffer may be parsed by several goroutines at once.
//
// Views returned by the decoder (DataChunk.Bytes) share memory with the
// buffer passed in; callers must not modify the buffer while they use them.
package nwav
