package nwav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

type walkConfig struct {
	wordAligned bool
	registry    *ChunkRegistry
}

// WalkOption configures how top-level chunks are walked.
type WalkOption func(*walkConfig)

// WithWordAlignment skips the pad byte that follows odd-length top-level
// chunks. By default no padding is applied between top-level chunks, which
// misreads files that pad fmt or custom chunks to an even length.
func WithWordAlignment() WalkOption {
	return func(c *walkConfig) {
		c.wordAligned = true
	}
}

// WithRegistry makes a File decode chunks through r instead of the default
// registry. It has no effect on Chunks or NewWalker.
func WithRegistry(r *ChunkRegistry) WalkOption {
	return func(c *walkConfig) {
		c.registry = r
	}
}

func newWalkConfig(opts []WalkOption) walkConfig {
	var cfg walkConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Walker enumerates the top-level chunks of a buffer one at a time.
// A Walker is not safe for concurrent use; create one per goroutine.
type Walker struct {
	buf    []byte
	offset int
	cfg    walkConfig
	err    error
}

// NewWalker returns a Walker positioned at the start of buf.
func NewWalker(buf []byte, opts ...WalkOption) *Walker {
	return &Walker{buf: buf, cfg: newWalkConfig(opts)}
}

// Next returns the next chunk descriptor. It returns io.EOF once the end of
// the buffer is reached. Any other error wraps ErrMalformedInput and is
// returned again by every later call.
func (w *Walker) Next() (ChunkDescriptor, error) {
	if w.err != nil {
		return ChunkDescriptor{}, w.err
	}

	if w.offset >= len(w.buf) {
		w.err = io.EOF
		return ChunkDescriptor{}, w.err
	}

	desc, next, err := w.step()
	if err != nil {
		w.err = err
		return ChunkDescriptor{}, err
	}

	w.offset = next

	return desc, nil
}

func (w *Walker) step() (ChunkDescriptor, int, error) {
	hdr, err := readChunkHeader(w.buf, w.offset)
	if err != nil {
		return ChunkDescriptor{}, 0, err
	}

	// RIFF's size spans the whole file; only the form type belongs to it.
	length := uint64(hdr.size)
	if hdr.id == riff.RiffID {
		length = riffFormTypeSize
	}

	dataOffset := w.offset + chunkHeaderSize
	if length > uint64(len(w.buf)-dataOffset) {
		return ChunkDescriptor{}, 0, fmt.Errorf("%w: chunk %q at offset %d declares %d bytes, %d left",
			ErrMalformedInput, lossyText(hdr.id[:]), w.offset, length, len(w.buf)-dataOffset)
	}

	desc := ChunkDescriptor{
		ID:         hdr.id,
		Name:       lossyText(hdr.id[:]),
		DataOffset: dataOffset,
		DataLength: int(length),
	}

	next := desc.End()
	if w.cfg.wordAligned && hdr.id != riff.RiffID && length%2 == 1 {
		next++
	}

	return desc, next, nil
}

// Chunks returns the descriptors of all top-level chunks in buf, in file
// order. Calling it twice on the same buffer yields the same result.
// No descriptors are returned when the walk fails.
func Chunks(buf []byte, opts ...WalkOption) ([]ChunkDescriptor, error) {
	w := NewWalker(buf, opts...)

	var chunks []ChunkDescriptor

	for {
		desc, err := w.Next()
		if errors.Is(err, io.EOF) {
			return chunks, nil
		}

		if err != nil {
			return nil, err
		}

		chunks = append(chunks, desc)
	}
}
