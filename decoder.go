package nwav

import (
	"errors"
	"io"
)

// Decode interprets the chunk described by desc, which must come from buf.
//
// The result is a *RiffBody, *FmtBody, *ListChunk or *DataChunk depending on
// the chunk ID. Chunk types without a decoder, and LIST chunks that are not
// INFO lists, yield nil and no error. A descriptor or payload that does not
// fit in buf yields an error wrapping ErrMalformedInput.
func Decode(buf []byte, desc ChunkDescriptor) (DecodedChunk, error) {
	return defaultRegistry.Decode(buf, desc)
}

// DecodeByName walks buf and decodes the first chunk whose raw tag equals
// name, e.g. "fmt " with its trailing space. It returns nil, nil when no
// such chunk exists.
func DecodeByName(buf []byte, name string) (DecodedChunk, error) {
	return decodeByName(buf, name, defaultRegistry)
}

func decodeByName(buf []byte, name string, registry *ChunkRegistry, opts ...WalkOption) (DecodedChunk, error) {
	desc, err := findChunk(buf, name, opts...)
	if err != nil {
		if errors.Is(err, ErrChunkNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return registry.Decode(buf, desc)
}

// findChunk returns the first descriptor whose raw tag equals name, or
// ErrChunkNotFound.
func findChunk(buf []byte, name string, opts ...WalkOption) (ChunkDescriptor, error) {
	w := NewWalker(buf, opts...)

	for {
		desc, err := w.Next()
		if errors.Is(err, io.EOF) {
			return ChunkDescriptor{}, ErrChunkNotFound
		}

		if err != nil {
			return ChunkDescriptor{}, err
		}

		if string(desc.ID[:]) == name {
			return desc, nil
		}
	}
}
