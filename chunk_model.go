package nwav

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

const (
	// chunkHeaderSize is the on-disk size of a tag + little-endian length.
	chunkHeaderSize = 8
	// riffFormTypeSize is the payload length reported for the RIFF chunk.
	riffFormTypeSize = 4
)

// chunkHeader is the 8-byte record in front of every chunk.
type chunkHeader struct {
	id   [4]byte
	size uint32
}

func readChunkHeader(buf []byte, offset int) (chunkHeader, error) {
	var hdr chunkHeader

	if offset < 0 || len(buf)-offset < chunkHeaderSize {
		return hdr, fmt.Errorf("%w: chunk header at offset %d needs %d bytes, %d left",
			ErrMalformedInput, offset, chunkHeaderSize, max(len(buf)-offset, 0))
	}

	copy(hdr.id[:], buf[offset:offset+4])
	hdr.size = binary.LittleEndian.Uint32(buf[offset+4 : offset+8])

	return hdr, nil
}

// ChunkDescriptor locates one chunk payload inside the buffer it was read from.
type ChunkDescriptor struct {
	// ID holds the raw tag bytes. Dispatch compares these, never Name.
	ID [4]byte
	// Name is ID decoded as text; invalid UTF-8 is replaced by U+FFFD.
	Name string
	// DataOffset is the payload start, right after the 8-byte header.
	DataOffset int
	// DataLength is the payload length. For RIFF it is always 4.
	DataLength int
}

// End returns the offset right after the payload.
func (c ChunkDescriptor) End() int {
	return c.DataOffset + c.DataLength
}

// Payload returns the payload bytes of c within buf. The returned slice
// shares memory with buf and has its capacity capped at the payload end.
func (c ChunkDescriptor) Payload(buf []byte) ([]byte, error) {
	if c.DataOffset < 0 || c.DataLength < 0 || c.DataOffset > len(buf) || len(buf)-c.DataOffset < c.DataLength {
		return nil, fmt.Errorf("%w: chunk %q payload [%d, +%d) exceeds buffer of %d bytes",
			ErrMalformedInput, c.Name, c.DataOffset, c.DataLength, len(buf))
	}

	return buf[c.DataOffset:c.End():c.End()], nil
}

// RiffChunk wraps the payload of c as a go-audio riff.Chunk so it can be
// handed to code built on github.com/go-audio/riff, e.g.
// (*riff.Chunk).DecodeWavHeader.
func (c ChunkDescriptor) RiffChunk(buf []byte) (*riff.Chunk, error) {
	payload, err := c.Payload(buf)
	if err != nil {
		return nil, err
	}

	return &riff.Chunk{
		ID:   c.ID,
		Size: c.DataLength,
		R:    bytes.NewReader(payload),
	}, nil
}

func (c ChunkDescriptor) String() string {
	return fmt.Sprintf("%s @%d (%d bytes)", c.Name, c.DataOffset, c.DataLength)
}
