package nwav

import (
	"errors"
	"fmt"

	"github.com/go-audio/riff"
)

// ChunkHandler decodes the payload of the chunk types it accepts.
// Decode returns nil, nil when the payload is valid but has nothing to
// interpret.
type ChunkHandler interface {
	CanHandle(chunkID [4]byte) bool
	Decode(payload []byte) (DecodedChunk, error)
}

// ChunkRegistry resolves chunks to handlers. The first handler that accepts
// a chunk ID wins. A registry must not be modified while it is used for
// decoding.
type ChunkRegistry struct {
	handlers []ChunkHandler
}

// NewChunkRegistry returns a registry with the RIFF, fmt, LIST and data
// handlers installed.
func NewChunkRegistry() *ChunkRegistry {
	return &ChunkRegistry{
		handlers: []ChunkHandler{
			&riffChunkHandler{},
			&fmtChunkHandler{},
			&listChunkHandler{},
			&dataChunkHandler{},
		},
	}
}

var defaultRegistry = NewChunkRegistry()

// Register appends a handler to the registry.
func (r *ChunkRegistry) Register(handler ChunkHandler) {
	if r == nil || handler == nil {
		return
	}

	r.handlers = append(r.handlers, handler)
}

// Decode interprets the chunk described by desc. It returns nil, nil for
// chunk types no handler accepts.
func (r *ChunkRegistry) Decode(buf []byte, desc ChunkDescriptor) (DecodedChunk, error) {
	if r == nil {
		return nil, nil
	}

	payload, err := desc.Payload(buf)
	if err != nil {
		return nil, err
	}

	for _, handler := range r.handlers {
		if !handler.CanHandle(desc.ID) {
			continue
		}

		chunk, err := handler.Decode(payload)
		if err != nil {
			return nil, fmt.Errorf("decode chunk %q at offset %d: %w", desc.Name, desc.DataOffset, err)
		}

		return chunk, nil
	}

	return nil, nil
}

type riffChunkHandler struct{}

func (h *riffChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == riff.RiffID
}

func (h *riffChunkHandler) Decode(payload []byte) (DecodedChunk, error) {
	return decodeRiffBody(payload)
}

type fmtChunkHandler struct{}

func (h *fmtChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == riff.FmtID
}

func (h *fmtChunkHandler) Decode(payload []byte) (DecodedChunk, error) {
	return decodeFmtBody(payload)
}

type listChunkHandler struct{}

func (h *listChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == CIDList
}

func (h *listChunkHandler) Decode(payload []byte) (DecodedChunk, error) {
	entries, err := ParseInfoList(payload)
	if errors.Is(err, ErrNotInfoList) {
		// TODO: support adtl subchunks
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &ListChunk{Entries: entries}, nil
}

type dataChunkHandler struct{}

func (h *dataChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == riff.DataFormatID
}

func (h *dataChunkHandler) Decode(payload []byte) (DecodedChunk, error) {
	return &DataChunk{Bytes: payload}, nil
}
