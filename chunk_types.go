package nwav

import (
	"fmt"

	"github.com/go-audio/riff"
)

// CIDList is the chunk ID for a LIST chunk.
var CIDList = [4]byte{'L', 'I', 'S', 'T'}

// CIDInfo is the LIST form type holding INFO metadata.
var CIDInfo = [4]byte{'I', 'N', 'F', 'O'}

// DecodedChunk is the typed view of a chunk payload. It is one of
// *RiffBody, *FmtBody, *ListChunk or *DataChunk, or a type returned by a
// custom ChunkHandler.
type DecodedChunk interface {
	// ChunkID returns the tag of the chunk the value was decoded from.
	ChunkID() [4]byte
}

// RiffBody is the decoded RIFF chunk.
type RiffBody struct {
	// FormType is the container form, "WAVE" for wav files.
	FormType [4]byte
}

// ChunkID implements DecodedChunk.
func (*RiffBody) ChunkID() [4]byte { return riff.RiffID }

func (r *RiffBody) String() string {
	return lossyText(r.FormType[:])
}

func decodeRiffBody(payload []byte) (*RiffBody, error) {
	if len(payload) < riffFormTypeSize {
		return nil, fmt.Errorf("%w: RIFF chunk has %d bytes, need %d", ErrMalformedInput, len(payload), riffFormTypeSize)
	}

	body := &RiffBody{}
	copy(body.FormType[:], payload[:riffFormTypeSize])

	return body, nil
}

// DataChunk is a view over the audio bytes of a data chunk.
type DataChunk struct {
	// Bytes aliases the source buffer. Its capacity ends at the chunk end so
	// appending to it never overwrites the following chunk.
	Bytes []byte
}

// ChunkID implements DecodedChunk.
func (*DataChunk) ChunkID() [4]byte { return riff.DataFormatID }

func (d *DataChunk) String() string {
	return fmt.Sprintf("%d bytes", len(d.Bytes))
}
