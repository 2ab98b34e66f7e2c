package nwav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"testing"
)

type testChunk struct {
	id   string
	size uint32
	data []byte
}

type infoPair struct {
	key   string
	value string
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

// parseWavChunks is an independent scanner that pads every chunk to an even
// length. It is used as a reference for WithWordAlignment.
func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < 12 {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	chunks := make([]testChunk, 0)

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		payload := append([]byte(nil), data[offset:end]...)
		chunks = append(chunks, testChunk{id: id, size: size, data: payload})

		offset = end
		if size%2 == 1 {
			offset++
		}
	}

	return chunks, nil
}

// chunkBytes encodes one chunk without any padding.
func chunkBytes(id string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload))
	out = append(out, id...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))

	return append(out, payload...)
}

// riffFile prefixes the already encoded chunks with a RIFF/WAVE header whose
// size covers the rest of the file.
func riffFile(chunks ...[]byte) []byte {
	var body []byte
	for _, c := range chunks {
		body = append(body, c...)
	}

	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, uint32(4+len(body)))
	out = append(out, "WAVE"...)

	return append(out, body...)
}

func fmtPayload(compression, channels uint16, rate, byteRate uint32, blockAlign, bits uint16) []byte {
	out := binary.LittleEndian.AppendUint16(nil, compression)
	out = binary.LittleEndian.AppendUint16(out, channels)
	out = binary.LittleEndian.AppendUint32(out, rate)
	out = binary.LittleEndian.AppendUint32(out, byteRate)
	out = binary.LittleEndian.AppendUint16(out, blockAlign)

	return binary.LittleEndian.AppendUint16(out, bits)
}

func cdQualityFmt() []byte {
	return fmtPayload(1, 2, 44100, 176400, 4, 16)
}

// infoPayload builds an INFO list body with NUL terminated, word aligned values.
func infoPayload(pairs ...infoPair) []byte {
	out := []byte("INFO")
	for _, p := range pairs {
		size := len(p.value) + 1
		out = append(out, p.key...)
		out = binary.LittleEndian.AppendUint32(out, uint32(size))
		out = append(out, p.value...)
		out = append(out, 0)

		if size%2 == 1 {
			out = append(out, 0)
		}
	}

	return out
}

func audioBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*7 + 3)
	}

	return out
}

func mustChunks(t *testing.T, buf []byte, opts ...WalkOption) []ChunkDescriptor {
	t.Helper()

	chunks, err := Chunks(buf, opts...)
	if err != nil {
		t.Fatalf("walk chunks: %v", err)
	}

	return chunks
}

func chunkNames(chunks []ChunkDescriptor) []string {
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, c.Name)
	}

	return out
}
