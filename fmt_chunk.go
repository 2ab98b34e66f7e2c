package nwav

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

// fmtBodySize is the size of the canonical PCM fmt record.
const fmtBodySize = 16

// FmtBody is the decoded fmt chunk. Extension bytes after the first 16 are
// not interpreted.
type FmtBody struct {
	CompressionCode uint16
	NumChannels     uint16
	SampleRate      uint32
	ByteRate        uint32
	BlockAlign      uint16
	BitsPerSample   uint16
}

// ChunkID implements DecodedChunk.
func (*FmtBody) ChunkID() [4]byte { return riff.FmtID }

// decodeFmtBody reads the 16-byte fmt record field by field from payload,
// which may start at any offset of the source buffer.
func decodeFmtBody(payload []byte) (*FmtBody, error) {
	if len(payload) < fmtBodySize {
		return nil, fmt.Errorf("%w: fmt chunk has %d bytes, need %d", ErrMalformedInput, len(payload), fmtBodySize)
	}

	return &FmtBody{
		CompressionCode: binary.LittleEndian.Uint16(payload[0:2]),
		NumChannels:     binary.LittleEndian.Uint16(payload[2:4]),
		SampleRate:      binary.LittleEndian.Uint32(payload[4:8]),
		ByteRate:        binary.LittleEndian.Uint32(payload[8:12]),
		BlockAlign:      binary.LittleEndian.Uint16(payload[12:14]),
		BitsPerSample:   binary.LittleEndian.Uint16(payload[14:16]),
	}, nil
}

// Bytes serializes f back into its on-disk little-endian layout.
func (f *FmtBody) Bytes() [fmtBodySize]byte {
	var out [fmtBodySize]byte
	if f == nil {
		return out
	}

	binary.LittleEndian.PutUint16(out[0:2], f.CompressionCode)
	binary.LittleEndian.PutUint16(out[2:4], f.NumChannels)
	binary.LittleEndian.PutUint32(out[4:8], f.SampleRate)
	binary.LittleEndian.PutUint32(out[8:12], f.ByteRate)
	binary.LittleEndian.PutUint16(out[12:14], f.BlockAlign)
	binary.LittleEndian.PutUint16(out[14:16], f.BitsPerSample)

	return out
}

// AudioFormat returns the channel count and sample rate as a go-audio format.
func (f *FmtBody) AudioFormat() *audio.Format {
	if f == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(f.NumChannels),
		SampleRate:  int(f.SampleRate),
	}
}

// Duration returns the play time of dataLength bytes of audio at the
// declared byte rate, or 0 when the byte rate is unknown.
func (f *FmtBody) Duration(dataLength int) time.Duration {
	if f == nil {
		return 0
	}

	return durationFromBytes(dataLength, f.ByteRate)
}

func (f *FmtBody) String() string {
	return fmt.Sprintf("compression=%d channels=%d sample_rate=%d byte_rate=%d block_align=%d bits_per_sample=%d",
		f.CompressionCode, f.NumChannels, f.SampleRate, f.ByteRate, f.BlockAlign, f.BitsPerSample)
}
