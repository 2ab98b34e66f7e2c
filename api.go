package nwav

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

// File is a parse session over one in-memory RIFF/WAV buffer. It holds no
// mutable state, so its methods may be called from several goroutines.
type File struct {
	buf      []byte
	opts     []WalkOption
	registry *ChunkRegistry
}

// New returns a File reading from buf. The caller must not modify buf while
// the File or any view it returned is in use.
func New(buf []byte, opts ...WalkOption) *File {
	cfg := newWalkConfig(opts)

	registry := cfg.registry
	if registry == nil {
		registry = defaultRegistry
	}

	return &File{buf: buf, opts: opts, registry: registry}
}

// Chunks returns the descriptors of all top-level chunks.
func (f *File) Chunks() ([]ChunkDescriptor, error) {
	return Chunks(f.buf, f.opts...)
}

// ReadChunk decodes the chunk described by desc.
func (f *File) ReadChunk(desc ChunkDescriptor) (DecodedChunk, error) {
	return f.registry.Decode(f.buf, desc)
}

// ReadChunkByName decodes the first chunk whose tag equals name. It returns
// nil, nil when the file has no such chunk.
func (f *File) ReadChunkByName(name string) (DecodedChunk, error) {
	return decodeByName(f.buf, name, f.registry, f.opts...)
}

// Info summarizes a WAV file.
type Info struct {
	FormType [4]byte
	Fmt      *FmtBody
	Format   *audio.Format
	// DataLength is the size of the first data chunk, 0 without one.
	DataLength int
	Duration   time.Duration
	// Metadata merges every INFO list in file order.
	Metadata *Metadata
	Chunks   []ChunkDescriptor
}

// Info walks the whole file and collects its format, audio length and INFO
// metadata. The form type must be WAVE and a fmt chunk must be present.
func (f *File) Info() (*Info, error) {
	chunks, err := f.Chunks()
	if err != nil {
		return nil, err
	}

	info := &Info{Metadata: &Metadata{}, Chunks: chunks}

	var seenData bool

	for _, desc := range chunks {
		chunk, err := f.ReadChunk(desc)
		if err != nil {
			return nil, err
		}

		switch c := chunk.(type) {
		case *RiffBody:
			if c.FormType != riff.WavFormatID {
				return nil, fmt.Errorf("%s - %w", c, riff.ErrFmtNotSupported)
			}

			info.FormType = c.FormType
		case *FmtBody:
			if info.Fmt == nil {
				info.Fmt = c
			}
		case *ListChunk:
			info.Metadata.merge(c.Metadata())
		case *DataChunk:
			if !seenData {
				info.DataLength = len(c.Bytes)
				seenData = true
			}
		}
	}

	if info.FormType == ([4]byte{}) {
		return nil, fmt.Errorf("RIFF header: %w", ErrChunkNotFound)
	}

	if info.Fmt == nil {
		return nil, fmt.Errorf("fmt chunk: %w", ErrChunkNotFound)
	}

	info.Format = info.Fmt.AudioFormat()
	info.Duration = info.Fmt.Duration(info.DataLength)

	return info, nil
}
