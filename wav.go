package nwav

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrMalformedInput is wrapped by every error caused by a read that would
	// go past the end of the buffer, a chunk, or a LIST entry.
	ErrMalformedInput = errors.New("malformed input")
	// ErrNotInfoList is returned by ParseInfoList when the LIST form type is
	// not INFO. It does not indicate a broken file.
	ErrNotInfoList = errors.New("not an INFO list")
	// ErrChunkNotFound indicates a required chunk is missing from the file.
	ErrChunkNotFound = errors.New("chunk not found")
)

func nullTermStr(b []byte) []byte {
	return b[:clen(b)]
}

func clen(num []byte) int {
	for i := range num {
		if num[i] == 0 {
			return i
		}
	}

	return len(num)
}

func durationFromBytes(n int, byteRate uint32) time.Duration {
	if byteRate == 0 || n <= 0 {
		return 0
	}

	return time.Duration(math.Round(float64(n) / float64(byteRate) * float64(time.Second)))
}
