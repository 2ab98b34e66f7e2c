package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chunk(id string, payload []byte) []byte {
	out := append([]byte(id), 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(payload)))

	return append(out, payload...)
}

func writeWav(t *testing.T, chunks ...[]byte) string {
	t.Helper()

	body := []byte("WAVE")
	for _, c := range chunks {
		body = append(body, c...)
	}

	data := chunk("RIFF", body)

	path := filepath.Join(t.TempDir(), "test.wav")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func fmtChunk() []byte {
	payload := make([]byte, 16)
	binary.LittleEndian.PutUint16(payload[0:2], 1)
	binary.LittleEndian.PutUint16(payload[2:4], 2)
	binary.LittleEndian.PutUint32(payload[4:8], 44100)
	binary.LittleEndian.PutUint32(payload[8:12], 176400)
	binary.LittleEndian.PutUint16(payload[12:14], 4)
	binary.LittleEndian.PutUint16(payload[14:16], 16)

	return chunk("fmt ", payload)
}

func infoChunk() []byte {
	payload := []byte("INFO")
	payload = append(payload, "INAM\x05\x00\x00\x00Test\x00\x00"...)
	payload = append(payload, "IART\x03\x00\x00\x00Me\x00\x00"...)

	return chunk("LIST", payload)
}

func TestRunRequiresPath(t *testing.T) {
	var out bytes.Buffer

	err := run(nil, &out)
	if !errors.Is(err, errMissingPath) {
		t.Fatalf("expected errMissingPath, got %v", err)
	}
}

func TestRunInvalidPath(t *testing.T) {
	var out bytes.Buffer

	if err := run([]string{"/nonexistent/path.wav"}, &out); err == nil {
		t.Fatal("expected error for invalid path")
	}
}

func TestRunDumpsChunks(t *testing.T) {
	path := writeWav(t,
		fmtChunk(),
		infoChunk(),
		chunk("JUNK", []byte{0, 0}),
		chunk("data", make([]byte, 64)),
	)

	var outBuf bytes.Buffer
	if err := run([]string{path}, &outBuf); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := outBuf.String()
	checks := []string{
		"RIFF",
		"Riff(WAVE)",
		"Format(compression=1 channels=2 sample_rate=44100 byte_rate=176400 block_align=4 bits_per_sample=16)",
		`List(INAM="Test" IART="Me")`,
		"JUNK",
		"None",
	}

	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Fatalf("expected output to contain %q\nfull output:\n%s", c, out)
		}
	}

	if strings.Contains(out, "Data(") {
		t.Fatalf("data chunk should not be printed\nfull output:\n%s", out)
	}

	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Fatalf("expected 4 lines, got %d\nfull output:\n%s", lines, out)
	}
}

func TestRunContinuesPastBrokenChunk(t *testing.T) {
	path := writeWav(t,
		chunk("fmt ", []byte{1, 0, 2, 0}),
		infoChunk(),
	)

	var outBuf bytes.Buffer
	if err := run([]string{path}, &outBuf); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := outBuf.String()
	if !strings.Contains(out, "Error:") || !strings.Contains(out, "malformed input") {
		t.Fatalf("expected an error line for the short fmt chunk\nfull output:\n%s", out)
	}

	if !strings.Contains(out, `INAM="Test"`) {
		t.Fatalf("expected the LIST chunk after the broken one\nfull output:\n%s", out)
	}
}

func TestRunTruncatedFile(t *testing.T) {
	path := writeWav(t, fmtChunk(), []byte("da"))

	var out bytes.Buffer
	if err := run([]string{path}, &out); err == nil || !strings.Contains(err.Error(), "malformed input") {
		t.Fatalf("expected malformed input error, got %v", err)
	}
}

func TestRunAlignFlag(t *testing.T) {
	path := writeWav(t,
		append(chunk("JUNK", []byte{1}), 0),
		fmtChunk(),
	)

	var out bytes.Buffer
	if err := run([]string{path}, &out); err == nil {
		t.Fatal("expected the padded file to fail without --align")
	}

	out.Reset()

	if err := run([]string{"--align", path}, &out); err != nil {
		t.Fatalf("run with --align failed: %v", err)
	}

	if !strings.Contains(out.String(), "sample_rate=44100") {
		t.Fatalf("expected fmt chunk in output\nfull output:\n%s", out.String())
	}
}

func TestRunInfo(t *testing.T) {
	path := writeWav(t,
		fmtChunk(),
		infoChunk(),
		chunk("data", make([]byte, 17640)),
	)

	var outBuf bytes.Buffer
	if err := run([]string{path, "--info"}, &outBuf); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := outBuf.String()
	checks := []string{
		"Format",
		"Channels:",
		"44100",
		"17.2 KB",
		"100ms",
		"Metadata",
		"Title:",
		"Test",
		"Artist:",
		"TrackNbr:",
	}

	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Fatalf("expected output to contain %q\nfull output:\n%s", c, out)
		}
	}
}

func TestRunUnknownFlag(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"--bogus", "file.wav"}, &out)
	if err == nil || errors.Is(err, errMissingPath) {
		t.Fatalf("expected a flag parse error, got %v", err)
	}
}
