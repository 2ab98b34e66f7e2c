package nwav

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// lossyText decodes b as UTF-8, replacing invalid sequences with U+FFFD.
// The result never aliases b.
func lossyText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}

	return string(out)
}
