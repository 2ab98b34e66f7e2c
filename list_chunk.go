package nwav

import (
	"encoding/binary"
	"fmt"
	"strings"
)

var (
	// See http://bwfmetaedit.sourceforge.net/listinfo.html
	markerIART    = [4]byte{'I', 'A', 'R', 'T'}
	markerISFT    = [4]byte{'I', 'S', 'F', 'T'}
	markerICRD    = [4]byte{'I', 'C', 'R', 'D'}
	markerICOP    = [4]byte{'I', 'C', 'O', 'P'}
	markerIARL    = [4]byte{'I', 'A', 'R', 'L'}
	markerINAM    = [4]byte{'I', 'N', 'A', 'M'}
	markerIENG    = [4]byte{'I', 'E', 'N', 'G'}
	markerIGNR    = [4]byte{'I', 'G', 'N', 'R'}
	markerIPRD    = [4]byte{'I', 'P', 'R', 'D'}
	markerISRC    = [4]byte{'I', 'S', 'R', 'C'}
	markerISBJ    = [4]byte{'I', 'S', 'B', 'J'}
	markerICMT    = [4]byte{'I', 'C', 'M', 'T'}
	markerITRK    = [4]byte{'I', 'T', 'R', 'K'}
	markerITRKBug = [4]byte{'i', 't', 'r', 'k'}
	markerITCH    = [4]byte{'I', 'T', 'C', 'H'}
	markerIKEY    = [4]byte{'I', 'K', 'E', 'Y'}
	markerIMED    = [4]byte{'I', 'M', 'E', 'D'}
)

// infoEntryHeaderSize covers the 4-byte key and 4-byte length of an entry.
const infoEntryHeaderSize = 8

// ListEntry is one INFO key/value pair.
type ListEntry struct {
	// ID holds the raw key bytes.
	ID [4]byte
	// Key is ID decoded as text.
	Key string
	// Value is the entry text without its NUL terminator.
	Value string
}

// ListChunk is a decoded LIST/INFO chunk. Entries keep file order and may
// repeat a key.
type ListChunk struct {
	Entries []ListEntry
}

// ChunkID implements DecodedChunk.
func (*ListChunk) ChunkID() [4]byte { return CIDList }

// Lookup returns the value of the first entry whose key is key.
func (l *ListChunk) Lookup(key string) (string, bool) {
	if l == nil {
		return "", false
	}

	for _, e := range l.Entries {
		if string(e.ID[:]) == key {
			return e.Value, true
		}
	}

	return "", false
}

func (l *ListChunk) String() string {
	parts := make([]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		parts = append(parts, fmt.Sprintf("%s=%q", e.Key, e.Value))
	}

	return strings.Join(parts, " ")
}

// ParseInfoList parses the payload of a LIST chunk. It returns
// ErrNotInfoList when the form type is not INFO, and an error wrapping
// ErrMalformedInput when an entry runs past the end of the payload.
//
// Each entry is a 4-byte key, a 4-byte little-endian length that includes
// the value's NUL terminator, the value bytes, and one pad byte when that
// length is odd.
func ParseInfoList(payload []byte) ([]ListEntry, error) {
	if len(payload) < len(CIDInfo) {
		return nil, fmt.Errorf("%w: LIST chunk has %d bytes, need %d", ErrMalformedInput, len(payload), len(CIDInfo))
	}

	if [4]byte(payload[:4]) != CIDInfo {
		return nil, fmt.Errorf("%w: form type %q", ErrNotInfoList, lossyText(payload[:4]))
	}

	var entries []ListEntry

	for pos := len(CIDInfo); pos < len(payload); {
		if len(payload)-pos < infoEntryHeaderSize {
			return nil, fmt.Errorf("%w: INFO entry header at offset %d needs %d bytes, %d left",
				ErrMalformedInput, pos, infoEntryHeaderSize, len(payload)-pos)
		}

		id := [4]byte(payload[pos : pos+4])
		size := binary.LittleEndian.Uint32(payload[pos+4 : pos+8])
		pos += infoEntryHeaderSize

		if uint64(size) > uint64(len(payload)-pos) {
			return nil, fmt.Errorf("%w: INFO entry %q declares %d bytes, %d left",
				ErrMalformedInput, lossyText(id[:]), size, len(payload)-pos)
		}

		var value []byte
		if size > 0 {
			value = nullTermStr(payload[pos : pos+int(size)-1])
		}

		entries = append(entries, ListEntry{
			ID:    id,
			Key:   lossyText(id[:]),
			Value: lossyText(value),
		})

		pos += int(size)
		if size%2 == 1 {
			pos++
		}
	}

	return entries, nil
}

// Metadata holds the well-known INFO fields.
type Metadata struct {
	// Artist is the artist of the original subject of the file.
	Artist string
	// Comments provides general comments about the file.
	Comments string
	// Copyright records the copyright information for the file.
	Copyright string
	// CreationDate specifies the date the subject of the file was created.
	CreationDate string
	// Engineer stores the name of the engineer who worked on the file.
	Engineer string
	// Technician identifies the technician who sampled the subject file.
	Technician string
	// Genre describes the original work, such as jazz, classical, rock.
	Genre string
	// Keywords provides a list of keywords that refer to the file or subject.
	Keywords string
	// Medium describes the original subject of the file.
	Medium string
	// Title stores the title of the subject of the file.
	Title string
	// Product specifies the name of the title the file was originally intended for.
	Product string
	// Subject describes the contents of the file.
	Subject string
	// Software identifies the name of the software package used to create the file.
	Software string
	// Source identifies the name of the person or organization who supplied the original subject of the file.
	Source string
	// Location or Archival Location - Indicates where the subject of the file is archived.
	Location string
	// TrackNbr is the track number.
	TrackNbr string
}

// Metadata maps the well-known INFO keys of l onto a Metadata value. When a
// key repeats, the last entry wins.
func (l *ListChunk) Metadata() *Metadata {
	md := &Metadata{}
	if l == nil {
		return md
	}

	for _, e := range l.Entries {
		md.set(e.ID, e.Value)
	}

	return md
}

func (md *Metadata) set(id [4]byte, value string) {
	switch id {
	case markerIARL:
		md.Location = value
	case markerIART:
		md.Artist = value
	case markerISFT:
		md.Software = value
	case markerICRD:
		md.CreationDate = value
	case markerICOP:
		md.Copyright = value
	case markerINAM:
		md.Title = value
	case markerIENG:
		md.Engineer = value
	case markerIGNR:
		md.Genre = value
	case markerIPRD:
		md.Product = value
	case markerISRC:
		md.Source = value
	case markerISBJ:
		md.Subject = value
	case markerICMT:
		md.Comments = value
	case markerITRK, markerITRKBug:
		md.TrackNbr = value
	case markerITCH:
		md.Technician = value
	case markerIKEY:
		md.Keywords = value
	case markerIMED:
		md.Medium = value
	}
}

// merge copies the non-empty fields of other into md.
func (md *Metadata) merge(other *Metadata) {
	if other == nil {
		return
	}

	fields := []struct {
		dst *string
		src string
	}{
		{&md.Artist, other.Artist},
		{&md.Comments, other.Comments},
		{&md.Copyright, other.Copyright},
		{&md.CreationDate, other.CreationDate},
		{&md.Engineer, other.Engineer},
		{&md.Technician, other.Technician},
		{&md.Genre, other.Genre},
		{&md.Keywords, other.Keywords},
		{&md.Medium, other.Medium},
		{&md.Title, other.Title},
		{&md.Product, other.Product},
		{&md.Subject, other.Subject},
		{&md.Software, other.Software},
		{&md.Source, other.Source},
		{&md.Location, other.Location},
		{&md.TrackNbr, other.TrackNbr},
	}

	for _, f := range fields {
		if f.src != "" {
			*f.dst = f.src
		}
	}
}
