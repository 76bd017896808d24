package sfnt

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// NameID identifies a canonical string stored in the `name` table
// (spec §4.6).
type NameID uint16

const (
	NameCopyrightNotice     NameID = 0
	NameFontFamily          NameID = 1
	NameFontSubFamily       NameID = 2
	NameUniqueFontID        NameID = 3
	NameFullFontName        NameID = 4
	NameVersionString       NameID = 5
	NamePostscriptName      NameID = 6
	NameTrademark           NameID = 7
	NameManufacturer        NameID = 8
	NameDesigner            NameID = 9
	NameDescription         NameID = 10
	NamePreferredFamily     NameID = 16
	NamePreferredSubFamily  NameID = 17
)

const (
	platformMacintosh = 1
	platformWindows   = 3
	encodingMacRoman  = 0
)

type nameRecord struct {
	platformID uint16
	encodingID uint16
	nameID     uint16
	data       []byte
}

// nameTable is the decoded `name` table (spec §4.6).
type nameTable struct {
	records []nameRecord
}

func parseName(data []byte) (*nameTable, error) {
	c := NewCursor(data)
	format, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("sfnt: name: reading format: %w", err)
	}
	if format > 1 {
		return nil, fmt.Errorf("sfnt: name: format %d > 1: %w", format, ErrUnsupportedFormat)
	}
	count, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("sfnt: name: reading count: %w", err)
	}
	stringOffset, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("sfnt: name: reading stringOffset: %w", err)
	}

	type rawRecord struct {
		platformID, encodingID, nameID, length, offset uint16
	}
	raws := make([]rawRecord, 0, count)
	for i := 0; i < int(count); i++ {
		var r rawRecord
		if r.platformID, err = c.ReadU16(); err != nil {
			return nil, fmt.Errorf("sfnt: name: record %d: %w", i, err)
		}
		if r.encodingID, err = c.ReadU16(); err != nil {
			return nil, fmt.Errorf("sfnt: name: record %d: %w", i, err)
		}
		if _, err = c.ReadU16(); err != nil { // languageID, unused
			return nil, fmt.Errorf("sfnt: name: record %d: %w", i, err)
		}
		if r.nameID, err = c.ReadU16(); err != nil {
			return nil, fmt.Errorf("sfnt: name: record %d: %w", i, err)
		}
		if r.length, err = c.ReadU16(); err != nil {
			return nil, fmt.Errorf("sfnt: name: record %d: %w", i, err)
		}
		if r.offset, err = c.ReadU16(); err != nil {
			return nil, fmt.Errorf("sfnt: name: record %d: %w", i, err)
		}
		raws = append(raws, r)
	}

	t := &nameTable{}
	for _, r := range raws {
		start := int(stringOffset) + int(r.offset)
		end := start + int(r.length)
		if start < 0 || end > len(data) || start > end {
			continue // malformed record: skip rather than fail the whole table
		}
		t.records = append(t.records, nameRecord{
			platformID: r.platformID,
			encodingID: r.encodingID,
			nameID:     r.nameID,
			data:       data[start:end],
		})
	}

	return t, nil
}

// Get returns the decoded string of the first record matching id, or
// ("", false) if none is present or that record fails to decode.
func (t *nameTable) Get(id NameID) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, r := range t.records {
		if NameID(r.nameID) != id {
			continue
		}
		s, err := decodeNameRecord(r)
		if err != nil {
			return "", false
		}
		return s, true
	}
	return "", false
}

// decodeNameRecord decodes a name record's string data per spec §4.6:
// MacRoman for (platformID=1, encodingID=0), UTF-16BE otherwise.
func decodeNameRecord(r nameRecord) (string, error) {
	if r.platformID == platformMacintosh && r.encodingID == encodingMacRoman {
		out := make([]rune, len(r.data))
		for i, b := range r.data {
			out[i] = charmap.Macintosh.DecodeByte(b)
		}
		return string(out), nil
	}

	if len(r.data)%2 != 0 {
		return "", fmt.Errorf("sfnt: name: odd UTF-16 payload length %d: %w", len(r.data), ErrBadName)
	}
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	s, err := dec.Bytes(r.data)
	if err != nil {
		return "", fmt.Errorf("sfnt: name: decoding UTF-16: %w", err)
	}
	return string(s), nil
}

// family resolves the family name preferring NamePreferredFamily over
// NameFontFamily (spec §4.6 "Family resolution").
func (t *nameTable) family() string {
	if s, ok := t.Get(NamePreferredFamily); ok {
		return s
	}
	s, _ := t.Get(NameFontFamily)
	return s
}

// subFamily resolves the sub-family name preferring
// NamePreferredSubFamily over NameFontSubFamily.
func (t *nameTable) subFamily() string {
	if s, ok := t.Get(NamePreferredSubFamily); ok {
		return s
	}
	s, _ := t.Get(NameFontSubFamily)
	return s
}
