package sfnt

import "fmt"

// headTable is the decoded `head` table (spec §4.4): bounding box and the
// design-space denominator. macStyle is read independently by the
// classifier directly from the raw table bytes (spec §4.7 rule 3), since
// the metrics parser has no use for it.
type headTable struct {
	unitsPerEm uint16
	bbox       [4]int16 // xMin, yMin, xMax, yMax
}

func parseHead(data []byte) (*headTable, error) {
	c := NewCursor(data)
	if err := c.Skip(12); err != nil { // majorVersion, minorVersion, fontRevision, checksumAdjustment
		return nil, fmt.Errorf("sfnt: head: %w", err)
	}
	magic, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("sfnt: head: reading magicNumber: %w", err)
	}
	if magic != magicHeadChecksum {
		return nil, fmt.Errorf("sfnt: head: magicNumber 0x%08X != 0x%08X: %w", magic, magicHeadChecksum, ErrBadMagic)
	}
	if err := c.Skip(2); err != nil { // flags
		return nil, fmt.Errorf("sfnt: head: %w", err)
	}

	t := &headTable{}
	t.unitsPerEm, err = c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("sfnt: head: reading unitsPerEm: %w", err)
	}
	if err := c.Skip(16); err != nil { // created, modified
		return nil, fmt.Errorf("sfnt: head: %w", err)
	}

	for i := 0; i < 4; i++ {
		v, err := c.ReadI16()
		if err != nil {
			return nil, fmt.Errorf("sfnt: head: reading bbox: %w", err)
		}
		t.bbox[i] = v
	}
	// The remaining 10 bytes (macStyle, lowestRecPPEM, fontDirectionHint,
	// indexToLocFormat, glyphDataFormat) carry nothing this parser needs.

	return t, nil
}

// headMacStyle reads only the macStyle field from raw `head` table bytes,
// used by the classifier's head-based fallback rule.
func headMacStyle(data []byte) (uint16, error) {
	c := NewCursor(data)
	if err := c.Skip(44); err != nil {
		return 0, fmt.Errorf("sfnt: head: reading macStyle: %w", err)
	}
	return c.ReadU16()
}
