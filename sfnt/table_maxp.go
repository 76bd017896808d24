package sfnt

import "fmt"

// maxpTable is the decoded `maxp` (maximum profile) table (spec §4.4).
type maxpTable struct {
	numGlyphs uint16
}

func parseMaxp(data []byte) (*maxpTable, error) {
	c := NewCursor(data)
	if err := c.Skip(4); err != nil { // version
		return nil, fmt.Errorf("sfnt: maxp: %w", err)
	}
	numGlyphs, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("sfnt: maxp: reading numGlyphs: %w", err)
	}
	return &maxpTable{numGlyphs: numGlyphs}, nil
}
