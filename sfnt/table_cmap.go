package sfnt

import "fmt"

// CharRange is a covered codepoint range within a cmap subtable, inclusive
// on both ends (spec §9 open question (a): resolved as inclusive, per the
// spec's explicit instruction, overriding the source's half-open range).
type CharRange struct {
	Start, End rune
}

// cmapResult is the decoded content of the chosen cmap subtable.
type cmapResult struct {
	byCodepoint  map[rune]GlyphIndex
	ranges       []CharRange
	maxCodepoint rune
}

// parseCmap walks the cmap header's encoding-record list, selects the
// first Windows/Unicode BMP record (platformID=3, encodingID in {0,1,4}),
// and decodes its format-4 subtable (spec §4.5).
func parseCmap(data []byte, numGlyphs int) (*cmapResult, error) {
	c := NewCursor(data)
	if err := c.Skip(2); err != nil { // version
		return nil, fmt.Errorf("sfnt: cmap: %w", err)
	}
	numTables, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("sfnt: cmap: reading numTables: %w", err)
	}

	var subtableOffset uint32
	found := false
	for i := 0; i < int(numTables); i++ {
		platformID, err := c.ReadU16()
		if err != nil {
			return nil, fmt.Errorf("sfnt: cmap: record %d: %w", i, err)
		}
		encodingID, err := c.ReadU16()
		if err != nil {
			return nil, fmt.Errorf("sfnt: cmap: record %d: %w", i, err)
		}
		offset, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("sfnt: cmap: record %d: %w", i, err)
		}
		if !found && platformID == 3 && (encodingID == 0 || encodingID == 1 || encodingID == 4) {
			subtableOffset = offset
			found = true
			// Do not break: keep reading the remaining records to stay
			// positioned correctly, but the first match wins (spec §4.5,
			// §8: "the first matching Windows/Unicode record is used even
			// if a later one would also qualify").
		}
	}
	if !found {
		return nil, fmt.Errorf("sfnt: cmap: no Windows/Unicode subtable found: %w", ErrTableMissing)
	}
	if uint64(subtableOffset) >= uint64(len(data)) {
		return nil, fmt.Errorf("sfnt: cmap: subtable offset %d beyond table: %w", subtableOffset, ErrUnexpectedEnd)
	}

	return parseCmapFormat4(data[subtableOffset:], numGlyphs)
}

func parseCmapFormat4(data []byte, numGlyphs int) (*cmapResult, error) {
	c := NewCursor(data)
	format, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("sfnt: cmap: reading format: %w", err)
	}
	if format != 4 {
		return nil, fmt.Errorf("sfnt: cmap: format %d: %w", format, ErrUnsupportedCmapFormat)
	}

	if _, err := c.ReadU16(); err != nil { // length
		return nil, fmt.Errorf("sfnt: cmap: %w", err)
	}
	if err := c.Skip(2); err != nil { // language
		return nil, fmt.Errorf("sfnt: cmap: %w", err)
	}
	segCountX2, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("sfnt: cmap: reading segCountX2: %w", err)
	}
	if segCountX2%2 != 0 {
		return nil, fmt.Errorf("sfnt: cmap: segCountX2 %d is odd: %w", segCountX2, ErrCorruptCmap)
	}
	segCount := int(segCountX2 / 2)
	if err := c.Skip(6); err != nil { // searchRange, entrySelector, rangeShift
		return nil, fmt.Errorf("sfnt: cmap: %w", err)
	}

	endCount := make([]uint16, segCount)
	for i := range endCount {
		if endCount[i], err = c.ReadU16(); err != nil {
			return nil, fmt.Errorf("sfnt: cmap: reading endCount[%d]: %w", i, err)
		}
	}
	if err := c.Skip(2); err != nil { // reservedPad
		return nil, fmt.Errorf("sfnt: cmap: %w", err)
	}
	startCount := make([]uint16, segCount)
	for i := range startCount {
		if startCount[i], err = c.ReadU16(); err != nil {
			return nil, fmt.Errorf("sfnt: cmap: reading startCount[%d]: %w", i, err)
		}
	}
	idDelta := make([]int16, segCount)
	for i := range idDelta {
		if idDelta[i], err = c.ReadI16(); err != nil {
			return nil, fmt.Errorf("sfnt: cmap: reading idDelta[%d]: %w", i, err)
		}
	}

	anchor := c.Pos() // byte position of the start of idRangeOffset array
	idRangeOffset := make([]uint16, segCount)
	for i := range idRangeOffset {
		if idRangeOffset[i], err = c.ReadU16(); err != nil {
			return nil, fmt.Errorf("sfnt: cmap: reading idRangeOffset[%d]: %w", i, err)
		}
	}

	res := &cmapResult{byCodepoint: make(map[rune]GlyphIndex)}

	for s := 0; s < segCount; s++ {
		start, end := rune(startCount[s]), rune(endCount[s])
		if start > end {
			continue
		}
		res.ranges = append(res.ranges, CharRange{Start: start, End: end})

		for ch := start; ch <= end; ch++ {
			var glyph uint16
			if idRangeOffset[s] == 0 {
				glyph = uint16(int32(ch) + int32(idDelta[s]))
			} else {
				if idRangeOffset[s]%2 != 0 {
					return nil, fmt.Errorf("sfnt: cmap: idRangeOffset[%d] %d is odd: %w", s, idRangeOffset[s], ErrCorruptCmap)
				}
				addr := anchor + 2*s + 2*int(ch-start) + int(idRangeOffset[s])
				g, err := readU16At(data, addr)
				if err != nil {
					return nil, fmt.Errorf("sfnt: cmap: reading glyph index array: %w", err)
				}
				if g == 0 {
					continue // unmapped codepoint within the segment
				}
				glyph = uint16(int32(g) + int32(idDelta[s]))
			}

			if int(glyph) >= numGlyphs {
				return nil, fmt.Errorf("sfnt: cmap: glyph %d >= numGlyphs %d: %w", glyph, numGlyphs, ErrCorruptCmap)
			}

			// The mandatory trailing [0xFFFF,0xFFFF] segment usually resolves
			// to glyph 0 here; it is inserted like any other codepoint
			// rather than filtered, since the format has no reserved
			// "not really a mapping" marker for this final entry.
			res.byCodepoint[ch] = GlyphIndex(glyph)
			if ch > res.maxCodepoint {
				res.maxCodepoint = ch
			}
			// 0xFFFF terminates every format-4 table; stop before wrapping.
			if ch == 0xFFFF {
				break
			}
		}
	}

	return res, nil
}

func readU16At(data []byte, addr int) (uint16, error) {
	if addr < 0 || addr+2 > len(data) {
		return 0, ErrUnexpectedEnd
	}
	return uint16(data[addr])<<8 | uint16(data[addr+1]), nil
}
