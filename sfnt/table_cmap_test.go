package sfnt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildFormat4 assembles a single-segment format-4 cmap subtable body.
func buildFormat4(start, end uint16, idDelta int16, idRangeOffset uint16) []byte {
	segCount := 1
	var out []byte
	out = append(out, be16(4)...)                        // format
	out = append(out, be16(0)...)                         // length, unused by the decoder
	out = append(out, be16(0)...)                         // language
	out = append(out, be16(uint16(segCount*2))...)        // segCountX2
	out = append(out, 0, 0, 0, 0, 0, 0)                   // searchRange, entrySelector, rangeShift
	out = append(out, be16(end)...)                       // endCount[0]
	out = append(out, be16(0)...)                         // reservedPad
	out = append(out, be16(start)...)                     // startCount[0]
	out = append(out, be16(uint16(idDelta))...)           // idDelta[0]
	out = append(out, be16(idRangeOffset)...)             // idRangeOffset[0]
	return out
}

func TestCmapFormat4PassThrough(t *testing.T) {
	data := buildFormat4(0x41, 0x42, 0, 0)
	res, err := parseCmapFormat4(data, 0x100)
	require.NoError(t, err)
	require.Equal(t, GlyphIndex(0x41), res.byCodepoint[0x41])
	require.Equal(t, GlyphIndex(0x42), res.byCodepoint[0x42])
}

func TestCmapFormat4WithIdDelta(t *testing.T) {
	data := buildFormat4(0x41, 0x42, -0x40, 0)
	res, err := parseCmapFormat4(data, 0x100)
	require.NoError(t, err)
	require.Equal(t, GlyphIndex(1), res.byCodepoint[0x41])
	require.Equal(t, GlyphIndex(2), res.byCodepoint[0x42])
}

func TestCmapFormat4RejectsNonFormat4(t *testing.T) {
	data := be16(6) // format 6, unsupported
	_, err := parseCmapFormat4(data, 10)
	require.ErrorIs(t, err, ErrUnsupportedCmapFormat)
}

func TestCmapFormat4GlyphOutOfRangeFails(t *testing.T) {
	data := buildFormat4(0x41, 0x42, 0, 0)
	_, err := parseCmapFormat4(data, 0x10) // numGlyphs too small for glyph 0x41
	require.ErrorIs(t, err, ErrCorruptCmap)
}

func buildCmapTable(subtable []byte) []byte {
	var out []byte
	out = append(out, be16(0)...) // version
	out = append(out, be16(1)...) // numTables
	out = append(out, be16(3)...) // platformID = Windows
	out = append(out, be16(1)...) // encodingID = Unicode BMP
	subtableOffset := 4 + 8
	out = append(out, be32(uint32(subtableOffset))...)
	out = append(out, subtable...)
	return out
}

func TestParseCmapSelectsWindowsUnicodeRecord(t *testing.T) {
	data := buildCmapTable(buildFormat4(0x41, 0x42, 0, 0))
	res, err := parseCmap(data, 0x100)
	require.NoError(t, err)
	require.Equal(t, GlyphIndex(0x41), res.byCodepoint[0x41])
}

func TestParseCmapNoWindowsUnicodeRecordFails(t *testing.T) {
	var out []byte
	out = append(out, be16(0)...)
	out = append(out, be16(1)...)
	out = append(out, be16(1)...) // platformID = Macintosh, not selected
	out = append(out, be16(0)...)
	out = append(out, be32(20)...)
	_, err := parseCmap(out, 0x100)
	require.ErrorIs(t, err, ErrTableMissing)
}
