package sfnt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func be16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

// buildDirectory assembles a minimal offset-table + table-record header
// followed by the payload bytes for each named table, returning the full
// image; the directory always begins at offset 0.
func buildDirectory(t *testing.T, tables map[string][]byte) []byte {
	t.Helper()

	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	// Insertion order doesn't matter for correctness; sort ascending by tag
	// value to satisfy the sortedness invariant Find relies on.
	for i := 0; i < len(tags); i++ {
		for j := i + 1; j < len(tags); j++ {
			if MakeTag(tags[j]) < MakeTag(tags[i]) {
				tags[i], tags[j] = tags[j], tags[i]
			}
		}
	}

	headerLen := 12 + 16*len(tags)
	var payload []byte
	offsets := make([]uint32, len(tags))
	cursor := headerLen
	for i, tag := range tags {
		offsets[i] = uint32(cursor)
		payload = append(payload, tables[tag]...)
		cursor += len(tables[tag])
	}

	var out []byte
	out = append(out, be32(magicTrueType)...)
	out = append(out, be16(uint16(len(tags)))...)
	out = append(out, 0, 0, 0, 0, 0, 0) // searchRange, entrySelector, rangeShift
	for i, tag := range tags {
		out = append(out, be32(uint32(MakeTag(tag)))...)
		out = append(out, be32(0)...) // checksum, unused by these tests
		out = append(out, be32(offsets[i])...)
		out = append(out, be32(uint32(len(tables[tag])))...)
	}
	out = append(out, payload...)
	return out
}

func TestParseDirectoryFindAndGet(t *testing.T) {
	data := buildDirectory(t, map[string][]byte{
		"head": {0xAA, 0xBB},
		"cmap": {0x01, 0x02, 0x03},
	})

	dir, err := ParseDirectory(data, 0)
	require.NoError(t, err)
	require.Equal(t, 2, dir.NumTables())

	head := dir.Find(tagHead)
	require.Equal(t, []byte{0xAA, 0xBB}, head)

	cmap, err := dir.Get(tagCmap)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, cmap)

	require.Nil(t, dir.Find(tagName))

	_, err = dir.Get(tagName)
	require.ErrorIs(t, err, ErrTableMissing)
}

func TestParseDirectoryOffsetBeyondDataFails(t *testing.T) {
	_, err := ParseDirectory([]byte{0x00, 0x01}, 100)
	require.ErrorIs(t, err, ErrUnexpectedEnd)
}
