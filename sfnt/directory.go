package sfnt

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// tableRecord is one entry of a font's table directory: a tag together with
// the checksum, offset and length of the table's payload within the image.
type tableRecord struct {
	tag      Tag
	checksum uint32
	offset   uint32
	length   uint32
}

// Directory exposes Find/Get lookups over a font's table records. Per
// spec §4.3, the OpenType format mandates the records be sorted ascending
// by tag, which Find relies on for its binary search; a font whose records
// are not actually sorted falls back to a linear scan rather than failing
// outright, matching this reader's general tolerance-over-rejection stance
// on malformed-but-recoverable input.
type Directory struct {
	data    []byte // the full font image the record offsets are relative to
	records []tableRecord
	sorted  bool
}

// ParseDirectory reads the offset subtable header (sfntVersion, numTables,
// searchRange, entrySelector, rangeShift) at offset, followed by numTables
// 16-byte table records, from data.
func ParseDirectory(data []byte, offset uint32) (*Directory, error) {
	if uint64(offset) > uint64(len(data)) {
		return nil, fmt.Errorf("sfnt: directory offset %d beyond end of data (%d): %w", offset, len(data), ErrUnexpectedEnd)
	}
	c := NewCursor(data[offset:])

	if _, err := c.ReadU32(); err != nil { // sfntVersion, unused here
		return nil, fmt.Errorf("sfnt: reading offset table version: %w", err)
	}
	numTables, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("sfnt: reading numTables: %w", err)
	}
	if err := c.Skip(6); err != nil { // searchRange, entrySelector, rangeShift
		return nil, fmt.Errorf("sfnt: reading offset table header: %w", err)
	}

	records := make([]tableRecord, 0, numTables)
	for i := 0; i < int(numTables); i++ {
		tag, err := c.ReadTag()
		if err != nil {
			return nil, fmt.Errorf("sfnt: reading table record %d tag: %w", i, err)
		}
		checksum, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("sfnt: reading table record %d checksum: %w", i, err)
		}
		recOffset, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("sfnt: reading table record %d offset: %w", i, err)
		}
		length, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("sfnt: reading table record %d length: %w", i, err)
		}
		records = append(records, tableRecord{tag: tag, checksum: checksum, offset: recOffset, length: length})
	}

	d := &Directory{data: data, records: records}
	d.sorted = slices.IsSortedFunc(records, func(a, b tableRecord) int {
		return int(int64(a.tag) - int64(b.tag))
	})
	return d, nil
}

// NumTables returns the number of table records in the directory.
func (d *Directory) NumTables() int { return len(d.records) }

// Find returns the table payload for tag, or nil if the table is absent.
// The slice aliases the directory's underlying data (spec §3: "Table
// payload slices are aliased views into the image; no copy is required").
func (d *Directory) Find(tag Tag) []byte {
	idx := d.indexOf(tag)
	if idx < 0 {
		return nil
	}
	rec := d.records[idx]
	start, end := int(rec.offset), int(rec.offset)+int(rec.length)
	if start < 0 || end > len(d.data) || start > end {
		return nil
	}
	return d.data[start:end]
}

// Get is Find but fails with a wrapped ErrTableMissing when tag is absent.
func (d *Directory) Get(tag Tag) ([]byte, error) {
	b := d.Find(tag)
	if b == nil {
		return nil, errTableMissing(tag)
	}
	return b, nil
}

// indexOf returns the record index for tag using binary search over the
// sorted invariant, falling back to a linear scan if that invariant does
// not hold for this particular font.
func (d *Directory) indexOf(tag Tag) int {
	if d.sorted {
		idx, ok := slices.BinarySearchFunc(d.records, tag, func(r tableRecord, t Tag) int {
			return int(int64(r.tag) - int64(t))
		})
		if ok {
			return idx
		}
		return -1
	}
	for i, r := range d.records {
		if r.tag == tag {
			return i
		}
	}
	return -1
}
