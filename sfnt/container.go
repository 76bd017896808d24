package sfnt

import "fmt"

// Container is the outer wrapper of a font file image: either a single
// offset table (.ttf/.otf) or a TrueType Collection (.ttc/.otc) header
// listing several offset tables that share an underlying byte image
// (spec §3, §4.2).
type Container struct {
	data           []byte
	isCollection   bool
	fontOffsets    []uint32
}

// OpenContainer inspects the leading magic of data and locates every
// per-font offset-table position it holds. data is retained (aliased), not
// copied; it must outlive the Container and any Face parsed from it.
func OpenContainer(data []byte) (*Container, error) {
	c := NewCursor(data)
	tag, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("sfnt: reading container magic: %w", err)
	}

	switch tag {
	case magicTrueType, magicOpenType:
		return &Container{data: data, isCollection: false, fontOffsets: []uint32{0}}, nil
	case magicCollection:
		return parseCollectionHeader(data, c)
	default:
		return nil, fmt.Errorf("sfnt: unrecognized container magic 0x%08X: %w", tag, ErrBadMagic)
	}
}

func parseCollectionHeader(data []byte, c *Cursor) (*Container, error) {
	if _, err := c.ReadU32(); err != nil { // ttcHeader version, discarded
		return nil, fmt.Errorf("sfnt: reading TTC version: %w", err)
	}
	fontCount, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("sfnt: reading TTC font count: %w", err)
	}

	offsets := make([]uint32, 0, fontCount)
	for i := uint32(0); i < fontCount; i++ {
		off, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("sfnt: reading TTC offset %d: %w", i, err)
		}
		offsets = append(offsets, off)
	}

	return &Container{data: data, isCollection: true, fontOffsets: offsets}, nil
}

// IsCollection reports whether the image is a TrueType Collection.
func (c *Container) IsCollection() bool { return c.isCollection }

// NumFonts returns the number of fonts described by the container. It may
// be zero for a well-formed but empty TTC (spec §8 boundary case).
func (c *Container) NumFonts() int { return len(c.fontOffsets) }

// OffsetFor returns the byte offset of the offset-table for font index.
func (c *Container) OffsetFor(index int) (uint32, error) {
	if index < 0 || index >= len(c.fontOffsets) {
		return 0, fmt.Errorf("sfnt: font index %d out of range [0,%d)", index, len(c.fontOffsets))
	}
	return c.fontOffsets[index], nil
}

// Directory parses and returns the table directory for font index.
func (c *Container) Directory(index int) (*Directory, error) {
	off, err := c.OffsetFor(index)
	if err != nil {
		return nil, err
	}
	return ParseDirectory(c.data, off)
}

// Data returns the raw bytes backing the container. The slice is shared,
// not copied; callers must not mutate it.
func (c *Container) Data() []byte { return c.data }
