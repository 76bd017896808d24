package sfnt

import (
	"fmt"
	"math"
)

// Cursor is a positioned, read-only view over an immutable byte slice. Table
// decoders read through a Cursor built over a slice aliasing the original
// font image (spec §4.1, §9: "cursors over borrowed bytes"); the only
// direct byte reads outside it are the random-access readU16At (cmap glyph
// index array) and readU32At/checksum (Validate).
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor builds a Cursor positioned at the start of data. data is not
// copied; it must outlive the Cursor and everything decoded through it.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current byte offset within the underlying slice.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the number of unread bytes remaining.
func (c *Cursor) Len() int { return len(c.data) - c.pos }

func (c *Cursor) need(n int) error {
	if n < 0 || c.pos+n > len(c.data) {
		return fmt.Errorf("sfnt: need %d bytes at offset %d, have %d: %w", n, c.pos, len(c.data)-c.pos, ErrUnexpectedEnd)
	}
	return nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// Bytes reads n raw bytes and advances. The returned slice aliases the
// underlying data; callers must not mutate it.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadU8 reads an unsigned 8-bit integer.
func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

// ReadI8 reads a signed 8-bit integer (two's complement).
func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

// ReadU16 reads a big-endian unsigned 16-bit integer.
func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := uint16(c.data[c.pos])<<8 | uint16(c.data[c.pos+1])
	c.pos += 2
	return v, nil
}

// ReadI16 reads a big-endian signed 16-bit integer (two's complement).
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadU32 reads a big-endian unsigned 32-bit integer.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := uint32(c.data[c.pos])<<24 | uint32(c.data[c.pos+1])<<16 |
		uint32(c.data[c.pos+2])<<8 | uint32(c.data[c.pos+3])
	c.pos += 4
	return v, nil
}

// ReadI32 reads a big-endian signed 32-bit integer (two's complement).
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadU64 reads a big-endian unsigned 64-bit integer.
func (c *Cursor) ReadU64() (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(c.data[c.pos+i])
	}
	c.pos += 8
	return v, nil
}

// ReadI64 reads a big-endian signed 64-bit integer (two's complement); used
// for the LONGDATETIME type (seconds since 1904-01-01, spec's `created`
// and `modified` head fields, which this package skips over verbatim).
func (c *Cursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}

// ReadF32 reinterprets 4 big-endian bytes as an IEEE-754 single.
func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF64 reinterprets 8 big-endian bytes as an IEEE-754 double.
func (c *Cursor) ReadF64() (float64, error) {
	v, err := c.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadTag reads a 4-byte table tag.
func (c *Cursor) ReadTag() (Tag, error) {
	v, err := c.ReadU32()
	return Tag(v), err
}
