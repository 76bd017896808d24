package sfnt

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Wrap these with fmt.Errorf("...: %w", ErrX) style
// context (offset, tag, table name) so callers can still errors.Is against
// the sentinel.
var (
	ErrUnexpectedEnd        = errors.New("sfnt: unexpected end of data")
	ErrBadMagic             = errors.New("sfnt: bad magic number")
	ErrTableMissing         = errors.New("sfnt: required table missing")
	ErrUnsupportedFormat    = errors.New("sfnt: unsupported table format")
	ErrUnsupportedCmapFormat = errors.New("sfnt: unsupported cmap subtable format")
	ErrCorruptCmap          = errors.New("sfnt: corrupt cmap subtable")
	ErrBadName              = errors.New("sfnt: malformed name record")
	ErrEmptyFont            = errors.New("sfnt: font has no glyphs")
	ErrDegenerateMetrics    = errors.New("sfnt: degenerate metrics")
)

// tableMissingError names the table tag that was absent, while still
// unwrapping to ErrTableMissing.
type tableMissingError struct {
	tag Tag
}

func (e *tableMissingError) Error() string {
	return fmt.Sprintf("sfnt: table %q missing", e.tag.String())
}

func (e *tableMissingError) Unwrap() error { return ErrTableMissing }

// errTableMissing builds a wrapped ErrTableMissing naming the tag.
func errTableMissing(tag Tag) error { return &tableMissingError{tag: tag} }
