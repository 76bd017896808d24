package sfnt

import "fmt"

// hheaTable is the decoded `hhea` (horizontal header) table (spec §4.4).
type hheaTable struct {
	ascender         int16
	descender        int16
	lineGap          int16
	numberOfHMetrics uint16
}

func parseHhea(data []byte) (*hheaTable, error) {
	c := NewCursor(data)
	if err := c.Skip(4); err != nil { // majorVersion, minorVersion
		return nil, fmt.Errorf("sfnt: hhea: %w", err)
	}

	t := &hheaTable{}
	var err error
	if t.ascender, err = c.ReadI16(); err != nil {
		return nil, fmt.Errorf("sfnt: hhea: reading ascender: %w", err)
	}
	if t.descender, err = c.ReadI16(); err != nil {
		return nil, fmt.Errorf("sfnt: hhea: reading descender: %w", err)
	}
	if t.lineGap, err = c.ReadI16(); err != nil {
		return nil, fmt.Errorf("sfnt: hhea: reading lineGap: %w", err)
	}

	if err := c.Skip(22); err != nil {
		// advanceWidthMax, minLeftSideBearing, minRightSideBearing,
		// xMaxExtent, caretSlopeRise, caretSlopeRun, caretOffset, and
		// 4 reserved int16 fields (11 uint16-sized fields = 22 bytes).
		return nil, fmt.Errorf("sfnt: hhea: %w", err)
	}

	metricDataFormat, err := c.ReadI16()
	if err != nil {
		return nil, fmt.Errorf("sfnt: hhea: reading metricDataFormat: %w", err)
	}
	if metricDataFormat != 0 {
		return nil, fmt.Errorf("sfnt: hhea: metricDataFormat %d != 0: %w", metricDataFormat, ErrUnsupportedFormat)
	}

	if t.numberOfHMetrics, err = c.ReadU16(); err != nil {
		return nil, fmt.Errorf("sfnt: hhea: reading numberOfHMetrics: %w", err)
	}

	return t, nil
}
