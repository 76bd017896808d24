package sfnt

import "fmt"

// os2Table is the decoded `OS/2` table subset needed for classification
// (spec §4.4, §4.7).
type os2Table struct {
	usWeightClass uint16
	panose        [10]byte
	fsSelection   uint16
}

func parseOS2(data []byte) (*os2Table, error) {
	c := NewCursor(data)
	if err := c.Skip(4); err != nil { // version, xAvgCharWidth
		return nil, fmt.Errorf("sfnt: OS/2: %w", err)
	}

	t := &os2Table{}
	var err error
	if t.usWeightClass, err = c.ReadU16(); err != nil {
		return nil, fmt.Errorf("sfnt: OS/2: reading usWeightClass: %w", err)
	}

	if err := c.Skip(26); err != nil {
		// usWidthClass, fsType, 10 y-values (ySubscript*, ySuperscript*,
		// yStrikeout*), sFamilyClass.
		return nil, fmt.Errorf("sfnt: OS/2: %w", err)
	}

	for i := range t.panose {
		if t.panose[i], err = c.ReadU8(); err != nil {
			return nil, fmt.Errorf("sfnt: OS/2: reading panose[%d]: %w", i, err)
		}
	}

	if err := c.Skip(20); err != nil { // 4 unicode range fields + achVendId
		return nil, fmt.Errorf("sfnt: OS/2: %w", err)
	}

	if t.fsSelection, err = c.ReadU16(); err != nil {
		return nil, fmt.Errorf("sfnt: OS/2: reading fsSelection: %w", err)
	}

	return t, nil
}
