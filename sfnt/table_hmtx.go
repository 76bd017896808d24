package sfnt

import "fmt"

// glyphMetric is one entry of a face's per-glyph horizontal metrics table
// (spec §3 "Glyph descriptor").
type glyphMetric struct {
	horzAdvance     uint16
	leftSideBearing int16
}

// parseHmtx decodes the `hmtx` table into a full numGlyphs-length metric
// array. For glyph indices at or beyond numberOfHMetrics, the advance
// repeats the last explicit advance (the "run-length tail" spec §3/§4.4
// describes); only the left side bearing continues to vary per glyph.
func parseHmtx(data []byte, numberOfHMetrics, numGlyphs int) ([]glyphMetric, error) {
	if numGlyphs < numberOfHMetrics {
		return nil, fmt.Errorf("sfnt: hmtx: numGlyphs %d < numberOfHMetrics %d", numGlyphs, numberOfHMetrics)
	}

	c := NewCursor(data)

	metrics := make([]glyphMetric, 0, numGlyphs)
	for i := 0; i < numberOfHMetrics; i++ {
		advance, err := c.ReadU16()
		if err != nil {
			return nil, fmt.Errorf("sfnt: hmtx: reading advance %d: %w", i, err)
		}
		lsb, err := c.ReadI16()
		if err != nil {
			return nil, fmt.Errorf("sfnt: hmtx: reading lsb %d: %w", i, err)
		}
		metrics = append(metrics, glyphMetric{horzAdvance: advance, leftSideBearing: lsb})
	}

	lastAdvance := uint16(0)
	if len(metrics) > 0 {
		lastAdvance = metrics[len(metrics)-1].horzAdvance
	}
	for i := numberOfHMetrics; i < numGlyphs; i++ {
		lsb, err := c.ReadI16()
		if err != nil {
			return nil, fmt.Errorf("sfnt: hmtx: reading tail lsb %d: %w", i, err)
		}
		metrics = append(metrics, glyphMetric{horzAdvance: lastAdvance, leftSideBearing: lsb})
	}

	return metrics, nil
}
