package sfnt

import (
	"fmt"
	"sync"
)

// Face is one font within a container, lazily parsed on first metric or
// glyph query (spec §4.8, §5 "lazy one-shot metrics"). The zero-value-like
// "unparsed" state and the fully-parsed state are never observably mixed:
// parseOnce guarantees the transition happens at most once and is
// published before any reader observes the parsed fields (spec §9
// "prefer structuring the face as two variants ... rather than a mutable
// flag plus partially-initialized fields").
type Face struct {
	dir *Directory

	parseOnce sync.Once
	parseErr  error

	head           *headTable
	hhea           *hheaTable
	maxp           *maxpTable
	metrics        []glyphMetric
	post           *postTable
	os2            *os2Table
	name           *nameTable
	cmap           *cmapResult
	classification Classification
}

// NewFace builds a Face over dir. Nothing is parsed until the first
// metric or glyph query (one-shot lazy, spec §4.8).
func NewFace(dir *Directory) *Face {
	return &Face{dir: dir}
}

// ensureParsed triggers the one-shot full parse of head, hhea, maxp, hmtx,
// post, OS/2, name and cmap. Safe for concurrent callers: sync.Once
// serializes the transition (spec §5).
func (f *Face) ensureParsed() error {
	f.parseOnce.Do(func() {
		f.parseErr = f.parse()
	})
	return f.parseErr
}

func (f *Face) parse() error {
	headData, err := f.dir.Get(tagHead)
	if err != nil {
		return err
	}
	f.head, err = parseHead(headData)
	if err != nil {
		return err
	}

	hheaData, err := f.dir.Get(tagHhea)
	if err != nil {
		return err
	}
	f.hhea, err = parseHhea(hheaData)
	if err != nil {
		return err
	}

	maxpData, err := f.dir.Get(tagMaxp)
	if err != nil {
		return err
	}
	f.maxp, err = parseMaxp(maxpData)
	if err != nil {
		return err
	}

	hmtxData, err := f.dir.Get(tagHmtx)
	if err != nil {
		return err
	}
	f.metrics, err = parseHmtx(hmtxData, int(f.hhea.numberOfHMetrics), int(f.maxp.numGlyphs))
	if err != nil {
		return err
	}

	if postData := f.dir.Find(tagPost); postData != nil {
		if f.post, err = parsePost(postData); err != nil {
			return err
		}
	}

	if os2Data := f.dir.Find(tagOS2); os2Data != nil {
		if f.os2, err = parseOS2(os2Data); err != nil {
			return err
		}
	}

	if nameData := f.dir.Find(tagName); nameData != nil {
		if f.name, err = parseName(nameData); err != nil {
			return err
		}
	}

	if cmapData := f.dir.Find(tagCmap); cmapData != nil {
		if f.cmap, err = parseCmap(cmapData, int(f.maxp.numGlyphs)); err != nil {
			return err
		}
	}

	sub := ""
	if f.name != nil {
		sub = f.name.subFamily()
	}
	f.classification = classify(f.os2, headData, f.post, sub)
	return nil
}

// mustParse parses on demand and panics only never — callers that can
// fail return the error; callers with no error channel (e.g. String-
// returning name accessors) degrade to zero values.
func (f *Face) mustParse() {
	_ = f.ensureParsed()
}

// FamilyName resolves the family name (spec §4.6 family resolution).
func (f *Face) FamilyName() string {
	f.mustParse()
	if f.name == nil {
		return ""
	}
	return f.name.family()
}

// SubFamilyName resolves the sub-family name (spec §4.6).
func (f *Face) SubFamilyName() string {
	f.mustParse()
	if f.name == nil {
		return ""
	}
	return f.name.subFamily()
}

// FullName returns NameFullFontName, or "" if absent.
func (f *Face) FullName() string {
	f.mustParse()
	if f.name == nil {
		return ""
	}
	s, _ := f.name.Get(NameFullFontName)
	return s
}

// PostScriptName returns NamePostscriptName, or "" if absent.
func (f *Face) PostScriptName() string {
	f.mustParse()
	if f.name == nil {
		return ""
	}
	s, _ := f.name.Get(NamePostscriptName)
	return s
}

// Name returns the raw string for an arbitrary NameID, or ("", false).
func (f *Face) Name(id NameID) (string, bool) {
	f.mustParse()
	if f.name == nil {
		return "", false
	}
	return f.name.Get(id)
}

// Classification returns the derived weight/style/monospace triple.
func (f *Face) Classification() (Classification, error) {
	if err := f.ensureParsed(); err != nil {
		return Classification{}, err
	}
	return f.classification, nil
}

// BBox returns the font-wide bounding box in font design units.
func (f *Face) BBox() ([4]int16, error) {
	if err := f.ensureParsed(); err != nil {
		return [4]int16{}, err
	}
	return f.head.bbox, nil
}

// UnitsPerEm returns the design-space denominator (spec glossary).
func (f *Face) UnitsPerEm() (uint16, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	return f.head.unitsPerEm, nil
}

// InvUnitsPerEm returns 1.0/UnitsPerEm, precomputed for callers that scale
// many values into em-space and would rather multiply than divide per glyph.
func (f *Face) InvUnitsPerEm() (float64, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	if f.head.unitsPerEm == 0 {
		return 0, ErrDegenerateMetrics
	}
	return 1.0 / float64(f.head.unitsPerEm), nil
}

// Ascent, Descent, LineGap return the hhea vertical metrics.
func (f *Face) Ascent() (int16, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	return f.hhea.ascender, nil
}

func (f *Face) Descent() (int16, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	return f.hhea.descender, nil
}

// LineGap returns ascender - descender + hhea.lineGap (spec §4.8).
func (f *Face) LineGap() (int32, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	h := f.hhea
	return int32(h.ascender) - int32(h.descender) + int32(h.lineGap), nil
}

// ItalicAngleDegrees returns post.italicAngle converted from 16.16
// fixed-point to degrees, or 0 if post is absent.
func (f *Face) ItalicAngleDegrees() (float64, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	if f.post == nil {
		return 0, nil
	}
	return float64(f.post.italicAngleFixed) / 65536.0, nil
}

// BaselineOffset computes the offset of the named baseline from the
// alphabetic baseline, in font design units (spec §4.8).
func (f *Face) BaselineOffset(b Baseline) (float64, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	a := float64(f.hhea.ascender)
	d := float64(f.hhea.descender)
	u := float64(f.head.unitsPerEm)
	actual := a - d
	if actual == 0 {
		return 0, nil
	}

	switch b {
	case BaselineTop:
		return a * u / actual, nil
	case BaselineBottom:
		return d * u / actual, nil
	case BaselineMiddle:
		return 0.5 * (a + d) * u / actual, nil
	case BaselineAlphabetic:
		return 0, nil
	case BaselineHanging:
		return a, nil // approximation, see spec §9(c)
	default:
		return 0, fmt.Errorf("sfnt: unknown baseline %d", b)
	}
}

// NumGlyphs returns maxp.numGlyphs.
func (f *Face) NumGlyphs() (int, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	return int(f.maxp.numGlyphs), nil
}

// HasGlyph reports whether c was explicitly mapped by the cmap subtable.
// Per spec §8, glyph 0 must never be treated as "present" through this
// path: only an actual cmap entry counts.
func (f *Face) HasGlyph(c rune) bool {
	f.mustParse()
	if f.cmap == nil {
		return false
	}
	_, ok := f.cmap.byCodepoint[c]
	return ok
}

// GlyphIndex returns the mapped glyph for c, or 0 (".notdef") if absent.
func (f *Face) GlyphIndex(c rune) GlyphIndex {
	f.mustParse()
	if f.cmap == nil {
		return 0
	}
	return f.cmap.byCodepoint[c]
}

// GlyphName resolves a PostScript glyph name for gid, if the `post` table
// carries per-glyph names.
func (f *Face) GlyphName(gid GlyphIndex) (string, bool) {
	f.mustParse()
	return f.post.GlyphName(gid)
}

// LeftSideBearing returns the left side bearing for the glyph mapped from
// codepoint c.
func (f *Face) LeftSideBearing(c rune) (int16, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	gid := f.GlyphIndex(c)
	if int(gid) >= len(f.metrics) {
		return 0, nil
	}
	return f.metrics[gid].leftSideBearing, nil
}

// HorizontalAdvance returns the advance width for the glyph mapped from
// codepoint c.
func (f *Face) HorizontalAdvance(c rune) (uint16, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	gid := f.GlyphIndex(c)
	if int(gid) >= len(f.metrics) {
		return 0, nil
	}
	return f.metrics[gid].horzAdvance, nil
}

// MeasureText sums the horizontal advance of every codepoint in s.
func (f *Face) MeasureText(s string) (int64, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	var total int64
	for _, r := range s {
		adv, err := f.HorizontalAdvance(r)
		if err != nil {
			return 0, err
		}
		total += int64(adv)
	}
	return total, nil
}

// glyphForFallback is the cascade of substitute characters tried by
// GlyphFor when a codepoint has no direct mapping (spec §4.8).
var glyphForFallback = []rune{'�', '', '?', ' '}

// GlyphFor implements the total fallback cascade: try c, then U+FFFD,
// U+007F, '?', ' ', and finally glyph 0. It only fails if the font has no
// glyphs at all (spec §8: "glyph_for is total").
func (f *Face) GlyphFor(c rune) (GlyphIndex, error) {
	n, err := f.NumGlyphs()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrEmptyFont
	}

	if f.HasGlyph(c) {
		return f.GlyphIndex(c), nil
	}
	for _, sub := range glyphForFallback {
		if f.HasGlyph(sub) {
			return f.GlyphIndex(sub), nil
		}
	}
	return 0, nil
}

// CharRanges returns every codepoint range covered by the chosen cmap
// subtable (spec §3 "Char ranges").
func (f *Face) CharRanges() ([]CharRange, error) {
	if err := f.ensureParsed(); err != nil {
		return nil, err
	}
	if f.cmap == nil {
		return nil, nil
	}
	return f.cmap.ranges, nil
}

// MaxCodepoint returns the largest codepoint covered by the cmap subtable.
func (f *Face) MaxCodepoint() (rune, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	if f.cmap == nil {
		return 0, nil
	}
	return f.cmap.maxCodepoint, nil
}
