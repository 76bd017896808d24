package sfnt

import "fmt"

// postTable is the decoded `post` (PostScript) table header (spec §4.4).
// Only the fields needed for italic-angle metrics and monospace
// classification are extracted eagerly; glyph name resolution (version 2.0
// / 2.5) is done lazily by GlyphName, since most callers never need it.
type postTable struct {
	italicAngleFixed int32 // 16.16 fixed-point, degrees
	isFixedPitch     bool

	data []byte // full table payload, retained for lazy glyph name lookup
}

func parsePost(data []byte) (*postTable, error) {
	c := NewCursor(data)
	if err := c.Skip(4); err != nil { // version
		return nil, fmt.Errorf("sfnt: post: %w", err)
	}
	italicAngle, err := c.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("sfnt: post: reading italicAngle: %w", err)
	}
	if err := c.Skip(4); err != nil { // underlinePosition, underlineThickness
		return nil, fmt.Errorf("sfnt: post: %w", err)
	}
	isFixedPitch, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("sfnt: post: reading isFixedPitch: %w", err)
	}

	return &postTable{
		italicAngleFixed: italicAngle,
		isFixedPitch:     isFixedPitch != 0,
		data:             data,
	}, nil
}

// macGlyphNames is the fixed 258-entry standard Macintosh glyph order used
// by `post` table version 1.0 (implicit) and version 2.0/2.5 (explicit,
// for glyph name indices below 258).
var macGlyphNames = [258]string{
	".notdef", ".null", "nonmarkingreturn", "space", "exclam", "quotedbl",
	"numbersign", "dollar", "percent", "ampersand", "quotesingle",
	"parenleft", "parenright", "asterisk", "plus", "comma", "hyphen",
	"period", "slash", "zero", "one", "two", "three", "four", "five", "six",
	"seven", "eight", "nine", "colon", "semicolon", "less", "equal",
	"greater", "question", "at", "A", "B", "C", "D", "E", "F", "G", "H",
	"I", "J", "K", "L", "M", "N", "O", "P", "Q", "R", "S", "T", "U", "V",
	"W", "X", "Y", "Z", "bracketleft", "backslash", "bracketright",
	"asciicircum", "underscore", "grave", "a", "b", "c", "d", "e", "f",
	"g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s", "t",
	"u", "v", "w", "x", "y", "z", "braceleft", "bar", "braceright",
	"asciitilde", "Adieresis", "Aring", "Ccedilla", "Eacute", "Ntilde",
	"Odieresis", "Udieresis", "aacute", "agrave", "acircumflex",
	"adieresis", "atilde", "aring", "ccedilla", "eacute", "egrave",
	"ecircumflex", "edieresis", "iacute", "igrave", "icircumflex",
	"idieresis", "ntilde", "oacute", "ograve", "ocircumflex", "odieresis",
	"otilde", "uacute", "ugrave", "ucircumflex", "udieresis", "dagger",
	"degree", "cent", "sterling", "section", "bullet", "paragraph",
	"germandbls", "registered", "copyright", "trademark", "acute",
	"dieresis", "notequal", "AE", "Oslash", "infinity", "plusminus",
	"lessequal", "greaterequal", "yen", "mu", "partialdiff", "summation",
	"product", "pi", "integral", "ordfeminine", "ordmasculine", "Omega",
	"ae", "oslash", "questiondown", "exclamdown", "logicalnot", "radical",
	"florin", "approxequal", "Delta", "guillemotleft", "guillemotright",
	"ellipsis", "nonbreakingspace", "Agrave", "Atilde", "Otilde", "OE",
	"oe", "endash", "emdash", "quotedblleft", "quotedblright", "quoteleft",
	"quoteright", "divide", "lozenge", "ydieresis", "Ydieresis",
	"fraction", "currency", "guilsinglleft", "guilsinglright", "fi", "fl",
	"daggerdbl", "periodcentered", "quotesinglbase", "quotedblbase",
	"perthousand", "Acircumflex", "Ecircumflex", "Aacute", "Edieresis",
	"Egrave", "Iacute", "Icircumflex", "Idieresis", "Igrave", "Oacute",
	"Ocircumflex", "apple", "Ograve", "Uacute", "Ucircumflex", "Ugrave",
	"dotlessi", "circumflex", "tilde", "macron", "breve", "dotaccent",
	"ring", "cedilla", "hungarumlaut", "ogonek", "caron", "Lslash",
	"lslash", "Scaron", "scaron", "Zcaron", "zcaron", "brokenbar", "Eth",
	"eth", "Yacute", "yacute", "Thorn", "thorn", "minus", "multiply",
	"onesuperior", "twosuperior", "threesuperior", "onehalf",
	"onequarter", "threequarters", "franc", "Gbreve", "gbreve",
	"Idotaccent", "Scedilla", "scedilla", "Cacute", "cacute", "Ccaron",
	"ccaron", "dcroat",
}

// GlyphName resolves gid to its PostScript glyph name: version 1.0 uses the
// standard Macintosh order directly, versions 2.0 and 2.5 go through their
// per-glyph data. Other versions, or a gid out of range, give ("", false).
func (t *postTable) GlyphName(gid GlyphIndex) (string, bool) {
	if t == nil {
		return "", false
	}
	version, err := parsePostVersion(t.data)
	if err != nil {
		return "", false
	}

	switch version {
	case 0x00010000:
		if int(gid) < len(macGlyphNames) {
			return macGlyphNames[gid], true
		}
		return "", false
	case 0x00020000:
		return postV2GlyphName(t.data, gid)
	case 0x00025000:
		// numGlyphs, then one int8 per glyph added to gid to give its index
		// in the standard Macintosh order.
		c := NewCursor(t.data)
		if c.Skip(32) != nil {
			return "", false
		}
		n, err := c.ReadU16()
		if err != nil || int(gid) >= int(n) || c.Skip(int(gid)) != nil {
			return "", false
		}
		off, err := c.ReadI8()
		if ni := int(gid) + int(off); err == nil && ni >= 0 && ni < len(macGlyphNames) {
			return macGlyphNames[ni], true
		}
		return "", false
	default:
		return "", false
	}
}

func parsePostVersion(data []byte) (uint32, error) {
	c := NewCursor(data)
	return c.ReadU32()
}

// postV2GlyphName decodes the version-2.0 glyphNameIndex/name-pool layout.
func postV2GlyphName(data []byte, gid GlyphIndex) (string, bool) {
	c := NewCursor(data)
	if err := c.Skip(32); err != nil {
		return "", false
	}
	numGlyphs, err := c.ReadU16()
	if err != nil || int(gid) >= int(numGlyphs) {
		return "", false
	}

	indices := make([]uint16, numGlyphs)
	for i := range indices {
		indices[i], err = c.ReadU16()
		if err != nil {
			return "", false
		}
	}

	ni := indices[gid]
	if ni < 258 {
		return macGlyphNames[ni], true
	}

	// Walk the Pascal-string pool to find entry (ni - 258).
	target := int(ni) - 258
	for i := 0; ; i++ {
		length, err := c.ReadU8()
		if err != nil {
			return "", false
		}
		name, err := c.Bytes(int(length))
		if err != nil {
			return "", false
		}
		if i == target {
			return string(name), true
		}
	}
}
