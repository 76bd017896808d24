// Package sfnt reads OpenType and TrueType font containers (.ttf, .otf,
// .ttc, .otc). It exposes per-font identifying names, weight/style
// classification, horizontal and vertical metrics, and a codepoint-to-glyph
// mapping decoded from the most common cmap subtable format.
//
// Glyph outline decoding (glyf/loca/CFF), hinting, and layout tables
// (GSUB/GPOS/kern) are out of scope; only metrics and codepoint mapping are
// provided.
package sfnt
