package fontfamily

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AuburnSounds/printed/sfnt"
)

// memFS is an in-memory FileSystem used to exercise the registry without
// touching disk.
type memFS struct {
	files map[string][]byte
	dirs  map[string][]string
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return data, nil
}

func (m *memFS) WalkFontFiles(root string) ([]string, error) {
	return m.dirs[root], nil
}

func be16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }
func be32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}
func utf16BE(s string) []byte {
	var out []byte
	for _, r := range s {
		out = append(out, byte(r>>8), byte(r))
	}
	return out
}

// buildFont assembles a minimal single-font sfnt image carrying only head,
// hhea, maxp, hmtx, OS/2 and name — enough for classification and family
// resolution, which is all the registry needs.
func buildFont(t *testing.T, family string, weight uint16, fsSelection uint16) []byte {
	t.Helper()

	var head []byte
	head = append(head, make([]byte, 12)...)
	head = append(head, be32(0x5F0F3CF5)...) // magicNumber
	head = append(head, be16(0)...)          // flags
	head = append(head, be16(1000)...)       // unitsPerEm
	head = append(head, make([]byte, 16)...) // created, modified
	head = append(head, make([]byte, 8)...)  // bbox (unused by this test)
	head = append(head, make([]byte, 10)...) // macStyle + trailing fields

	var hhea []byte
	hhea = append(hhea, make([]byte, 4)...) // version
	hhea = append(hhea, be16(800)...)       // ascender
	descender := int16(-200)
	hhea = append(hhea, be16(uint16(descender))...) // descender
	hhea = append(hhea, be16(0)...)                   // lineGap
	hhea = append(hhea, make([]byte, 22)...)
	hhea = append(hhea, be16(0)...) // metricDataFormat
	hhea = append(hhea, be16(1)...) // numberOfHMetrics

	maxp := append(make([]byte, 4), be16(1)...)

	var hmtx []byte
	hmtx = append(hmtx, be16(500)...)
	hmtx = append(hmtx, be16(0)...)

	var os2 []byte
	os2 = append(os2, make([]byte, 4)...) // version + xAvgCharWidth
	os2 = append(os2, be16(weight)...)    // usWeightClass
	os2 = append(os2, make([]byte, 26)...)
	os2 = append(os2, make([]byte, 10)...) // panose, all zero (not fixed-pitch)
	os2 = append(os2, make([]byte, 20)...)
	os2 = append(os2, be16(fsSelection)...)

	nameData := utf16BE(family)
	name := append(append(be16(0), be16(1)...), be16(18)...) // format, count=1, stringOffset
	name = append(name, be16(3)...)                          // platformID = Windows
	name = append(name, be16(1)...)                          // encodingID
	name = append(name, be16(0)...)                          // languageID
	name = append(name, be16(1)...)                          // nameID = fontFamily
	name = append(name, be16(uint16(len(nameData)))...)
	name = append(name, be16(0)...) // offset within storage
	name = append(name, nameData...)

	tables := map[string][]byte{
		"head": head,
		"hhea": hhea,
		"maxp": maxp,
		"hmtx": hmtx,
		"OS/2": os2,
		"name": name,
	}

	tags := []string{"OS/2", "head", "hhea", "hmtx", "maxp", "name"} // ascending tag order
	headerLen := 12 + 16*len(tags)
	var payload []byte
	offsets := make([]uint32, len(tags))
	cursor := headerLen
	for i, tag := range tags {
		offsets[i] = uint32(cursor)
		payload = append(payload, tables[tag]...)
		cursor += len(tables[tag])
	}

	var out []byte
	out = append(out, be32(0x00010000)...)
	out = append(out, be16(uint16(len(tags)))...)
	out = append(out, 0, 0, 0, 0, 0, 0)
	for i, tag := range tags {
		out = append(out, be32(uint32(sfnt.MakeTag(tag)))...)
		out = append(out, be32(0)...)
		out = append(out, be32(offsets[i])...)
		out = append(out, be32(uint32(len(tables[tag])))...)
	}
	out = append(out, payload...)
	return out
}

func TestRegistryFindBestMatchNoFonts(t *testing.T) {
	r := NewFontRegistry(&memFS{})
	_, err := r.FindBestMatch("Arial", sfnt.WeightNormal, sfnt.StyleNormal)
	require.ErrorIs(t, err, ErrNoFontAvailable)
}

func TestRegistryRegisterAndMatch(t *testing.T) {
	fs := &memFS{files: map[string][]byte{
		"arial.ttf":      buildFont(t, "Arial", 400, 0),
		"arial-bold.ttf": buildFont(t, "Arial", 700, 1<<0), // bold + italic bit
	}}
	r := NewFontRegistry(fs)
	require.NoError(t, r.RegisterFontFile("arial.ttf"))
	require.NoError(t, r.RegisterFontFile("arial-bold.ttf"))
	require.Equal(t, 2, r.NumFonts())

	face, err := r.FindBestMatch("arial", sfnt.WeightMedium, sfnt.StyleOblique)
	require.NoError(t, err)
	require.NotNil(t, face)

	classification, err := face.Classification()
	require.NoError(t, err)
	require.Equal(t, sfnt.WeightBold, classification.Weight)
	require.Equal(t, sfnt.StyleItalic, classification.Style)
}

func TestRegistryCachesMatches(t *testing.T) {
	fs := &memFS{files: map[string][]byte{
		"arial.ttf": buildFont(t, "Arial", 400, 0),
	}}
	r := NewFontRegistry(fs)
	require.NoError(t, r.RegisterFontFile("arial.ttf"))

	f1, err := r.FindBestMatch("Arial", sfnt.WeightNormal, sfnt.StyleNormal)
	require.NoError(t, err)
	f2, err := r.FindBestMatch("Arial", sfnt.WeightNormal, sfnt.StyleNormal)
	require.NoError(t, err)
	require.Same(t, f1, f2)
}

func TestRegistryKnownFontsIsReadOnlySnapshot(t *testing.T) {
	fs := &memFS{files: map[string][]byte{
		"arial.ttf":      buildFont(t, "Arial", 400, 0),
		"arial-bold.ttf": buildFont(t, "Arial", 700, 1<<0),
	}}
	r := NewFontRegistry(fs)
	require.NoError(t, r.RegisterFontFile("arial.ttf"))
	require.NoError(t, r.RegisterFontFile("arial-bold.ttf"))

	known := r.KnownFonts()
	require.Len(t, known, 2)
	require.Equal(t, "Arial", known[0].FamilyName)

	known[0].FamilyName = "Mutated"
	require.Equal(t, "Arial", r.KnownFonts()[0].FamilyName)
}

func TestRegistryDirectory(t *testing.T) {
	fs := &memFS{
		files: map[string][]byte{"/fonts/a.ttf": buildFont(t, "Testy", 400, 0)},
		dirs:  map[string][]string{"/fonts": {"/fonts/a.ttf"}},
	}
	r := NewFontRegistry(fs)
	require.NoError(t, r.RegisterDirectory("/fonts"))
	require.Equal(t, 1, r.NumFonts())
}
