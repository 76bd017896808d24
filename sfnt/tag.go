package sfnt

import "strings"

// Tag is a four-byte table identifier, interpreted as a big-endian uint32
// for ordering and comparison purposes (spec: "Tag. 4-byte ASCII identifier
// interpreted as a big-endian 32-bit unsigned integer").
type Tag uint32

// MakeTag builds a Tag from a (at most 4-byte) ASCII string, right-padding
// with spaces the way the OpenType spec pads short tags such as "cvt ".
func MakeTag(s string) Tag {
	var b [4]byte
	copy(b[:], s)
	for i := len(s); i < 4; i++ {
		b[i] = ' '
	}
	return Tag(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

func (t Tag) String() string {
	b := [4]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
	return strings.TrimRight(string(b[:]), " ")
}

var (
	tagHead = MakeTag("head")
	tagHhea = MakeTag("hhea")
	tagMaxp = MakeTag("maxp")
	tagHmtx = MakeTag("hmtx")
	tagPost = MakeTag("post")
	tagOS2  = MakeTag("OS/2")
	tagName = MakeTag("name")
	tagCmap = MakeTag("cmap")
)

const (
	magicOpenType     = uint32(0x4F54544F) // 'OTTO'
	magicTrueType     = uint32(0x00010000)
	magicCollection   = uint32(0x74746366) // 'ttcf'
	magicHeadChecksum = uint32(0x5F0F3CF5)
)
