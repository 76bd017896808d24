package sfnt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildValidatableFont builds a two-table (head, test) font image with
// correct per-table checksums and a correct head.checksumAdjustment, so
// Validate can be exercised against a font it should accept.
func buildValidatableFont(t *testing.T) []byte {
	t.Helper()

	headPayload := make([]byte, 12) // checksumAdjustment (bytes 8-11) left zero for now
	testPayload := []byte{0xAA, 0xBB, 0xCC, 0xDD}

	const headerLen = 12 + 16*2
	headOffset := headerLen
	testOffset := headOffset + len(headPayload)

	build := func(headChecksum, testChecksum uint32) []byte {
		var out []byte
		out = append(out, be32(magicTrueType)...)
		out = append(out, be16(2)...)
		out = append(out, 0, 0, 0, 0, 0, 0)
		out = append(out, be32(uint32(MakeTag("head")))...)
		out = append(out, be32(headChecksum)...)
		out = append(out, be32(uint32(headOffset))...)
		out = append(out, be32(uint32(len(headPayload)))...)
		out = append(out, be32(uint32(MakeTag("test")))...)
		out = append(out, be32(testChecksum)...)
		out = append(out, be32(uint32(testOffset))...)
		out = append(out, be32(uint32(len(testPayload)))...)
		out = append(out, headPayload...)
		out = append(out, testPayload...)
		return out
	}

	headChecksum := checksum(headPayload) // adjustment already zero
	testChecksum := checksum(testPayload)

	image := build(headChecksum, testChecksum)
	fileChecksum := checksum(image) // adjustment field still zero at this point
	adjustment := uint32(0xB1B0AFBA) - fileChecksum

	image[headOffset+8] = byte(adjustment >> 24)
	image[headOffset+9] = byte(adjustment >> 16)
	image[headOffset+10] = byte(adjustment >> 8)
	image[headOffset+11] = byte(adjustment)

	return image
}

func TestValidateAcceptsWellFormedFont(t *testing.T) {
	require.NoError(t, Validate(buildValidatableFont(t), 0))
}

func TestValidateDetectsCorruptedTable(t *testing.T) {
	data := buildValidatableFont(t)
	// Flip a byte inside the "test" table payload, invalidating its checksum
	// without touching the head checksum machinery.
	data[len(data)-1] ^= 0xFF
	err := Validate(data, 0)
	require.Error(t, err)
}

func TestChecksumPadsPartialWord(t *testing.T) {
	require.Equal(t, uint32(0x01020300), checksum([]byte{0x01, 0x02, 0x03}))
	require.Equal(t, uint32(0x00010203), checksum([]byte{0x00, 0x01, 0x02, 0x03}))
}
