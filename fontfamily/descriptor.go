package fontfamily

import (
	"fmt"

	"github.com/AuburnSounds/printed/sfnt"
)

// KnownFont is one registered (file, font index) pair together with the
// classification metadata the matcher scores against. Parsing is not
// deferred: RegisterFontFile fully parses each font to classify it and
// keeps that parsed sfnt.Face on the descriptor, so every registered font
// stays resident as a parsed Face, not only the ones a match chooses.
type KnownFont struct {
	FilePath   string
	FontIndex  int
	FamilyName string
	SubFamily  string
	Weight     sfnt.Weight
	Style      sfnt.Style

	face *sfnt.Face // set by RegisterFontFile, or by loadFont when nil
}

// loadFont returns the descriptor's Face. When the descriptor already
// holds one (as every descriptor built by RegisterFontFile does) it is
// returned as is; otherwise the file is read and parsed once and the Face
// is cached on the descriptor.
func (k *KnownFont) loadFont(fs FileSystem) (*sfnt.Face, error) {
	if k.face != nil {
		return k.face, nil
	}

	data, err := fs.ReadFile(k.FilePath)
	if err != nil {
		return nil, fmt.Errorf("fontfamily: reading %q: %w", k.FilePath, err)
	}
	container, err := sfnt.OpenContainer(data)
	if err != nil {
		return nil, fmt.Errorf("fontfamily: opening %q: %w", k.FilePath, err)
	}
	dir, err := container.Directory(k.FontIndex)
	if err != nil {
		return nil, fmt.Errorf("fontfamily: %q index %d: %w", k.FilePath, k.FontIndex, err)
	}

	face := sfnt.NewFace(dir)
	if _, err := face.Classification(); err != nil {
		return nil, fmt.Errorf("fontfamily: parsing %q index %d: %w", k.FilePath, k.FontIndex, err)
	}

	k.face = face
	return face, nil
}
