package fontfamily

import (
	"os"
	"path/filepath"
)

// FileSystem is the collaborator a FontRegistry uses to read font bytes and
// to discover font files under a directory tree. Registering by file path
// uses only ReadFile; RegisterDirectory also uses WalkFontFiles. The
// interface exists so tests can
// substitute an in-memory filesystem instead of touching disk (spec §3:
// filesystem access is explicitly a collaborator, not core scope).
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WalkFontFiles(root string) ([]string, error)
}

// OSFileSystem is the default FileSystem, backed by the OS filesystem via
// os.ReadFile and filepath.WalkDir. No third-party filesystem-walking
// library appears anywhere in the retrieved examples, so the standard
// library is used here without a pack-grounded alternative (see DESIGN.md
// "Stdlib justifications").
type OSFileSystem struct{}

func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// fontFileExtensions lists the extensions WalkFontFiles considers, mirroring
// the narrower "ignore obviously non-font extensions" filtering the
// fontscan matcher applies during directory scanning, inverted into an
// allow-list since this reader only understands sfnt containers. Matching
// is case-sensitive, an exact 4-character suffix, deliberately not
// normalized via strings.ToLower.
var fontFileExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
	".otc": true,
}

func (OSFileSystem) WalkFontFiles(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if fontFileExtensions[filepath.Ext(path)] {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
