package fontfamily

import (
	"fmt"
	"sync"

	"github.com/pterm/pterm"

	"github.com/AuburnSounds/printed/sfnt"
)

// FontRegistry indexes registered font files by their cheap classification
// metadata and answers FindBestMatch queries against that index (spec
// §4.9), grounded on the footprint/fontSet split of the vendored
// go-text/typesetting/fontscan matcher. Each descriptor keeps the fully
// parsed sfnt.Face built at registration; FindBestMatch scores descriptors
// and returns the winner's Face, without parsing the file again.
type FontRegistry struct {
	fs FileSystem

	mu    sync.Mutex
	fonts []KnownFont
	cache map[matchKey]*sfnt.Face

	// Debug controls whether swallowed per-file parse failures are
	// reported via pterm.Debug (spec §4.9: registration tolerates and
	// logs unreadable files rather than failing the whole scan).
	Debug bool
}

type matchKey struct {
	family string
	weight sfnt.Weight
	style  sfnt.Style
}

// NewFontRegistry builds an empty registry backed by fs. Pass
// OSFileSystem{} for real filesystem access.
func NewFontRegistry(fs FileSystem) *FontRegistry {
	return &FontRegistry{
		fs:    fs,
		cache: make(map[matchKey]*sfnt.Face),
	}
}

func (r *FontRegistry) debugf(format string, args ...interface{}) {
	if r.Debug {
		pterm.Debug.Printf(format, args...)
	}
}

// RegisterFontFile parses path's container and adds one KnownFont per font
// it holds (more than one for a TrueType Collection). Classification is
// read eagerly here since it drives matching; reading it runs the Face's
// full one-shot parse (metrics and cmap included), and that parsed Face is
// kept on the descriptor.
func (r *FontRegistry) RegisterFontFile(path string) error {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fontfamily: reading %q: %w", path, err)
	}

	container, err := sfnt.OpenContainer(data)
	if err != nil {
		return fmt.Errorf("fontfamily: opening %q: %w", path, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < container.NumFonts(); i++ {
		dir, err := container.Directory(i)
		if err != nil {
			r.debugf("skipping unreadable font index %d in %q: %v\n", i, path, err)
			continue
		}
		face := sfnt.NewFace(dir)
		classification, err := face.Classification()
		if err != nil {
			r.debugf("skipping unclassifiable font index %d in %q: %v\n", i, path, err)
			continue
		}

		r.fonts = append(r.fonts, KnownFont{
			FilePath:   path,
			FontIndex:  i,
			FamilyName: face.FamilyName(),
			SubFamily:  face.SubFamilyName(),
			Weight:     classification.Weight,
			Style:      classification.Style,
			face:       face,
		})
	}

	return nil
}

// RegisterDirectory walks root for font files and registers each one,
// logging and skipping (rather than failing) files that turn out not to be
// usable fonts, per the matcher's general "index what parses, ignore the
// rest" stance (spec §4.9, grounded on fontscan.scanFontFootprints).
func (r *FontRegistry) RegisterDirectory(root string) error {
	paths, err := r.fs.WalkFontFiles(root)
	if err != nil {
		return fmt.Errorf("fontfamily: walking %q: %w", root, err)
	}
	for _, path := range paths {
		if err := r.RegisterFontFile(path); err != nil {
			r.debugf("skipping font file %q: %v\n", path, err)
		}
	}
	return nil
}

// FindBestMatch returns the Face of the registered font that best matches
// (family, weight, style) under the scoring rule in score.go, caching the
// result per distinct query triple. Ties are broken in registration order:
// the first-seen minimal-score candidate wins (spec §4.9, §8 example).
func (r *FontRegistry) FindBestMatch(family string, weight sfnt.Weight, style sfnt.Style) (*sfnt.Face, error) {
	key := matchKey{family: family, weight: weight, style: style}

	r.mu.Lock()
	if face, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return face, nil
	}

	if len(r.fonts) == 0 {
		r.mu.Unlock()
		return nil, ErrNoFontAvailable
	}

	bestIdx := 0
	bestScore := score(r.fonts[0], family, weight, style)
	for i := 1; i < len(r.fonts); i++ {
		s := score(r.fonts[i], family, weight, style)
		if s < bestScore {
			bestScore = s
			bestIdx = i
		}
	}
	best := &r.fonts[bestIdx]
	r.mu.Unlock()

	face, err := best.loadFont(r.fs)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[key] = face
	r.mu.Unlock()

	return face, nil
}

// NumFonts returns the number of (file, font index) descriptors currently
// registered.
func (r *FontRegistry) NumFonts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fonts)
}

// KnownFonts returns a snapshot of the descriptors currently registered.
// The returned slice is a copy; mutating it does not affect the registry.
func (r *FontRegistry) KnownFonts() []KnownFont {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]KnownFont, len(r.fonts))
	copy(out, r.fonts)
	return out
}
