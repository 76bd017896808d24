package fontfamily

import "errors"

// ErrNoFontAvailable is returned by FontRegistry.FindBestMatch when the
// registry holds no usable font at all (spec §4.9).
var ErrNoFontAvailable = errors.New("fontfamily: no font available")
