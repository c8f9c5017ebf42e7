package standalone

import _ "embed"

// Artwork shown for games without box art (decoded and scaled by the
// library screen's artwork cache)
//
//go:embed assets/placeholder.png
var placeholderImageData []byte
