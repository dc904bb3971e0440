package asset

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	DefaultThumbWidth  = 300
	DefaultThumbHeight = 300

	thumbJPEGQuality = 80
)

// Deriver produces bounded-box thumbnails. Derivation is best-effort:
// any error it returns is logged by the pipeline and the upload proceeds
// without a thumbnail.
type Deriver struct {
	width  int
	height int
}

func NewDeriver(width, height int) *Deriver {
	if width <= 0 {
		width = DefaultThumbWidth
	}
	if height <= 0 {
		height = DefaultThumbHeight
	}
	return &Deriver{width: width, height: height}
}

// Derive decodes the image, scales it down to fit the bounding box
// preserving aspect ratio (images already inside the box are left at
// their original size), and re-encodes it in the source format. Formats
// the encoder cannot target (WebP) fail here; the caller treats that as
// a derivation warning, never an upload failure.
func (d *Deriver) Derive(data []byte, ext string) ([]byte, error) {
	format, err := imaging.FormatFromExtension(strings.TrimPrefix(ext, "."))
	if err != nil {
		return nil, fmt.Errorf("no thumbnail encoder for %q: %w", ext, err)
	}

	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Fit(src, d.width, d.height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, format, imaging.JPEGQuality(thumbJPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
