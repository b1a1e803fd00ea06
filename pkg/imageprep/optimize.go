package imageprep

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"

	"github.com/disintegration/imaging"
)

const (
	defaultMaxWidth  = 200
	defaultMaxHeight = 200
	defaultQuality   = 0.85
)

// Options controls how Optimize resizes and re-encodes an image.
// Zero values fall back to the avatar defaults: 200x200 bounds,
// quality 0.85, JPEG output.
type Options struct {
	MaxWidth  int
	MaxHeight int
	Quality   float64
	Format    imaging.Format
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = defaultMaxWidth
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = defaultMaxHeight
	}
	if o.Quality <= 0 || o.Quality > 1 {
		o.Quality = defaultQuality
	}
	return o
}

// Optimized is the re-encoded image produced by Optimize.
type Optimized struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// Optimize decodes the image, scales it down to fit within the configured
// bounds preserving aspect ratio, and re-encodes it. Images already inside
// the bounds are never upscaled. The context is checked between the decode
// and encode stages so a canceled upload stops before the expensive work.
func Optimize(ctx context.Context, r io.Reader, opts Options) (*Optimized, error) {
	opts = opts.withDefaults()

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fitted := imaging.Fit(img, opts.MaxWidth, opts.MaxHeight, imaging.Lanczos)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	quality := imaging.JPEGQuality(int(math.Round(opts.Quality * 100)))
	if err := imaging.Encode(&buf, fitted, opts.Format, quality); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	bounds := fitted.Bounds()
	return &Optimized{
		Data:        buf.Bytes(),
		ContentType: contentTypeFor(opts.Format),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}

func contentTypeFor(f imaging.Format) string {
	switch f {
	case imaging.PNG:
		return "image/png"
	case imaging.GIF:
		return "image/gif"
	case imaging.BMP:
		return "image/bmp"
	case imaging.TIFF:
		return "image/tiff"
	default:
		return "image/jpeg"
	}
}
