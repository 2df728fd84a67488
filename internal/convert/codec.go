package convert

import (
	"image"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"

	"picconv/internal/model"
)

const (
	DefaultQuality = 95

	// icoMaxSide is the largest edge an ICO directory entry can describe.
	icoMaxSide = 256
)

// Options tunes lossy encoders.
type Options struct {
	Quality int // JPEG and WEBP quality, 1-100
}

func (o Options) withDefaults() Options {
	switch {
	case o.Quality == 0:
		o.Quality = DefaultQuality
	case o.Quality < 1:
		o.Quality = 1
	case o.Quality > 100:
		o.Quality = 100
	}
	return o
}

type encodeFunc func(w io.Writer, img image.Image, opts Options) error

var encoders = map[model.Format]encodeFunc{
	model.PNG: func(w io.Writer, img image.Image, _ Options) error {
		return imaging.Encode(w, img, imaging.PNG)
	},
	model.JPEG: func(w io.Writer, img image.Image, opts Options) error {
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(opts.Quality))
	},
	model.BMP: func(w io.Writer, img image.Image, _ Options) error {
		return imaging.Encode(w, img, imaging.BMP)
	},
	model.GIF: func(w io.Writer, img image.Image, _ Options) error {
		return imaging.Encode(w, img, imaging.GIF, imaging.GIFNumColors(256))
	},
	model.TIFF: func(w io.Writer, img image.Image, _ Options) error {
		return imaging.Encode(w, img, imaging.TIFF)
	},
	model.ICO:  encodeICO,
	model.WEBP: encodeWEBP,
}

func encodeICO(w io.Writer, img image.Image, _ Options) error {
	b := img.Bounds()
	if b.Dx() > icoMaxSide || b.Dy() > icoMaxSide {
		img = imaging.Fit(img, icoMaxSide, icoMaxSide, imaging.Lanczos)
	}
	return ico.Encode(w, img)
}

func encodeWEBP(w io.Writer, img image.Image, opts Options) error {
	return webp.Encode(w, img, &webp.Options{Quality: float32(opts.Quality)})
}
