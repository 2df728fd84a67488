package convert

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/draw"

	"picconv/internal/model"
)

var (
	ErrMissingSource      = errors.New("Please select an input image!")
	ErrMissingDestination = errors.New("Please select an output location!")
	ErrUnknownFormat      = errors.New("unknown output format")
)

var icoMagic = []byte{0x00, 0x00, 0x01, 0x00}

// Validate checks a request's fields without touching the filesystem.
func Validate(req model.Request) error {
	if strings.TrimSpace(req.Source) == "" {
		return ErrMissingSource
	}
	if strings.TrimSpace(req.Destination) == "" {
		return ErrMissingDestination
	}
	if !req.Format.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(req.Format))
	}
	return nil
}

// Convert decodes the source image and writes it to the destination in the requested format.
// JPEG output is flattened onto white first. A failed encode may leave a partial destination file.
func Convert(req model.Request, opts Options) error {
	if err := Validate(req); err != nil {
		return err
	}
	opts = opts.withDefaults()

	img, err := Open(req.Source)
	if err != nil {
		return err
	}

	if req.Format == model.JPEG {
		img = Flatten(img)
	}

	enc, ok := encoders[req.Format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(req.Format))
	}

	out, err := os.Create(req.Destination)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := enc(out, img, opts); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", req.Format.Ext(), err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// Open decodes an image file, applying EXIF orientation where present.
func Open(path string) (image.Image, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer in.Close()

	img, err := decode(in)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func decode(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(icoMagic))
	if err == nil && bytes.Equal(head, icoMagic) {
		return ico.Decode(br)
	}
	return imaging.Decode(br, imaging.AutoOrientation(true))
}

// Flatten composites img over an opaque white background, dropping its alpha channel.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}
