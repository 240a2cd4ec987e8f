// Package region extracts pixel-space sub-rectangles from source images.
//
// A crop marker's normalized 0-1000 box is converted to a pixel rectangle
// against the decoded source image, rasterized, and re-encoded as PNG. No
// scaling is applied at crop time; sizing the result to page width is a
// layout concern.
//
// Supported source formats: PNG, JPEG, GIF (standard library) and BMP, TIFF,
// WebP (golang.org/x/image). Decoding happens entirely in memory; no
// temporary files or handles are held past a call.
package region

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/snapscript/model"
)

// ErrDegenerateRegion is returned when a box's computed pixel extent is not
// positive on both axes, after clamping to the image bounds. It guards
// against malformed or reversed marker coordinates.
var ErrDegenerateRegion = errors.New("degenerate crop region")

// DecodeError wraps a failure to rasterize the source image.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding source image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Region is a cropped sub-image, PNG-encoded, with its pixel extent.
type Region struct {
	Data   []byte
	Width  int
	Height int
}

// Crop decodes imageData, extracts the pixel rectangle corresponding to the
// normalized box, and returns it as a losslessly encoded region.
//
// Coordinates beyond the image bounds are clamped; a box that is degenerate
// before or after clamping fails with ErrDegenerateRegion. A source that
// cannot be decoded fails with a *DecodeError.
func Crop(imageData []byte, box model.Box) (*Region, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	bounds := img.Bounds()
	rect := box.PixelRect(bounds.Dx(), bounds.Dy()).Add(bounds.Min)
	rect = rect.Intersect(bounds)
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return nil, fmt.Errorf("box %s on %dx%d image: %w",
			box, bounds.Dx(), bounds.Dy(), ErrDegenerateRegion)
	}

	cropped := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(cropped, cropped.Bounds(), img, rect.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("encoding cropped region: %w", err)
	}

	return &Region{
		Data:   buf.Bytes(),
		Width:  rect.Dx(),
		Height: rect.Dy(),
	}, nil
}
