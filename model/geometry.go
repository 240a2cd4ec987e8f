package model

import (
	"fmt"
	"image"
	"math"
)

// CoordinateScale is the annotator's normalized coordinate space. Marker
// coordinates are integers on a 0-1000 scale relative to image width and
// height, in (row, column) order matching the annotator's top-to-bottom,
// left-to-right scan.
const CoordinateScale = 1000

// Box represents a normalized bounding box from a crop marker.
type Box struct {
	YMin, XMin, YMax, XMax int
}

// NewBox creates a box from marker coordinates in wire order
// (ymin, xmin, ymax, xmax).
func NewBox(ymin, xmin, ymax, xmax int) Box {
	return Box{YMin: ymin, XMin: xmin, YMax: ymax, XMax: xmax}
}

// Width returns the normalized horizontal extent.
func (b Box) Width() int {
	return b.XMax - b.XMin
}

// Height returns the normalized vertical extent.
func (b Box) Height() int {
	return b.YMax - b.YMin
}

// IsValid returns true if the box has positive extent on both axes.
func (b Box) IsValid() bool {
	return b.Width() > 0 && b.Height() > 0
}

// PixelRect converts the normalized box to a pixel-space rectangle for an
// image of the given dimensions. Each edge is scaled independently and
// rounded to the nearest pixel. The result is deliberately not canonicalized:
// a box with reversed coordinates yields an empty rectangle rather than a
// silently swapped one, so the cropper can reject it.
func (b Box) PixelRect(imgWidth, imgHeight int) image.Rectangle {
	scale := func(v, size int) int {
		return int(math.Round(float64(v) / CoordinateScale * float64(size)))
	}
	return image.Rectangle{
		Min: image.Point{X: scale(b.XMin, imgWidth), Y: scale(b.YMin, imgHeight)},
		Max: image.Point{X: scale(b.XMax, imgWidth), Y: scale(b.YMax, imgHeight)},
	}
}

// String returns the box in marker wire order.
func (b Box) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", b.YMin, b.XMin, b.YMax, b.XMax)
}
