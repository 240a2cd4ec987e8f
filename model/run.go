package model

// RunKind represents the type of a document run.
type RunKind int

const (
	RunKindUnknown RunKind = iota
	RunKindText
	RunKindImage
	RunKindPageBreak
)

func (rk RunKind) String() string {
	switch rk {
	case RunKindText:
		return "Text"
	case RunKindImage:
		return "Image"
	case RunKindPageBreak:
		return "PageBreak"
	default:
		return "Unknown"
	}
}

// Run is the interface for all paragraph content. A run is the smallest
// placeable unit in a paragraph.
type Run interface {
	Kind() RunKind
}

// TextRun is a styled text fragment.
type TextRun struct {
	Text string
	Bold bool
	// Size is the font size in half-points, or 0 for the document default.
	Size int
}

func (r *TextRun) Kind() RunKind { return RunKindText }

// ImageRun is an embedded raster image. Data holds the encoded image bytes
// (PNG). Width and Height are the intended display size in page units
// (points), not the pixel dimensions of the image.
type ImageRun struct {
	Data   []byte
	Width  float64
	Height float64
	// AltText describes the image origin for accessibility and diagnostics.
	AltText string
}

func (r *ImageRun) Kind() RunKind { return RunKindImage }

// PageBreakRun forces a page break at its position.
type PageBreakRun struct{}

func (r *PageBreakRun) Kind() RunKind { return RunKindPageBreak }
