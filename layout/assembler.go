package layout

import (
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/snapscript/marker"
	"github.com/tsawler/snapscript/model"
	"github.com/tsawler/snapscript/region"
)

// ErrNoContent is returned when assembly is invoked with zero eligible
// files. Files whose annotation failed are expected to be filtered out by
// the caller before this stage.
var ErrNoContent = errors.New("no annotated files to assemble")

// MissingImagePlaceholder is the text run substituted for a crop that could
// not be produced.
const MissingImagePlaceholder = "[MISSING IMAGE]"

// File is one unit of assembly input: a named source image and the
// annotated text the transcription model produced for it.
type File struct {
	Name      string
	Image     []byte
	Annotated string
}

// Config holds assembler tuning parameters.
type Config struct {
	// PageWidth is the usable page width in page units (points). Image runs
	// are sized proportionally to it.
	PageWidth float64
	// PageAspect is the page height-to-width ratio used when deriving image
	// display height from a marker's vertical extent.
	PageAspect float64
	// MinRunSize is the smallest display dimension, in page units, for an
	// embedded image. Near-zero crops are floored to it so they stay
	// visible.
	MinRunSize float64
	// Logger receives per-marker crop diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns the default assembler configuration: a 600-unit
// page width, A4 portrait aspect, and a 20-unit minimum image dimension.
func DefaultConfig() Config {
	return Config{
		PageWidth:  600,
		PageAspect: 1.4142,
		MinRunSize: 20,
	}
}

// Assembler builds documents from annotated files.
type Assembler struct {
	config Config
}

// NewAssembler creates an assembler with default configuration.
func NewAssembler() *Assembler {
	return NewAssemblerWithConfig(DefaultConfig())
}

// NewAssemblerWithConfig creates an assembler with custom configuration.
// Zero-valued dimensions fall back to their defaults.
func NewAssemblerWithConfig(config Config) *Assembler {
	def := DefaultConfig()
	if config.PageWidth <= 0 {
		config.PageWidth = def.PageWidth
	}
	if config.PageAspect <= 0 {
		config.PageAspect = def.PageAspect
	}
	if config.MinRunSize <= 0 {
		config.MinRunSize = def.MinRunSize
	}
	return &Assembler{config: config}
}

// Assemble builds one document from the given files, in order. The result
// is deterministic for a given input: no randomness and no wall-clock
// dependence.
func (a *Assembler) Assemble(title string, files []File) (*model.Document, error) {
	if len(files) == 0 {
		return nil, ErrNoContent
	}

	doc := model.NewDocument(title)
	doc.AddParagraph(model.NewParagraph(model.StyleTitle, &model.TextRun{
		Text: title,
		Bold: true,
		Size: 48, // half-points: 24pt
	}))

	for i, file := range files {
		a.assembleFile(doc, file)
		if i < len(files)-1 {
			doc.AddParagraph(model.NewParagraph(model.StyleBody, &model.PageBreakRun{}))
		}
	}

	return doc, nil
}

// assembleFile emits one file's header and body paragraphs.
func (a *Assembler) assembleFile(doc *model.Document, file File) {
	doc.AddParagraph(model.NewParagraph(model.StyleFileHeader, &model.TextRun{
		Text: file.Name,
		Bold: true,
		Size: 32, // half-points: 16pt
	}))

	// Combining sequences from the model are normalized up front so equal
	// text always renders identically.
	segments := marker.Parse(norm.NFC.String(file.Annotated))

	var current *model.Paragraph
	open := func() *model.Paragraph {
		if current == nil {
			current = model.NewParagraph(model.StyleBody)
		}
		return current
	}
	flush := func() {
		if current != nil && !current.IsEmpty() {
			doc.AddParagraph(current)
		}
		current = nil
	}

	for _, seg := range segments {
		switch s := seg.(type) {
		case marker.TextSegment:
			pieces := strings.Split(s.Content, "\n")
			for j, piece := range pieces {
				if piece != "" {
					open().AddRun(&model.TextRun{Text: piece})
				}
				// Every split boundary except the trailing one ends the
				// paragraph.
				if j < len(pieces)-1 {
					flush()
				}
			}
		case marker.CropSegment:
			open().AddRun(a.cropRun(file, s.Box))
		}
	}
	flush()
}

// cropRun produces the run for one crop marker: an image run on success, a
// visible placeholder on failure.
func (a *Assembler) cropRun(file File, box model.Box) model.Run {
	reg, err := region.Crop(file.Image, box)
	if err != nil {
		if a.config.Logger != nil {
			a.config.Logger.Warn("crop failed, substituting placeholder",
				"file", file.Name,
				"box", box.String(),
				"error", err)
		}
		return &model.TextRun{Text: MissingImagePlaceholder, Bold: true}
	}

	width, height := a.displaySize(box)
	return &model.ImageRun{
		Data:    reg.Data,
		Width:   width,
		Height:  height,
		AltText: "Region " + box.String() + " of " + file.Name,
	}
}

// displaySize converts a marker's normalized extent into page-unit display
// dimensions, floored at the configured minimum.
func (a *Assembler) displaySize(box model.Box) (width, height float64) {
	width = float64(box.Width()) / model.CoordinateScale * a.config.PageWidth
	height = float64(box.Height()) / model.CoordinateScale * a.config.PageWidth * a.config.PageAspect
	if width < a.config.MinRunSize {
		width = a.config.MinRunSize
	}
	if height < a.config.MinRunSize {
		height = a.config.MinRunSize
	}
	return width, height
}
