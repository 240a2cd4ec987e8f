package model

import "strings"

// ParagraphStyle identifies how a paragraph is rendered.
type ParagraphStyle int

const (
	// StyleBody is ordinary body text.
	StyleBody ParagraphStyle = iota
	// StyleTitle is the single document title paragraph.
	StyleTitle
	// StyleFileHeader is the per-file section header paragraph.
	StyleFileHeader
)

func (ps ParagraphStyle) String() string {
	switch ps {
	case StyleTitle:
		return "Title"
	case StyleFileHeader:
		return "FileHeader"
	default:
		return "Body"
	}
}

// Paragraph is an ordered sequence of runs rendered as one layout block.
type Paragraph struct {
	Style ParagraphStyle
	Runs  []Run
}

// NewParagraph creates a paragraph with the given style and runs.
func NewParagraph(style ParagraphStyle, runs ...Run) *Paragraph {
	return &Paragraph{Style: style, Runs: runs}
}

// AddRun appends a run to the paragraph.
func (p *Paragraph) AddRun(r Run) {
	p.Runs = append(p.Runs, r)
}

// IsEmpty returns true if the paragraph contains no runs.
func (p *Paragraph) IsEmpty() bool {
	return len(p.Runs) == 0
}

// Text concatenates the text of all text runs in the paragraph.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		if tr, ok := r.(*TextRun); ok {
			sb.WriteString(tr.Text)
		}
	}
	return sb.String()
}

// Document is an ordered sequence of paragraphs spanning all processed
// files. It is built once per download request and fully reconstructed from
// current file state each time.
type Document struct {
	Title      string
	Paragraphs []*Paragraph
}

// NewDocument creates an empty document with the given title. The title
// paragraph itself is inserted by the layout assembler.
func NewDocument(title string) *Document {
	return &Document{
		Title:      title,
		Paragraphs: make([]*Paragraph, 0),
	}
}

// AddParagraph appends a paragraph to the document.
func (d *Document) AddParagraph(p *Paragraph) {
	d.Paragraphs = append(d.Paragraphs, p)
}

// ParagraphCount returns the total number of paragraphs.
func (d *Document) ParagraphCount() int {
	return len(d.Paragraphs)
}

// RunCount returns the total number of runs across all paragraphs.
func (d *Document) RunCount() int {
	var n int
	for _, p := range d.Paragraphs {
		n += len(p.Runs)
	}
	return n
}

// ImageCount returns the number of image runs across all paragraphs.
func (d *Document) ImageCount() int {
	var n int
	for _, p := range d.Paragraphs {
		for _, r := range p.Runs {
			if r.Kind() == RunKindImage {
				n++
			}
		}
	}
	return n
}

// ExtractText returns all text content concatenated, one line per
// paragraph. Intended for diagnostics and tests.
func (d *Document) ExtractText() string {
	var sb strings.Builder
	for i, p := range d.Paragraphs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Text())
	}
	return sb.String()
}
