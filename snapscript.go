// Package snapscript converts a batch of document images into one structured
// DOCX by combining machine-transcribed text with preserved visual regions
// (formulas, diagrams, charts) that the transcription model declines to
// transcribe.
//
// Basic usage:
//
//	p := snapscript.New(annotate.NewGemini(apiKey, ""))
//	if err := p.AddFile("notes.png", imageBytes); err != nil {
//	    // handle error
//	}
//	blob, err := p.Run(ctx)
//	if err != nil {
//	    // handle error
//	}
//	os.WriteFile(snapscript.DefaultFileName, blob, 0o644)
//
// With options:
//
//	p := snapscript.New(annotator,
//	    snapscript.WithTitle("Lecture 4"),
//	    snapscript.WithProgress(func(name string, status snapscript.Status) {
//	        log.Println(name, status)
//	    }),
//	)
//
// For advanced use cases, the lower-level marker, region, layout, and docx
// packages are also available.
package snapscript

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/tsawler/snapscript/annotate"
	"github.com/tsawler/snapscript/docx"
	"github.com/tsawler/snapscript/format"
	"github.com/tsawler/snapscript/layout"
	"github.com/tsawler/snapscript/model"
)

// ErrNoContent is returned by Run when no file produced usable annotated
// text, so there is nothing to assemble.
var ErrNoContent = layout.ErrNoContent

// sourceFile is one uploaded image and its processing state. The image data
// is treated as read-only once added.
type sourceFile struct {
	name      string
	data      []byte
	mime      string
	annotated string
	status    Status
	err       error
}

// Pipeline orchestrates the two-stage conversion: sequential per-file
// annotation, then document assembly and encoding. It is not safe for
// concurrent use; the document under construction has exactly one writer.
type Pipeline struct {
	annotator annotate.Annotator
	options   Options
	files     []*sourceFile
}

// New creates a pipeline using the given annotator.
func New(annotator annotate.Annotator, opts ...Option) *Pipeline {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Pipeline{
		annotator: annotator,
		options:   options,
	}
}

// AddFile registers a source image under a display name, appended to the
// processing order. The payload must be a recognizable raster image and the
// name must be unique within the pipeline.
func (p *Pipeline) AddFile(name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("adding file: empty name")
	}
	if p.find(name) >= 0 {
		return fmt.Errorf("adding file %q: already added", name)
	}
	f := format.DetectFromMagic(data)
	if f == format.Unknown {
		return fmt.Errorf("adding file %q: unrecognized image format", name)
	}
	p.files = append(p.files, &sourceFile{
		name: name,
		data: data,
		mime: f.MIME(),
	})
	return nil
}

// RemoveFile removes a file by name. It reports whether the file was
// present.
func (p *Pipeline) RemoveFile(name string) bool {
	i := p.find(name)
	if i < 0 {
		return false
	}
	p.files = slices.Delete(p.files, i, i+1)
	return true
}

// MoveFile shifts a file by delta positions in the processing order,
// clamping at either end. It reports whether the file was present.
func (p *Pipeline) MoveFile(name string, delta int) bool {
	i := p.find(name)
	if i < 0 {
		return false
	}
	j := i + delta
	if j < 0 {
		j = 0
	}
	if j > len(p.files)-1 {
		j = len(p.files) - 1
	}
	f := p.files[i]
	p.files = slices.Delete(p.files, i, i+1)
	p.files = slices.Insert(p.files, j, f)
	return true
}

// FileNames returns the display names in processing order.
func (p *Pipeline) FileNames() []string {
	names := make([]string, len(p.files))
	for i, f := range p.files {
		names[i] = f.name
	}
	return names
}

// Statuses returns a snapshot of every file's processing state, in order.
func (p *Pipeline) Statuses() []FileStatus {
	statuses := make([]FileStatus, len(p.files))
	for i, f := range p.files {
		statuses[i] = FileStatus{Name: f.name, Status: f.status}
		if f.err != nil {
			statuses[i].Err = f.err.Error()
		}
	}
	return statuses
}

// Run processes every file and returns the encoded DOCX bytes.
//
// Annotation calls run strictly sequentially in file order; a failed
// annotation marks that file's status and excludes it from assembly without
// stopping the batch. Cancellation is honored between files, not mid-file.
// The whole run fails only when nothing is left to assemble (ErrNoContent)
// or encoding fails.
//
// Statuses are reset at the start, so a pipeline can be rerun after its
// files change; the document is fully rebuilt each time.
func (p *Pipeline) Run(ctx context.Context) ([]byte, error) {
	for _, f := range p.files {
		f.annotated = ""
		f.err = nil
		p.setStatus(f, StatusIdle)
	}

	for _, f := range p.files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p.annotateFile(ctx, f)
	}

	doc, err := p.assemble()
	if err != nil {
		return nil, err
	}

	blob, err := docx.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return blob, nil
}

// annotateFile runs one file's annotation call and records the outcome.
func (p *Pipeline) annotateFile(ctx context.Context, f *sourceFile) {
	p.setStatus(f, StatusProcessing)

	text, err := p.annotator.Annotate(ctx, f.data, f.mime)
	if err == nil && text == "" {
		err = errors.New("empty transcription")
	}
	if err != nil {
		f.err = err
		p.setStatus(f, StatusError)
		if p.options.logger != nil {
			p.options.logger.Warn("annotation failed", "file", f.name, "error", err)
		}
		return
	}

	f.annotated = text
	p.setStatus(f, StatusCompleted)
}

// assemble builds the document from the successfully annotated files.
func (p *Pipeline) assemble() (*model.Document, error) {
	var eligible []layout.File
	for _, f := range p.files {
		if f.status != StatusCompleted {
			continue
		}
		eligible = append(eligible, layout.File{
			Name:      f.name,
			Image:     f.data,
			Annotated: f.annotated,
		})
	}

	cfg := layout.DefaultConfig()
	cfg.Logger = p.options.logger
	if p.options.pageWidth > 0 {
		cfg.PageWidth = p.options.pageWidth
	}

	doc, err := layout.NewAssemblerWithConfig(cfg).Assemble(p.options.title, eligible)
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}
	return doc, nil
}

// setStatus updates a file's status and notifies the progress callback.
func (p *Pipeline) setStatus(f *sourceFile, status Status) {
	f.status = status
	if p.options.progress != nil {
		p.options.progress(f.name, status)
	}
}

// find returns the index of a file by name, or -1.
func (p *Pipeline) find(name string) int {
	for i, f := range p.files {
		if f.name == name {
			return i
		}
	}
	return -1
}
