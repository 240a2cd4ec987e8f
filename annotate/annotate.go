// Package annotate defines the transcription collaborator interface and its
// implementations.
//
// An annotator turns one source image into an annotated text string: literal
// transcribed text interleaved with zero or more inline crop markers of the
// form [[CROP:ymin,xmin,ymax,xmax]] for regions the model declines to
// transcribe (formulas, diagrams, charts). The marker grammar is defined in
// the marker package.
//
// Two implementations are provided:
//
//   - [Gemini] calls the Gemini API with the image and the transcription
//     prompt.
//   - [Local] (build tag "ocr") runs Tesseract locally; it transcribes text
//     only and never emits markers.
//
// Tests and offline callers can satisfy [Annotator] with a deterministic
// stub returning canned strings.
package annotate

import "context"

// Annotator transcribes one source image into annotated text. Implementations
// may call out over the network; failures are per-image and are reported to
// the caller, which decides on retry or exclusion.
type Annotator interface {
	Annotate(ctx context.Context, imageData []byte, mimeType string) (string, error)
}

// Prompt is the transcription instruction sent to model-backed annotators.
// It defines the crop marker contract: verbatim transcription with markers
// substituted for visual regions, coordinates on a 0-1000 scale in
// (ymin, xmin, ymax, xmax) order.
const Prompt = `Transcribe all text in this image exactly as written, preserving line breaks between paragraphs.

For any region you cannot or should not transcribe as text - mathematical formulas, diagrams, charts, drawings, tables rendered as figures - do NOT describe it. Instead insert an inline marker of the exact form:

[[CROP:ymin,xmin,ymax,xmax]]

where the four values are integers from 0 to 1000 giving the region's bounding box normalized to the image height and width, in top-to-bottom, left-to-right order. Place each marker at the position in the text where the region appears. Do not add any commentary, headers, or code fences; output only the transcription with markers.`

// AnnotatorFunc adapts a plain function to the Annotator interface.
type AnnotatorFunc func(ctx context.Context, imageData []byte, mimeType string) (string, error)

// Annotate calls f.
func (f AnnotatorFunc) Annotate(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	return f(ctx, imageData, mimeType)
}
