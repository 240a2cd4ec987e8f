// Package layout assembles parsed annotation segments into a finished
// document.
//
// The [Assembler] walks each file's annotated text in user order, converts
// text segments into paragraph-aware text runs and crop segments into
// proportionally sized image runs, and emits one [model.Document] with a
// title paragraph, per-file header paragraphs, and page breaks between
// files.
//
// # Paragraph construction
//
// Text segments are split on line breaks; every split boundary except a
// trailing one finishes the open paragraph, preserving the source's
// paragraph structure. Crop segments never force a paragraph boundary on
// their own: an image whose marker sits between two pieces of text on the
// same source line shares their paragraph.
//
// # Failure handling
//
// A failed crop (undecodable image, degenerate region) is absorbed locally:
// a visible placeholder text run is appended in its place and the failure is
// logged. Only an empty input sequence is an error ([ErrNoContent]).
package layout
