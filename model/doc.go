// Package model provides the intermediate representation (IR) for assembled
// document content.
//
// This package defines the data structures shared by the marker parser, the
// region cropper, the layout assembler, and the DOCX encoder. The layout
// assembler produces these types; the encoder consumes them.
//
// # Document Structure
//
// The [Document] type represents the finished document as an ordered list of
// paragraphs:
//
//	doc := model.NewDocument("My Notes")
//	doc.AddParagraph(model.NewParagraph(model.StyleBody, run))
//
// # Runs
//
// All paragraph content implements the [Run] interface. The concrete types
// are:
//
//   - [TextRun] - a styled text fragment
//   - [ImageRun] - an embedded raster image sized in page units
//   - [PageBreakRun] - a forced page break
//
// # Geometry
//
// The [Box] type is a bounding box in the annotator's normalized 0-1000
// coordinate space, with conversion to pixel-space rectangles for cropping.
package model
