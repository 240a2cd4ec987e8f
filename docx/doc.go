// Package docx serializes an assembled document into a DOCX (Office Open
// XML) binary.
//
// The encoder walks the model's paragraph/run tree and produces the minimal
// WordprocessingML package a conforming reader needs: content types, package
// relationships, the document part, a styles part, document relationships,
// and one media part per embedded image. Image runs become inline drawings
// with extents converted from page units (points) to EMUs.
//
// Encoding is a pure transformation of the model: for a well-formed
// document the only failure paths are archive-level write errors.
package docx
