// Package marker parses annotated text produced by the transcription model
// into a sequence of typed segments.
//
// The annotator emits literal transcribed text interleaved with inline crop
// markers of the form:
//
//	[[CROP:ymin,xmin,ymax,xmax]]
//
// where all four fields are non-negative base-10 integers on a 0-1000 scale,
// with no whitespace inside the tag. [Parse] splits such a string into
// [TextSegment] and [CropSegment] values in their original order.
//
// Parsing is total: any input is representable as a segment sequence, and a
// substring that superficially resembles marker syntax but does not parse is
// folded into the surrounding text. There is no escaping mechanism; a
// coincidental literal match of the marker grammar is indistinguishable from
// a real marker. That ambiguity is part of the contract with the annotator.
package marker

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/snapscript/model"
)

// markerPattern matches the crop marker wire format. Integer range checks
// happen after the match; a group that overflows int folds back into text.
var markerPattern = regexp.MustCompile(`\[\[CROP:(\d+),(\d+),(\d+),(\d+)\]\]`)

// SegmentKind represents the type of a parsed segment.
type SegmentKind int

const (
	SegmentKindText SegmentKind = iota
	SegmentKindCrop
)

// Segment is one typed unit of parsed annotated text.
type Segment interface {
	Kind() SegmentKind
}

// TextSegment is a literal run of transcribed text. Embedded line breaks are
// preserved verbatim; splitting on them is the layout assembler's concern.
type TextSegment struct {
	Content string
}

func (s TextSegment) Kind() SegmentKind { return SegmentKindText }

// CropSegment is a reference to a region of the source image that the
// annotator declined to transcribe.
type CropSegment struct {
	Box model.Box
}

func (s CropSegment) Kind() SegmentKind { return SegmentKindCrop }

// Parse splits annotated text into an ordered segment sequence. It never
// fails and never emits empty text segments: an input with no markers yields
// exactly one TextSegment equal to the input (or nothing, if the input is
// empty).
func Parse(text string) []Segment {
	var segments []Segment
	var pending strings.Builder

	flush := func() {
		if pending.Len() > 0 {
			segments = append(segments, TextSegment{Content: pending.String()})
			pending.Reset()
		}
	}

	cursor := 0
	for _, loc := range markerPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[0], loc[1]
		box, ok := parseBox(text, loc)
		if !ok {
			// Treat the whole near-match as ordinary text.
			pending.WriteString(text[cursor:end])
			cursor = end
			continue
		}
		pending.WriteString(text[cursor:start])
		flush()
		segments = append(segments, CropSegment{Box: box})
		cursor = end
	}
	pending.WriteString(text[cursor:])
	flush()

	return segments
}

// parseBox extracts the four coordinate groups from a match location.
func parseBox(text string, loc []int) (model.Box, bool) {
	var coords [4]int
	for i := 0; i < 4; i++ {
		group := text[loc[2+2*i]:loc[3+2*i]]
		v, err := strconv.Atoi(group)
		if err != nil {
			return model.Box{}, false
		}
		coords[i] = v
	}
	return model.NewBox(coords[0], coords[1], coords[2], coords[3]), true
}

// Reassemble reconstructs the annotated text from a segment sequence,
// rendering crop segments back to their wire form. For any input,
// Reassemble(Parse(s)) == s.
func Reassemble(segments []Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		switch s := seg.(type) {
		case TextSegment:
			sb.WriteString(s.Content)
		case CropSegment:
			fmt.Fprintf(&sb, "[[CROP:%s]]", s.Box)
		}
	}
	return sb.String()
}
