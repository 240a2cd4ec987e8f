package marker

import (
	"reflect"
	"testing"

	"github.com/tsawler/snapscript/model"
)

func text(s string) Segment { return TextSegment{Content: s} }

func crop(y0, x0, y1, x1 int) Segment {
	return CropSegment{Box: model.NewBox(y0, x0, y1, x1)}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "plain text",
			input: "The quick brown fox.",
			want:  []Segment{text("The quick brown fox.")},
		},
		{
			name:  "single marker only",
			input: "[[CROP:0,0,500,500]]",
			want:  []Segment{crop(0, 0, 500, 500)},
		},
		{
			name:  "marker between text",
			input: "before [[CROP:100,100,200,200]] after",
			want:  []Segment{text("before "), crop(100, 100, 200, 200), text(" after")},
		},
		{
			name:  "adjacent markers",
			input: "[[CROP:0,0,10,10]][[CROP:20,20,30,30]]",
			want:  []Segment{crop(0, 0, 10, 10), crop(20, 20, 30, 30)},
		},
		{
			name:  "marker at start",
			input: "[[CROP:1,2,3,4]]tail",
			want:  []Segment{crop(1, 2, 3, 4), text("tail")},
		},
		{
			name:  "marker at end",
			input: "head[[CROP:1,2,3,4]]",
			want:  []Segment{text("head"), crop(1, 2, 3, 4)},
		},
		{
			name:  "line breaks preserved in text",
			input: "A\nB[[CROP:100,100,200,200]]C",
			want:  []Segment{text("A\nB"), crop(100, 100, 200, 200), text("C")},
		},
		{
			name:  "missing closing brackets",
			input: "x [[CROP:1,2,3,4 y",
			want:  []Segment{text("x [[CROP:1,2,3,4 y")},
		},
		{
			name:  "wrong field count",
			input: "x [[CROP:1,2,3]] y",
			want:  []Segment{text("x [[CROP:1,2,3]] y")},
		},
		{
			name:  "negative coordinate",
			input: "x [[CROP:-1,2,3,4]] y",
			want:  []Segment{text("x [[CROP:-1,2,3,4]] y")},
		},
		{
			name:  "interior whitespace not tolerated",
			input: "x [[CROP: 1,2,3,4]] y",
			want:  []Segment{text("x [[CROP: 1,2,3,4]] y")},
		},
		{
			name:  "non-integer field",
			input: "x [[CROP:a,2,3,4]] y",
			want:  []Segment{text("x [[CROP:a,2,3,4]] y")},
		},
		{
			name:  "integer overflow folds into surrounding text",
			input: "x [[CROP:99999999999999999999,2,3,4]] y",
			want:  []Segment{text("x [[CROP:99999999999999999999,2,3,4]] y")},
		},
		{
			name:  "malformed then valid marker",
			input: "[[CROP:1,2]] mid [[CROP:1,2,3,4]]",
			want:  []Segment{text("[[CROP:1,2]] mid "), crop(1, 2, 3, 4)},
		},
		{
			name:  "degenerate coordinates still parse",
			input: "[[CROP:200,200,100,100]]",
			want:  []Segment{crop(200, 200, 100, 100)},
		},
		{
			name:  "lookalike prefix folds into text before real marker",
			input: "[[CROP:[[CROP:1,2,3,4]]",
			want:  []Segment{text("[[CROP:"), crop(1, 2, 3, 4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNeverEmitsEmptyText(t *testing.T) {
	inputs := []string{
		"",
		"[[CROP:0,0,1,1]]",
		"[[CROP:0,0,1,1]][[CROP:0,0,1,1]]",
		"a[[CROP:0,0,1,1]]b",
	}
	for _, input := range inputs {
		for _, seg := range Parse(input) {
			if ts, ok := seg.(TextSegment); ok && ts.Content == "" {
				t.Errorf("Parse(%q) emitted empty text segment", input)
			}
		}
	}
}

func TestReassembleRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text with\nnewlines",
		"[[CROP:0,0,500,500]]",
		"before [[CROP:100,100,200,200]] after",
		"[[CROP:1,2,3]] malformed [[CROP:4,5,6,7]] valid",
		"[[CROP:1,2,3,4]][[CROP:5,6,7,8]]",
		"trailing junk [[CROP:9,9,9",
	}
	for _, input := range inputs {
		if got := Reassemble(Parse(input)); got != input {
			t.Errorf("Reassemble(Parse(%q)) = %q", input, got)
		}
	}
}
