package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/tsawler/snapscript/model"
)

// readPart returns the named part from an encoded package.
func readPart(t *testing.T, blob []byte, name string) []byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("opening %s: %v", name, err)
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("reading %s: %v", name, err)
			}
			return data
		}
	}
	t.Fatalf("part %s not found", name)
	return nil
}

func partNames(t *testing.T, blob []byte) map[string]bool {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	return names
}

func sampleDocument() *model.Document {
	doc := model.NewDocument("SnapScript Extracted Notes")
	doc.AddParagraph(model.NewParagraph(model.StyleTitle, &model.TextRun{
		Text: "SnapScript Extracted Notes", Bold: true, Size: 48,
	}))
	doc.AddParagraph(model.NewParagraph(model.StyleFileHeader, &model.TextRun{
		Text: "notes.png", Bold: true, Size: 32,
	}))
	doc.AddParagraph(model.NewParagraph(model.StyleBody,
		&model.TextRun{Text: "before "},
		&model.ImageRun{Data: []byte("png-bytes-1"), Width: 300, Height: 150, AltText: "region"},
		&model.TextRun{Text: " after"},
	))
	doc.AddParagraph(model.NewParagraph(model.StyleBody, &model.PageBreakRun{}))
	doc.AddParagraph(model.NewParagraph(model.StyleBody,
		&model.ImageRun{Data: []byte("png-bytes-2"), Width: 20, Height: 20},
	))
	return doc
}

func TestEncodeNilDocument(t *testing.T) {
	if _, err := Encode(nil); err == nil {
		t.Error("Encode(nil) did not fail")
	}
}

func TestEncodeRequiredParts(t *testing.T) {
	blob, err := Encode(sampleDocument())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	names := partNames(t, blob)
	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/_rels/document.xml.rels",
		"word/media/image1.png",
		"word/media/image2.png",
	}
	for _, name := range required {
		if !names[name] {
			t.Errorf("missing part %s", name)
		}
	}
}

func TestEncodeMediaParts(t *testing.T) {
	blob, err := Encode(sampleDocument())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if got := readPart(t, blob, "word/media/image1.png"); string(got) != "png-bytes-1" {
		t.Errorf("image1 = %q, want %q", got, "png-bytes-1")
	}
	if got := readPart(t, blob, "word/media/image2.png"); string(got) != "png-bytes-2" {
		t.Errorf("image2 = %q, want %q", got, "png-bytes-2")
	}

	rels := string(readPart(t, blob, "word/_rels/document.xml.rels"))
	for i := 1; i <= 2; i++ {
		target := fmt.Sprintf(`Target="media/image%d.png"`, i)
		if !strings.Contains(rels, target) {
			t.Errorf("relationships missing %s", target)
		}
	}
}

func TestEncodeDocumentPart(t *testing.T) {
	blob, err := Encode(sampleDocument())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	docXML := string(readPart(t, blob, "word/document.xml"))

	for _, want := range []string{
		`<w:t xml:space="preserve">SnapScript Extracted Notes</w:t>`,
		`<w:t xml:space="preserve">notes.png</w:t>`,
		`<w:br w:type="page"/>`,
		// 300pt x 150pt in EMU
		`<wp:extent cx="3810000" cy="1905000"/>`,
		// 20pt minimum embed in EMU
		`<wp:extent cx="254000" cy="254000"/>`,
		`r:embed="rId2"`,
		`r:embed="rId3"`,
	} {
		if !strings.Contains(docXML, want) {
			t.Errorf("document.xml missing %s", want)
		}
	}

	if strings.Count(docXML, "<w:p>") != 5 {
		t.Errorf("paragraph count = %d, want 5", strings.Count(docXML, "<w:p>"))
	}
}

func TestEncodeEscapesText(t *testing.T) {
	doc := model.NewDocument("T")
	doc.AddParagraph(model.NewParagraph(model.StyleBody, &model.TextRun{
		Text: `2 < 3 & "x" > 'y'`,
	}))

	blob, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	docXML := string(readPart(t, blob, "word/document.xml"))

	if strings.Contains(docXML, `2 < 3`) {
		t.Error("unescaped < in document.xml")
	}
	if !strings.Contains(docXML, `2 &lt; 3 &amp;`) {
		t.Error("escaped text not found in document.xml")
	}
}

func TestEncodeTextOnlyDocumentHasNoMedia(t *testing.T) {
	doc := model.NewDocument("T")
	doc.AddParagraph(model.NewParagraph(model.StyleBody, &model.TextRun{Text: "just text"}))

	blob, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	for name := range partNames(t, blob) {
		if strings.HasPrefix(name, "word/media/") {
			t.Errorf("unexpected media part %s", name)
		}
	}
}
