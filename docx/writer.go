package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/tsawler/snapscript/model"
)

// emuPerPoint converts page units (points) to English Metric Units, the
// measurement DrawingML extents use.
const emuPerPoint = 12700

// Encode serializes the document into DOCX bytes.
func Encode(doc *model.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("encoding docx: nil document")
	}

	enc := &encoder{}
	documentXML := enc.documentPart(doc)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/document.xml", []byte(documentXML)},
		{"word/styles.xml", []byte(stylesXML)},
		{"word/_rels/document.xml.rels", []byte(enc.relationshipsPart())},
	}
	for i, img := range enc.images {
		parts = append(parts, struct {
			name    string
			content []byte
		}{fmt.Sprintf("word/media/image%d.png", i+1), img})
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", part.name, err)
		}
		if _, err := w.Write(part.content); err != nil {
			return nil, fmt.Errorf("writing %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}
	return buf.Bytes(), nil
}

// encoder accumulates media parts and relationship state while the document
// part is rendered.
type encoder struct {
	images    [][]byte
	drawingID int
}

// documentPart renders word/document.xml.
func (e *encoder) documentPart(doc *model.Document) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<w:document xmlns:w="` + nsW + `" xmlns:r="` + nsR + `" xmlns:wp="` + nsWP + `">`)
	sb.WriteString(`<w:body>`)

	for _, para := range doc.Paragraphs {
		e.paragraph(&sb, para)
	}

	// A4 portrait in twentieths of a point.
	sb.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1134" w:right="1134" w:bottom="1134" w:left="1134"/></w:sectPr>`)
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

// paragraph renders one <w:p> element.
func (e *encoder) paragraph(sb *strings.Builder, para *model.Paragraph) {
	sb.WriteString(`<w:p>`)
	if para.Style == model.StyleTitle {
		sb.WriteString(`<w:pPr><w:jc w:val="center"/></w:pPr>`)
	}
	for _, run := range para.Runs {
		switch r := run.(type) {
		case *model.TextRun:
			e.textRun(sb, r)
		case *model.ImageRun:
			e.imageRun(sb, r)
		case *model.PageBreakRun:
			sb.WriteString(`<w:r><w:br w:type="page"/></w:r>`)
		}
	}
	sb.WriteString(`</w:p>`)
}

// textRun renders one <w:r> with direct formatting.
func (e *encoder) textRun(sb *strings.Builder, r *model.TextRun) {
	sb.WriteString(`<w:r>`)
	if r.Bold || r.Size > 0 {
		sb.WriteString(`<w:rPr>`)
		if r.Bold {
			sb.WriteString(`<w:b/>`)
		}
		if r.Size > 0 {
			fmt.Fprintf(sb, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.Size, r.Size)
		}
		sb.WriteString(`</w:rPr>`)
	}
	sb.WriteString(`<w:t xml:space="preserve">`)
	sb.WriteString(escape(r.Text))
	sb.WriteString(`</w:t></w:r>`)
}

// imageRun renders one inline drawing and registers its media part.
func (e *encoder) imageRun(sb *strings.Builder, r *model.ImageRun) {
	e.images = append(e.images, r.Data)
	e.drawingID++

	id := e.drawingID
	relID := imageRelID(len(e.images))
	cx := int64(r.Width * emuPerPoint)
	cy := int64(r.Height * emuPerPoint)

	sb.WriteString(`<w:r><w:drawing>`)
	sb.WriteString(`<wp:inline distT="0" distB="0" distL="0" distR="0">`)
	fmt.Fprintf(sb, `<wp:extent cx="%d" cy="%d"/>`, cx, cy)
	fmt.Fprintf(sb, `<wp:docPr id="%d" name="Picture %d" descr="%s"/>`, id, id, escape(r.AltText))
	sb.WriteString(`<a:graphic xmlns:a="` + nsA + `">`)
	sb.WriteString(`<a:graphicData uri="` + nsPic + `">`)
	sb.WriteString(`<pic:pic xmlns:pic="` + nsPic + `">`)
	fmt.Fprintf(sb, `<pic:nvPicPr><pic:cNvPr id="%d" name="Picture %d"/><pic:cNvPicPr/></pic:nvPicPr>`, id, id)
	fmt.Fprintf(sb, `<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`, relID)
	sb.WriteString(`<pic:spPr><a:xfrm><a:off x="0" y="0"/>`)
	fmt.Fprintf(sb, `<a:ext cx="%d" cy="%d"/>`, cx, cy)
	sb.WriteString(`</a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`)
	sb.WriteString(`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r>`)
}

// relationshipsPart renders word/_rels/document.xml.rels after the document
// part has been rendered, so all image relationships are known.
func (e *encoder) relationshipsPart() string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	sb.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	for i := range e.images {
		fmt.Fprintf(&sb,
			`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image%d.png"/>`,
			imageRelID(i+1), i+1)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

// imageRelID returns the relationship ID for the n-th image part. rId1 is
// reserved for the styles relationship.
func imageRelID(n int) string {
	return fmt.Sprintf("rId%d", n+1)
}
