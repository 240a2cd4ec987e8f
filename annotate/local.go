//go:build ocr

package annotate

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Local is an Annotator backed by the Tesseract OCR engine via gosseract.
// It transcribes text only and never emits crop markers, so documents built
// from it contain no preserved visual regions. It requires Tesseract to be
// installed on the system and the "ocr" build tag.
type Local struct {
	language string
}

// NewLocal creates a local OCR annotator. An empty language defaults to
// "eng". Multiple languages can be specified "+" separated (e.g. "eng+fra").
func NewLocal(language string) (*Local, error) {
	if language == "" {
		language = "eng"
	}
	return &Local{language: language}, nil
}

// Annotate runs OCR on the image and returns the recognized text with
// leading and trailing whitespace trimmed. The MIME type is ignored;
// Tesseract sniffs the format itself.
func (l *Local) Annotate(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(l.language); err != nil {
		return "", fmt.Errorf("setting OCR language: %w", err)
	}
	if err := client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("setting OCR image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}
