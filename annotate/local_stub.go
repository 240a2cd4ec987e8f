//go:build !ocr

package annotate

import (
	"context"
	"errors"
)

// ErrLocalOCRNotEnabled is returned when the local OCR annotator is used but
// OCR support was not compiled in. Rebuild with -tags ocr to enable it.
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
var ErrLocalOCRNotEnabled = errors.New("local OCR support not enabled; rebuild with -tags ocr")

// Local is a stub annotator used when the "ocr" build tag is not set. All
// operations return ErrLocalOCRNotEnabled.
type Local struct{}

// NewLocal returns an error indicating local OCR support is not enabled.
func NewLocal(language string) (*Local, error) {
	return nil, ErrLocalOCRNotEnabled
}

// Annotate returns an error indicating local OCR support is not enabled.
func (l *Local) Annotate(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	return "", ErrLocalOCRNotEnabled
}
