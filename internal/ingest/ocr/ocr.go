// Package ocr provides text extraction from scanned documents and
// images. Two clients are available: the hosted OCR.space API and a
// local tesseract binary.
package ocr

import "context"

// Client extracts text from a document on disk.
type Client interface {
	ExtractPath(ctx context.Context, path string) (string, error)
}
