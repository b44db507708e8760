// Package ingest extracts raw text from uploaded exam documents.
// Text-based PDFs and DOCX files are read directly; images and scanned
// PDFs are routed to an OCR client.
package ingest

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/examforge/examforge/internal/ingest/ocr"
)

// Below this many extracted characters a PDF is assumed to be scanned
// and is retried through OCR.
const textPDFThreshold = 50

// Result carries extracted text plus extraction metadata.
type Result struct {
	RawText string `json:"raw_text"`
	Type    string `json:"type"`
	Pages   int    `json:"pages,omitempty"`
	OCRUsed bool   `json:"ocr_used"`
}

var imageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".tiff": {}, ".tif": {}, ".bmp": {}, ".gif": {},
}

// SupportedExt reports whether the service can extract the extension.
func SupportedExt(ext string) bool {
	ext = strings.ToLower(ext)
	if _, ok := imageExts[ext]; ok {
		return true
	}
	switch ext {
	case ".pdf", ".docx", ".txt", ".csv":
		return true
	}
	return false
}

// Service routes files to the right extractor. The OCR client is
// optional; without one, scanned documents fail with a clear error.
type Service struct {
	ocr ocr.Client
}

func New(ocrClient ocr.Client) *Service {
	return &Service{ocr: ocrClient}
}

// ProcessFile extracts text from the file at path, choosing the
// extractor by extension.
func (s *Service) ProcessFile(ctx context.Context, path, ext string) (Result, error) {
	ext = strings.ToLower(ext)

	switch {
	case ext == ".pdf":
		return s.processPDF(ctx, path)

	case ext == ".docx":
		text, err := extractDOCX(path)
		if err != nil {
			return Result{}, err
		}
		return Result{RawText: text, Type: "docx"}, nil

	case ext == ".txt" || ext == ".csv":
		b, err := os.ReadFile(path)
		if err != nil {
			return Result{}, fmt.Errorf("read text file: %w", err)
		}
		return Result{RawText: string(b), Type: "text"}, nil

	default:
		if _, ok := imageExts[ext]; ok {
			text, err := s.extractOCR(ctx, path)
			if err != nil {
				return Result{}, err
			}
			return Result{RawText: text, Type: "image_ocr", OCRUsed: true}, nil
		}
		return Result{}, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// processPDF tries the text layer first and falls back to OCR when the
// yield is low enough to suggest a scanned document.
func (s *Service) processPDF(ctx context.Context, path string) (Result, error) {
	text, pages, err := extractPDF(path)
	if err != nil {
		return Result{}, err
	}
	if len(strings.TrimSpace(text)) >= textPDFThreshold {
		return Result{RawText: text, Type: "pdf_text", Pages: pages}, nil
	}

	ocrText, err := s.extractOCR(ctx, path)
	if err != nil {
		return Result{}, err
	}
	return Result{RawText: ocrText, Type: "pdf_scanned", Pages: pages, OCRUsed: true}, nil
}

func (s *Service) extractOCR(ctx context.Context, path string) (string, error) {
	if s.ocr == nil {
		return "", fmt.Errorf("document requires OCR but no OCR client is configured")
	}
	return s.ocr.ExtractPath(ctx, path)
}
