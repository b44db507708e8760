package ingest

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls the text layer from a PDF and reports the page
// count. Pages whose text cannot be decoded are skipped rather than
// failing the whole document.
func extractPDF(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pages := r.NumPage()
	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), pages, nil
}
