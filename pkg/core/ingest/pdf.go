package ingest

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ExtractPDF extracts text from a PDF page by page via MuPDF and
// concatenates the pages. When MuPDF cannot open the document at all the
// pure-Go reader takes over.
func ExtractPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return extractPDFFallback(path)
	}
	defer doc.Close()

	var b strings.Builder
	pages := doc.NumPage()
	for i := 0; i < pages; i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			// A single unreadable page should not sink the filing.
			continue
		}
		b.WriteString(pageText)
		if i < pages-1 {
			b.WriteString("\n\n")
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("no text extracted from PDF: %s", path)
	}
	return text, nil
}
