// Package ingest turns a filing file into one text blob. PDFs go through
// the MuPDF text layer (with a pure-Go fallback); EDGAR HTML documents
// are cleaned and flattened. The downstream pipeline never sees which
// backend produced the text.
package ingest

import (
	"path/filepath"
	"strings"
)

// Extractor dispatches to a backend by file extension.
type Extractor struct{}

// New creates a file-type dispatching extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract reads the file and returns its full text.
func (e *Extractor) Extract(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".htm", ".html":
		return ExtractHTML(path)
	default:
		return ExtractPDF(path)
	}
}
