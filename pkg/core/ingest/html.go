package ingest

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlWhitespace = regexp.MustCompile(`\s+`)

// ExtractHTML flattens an EDGAR HTML filing into text. Scripts, styles
// and hidden noise elements are dropped before text extraction, and
// whitespace runs are collapsed so the result resembles OCR output.
func ExtractHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open HTML filing: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML filing %s: %w", path, err)
	}

	doc.Find("script, style, noscript, head").Remove()
	// EDGAR filings hide pagination and watermark spans behind
	// display:none inline styles.
	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		style, _ := sel.Attr("style")
		if strings.Contains(strings.ReplaceAll(strings.ToLower(style), " ", ""), "display:none") {
			sel.Remove()
		}
	})

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	text = strings.TrimSpace(htmlWhitespace.ReplaceAllString(text, " "))
	if text == "" {
		return "", fmt.Errorf("no text extracted from HTML filing: %s", path)
	}
	return text, nil
}
