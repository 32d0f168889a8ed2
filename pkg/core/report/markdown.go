package report

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// ValidateMarkdown checks that the rendered body parses as Markdown.
// Goldmark is very permissive, so this is a basic structural check used
// to catch rendering bugs, not a linter.
func ValidateMarkdown(body string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(body))
	return parser.Parse(reader) != nil
}
