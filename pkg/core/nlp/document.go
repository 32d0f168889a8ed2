// Package nlp provides the annotated-document layer shared by all
// extractors: sentence segmentation and named entities via prose, plus a
// lexicon polarity scorer. The document is built once per run and read
// only afterwards.
package nlp

import (
	"fmt"
	"regexp"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Sentence is one annotated sentence of the filing text.
type Sentence struct {
	Text     string
	Polarity float64  // [-1, 1]
	Numbers  []string // numeric and percent tokens in document order
}

// Entity is a named entity paired with the sentence it occurs in.
type Entity struct {
	Text     string
	Label    string // prose label, e.g. "GPE", "PERSON"
	Sentence string
}

// Document is the immutable annotated view of one filing.
type Document struct {
	Text      string
	Sentences []Sentence
	Entities  []Entity
}

// numberToken matches dollar amounts, plain numbers and percentages.
var numberToken = regexp.MustCompile(`[-+]?\$?\d[\d,]*(?:\.\d+)?%?`)

// NumberTokens returns the numeric and percent tokens of a span in order.
func NumberTokens(text string) []string {
	return numberToken.FindAllString(text, -1)
}

// Annotate segments the text into sentences, scores each for polarity and
// tags named entities.
func Annotate(text string) (*Document, error) {
	pd, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("annotation failed: %w", err)
	}

	scorer := NewPolarityScorer()
	doc := &Document{Text: text}

	for _, s := range pd.Sentences() {
		t := strings.TrimSpace(s.Text)
		if t == "" {
			continue
		}
		doc.Sentences = append(doc.Sentences, Sentence{
			Text:     t,
			Polarity: scorer.Score(t),
			Numbers:  NumberTokens(t),
		})
	}

	for _, e := range pd.Entities() {
		doc.Entities = append(doc.Entities, Entity{
			Text:     e.Text,
			Label:    e.Label,
			Sentence: doc.sentenceContaining(e.Text),
		})
	}

	return doc, nil
}

// sentenceContaining returns the first sentence mentioning the given span.
// prose does not expose entity offsets, so containment is the best anchor.
func (d *Document) sentenceContaining(span string) string {
	for _, s := range d.Sentences {
		if strings.Contains(s.Text, span) {
			return s.Text
		}
	}
	return ""
}
