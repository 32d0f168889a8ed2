// Package sections holds the extractors that work off named regions or
// fixed name lists rather than keyword categories: per-section sentiment,
// segment-specific updates and competitor mentions.
package sections

import (
	"regexp"
	"strings"

	"filing_insight/pkg/core/nlp"
)

// itemMarker terminates a narrative section: the next numbered item
// header in the filing body.
var itemMarker = regexp.MustCompile(`Item \d`)

// Named sections scored for sentiment. The map keys are the report keys.
var sentimentSections = []struct {
	Key    string
	Phrase string
}{
	{Key: "management_discussion", Phrase: "Management's Discussion and Analysis"},
	{Key: "risk_factors", Phrase: "Risk Factors"},
}

// SectionSentiment locates each named section (start phrase up to the
// next item marker) and scores its polarity. A section that cannot be
// located scores 0.0 rather than erroring.
func SectionSentiment(text string, scorer *nlp.PolarityScorer) map[string]float64 {
	out := make(map[string]float64, len(sentimentSections))
	for _, s := range sentimentSections {
		section, ok := locate(text, s.Phrase)
		if !ok {
			out[s.Key] = 0.0
			continue
		}
		out[s.Key] = scorer.Score(section)
	}
	return out
}

// locate returns the span from the start phrase to the next item marker.
// Both the phrase and a following marker must be present.
func locate(text, phrase string) (string, bool) {
	start := strings.Index(text, phrase)
	if start < 0 {
		return "", false
	}
	rest := text[start:]
	marker := itemMarker.FindStringIndex(rest)
	if marker == nil {
		return "", false
	}
	return rest[:marker[0]], true
}
