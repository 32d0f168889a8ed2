package nlp

import "strings"

// PolarityScorer computes a lexicon-based polarity in [-1, 1] for a span
// of text. Positive means favorable tone. The word lists target earnings
// language, not general English.
type PolarityScorer struct {
	positive map[string]bool
	negative map[string]bool
}

// NewPolarityScorer builds a scorer with the built-in lexicon.
func NewPolarityScorer() *PolarityScorer {
	return &PolarityScorer{
		positive: toSet(positiveWords),
		negative: toSet(negativeWords),
	}
}

// Score returns (positive - negative) / (positive + negative) over the
// tokenized text, or 0 when no lexicon word is present.
func (p *PolarityScorer) Score(text string) float64 {
	var pos, neg int
	for _, tok := range tokenize(text) {
		if p.positive[tok] {
			pos++
		}
		if p.negative[tok] {
			neg++
		}
	}
	total := pos + neg
	if total == 0 {
		return 0.0
	}
	return float64(pos-neg) / float64(total)
}

// tokenize lowercases and splits on non-letter boundaries.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z')
	})
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var positiveWords = []string{
	"growth", "grew", "growing", "strong", "stronger", "strongest",
	"strength", "opportunity", "opportunities", "confident", "confidence",
	"improve", "improved", "improvement", "improving", "increase",
	"increased", "increasing", "gain", "gains", "profit", "profitable",
	"profitability", "record", "momentum", "robust", "exceeded", "exceed",
	"outperform", "outperformed", "favorable", "positive", "expansion",
	"accelerate", "accelerated", "success", "successful", "healthy",
	"benefit", "benefited", "upside", "resilient",
}

var negativeWords = []string{
	"decline", "declined", "declining", "decrease", "decreased",
	"decreasing", "loss", "losses", "weak", "weaker", "weakness",
	"weaknesses", "challenge", "challenges", "challenging", "risk",
	"risks", "uncertain", "uncertainty", "uncertainties", "adverse",
	"adversely", "litigation", "lawsuit", "lawsuits", "impairment",
	"shortfall", "deficit", "deteriorate", "deteriorated", "unfavorable",
	"negative", "pressure", "pressures", "headwind", "headwinds",
	"volatility", "disruption", "disruptions", "downturn", "slowdown",
	"failure", "failed",
}
