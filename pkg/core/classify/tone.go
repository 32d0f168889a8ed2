package classify

import (
	"strings"

	"filing_insight/pkg/core/nlp"
)

// DefaultToneCap is the fixed per-bucket output cap for tone analysis.
const DefaultToneCap = 3

// ToneBuckets groups sentences by the tone they carry. Buckets overlap:
// one sentence can land in several.
type ToneBuckets struct {
	Surprises  []string
	Weaknesses []string
	Caution    []string
	Optimism   []string
}

var (
	surpriseTerms = []string{"unexpected", "surprise", "sudden"}
	weaknessTerms = []string{"decline", "loss", "weak", "challenge"}
	cautionTerms  = []string{"risk", "uncertain", "caution", "may"}
	optimismTerms = []string{"growth", "strong", "opportunity", "confident"}
)

// Tone buckets sentences by keyword presence, gated by polarity where the
// keyword alone is ambiguous: weakness language must actually read
// negative, optimism language must read clearly positive.
func Tone(doc *nlp.Document, limit int) ToneBuckets {
	if limit <= 0 {
		limit = DefaultToneCap
	}

	var buckets ToneBuckets
	for _, sent := range doc.Sentences {
		lower := strings.ToLower(sent.Text)
		text := strings.TrimSpace(sent.Text)

		if containsAny(lower, surpriseTerms) {
			buckets.Surprises = append(buckets.Surprises, text)
		}
		if containsAny(lower, weaknessTerms) && sent.Polarity < 0 {
			buckets.Weaknesses = append(buckets.Weaknesses, text)
		}
		if containsAny(lower, cautionTerms) {
			buckets.Caution = append(buckets.Caution, text)
		}
		if containsAny(lower, optimismTerms) && sent.Polarity > 0.1 {
			buckets.Optimism = append(buckets.Optimism, text)
		}
	}

	buckets.Surprises = capItems(buckets.Surprises, limit)
	buckets.Weaknesses = capItems(buckets.Weaknesses, limit)
	buckets.Caution = capItems(buckets.Caution, limit)
	buckets.Optimism = capItems(buckets.Optimism, limit)
	return buckets
}

func capItems(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
