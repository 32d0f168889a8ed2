package classify

import (
	"regexp"
	"sort"
	"strings"

	"filing_insight/pkg/core/nlp"
)

// DefaultGuidanceCap is the fixed output cap for forward guidance.
const DefaultGuidanceCap = 5

var forwardTerms = []string{
	"expect", "anticipate", "project", "future", "outlook", "forecast",
	"plan", "intend", "believe",
}

var financialTerms = []string{
	"revenue", "growth", "margin", "profit", "earnings", "cash flow",
	"expense", "investment", "market share", "guidance", "target", "goal",
	"estimate",
}

// excludeTerms filters the safe-harbor boilerplate that defines what a
// forward-looking statement is without making one.
var excludeTerms = []string{
	"forward-looking statements", "contain words such as",
	"similar terms or expressions", "identify forward-looking statements",
	"words such as", "similar terms",
}

var (
	highValueTerms = []string{"guidance", "target", "goal"}
	coreTerms      = []string{"revenue", "growth", "margin"}
	trendTerms     = []string{"increase", "decrease", "improve", "decline"}
)

var whitespace = regexp.MustCompile(`\s+`)

type scoredSentence struct {
	score int
	text  string
}

// ForwardGuidance returns up to limit forward-looking statements, ranked
// by relevance score, deduplicated, restricted to complete sentences.
func ForwardGuidance(doc *nlp.Document, limit int) []string {
	if limit <= 0 {
		limit = DefaultGuidanceCap
	}

	var candidates []scoredSentence
	for _, sent := range doc.Sentences {
		lower := strings.ToLower(sent.Text)

		if containsAny(lower, excludeTerms) {
			continue
		}
		if !containsAny(lower, forwardTerms) || !containsAny(lower, financialTerms) {
			continue
		}

		score := 0
		if containsAny(lower, highValueTerms) {
			score += 2
		}
		if containsAny(lower, coreTerms) {
			score++
		}
		if containsAny(lower, trendTerms) {
			score++
		}
		if len(strings.Fields(sent.Text)) > 8 {
			score++
		}
		if strings.ContainsAny(sent.Text, "$%") {
			score += 2
		}

		candidates = append(candidates, scoredSentence{score: score, text: strings.TrimSpace(sent.Text)})
	}

	// Stable sort keeps document order for equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var (
		results  []string
		accepted []map[string]struct{}
	)
	for _, c := range candidates {
		words := wordSet(c.text)
		if isDuplicate(words, accepted) {
			continue
		}

		text := strings.TrimSpace(whitespace.ReplaceAllString(c.text, " "))

		// Only complete thoughts: long enough and properly terminated.
		if len(strings.Fields(text)) < 6 || !hasTerminalPunctuation(text) {
			continue
		}

		results = append(results, text)
		accepted = append(accepted, words)
		if len(results) >= limit {
			break
		}
	}

	return results
}

func hasTerminalPunctuation(text string) bool {
	return strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?")
}
