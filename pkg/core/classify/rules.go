// Package classify contains the heuristic sentence classifiers: forward
// guidance, business-update categories and tone buckets. Each pass is a
// pure function of the annotated document; membership is keyword
// substring matching on lowercased text, ranking is a small additive
// score, and near-duplicate sentences (>70% shared words) are dropped.
package classify

import "strings"

// Rule is one tagged business-update category: a primary keyword set, a
// secondary metric-term set, a base relevance score and an output cap.
type Rule struct {
	Name      string   `yaml:"name"`
	Keywords  []string `yaml:"keywords"`
	Metrics   []string `yaml:"metrics"`
	BaseScore int      `yaml:"base_score"`
	Cap       int      `yaml:"cap"`
}

// CategoryItems is one category's ranked output.
type CategoryItems struct {
	Name  string
	Items []string
}

// DefaultUpdateRules returns the built-in business-update categories.
// Order here is the printer's display order.
func DefaultUpdateRules() []Rule {
	return []Rule{
		{
			Name:      "Segment Performance",
			Keywords:  []string{"mobility", "delivery", "freight", "segment", "business unit"},
			Metrics:   []string{"revenue", "growth", "margin", "volume", "orders", "users"},
			BaseScore: 3,
			Cap:       2,
		},
		{
			Name:      "Strategic Initiatives",
			Keywords:  []string{"investment", "acquisition", "partnership", "expansion", "launch", "new market"},
			Metrics:   []string{"investment", "acquisition", "partnership", "expansion"},
			BaseScore: 2,
			Cap:       2,
		},
		{
			Name:      "Technology & Innovation",
			Keywords:  []string{"technology", "innovation", "product", "feature", "platform", "system"},
			Metrics:   []string{"development", "launch", "upgrade", "integration"},
			BaseScore: 2,
			Cap:       2,
		},
	}
}

// containsAny reports whether the lowercased text contains any term.
func containsAny(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// wordSet returns the lowercase word set of a sentence.
func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}

// isDuplicate reports whether the candidate's word set overlaps any
// accepted set by more than 70%. Pairwise against accepted items only;
// fine at filing scale (thousands of sentences at most).
func isDuplicate(candidate map[string]struct{}, accepted []map[string]struct{}) bool {
	if len(candidate) == 0 {
		return false
	}
	for _, seen := range accepted {
		shared := 0
		for w := range candidate {
			if _, ok := seen[w]; ok {
				shared++
			}
		}
		if float64(shared)/float64(len(candidate)) > 0.7 {
			return true
		}
	}
	return false
}
