package classify

import (
	"sort"
	"strings"

	"filing_insight/pkg/core/nlp"
)

// statementBoilerplate marks sentences that belong to the financial
// statements themselves rather than narrative discussion.
var statementBoilerplate = []string{
	"condensed consolidated", "statements of operations", "assets",
	"liabilities",
}

// BusinessUpdates classifies narrative sentences into the given rule
// categories, ranks them by score and caps each category. Sentences with
// numeric tokens get a "(Metrics: ...)" suffix. The dedup set is shared
// across categories so one sentence cannot dominate the whole report.
func BusinessUpdates(doc *nlp.Document, rules []Rule) []CategoryItems {
	type scoredUpdate struct {
		score int
		text  string
	}

	updates := make([][]scoredUpdate, len(rules))
	var accepted []map[string]struct{}

	for _, sent := range doc.Sentences {
		lower := strings.ToLower(sent.Text)
		if containsAny(lower, statementBoilerplate) {
			continue
		}

		for i, rule := range rules {
			if !containsAny(lower, rule.Keywords) {
				continue
			}

			score := rule.BaseScore
			if containsAny(lower, rule.Metrics) {
				score++
			}
			if len(sent.Numbers) > 0 {
				score++
			}

			text := strings.TrimSpace(sent.Text)
			if len(sent.Numbers) > 0 {
				text = text + " (Metrics: " + strings.Join(sent.Numbers, ", ") + ")"
			}

			words := wordSet(lower)
			if isDuplicate(words, accepted) {
				continue
			}

			updates[i] = append(updates[i], scoredUpdate{score: score, text: text})
			accepted = append(accepted, words)
		}
	}

	results := make([]CategoryItems, len(rules))
	for i, rule := range rules {
		sort.SliceStable(updates[i], func(a, b int) bool {
			return updates[i][a].score > updates[i][b].score
		})

		limit := rule.Cap
		if limit <= 0 {
			limit = 2
		}
		items := make([]string, 0, limit)
		for _, u := range updates[i] {
			if len(items) >= limit {
				break
			}
			items = append(items, u.text)
		}
		results[i] = CategoryItems{Name: rule.Name, Items: items}
	}

	return results
}
