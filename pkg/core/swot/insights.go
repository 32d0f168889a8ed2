package swot

import (
	"fmt"
	"regexp"
	"strings"

	"filing_insight/pkg/core/nlp"
)

var legalMention = regexp.MustCompile(`(?i)litigation|lawsuit|legal proceeding`)

// HiddenInsights surfaces signals that do not fit a SWOT bucket:
// litigation density, geographic revenue concentration from GPE entities,
// and cost-pressure language.
func HiddenInsights(doc *nlp.Document) []string {
	var insights []string

	if n := len(legalMention.FindAllString(doc.Text, -1)); n > 5 {
		insights = append(insights, fmt.Sprintf("High litigation risk: %d mentions.", n))
	}

	for _, ent := range doc.Entities {
		if ent.Label != "GPE" {
			continue
		}
		if strings.Contains(strings.ToLower(ent.Sentence), "revenue") {
			insights = append(insights, fmt.Sprintf("Revenue tied to %s market.", ent.Text))
		}
	}

	lower := strings.ToLower(doc.Text)
	if strings.Contains(lower, "cost") && strings.Contains(lower, "increase") {
		insights = append(insights, "Cost pressures detected.")
	}

	return insights
}
