package sections

import (
	"strings"

	"filing_insight/pkg/core/nlp"
)

// NoCompetitorsSentinel is returned when no competitor name appears.
const NoCompetitorsSentinel = "No direct competitor mentions found."

// DefaultCompetitors is the fixed peer set for this filing's issuer.
func DefaultCompetitors() []string {
	return []string{"Lyft", "DoorDash", "Grubhub", "Instacart"}
}

// Competitors returns one line per mentioned competitor: the name plus
// the first sentence mentioning it. When no name appears anywhere in the
// text the sentinel is returned instead of an empty list.
func Competitors(doc *nlp.Document, names []string) []string {
	lowerText := strings.ToLower(doc.Text)

	var analysis []string
	for _, name := range names {
		lowerName := strings.ToLower(name)
		if !strings.Contains(lowerText, lowerName) {
			continue
		}
		for _, sent := range doc.Sentences {
			if strings.Contains(strings.ToLower(sent.Text), lowerName) {
				analysis = append(analysis, name+" competition: "+strings.TrimSpace(sent.Text))
				break
			}
		}
	}

	if len(analysis) == 0 {
		return []string{NoCompetitorsSentinel}
	}
	return analysis
}
