package sections

import (
	"regexp"
	"strings"

	"filing_insight/pkg/core/nlp"
)

// DefaultSegmentCap is the fixed per-segment output cap.
const DefaultSegmentCap = 3

// SegmentUpdates holds sentences mentioning each business line, in
// document order. A sentence lands in the first segment it mentions.
type SegmentUpdates struct {
	Mobility []string
	Delivery []string
	Freight  []string
}

var dollarAmount = regexp.MustCompile(`\$\s*([\d,]+)`)

// Segments scans sentences for business-line mentions and annotates each
// hit with its first dollar amount when one is present.
func Segments(doc *nlp.Document, limit int) SegmentUpdates {
	if limit <= 0 {
		limit = DefaultSegmentCap
	}

	var updates SegmentUpdates
	for _, sent := range doc.Sentences {
		lower := strings.ToLower(sent.Text)
		switch {
		case strings.Contains(lower, "mobility"):
			updates.Mobility = append(updates.Mobility, annotateRevenue(sent.Text))
		case strings.Contains(lower, "delivery"):
			updates.Delivery = append(updates.Delivery, annotateRevenue(sent.Text))
		case strings.Contains(lower, "freight"):
			updates.Freight = append(updates.Freight, annotateRevenue(sent.Text))
		}
	}

	updates.Mobility = capItems(updates.Mobility, limit)
	updates.Delivery = capItems(updates.Delivery, limit)
	updates.Freight = capItems(updates.Freight, limit)
	return updates
}

func annotateRevenue(text string) string {
	text = strings.TrimSpace(text)
	if m := dollarAmount.FindStringSubmatch(text); m != nil {
		return text + " (Revenue: $" + strings.ReplaceAll(m[1], ",", "") + "M)"
	}
	return text
}

func capItems(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
