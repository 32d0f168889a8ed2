package report

import (
	"strings"
	"testing"

	"filing_insight/pkg/core/classify"
	"filing_insight/pkg/core/sections"
	"filing_insight/pkg/core/swot"
)

func sampleReport() *Report {
	return &Report{
		Source:      "q1.pdf",
		Metrics:     map[string]string{"revenue": "11500 $M", "operating_margin": "N/A %"},
		MetricOrder: []string{"revenue", "operating_margin"},
		ForwardGuidance: []string{
			"We expect revenue growth to continue next year.",
		},
		Sentiment: map[string]float64{"management_discussion": 0.4, "risk_factors": -0.2},
		BusinessUpdates: []classify.CategoryItems{
			{Name: "Segment Performance", Items: []string{"Mobility grew."}},
			{Name: "Strategic Initiatives", Items: nil},
		},
		Segments: sections.SegmentUpdates{
			Mobility: []string{"Mobility revenue reached $5,633. (Revenue: $5633M)"},
		},
		Competitive: []string{sections.NoCompetitorsSentinel},
		SWOT: swot.Analysis{
			Strengths: []string{"Strong brand recognition."},
		},
		Insights: []string{"Cost pressures detected."},
		Tone: classify.ToneBuckets{
			Optimism: []string{"We are confident in strong growth."},
		},
	}
}

func TestRenderSectionOrder(t *testing.T) {
	body := sampleReport().Render()

	order := []string{
		"### Key Metrics",
		"### Forward Guidance",
		"### Business Updates",
		"### Segment Performance",
		"### Competitive Analysis",
		"### SWOT Analysis",
		"### Key Insights",
		"### Tone Analysis",
	}
	pos := -1
	for _, header := range order {
		idx := strings.Index(body, header)
		if idx < 0 {
			t.Fatalf("missing section %q", header)
		}
		if idx < pos {
			t.Errorf("section %q out of order", header)
		}
		pos = idx
	}
}

func TestRenderMetricsFollowTableOrder(t *testing.T) {
	body := sampleReport().Render()

	if !strings.Contains(body, "revenue: 11500 $M\noperating_margin: N/A %") {
		t.Errorf("metric lines missing or out of order:\n%s", body)
	}
}

func TestRenderOmitsSentimentSection(t *testing.T) {
	body := sampleReport().Render()

	if strings.Contains(body, "management_discussion") || strings.Contains(body, "Sentiment") {
		t.Errorf("sentiment should not be rendered:\n%s", body)
	}
}

func TestRenderListsAndEmptyBuckets(t *testing.T) {
	body := sampleReport().Render()

	if !strings.Contains(body, "- We expect revenue growth to continue next year.") {
		t.Error("guidance item not rendered as list entry")
	}
	// Empty categories still print their header with no items.
	if !strings.Contains(body, "Strategic Initiatives:\n") {
		t.Error("empty category header missing")
	}
	if !strings.Contains(body, "- No direct competitor mentions found.") {
		t.Error("competitor sentinel missing")
	}
}

func TestRenderIsValidMarkdown(t *testing.T) {
	if !ValidateMarkdown(sampleReport().Render()) {
		t.Error("rendered report failed markdown validation")
	}
}
