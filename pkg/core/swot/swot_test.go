package swot

import (
	"strings"
	"testing"

	"filing_insight/pkg/core/nlp"
)

func TestAnalyzeEmptyTextYieldsEmptyBuckets(t *testing.T) {
	got := Analyze("", map[string]string{})

	if len(got.Strengths)+len(got.Weaknesses)+len(got.Opportunities)+len(got.Threats) != 0 {
		t.Errorf("no trigger keywords should yield empty buckets, got %+v", got)
	}
}

func TestAnalyzeStrengthRules(t *testing.T) {
	metrics := map[string]string{
		"revenue":          "11500 $M",
		"operating_margin": "6.1 %",
	}
	got := Analyze("Our partnership network and brand carried the quarter.", metrics)

	want := []string{
		"Robust revenue base: $11,188M.",
		"Strategic partnerships boosting scale.",
		"Strong brand recognition.",
		"Healthy operating margin.",
	}
	if len(got.Strengths) != len(want) {
		t.Fatalf("strengths = %v, want %v", got.Strengths, want)
	}
	for i := range want {
		if got.Strengths[i] != want[i] {
			t.Errorf("strengths[%d] = %q, want %q", i, got.Strengths[i], want[i])
		}
	}
}

func TestAnalyzeWeaknessRules(t *testing.T) {
	text := "Cost pressure continued to increase. Our debt position was unchanged. " +
		strings.Repeat("The litigation docket grew with another lawsuit. ", 3)
	got := Analyze(text, map[string]string{"operating_margin": "-2.0 %"})

	want := []string{
		"Rising operating costs.",
		"Persistent litigation risks.",
		"Debt burden detected.",
		"Negative operating margin.",
	}
	if len(got.Weaknesses) != len(want) {
		t.Fatalf("weaknesses = %v, want %v", got.Weaknesses, want)
	}
}

func TestAnalyzeOpportunityAndThreatRules(t *testing.T) {
	text := "Expansion into autonomous freight meets rising demand as orders increase. " +
		"Regulation and inflation remain concerns, as does competition from Lyft."
	got := Analyze(text, map[string]string{})

	if len(got.Opportunities) != 3 {
		t.Errorf("opportunities = %v, want 3 rules triggered", got.Opportunities)
	}
	if len(got.Threats) != 3 {
		t.Errorf("threats = %v, want 3 rules triggered", got.Threats)
	}
}

func TestAnalyzeToleratesMissingMetrics(t *testing.T) {
	got := Analyze("Revenue was fine.", map[string]string{
		"revenue":          "N/A $M",
		"operating_margin": "N/A %",
	})

	// "N/A" parses to 0: no strength threshold fires, and a zero margin
	// is not negative.
	if len(got.Strengths) != 0 || len(got.Weaknesses) != 0 {
		t.Errorf("sentinel metrics should not trigger rules, got %+v", got)
	}
}

func TestHiddenInsightsLitigationDensity(t *testing.T) {
	doc := &nlp.Document{Text: strings.Repeat("A lawsuit was filed over the legal proceeding. ", 4)}

	got := HiddenInsights(doc)
	if len(got) != 1 || got[0] != "High litigation risk: 8 mentions." {
		t.Errorf("got %v, want the 8-mention litigation insight", got)
	}
}

func TestHiddenInsightsGeographicRevenue(t *testing.T) {
	doc := &nlp.Document{
		Text: "Revenue in Brazil grew strongly.",
		Entities: []nlp.Entity{
			{Text: "Brazil", Label: "GPE", Sentence: "Revenue in Brazil grew strongly."},
			{Text: "Acme", Label: "ORG", Sentence: "Revenue in Brazil grew strongly."},
			{Text: "Canada", Label: "GPE", Sentence: "Winters in Canada are cold."},
		},
	}

	got := HiddenInsights(doc)
	if len(got) != 1 || got[0] != "Revenue tied to Brazil market." {
		t.Errorf("got %v, want only the Brazil insight", got)
	}
}

func TestHiddenInsightsCostPressure(t *testing.T) {
	doc := &nlp.Document{Text: "Driver cost continued to increase in all markets."}

	got := HiddenInsights(doc)
	if len(got) != 1 || got[0] != "Cost pressures detected." {
		t.Errorf("got %v, want the cost-pressure insight", got)
	}
}
