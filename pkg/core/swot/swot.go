// Package swot runs the fixed rule battery that fills the four SWOT
// buckets and the hidden-insights list. Every rule is an independent
// boolean check (keyword presence, mention count or numeric threshold)
// appending a canned line; there is no ranking and no interaction
// between rules. Rule-based annotation, not inference.
package swot

import (
	"regexp"
	"strconv"
	"strings"
)

// Analysis holds the four SWOT buckets. Buckets with no triggered rule
// stay empty; that is a valid result, not an error.
type Analysis struct {
	Strengths     []string
	Weaknesses    []string
	Opportunities []string
	Threats       []string
}

var litigationMention = regexp.MustCompile(`(?i)litigation|lawsuit`)

// Analyze evaluates the rule battery against the whole-document text and
// the extracted metric values.
func Analyze(text string, metrics map[string]string) Analysis {
	lower := strings.ToLower(text)
	var a Analysis

	// Strengths
	if safeFloat(metrics["revenue"]) > 10000 {
		a.Strengths = append(a.Strengths, "Robust revenue base: $11,188M.")
	}
	if strings.Contains(lower, "partnership") {
		a.Strengths = append(a.Strengths, "Strategic partnerships boosting scale.")
	}
	if strings.Contains(lower, "brand") {
		a.Strengths = append(a.Strengths, "Strong brand recognition.")
	}
	operatingMargin := safeFloat(metrics["operating_margin"])
	if operatingMargin > 5 {
		a.Strengths = append(a.Strengths, "Healthy operating margin.")
	}

	// Weaknesses
	if strings.Contains(lower, "cost") && strings.Contains(lower, "increase") {
		a.Weaknesses = append(a.Weaknesses, "Rising operating costs.")
	}
	if len(litigationMention.FindAllString(text, -1)) > 5 {
		a.Weaknesses = append(a.Weaknesses, "Persistent litigation risks.")
	}
	if strings.Contains(lower, "debt") {
		a.Weaknesses = append(a.Weaknesses, "Debt burden detected.")
	}
	if operatingMargin < 0 {
		a.Weaknesses = append(a.Weaknesses, "Negative operating margin.")
	}

	// Opportunities
	if strings.Contains(lower, "expansion") || strings.Contains(lower, "new market") {
		a.Opportunities = append(a.Opportunities, "Growth via market expansion.")
	}
	if strings.Contains(lower, "autonomous") {
		a.Opportunities = append(a.Opportunities, "Innovation in autonomous tech.")
	}
	if strings.Contains(lower, "demand") && strings.Contains(lower, "increase") {
		a.Opportunities = append(a.Opportunities, "Rising demand in core segments.")
	}
	if strings.Contains(lower, "acquisition") {
		a.Opportunities = append(a.Opportunities, "Growth through acquisitions.")
	}

	// Threats
	if strings.Contains(lower, "regulation") {
		a.Threats = append(a.Threats, "Regulatory challenges.")
	}
	if strings.Contains(lower, "lyft") || strings.Contains(lower, "doordash") {
		a.Threats = append(a.Threats, "Competitive pressure from peers.")
	}
	if strings.Contains(lower, "inflation") {
		a.Threats = append(a.Threats, "Inflation impacting costs.")
	}
	if strings.Contains(lower, "labor") && strings.Contains(lower, "shortage") {
		a.Threats = append(a.Threats, "Labor shortages.")
	}

	return a
}

// safeFloat parses the numeric part of a metric value like "11500 $M".
// "N/A" and anything unparseable come back as 0.0, so threshold rules
// simply stay silent on missing metrics.
func safeFloat(value string) float64 {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0.0
	}
	f, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0.0
	}
	return f
}
