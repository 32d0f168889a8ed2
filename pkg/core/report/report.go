// Package report assembles extractor outputs into one result structure
// and renders it as a flat, human-readable markdown report.
package report

import (
	"fmt"
	"io"
	"strings"

	"filing_insight/pkg/core/classify"
	"filing_insight/pkg/core/sections"
	"filing_insight/pkg/core/swot"
)

// Report is the aggregate of one analysis run. Produced once, consumed
// only by the printer.
type Report struct {
	Source string

	Metrics     map[string]string
	MetricOrder []string // displayable keys in pattern-table order

	ForwardGuidance []string
	Sentiment       map[string]float64
	BusinessUpdates []classify.CategoryItems
	Segments        sections.SegmentUpdates
	Competitive     []string
	SWOT            swot.Analysis
	Insights        []string
	Tone            classify.ToneBuckets
}

// Render builds the report body. Section order is fixed. Sentiment is
// computed for downstream thresholding but has no section of its own.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString("### Key Metrics\n")
	for _, key := range r.MetricOrder {
		fmt.Fprintf(&b, "%s: %s\n", key, r.Metrics[key])
	}

	b.WriteString("\n### Forward Guidance\n")
	writeList(&b, r.ForwardGuidance)

	b.WriteString("\n### Business Updates\n")
	for _, cat := range r.BusinessUpdates {
		fmt.Fprintf(&b, "\n%s:\n", cat.Name)
		writeList(&b, cat.Items)
	}

	b.WriteString("\n### Segment Performance\n")
	for _, seg := range []struct {
		name  string
		items []string
	}{
		{"Mobility", r.Segments.Mobility},
		{"Delivery", r.Segments.Delivery},
		{"Freight", r.Segments.Freight},
	} {
		fmt.Fprintf(&b, "\n%s:\n", seg.name)
		writeList(&b, seg.items)
	}

	b.WriteString("\n### Competitive Analysis\n")
	writeList(&b, r.Competitive)

	b.WriteString("\n### SWOT Analysis\n")
	for _, bucket := range []struct {
		name  string
		items []string
	}{
		{"Strengths", r.SWOT.Strengths},
		{"Weaknesses", r.SWOT.Weaknesses},
		{"Opportunities", r.SWOT.Opportunities},
		{"Threats", r.SWOT.Threats},
	} {
		fmt.Fprintf(&b, "\n%s:\n", bucket.name)
		writeList(&b, bucket.items)
	}

	b.WriteString("\n### Key Insights\n")
	writeList(&b, r.Insights)

	b.WriteString("\n### Tone Analysis\n")
	for _, tone := range []struct {
		name  string
		items []string
	}{
		{"Surprises", r.Tone.Surprises},
		{"Weaknesses", r.Tone.Weaknesses},
		{"Caution", r.Tone.Caution},
		{"Optimism", r.Tone.Optimism},
	} {
		fmt.Fprintf(&b, "\n%s:\n", tone.name)
		writeList(&b, tone.items)
	}

	return b.String()
}

// Print writes the rendered report.
func (r *Report) Print(w io.Writer) error {
	_, err := io.WriteString(w, r.Render())
	return err
}

func writeList(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}
