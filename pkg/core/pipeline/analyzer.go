// Package pipeline wires the extraction stages into one synchronous
// run: acquire text, annotate, run every extractor, assemble the report.
// Extractors are order-independent reads of the same annotated document.
package pipeline

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"filing_insight/pkg/core/classify"
	"filing_insight/pkg/core/metrics"
	"filing_insight/pkg/core/nlp"
	"filing_insight/pkg/core/report"
	"filing_insight/pkg/core/sections"
	"filing_insight/pkg/core/swot"
)

// TextExtractor retrieves the raw text of a filing file.
// Implementations may read PDFs, EDGAR HTML, or test fixtures.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// Config carries the tunable parts of the heuristic rule set. Zero
// values fall back to the fixed caps the extractors define.
type Config struct {
	Competitors []string
	UpdateRules []classify.Rule
	GuidanceCap int
	SegmentCap  int
	ToneCap     int
}

// DefaultConfig reproduces the built-in rule set.
func DefaultConfig() Config {
	return Config{
		Competitors: sections.DefaultCompetitors(),
		UpdateRules: classify.DefaultUpdateRules(),
		GuidanceCap: classify.DefaultGuidanceCap,
		SegmentCap:  sections.DefaultSegmentCap,
		ToneCap:     classify.DefaultToneCap,
	}
}

// Analyzer runs the full single-pass pipeline.
type Analyzer struct {
	extractor TextExtractor
	metrics   *metrics.Extractor
	scorer    *nlp.PolarityScorer
	cfg       Config
}

// NewAnalyzer compiles the pattern table and builds the analyzer.
func NewAnalyzer(extractor TextExtractor, patterns []metrics.Pattern, cfg Config) (*Analyzer, error) {
	me, err := metrics.NewExtractor(patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern table: %w", err)
	}
	return &Analyzer{
		extractor: extractor,
		metrics:   me,
		scorer:    nlp.NewPolarityScorer(),
		cfg:       cfg,
	}, nil
}

// Run analyzes one filing and returns the assembled report.
func (a *Analyzer) Run(path string) (*report.Report, error) {
	runID := uuid.New().String()[:8]
	log.Printf("[pipeline] run %s: extracting text from %s", runID, path)

	text, err := a.extractor.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	log.Printf("[pipeline] run %s: annotating %d characters", runID, len(text))
	doc, err := nlp.Annotate(text)
	if err != nil {
		return nil, err
	}
	log.Printf("[pipeline] run %s: %d sentences, %d entities", runID, len(doc.Sentences), len(doc.Entities))

	numericMetrics := a.metrics.Extract(text)

	rep := &report.Report{
		Source:          path,
		Metrics:         numericMetrics,
		MetricOrder:     a.metrics.DisplayKeys(),
		ForwardGuidance: classify.ForwardGuidance(doc, a.cfg.GuidanceCap),
		Sentiment:       sections.SectionSentiment(text, a.scorer),
		BusinessUpdates: classify.BusinessUpdates(doc, a.cfg.UpdateRules),
		Segments:        sections.Segments(doc, a.cfg.SegmentCap),
		Competitive:     sections.Competitors(doc, a.cfg.Competitors),
		SWOT:            swot.Analyze(text, numericMetrics),
		Insights:        swot.HiddenInsights(doc),
		Tone:            classify.Tone(doc, a.cfg.ToneCap),
	}

	if !report.ValidateMarkdown(rep.Render()) {
		log.Printf("[pipeline] run %s: warning: report body failed markdown validation", runID)
	}

	log.Printf("[pipeline] run %s: analysis complete", runID)
	return rep, nil
}
