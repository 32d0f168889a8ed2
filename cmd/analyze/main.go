package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"filing_insight/pkg/core/classify"
	"filing_insight/pkg/core/ingest"
	"filing_insight/pkg/core/metrics"
	"filing_insight/pkg/core/pipeline"
)

// fileConfig is the optional YAML analyzer configuration. Every field
// overrides the built-in default only when set.
type fileConfig struct {
	Competitors []string        `yaml:"competitors"`
	UpdateRules []classify.Rule `yaml:"update_rules"`
	Caps        struct {
		Guidance int `yaml:"guidance"`
		Segments int `yaml:"segments"`
		Tone     int `yaml:"tone"`
	} `yaml:"caps"`
}

func main() {
	patternsPath := flag.String("patterns", "", "HJSON metric pattern table (default: built-in filing table)")
	configPath := flag.String("config", "", "YAML analyzer config: competitors, update rules, caps")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: analyze [flags] <filing.pdf|filing.htm>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)

	if _, err := os.Stat(path); err != nil {
		fmt.Printf("Error: File '%s' not found.\n", path)
		os.Exit(1)
	}

	patterns := metrics.DefaultPatterns()
	if *patternsPath != "" {
		loaded, err := metrics.LoadPatterns(*patternsPath)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		patterns = loaded
	}

	cfg := pipeline.DefaultConfig()
	if *configPath != "" {
		if err := applyConfig(&cfg, *configPath); err != nil {
			log.Fatalf("Error: %v", err)
		}
	}

	analyzer, err := pipeline.NewAnalyzer(ingest.New(), patterns, cfg)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	rep, err := analyzer.Run(path)
	if err != nil {
		fmt.Printf("Error analyzing document: %v\n", err)
		os.Exit(1)
	}

	if err := rep.Print(os.Stdout); err != nil {
		fmt.Printf("Error analyzing document: %v\n", err)
		os.Exit(1)
	}
}

// applyConfig overlays a YAML config file onto the default config.
func applyConfig(cfg *pipeline.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if len(fc.Competitors) > 0 {
		cfg.Competitors = fc.Competitors
	}
	if len(fc.UpdateRules) > 0 {
		cfg.UpdateRules = fc.UpdateRules
	}
	if fc.Caps.Guidance > 0 {
		cfg.GuidanceCap = fc.Caps.Guidance
	}
	if fc.Caps.Segments > 0 {
		cfg.SegmentCap = fc.Caps.Segments
	}
	if fc.Caps.Tone > 0 {
		cfg.ToneCap = fc.Caps.Tone
	}
	return nil
}
