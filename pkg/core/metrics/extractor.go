package metrics

import (
	"fmt"
	"regexp"
	"strings"
)

// Extractor applies a compiled pattern table to filing text.
type Extractor struct {
	patterns []Pattern
	compiled []*regexp.Regexp
}

// NewExtractor compiles the table. A malformed expression is a hard
// error; a table that silently skips entries would hide misconfiguration.
func NewExtractor(patterns []Pattern) (*Extractor, error) {
	e := &Extractor{patterns: patterns}
	for _, p := range patterns {
		re, err := regexp.Compile(p.Expr)
		if err != nil {
			return nil, fmt.Errorf("metric %q: bad expression: %w", p.Key, err)
		}
		if re.NumSubexp() < 1 {
			return nil, fmt.Errorf("metric %q: expression has no capture group", p.Key)
		}
		e.compiled = append(e.compiled, re)
	}
	return e, nil
}

// Extract returns one value per metric key. A missing match yields the
// sentinel "N/A <unit>"; a hit yields the first capture group with
// thousands separators stripped, suffixed with the unit.
func (e *Extractor) Extract(text string) map[string]string {
	out := make(map[string]string, len(e.patterns))
	for i, p := range e.patterns {
		m := e.compiled[i].FindStringSubmatch(text)
		if m == nil {
			out[p.Key] = "N/A " + p.Unit
			continue
		}
		out[p.Key] = strings.ReplaceAll(m[1], ",", "") + " " + p.Unit
	}
	return out
}

// Keys returns metric keys in table order.
func (e *Extractor) Keys() []string {
	keys := make([]string, 0, len(e.patterns))
	for _, p := range e.patterns {
		keys = append(keys, p.Key)
	}
	return keys
}

// DisplayKeys returns the keys the printer should show, in table order.
func (e *Extractor) DisplayKeys() []string {
	keys := make([]string, 0, len(e.patterns))
	for _, p := range e.patterns {
		if p.Display {
			keys = append(keys, p.Key)
		}
	}
	return keys
}
