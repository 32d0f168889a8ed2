// Package metrics extracts fixed numeric facts from filing text using a
// declarative (key, expression, unit) table. The built-in table targets
// one specific quarterly filing; several expressions embed prior-period
// literals and will only match that document's text. Treat the table as
// filing-instance configuration and swap it per filing.
package metrics

// Pattern binds one metric key to its filing-specific regular expression.
// The first capture group is the extracted value. Display controls
// whether the printer shows the metric; balance-sheet detail rows are
// extracted but not displayed.
type Pattern struct {
	Key     string `json:"key"`
	Expr    string `json:"expr"`
	Unit    string `json:"unit"`
	Display bool   `json:"display"`
}

// DefaultPatterns returns the built-in table for the Uber Technologies
// Q1-2024 10-Q. Order here is the printer's display order.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Key: "revenue", Expr: `Revenue\s*\$\s*([\d,]+)\s*\$\s*11,188`, Unit: "$M", Display: true},
		{Key: "net_income", Expr: `Net income attributable to Uber Technologies, Inc.\s*\$\s*([\d,]+)\s*\$\s*2,612`, Unit: "$M", Display: true},
		{Key: "total_assets", Expr: `Total assets\s*38,699\s*([\d,]+)`, Unit: "$M", Display: false},
		{Key: "cash", Expr: `Cash and cash equivalents\s*4,680\s*([\d,]+)`, Unit: "$M", Display: false},
		{Key: "shares_outstanding", Expr: `2,071,144 and ([\d,]+) shares issued and outstanding`, Unit: "K shares", Display: true},
		{Key: "share_repurchases", Expr: `Total\s*([\d,]+)\s*[^\d]`, Unit: "K shares", Display: true},
		{Key: "sbc", Expr: `Stock-based compensation expense\s*\$\s*([\d,]+)\s*\$\s*[\d,]+`, Unit: "$M", Display: true},
		{Key: "mobility_revenue", Expr: `Mobility\s*\$\s*([\d,]+)\s*\$\s*[\d,]+`, Unit: "$M", Display: true},
		{Key: "delivery_revenue", Expr: `Delivery\s*\$\s*([\d,]+)\s*\$\s*[\d,]+`, Unit: "$M", Display: true},
		{Key: "freight_revenue", Expr: `Freight\s*\$\s*([\d,]+)\s*\$\s*[\d,]+`, Unit: "$M", Display: true},
		{Key: "operating_margin", Expr: `Operating margin\s*([\d.-]+)%`, Unit: "%", Display: true},
		{Key: "mobility_operating_margin", Expr: `Mobility.*?Operating margin\s*([\d.-]+)%`, Unit: "%", Display: true},
		{Key: "delivery_operating_margin", Expr: `Delivery.*?Operating margin\s*([\d.-]+)%`, Unit: "%", Display: true},
		{Key: "freight_operating_margin", Expr: `Freight.*?Operating margin\s*([\d.-]+)%`, Unit: "%", Display: true},
	}
}
