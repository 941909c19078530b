package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// display localizes numbers for document and console output, grouping
// thousands the way the workbook's cell formats do.
var display = message.NewPrinter(language.English)

var decimal100 = decimal.NewFromInt(100)

// FormatUSD renders a decimal amount as a grouped dollar string, e.g.
// "$12,345.67". Display only; exact values stay in the summary tables.
func FormatUSD(d decimal.Decimal) string {
	return display.Sprintf("$%.2f", d.InexactFloat64())
}

// formatPct renders a savings ratio as a signed percentage with one decimal,
// e.g. "+8.2%" or "-3.1%".
func formatPct(pct decimal.Decimal) string {
	scaled := pct.Mul(decimal.NewFromInt(100)).Round(1)
	if scaled.IsNegative() {
		return scaled.String() + "%"
	}
	return "+" + scaled.String() + "%"
}
