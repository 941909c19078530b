package summary

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Month identifies one calendar month. Only year and month take part in
// grouping; days and times are ignored.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf extracts the calendar month of a timestamp.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String returns the month in "2006-01" form.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Before reports whether m is chronologically earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// Savings captures the month-over-month spend change: a positive amount means
// the month spent less than the one before it.
type Savings struct {
	Amount decimal.Decimal
	Pct    decimal.Decimal
}

// Indicator renders the savings as the display string used in the summary
// sheet and document ("Saved 8.2% vs last month", "Costs increased 3.1%").
func (s Savings) Indicator() string {
	pct := s.Pct.Mul(decimal.NewFromInt(100)).Round(1)
	switch {
	case pct.IsPositive():
		return fmt.Sprintf("Saved %s%% vs last month", pct)
	case pct.IsNegative():
		return fmt.Sprintf("Costs increased %s%%", pct.Abs())
	default:
		return "Costs stable"
	}
}

// MonthlySummary is the aggregated view of all orders within one calendar
// month. Savings is nil for the first month in range: there is no prior
// month to compare against.
type MonthlySummary struct {
	Month       Month
	TotalOrders int
	TotalSpend  decimal.Decimal
	Savings     *Savings
}

// SavingsIndicator returns the display string for the month's savings, or
// "n/a" when no prior month exists.
func (s MonthlySummary) SavingsIndicator() string {
	if s.Savings == nil {
		return "n/a"
	}
	return s.Savings.Indicator()
}
