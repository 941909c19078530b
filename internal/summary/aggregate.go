package summary

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"rxreport/internal/dataset"
	apperrors "rxreport/internal/errors"
)

// Aggregate produces one MonthlySummary per distinct calendar month present
// in orders, sorted chronologically ascending.
//
// Savings for each month compare against the previous month in the output
// sequence: amount = spend(prev) - spend(m), pct = amount / spend(prev).
// When the previous month's spend is zero the percentage is reported as
// zero rather than failing. A record with a zero order date is fatal.
func Aggregate(orders []dataset.Order) ([]MonthlySummary, error) {
	type bucket struct {
		count int
		spend decimal.Decimal
	}

	buckets := make(map[Month]*bucket)
	for i, order := range orders {
		if order.OrderDate.IsZero() {
			return nil, apperrors.NewDataError(fmt.Sprintf("order %d has no order date", i), nil)
		}

		m := MonthOf(order.OrderDate)
		b, ok := buckets[m]
		if !ok {
			b = &bucket{spend: decimal.Zero}
			buckets[m] = b
		}
		b.count++
		b.spend = b.spend.Add(order.Value)
	}

	months := make([]Month, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	summaries := make([]MonthlySummary, 0, len(months))
	for i, m := range months {
		b := buckets[m]
		s := MonthlySummary{
			Month:       m,
			TotalOrders: b.count,
			TotalSpend:  b.spend,
		}

		if i > 0 {
			prev := summaries[i-1].TotalSpend
			amount := prev.Sub(s.TotalSpend)
			pct := decimal.Zero
			if !prev.IsZero() {
				pct = amount.Div(prev)
			}
			s.Savings = &Savings{Amount: amount, Pct: pct}
		}

		summaries = append(summaries, s)
	}

	return summaries, nil
}

// TotalSpend sums the spend across all summary rows.
func TotalSpend(summaries []MonthlySummary) decimal.Decimal {
	total := decimal.Zero
	for _, s := range summaries {
		total = total.Add(s.TotalSpend)
	}
	return total
}

// TotalOrders sums the order counts across all summary rows.
func TotalOrders(summaries []MonthlySummary) int {
	total := 0
	for _, s := range summaries {
		total += s.TotalOrders
	}
	return total
}
