package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"rxreport/internal/dataset"
)

// DrugSpend is the total spend attributed to one drug listing.
type DrugSpend struct {
	NDC   string
	Drug  string
	Spend decimal.Decimal
}

// TopDrugsBySpend groups orders by (NDC, drug name), sums their values and
// returns the n largest groups by spend, descending. Ties are broken by NDC
// so the ranking is deterministic.
func TopDrugsBySpend(orders []dataset.Order, n int) []DrugSpend {
	type key struct {
		ndc  string
		drug string
	}

	totals := make(map[key]decimal.Decimal)
	for _, order := range orders {
		k := key{ndc: order.NDC, drug: order.Drug}
		totals[k] = totals[k].Add(order.Value)
	}

	ranking := make([]DrugSpend, 0, len(totals))
	for k, spend := range totals {
		ranking = append(ranking, DrugSpend{NDC: k.ndc, Drug: k.drug, Spend: spend})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if c := ranking[i].Spend.Cmp(ranking[j].Spend); c != 0 {
			return c > 0
		}
		return ranking[i].NDC < ranking[j].NDC
	})

	if n < len(ranking) {
		ranking = ranking[:n]
	}
	return ranking
}
