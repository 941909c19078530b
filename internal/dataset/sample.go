package dataset

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// hospitals lists the purchasing facilities in the sample dataset.
var hospitals = []string{
	"City General Hospital",
	"St. Mary's Medical Center",
	"University Health System",
	"Regional Medical Center",
	"Community Health Hospital",
	"Metropolitan Care Center",
	"Valley View Hospital",
	"Riverside Medical Center",
}

// suppliers lists the pharmacy suppliers in the sample dataset.
var suppliers = []string{
	"MedSupply Plus",
	"PharmaCare Direct",
	"HealthRx Solutions",
	"National Drug Distributors",
	"Premier Pharmacy Services",
	"MedLine Wholesale",
}

// drugListing describes one product in the sample catalog.
type drugListing struct {
	Name         string
	NDC          string
	BasePrice    decimal.Decimal
	TypicalUnits int
}

var drugCatalog = []drugListing{
	{"Amoxicillin 500mg", "00093-3109-01", decimal.RequireFromString("12.50"), 150},
	{"Lisinopril 10mg", "00378-1043-01", decimal.RequireFromString("8.75"), 200},
	{"Metformin 850mg", "00591-2477-01", decimal.RequireFromString("6.25"), 300},
	{"Omeprazole 20mg", "62175-0261-37", decimal.RequireFromString("15.00"), 180},
	{"Atorvastatin 40mg", "00378-3952-77", decimal.RequireFromString("22.50"), 120},
	{"Amlodipine 5mg", "00093-5056-01", decimal.RequireFromString("9.00"), 250},
	{"Metoprolol 50mg", "00378-0134-01", decimal.RequireFromString("11.25"), 175},
	{"Losartan 100mg", "00093-7368-01", decimal.RequireFromString("18.75"), 140},
	{"Gabapentin 300mg", "59762-5002-01", decimal.RequireFromString("14.00"), 160},
	{"Sertraline 50mg", "00093-7198-01", decimal.RequireFromString("10.50"), 190},
	{"Hydrochlorothiazide 25mg", "00378-0025-01", decimal.RequireFromString("5.50"), 280},
	{"Pantoprazole 40mg", "00093-0108-01", decimal.RequireFromString("16.25"), 130},
}

// SampleProvider generates a synthetic order table. The same seed, record
// count and reference time always produce the same records.
type SampleProvider struct {
	seed        int64
	records     int
	historyDays int
	refTime     time.Time
}

// NewSampleProvider creates a sample provider. Records are spread over the
// historyDays window trailing refTime.
func NewSampleProvider(seed int64, records, historyDays int, refTime time.Time) *SampleProvider {
	return &SampleProvider{
		seed:        seed,
		records:     records,
		historyDays: historyDays,
		refTime:     refTime,
	}
}

// Orders generates the sample order table, sorted by order date descending.
func (p *SampleProvider) Orders() ([]Order, error) {
	if p.records <= 0 {
		return nil, fmt.Errorf("record count must be positive, got %d", p.records)
	}
	if p.historyDays <= 0 {
		return nil, fmt.Errorf("history window must be positive, got %d days", p.historyDays)
	}

	rng := rand.New(rand.NewSource(p.seed))
	start := p.refTime.AddDate(0, 0, -p.historyDays)

	orders := make([]Order, 0, p.records)
	for i := 0; i < p.records; i++ {
		listing := drugCatalog[rng.Intn(len(drugCatalog))]

		// Vary the catalog price ±10% and the typical volume 0.5x-1.5x.
		price := listing.BasePrice.Mul(decimal.NewFromFloat(0.9 + rng.Float64()*0.2)).Round(2)
		units := int(float64(listing.TypicalUnits) * (0.5 + rng.Float64()))
		date := start.AddDate(0, 0, rng.Intn(p.historyDays+1))
		invoiced := rng.Intn(4) != 0 // roughly 75% invoiced

		orders = append(orders, NewOrder(
			hospitals[rng.Intn(len(hospitals))],
			suppliers[rng.Intn(len(suppliers))],
			listing.Name,
			listing.NDC,
			price,
			units,
			date,
			invoiced,
		))
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})

	return orders, nil
}
