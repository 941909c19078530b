package dataset

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "rxreport/internal/errors"
)

func validOrder() Order {
	return NewOrder("City General Hospital", "MedSupply Plus", "Metformin 850mg",
		"00591-2477-01", decimal.RequireFromString("6.25"), 300,
		time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), true)
}

func TestValidateOrders_ValidDataset(t *testing.T) {
	refTime := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	orders, err := NewSampleProvider(42, 100, 180, refTime).Orders()
	require.NoError(t, err)

	assert.NoError(t, ValidateOrders(orders))
}

func TestValidateOrders_MalformedRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Order)
	}{
		{"missing hospital", func(o *Order) { o.Hospital = "" }},
		{"missing supplier", func(o *Order) { o.Supplier = "" }},
		{"missing drug", func(o *Order) { o.Drug = "" }},
		{"missing ndc", func(o *Order) { o.NDC = "" }},
		{"missing order date", func(o *Order) { o.OrderDate = time.Time{} }},
		{"negative unit price", func(o *Order) {
			o.UnitPrice = decimal.RequireFromString("-1.00")
			o.Value = o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Units)))
		}},
		{"tampered value", func(o *Order) { o.Value = o.Value.Add(decimal.NewFromInt(1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder()
			tt.mutate(&order)

			err := ValidateOrders([]Order{order})
			require.Error(t, err)

			kind, ok := apperrors.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.KindValidation, kind)
		})
	}
}

func TestValidateOrders_ReportsRecordIndex(t *testing.T) {
	bad := validOrder()
	bad.Hospital = ""

	err := ValidateOrders([]Order{validOrder(), bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order 1")
}
