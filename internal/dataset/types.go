package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents one procurement transaction line.
//
// Value is derived from UnitPrice and Units and must never be set
// independently; use NewOrder to construct records.
type Order struct {
	Hospital  string          `json:"hospital" validate:"required"`
	Supplier  string          `json:"supplier" validate:"required"`
	Drug      string          `json:"drug" validate:"required"`
	NDC       string          `json:"ndc" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
	Units     int             `json:"units" validate:"gte=0"`
	OrderDate time.Time       `json:"order_date" validate:"required"`
	Invoiced  bool            `json:"invoiced"`
	Value     decimal.Decimal `json:"value" validate:"gte=0"`
}

// NewOrder builds an order with its derived value.
func NewOrder(hospital, supplier, drug, ndc string, unitPrice decimal.Decimal, units int, orderDate time.Time, invoiced bool) Order {
	return Order{
		Hospital:  hospital,
		Supplier:  supplier,
		Drug:      drug,
		NDC:       ndc,
		UnitPrice: unitPrice,
		Units:     units,
		OrderDate: orderDate,
		Invoiced:  invoiced,
		Value:     unitPrice.Mul(decimal.NewFromInt(int64(units))),
	}
}

// Provider supplies the order table for a report run. Implementations must
// return records that callers can treat as immutable.
type Provider interface {
	Orders() ([]Order, error)
}
