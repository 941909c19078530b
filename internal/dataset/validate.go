package dataset

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "rxreport/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	return v
}

// decimalAsFloat lets numeric validation tags apply to decimal fields.
func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// ValidateOrders checks every record for malformed fields and verifies the
// derived-value invariant. Any failure is fatal for the run: the dataset is
// produced by this tool, so a bad record is a bug, not an input condition.
func ValidateOrders(orders []Order) error {
	for i, order := range orders {
		if err := validate.Struct(order); err != nil {
			return apperrors.NewValidationError(fmt.Sprintf("order %d is malformed", i), err)
		}

		expected := order.UnitPrice.Mul(decimal.NewFromInt(int64(order.Units)))
		if !order.Value.Equal(expected) {
			return apperrors.NewValidationError(
				fmt.Sprintf("order %d value %s does not equal unit price x units (%s)", i, order.Value, expected), nil)
		}
	}
	return nil
}
