package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	minUnitQuantity = 1
	maxUnitQuantity = 1000
)

// OrderQuantity is either a UnitQuantity or a KilogramQuantity.
type OrderQuantity interface {
	Value() decimal.Decimal
	isOrderQuantity()
}

// UnitQuantity is a whole number of items between 1 and 1000.
type UnitQuantity struct {
	value int
}

func NewUnitQuantity(field string, n int) (UnitQuantity, error) {
	if n < minUnitQuantity {
		return UnitQuantity{}, fieldError(field, "must not be less than %d, got %d", minUnitQuantity, n)
	}
	if n > maxUnitQuantity {
		return UnitQuantity{}, fieldError(field, "must not be more than %d, got %d", maxUnitQuantity, n)
	}
	return UnitQuantity{value: n}, nil
}

func (q UnitQuantity) Count() int {
	return q.value
}

func (q UnitQuantity) Value() decimal.Decimal {
	return decimal.NewFromInt(int64(q.value))
}

func (UnitQuantity) isOrderQuantity() {}

// KilogramQuantity is a weight. No range is enforced.
type KilogramQuantity struct {
	value decimal.Decimal
}

// NewKilogramQuantity enforces no invariant and never fails.
func NewKilogramQuantity(field string, kg decimal.Decimal) (KilogramQuantity, error) {
	return KilogramQuantity{value: kg}, nil
}

func (q KilogramQuantity) Value() decimal.Decimal {
	return q.value
}

func (KilogramQuantity) isOrderQuantity() {}

// NewOrderQuantity builds the quantity variant that matches code: units for
// widgets, kilograms for gizmos. Unit quantities must be whole numbers.
func NewOrderQuantity(field string, code ProductCode, qty decimal.Decimal) (OrderQuantity, error) {
	switch code.(type) {
	case WidgetCode:
		if !qty.IsInteger() {
			return nil, fieldError(field, "must be a whole number, got %s", qty)
		}
		if qty.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
			return nil, fieldError(field, "out of range, got %s", qty)
		}
		q, err := NewUnitQuantity(field, int(qty.IntPart()))
		if err != nil {
			return nil, err
		}
		return q, nil
	case GizmoCode:
		q, err := NewKilogramQuantity(field, qty)
		if err != nil {
			return nil, err
		}
		return q, nil
	}
	return nil, fieldError(field, "unknown product code %T", code)
}
