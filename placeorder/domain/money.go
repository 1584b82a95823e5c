package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// Price is a non-negative amount in minor currency units.
type Price struct {
	value int64
}

func NewPrice(field string, minor int64) (Price, error) {
	if minor < 0 {
		return Price{}, fieldError(field, "must not be negative, got %d", minor)
	}
	return Price{value: minor}, nil
}

func (p Price) Value() int64 {
	return p.value
}

// Multiply returns p times n, validated as a new Price. The product must fit
// in int64 minor units.
func (p Price) Multiply(field string, n int64) (Price, error) {
	product := decimal.NewFromInt(p.value).Mul(decimal.NewFromInt(n))
	if product.IsNegative() {
		return Price{}, fieldError(field, "must not be negative, got %s", product)
	}
	if product.GreaterThan(maxMinorUnits) {
		return Price{}, fieldError(field, "overflows, got %s", product)
	}
	return NewPrice(field, product.IntPart())
}

// BillingAmount is the total of an order in minor currency units.
type BillingAmount struct {
	value int64
}

func NewBillingAmount(field string, minor int64) (BillingAmount, error) {
	if minor < 0 {
		return BillingAmount{}, fieldError(field, "must not be negative, got %d", minor)
	}
	return BillingAmount{value: minor}, nil
}

// SumPrices totals prices into a BillingAmount.
func SumPrices(field string, prices []Price) (BillingAmount, error) {
	var total int64
	for _, p := range prices {
		total += p.value
		if total < 0 {
			return BillingAmount{}, fieldError(field, "overflows")
		}
	}
	return NewBillingAmount(field, total)
}

func (b BillingAmount) Value() int64 {
	return b.value
}

func (b BillingAmount) String() string {
	return fmt.Sprintf("%d.%02d", b.value/100, b.value%100)
}
