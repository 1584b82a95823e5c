package pipeline

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"order-taking/placeorder/domain"
)

// priceOrder prices every line and totals the order.
//
// The quantity multiplier is truncated to an integer for both units and
// kilograms, so a gizmo line of 2.7 kg is charged for 2.
func priceOrder(getProductPrice GetProductPrice, order ValidatedOrder) (PricedOrder, error) {
	lines := make([]PricedOrderLine, len(order.lines))
	prices := make([]domain.Price, len(order.lines))
	for i, line := range order.lines {
		priced, err := toPricedOrderLine(getProductPrice, line)
		if err != nil {
			return PricedOrder{}, err
		}
		lines[i] = priced
		prices[i] = priced.linePrice
	}

	total, err := domain.SumPrices("AmountToBill", prices)
	if err != nil {
		return PricedOrder{}, &PricingError{Msg: err.Error()}
	}

	return PricedOrder{
		orderID:         order.orderID,
		customerInfo:    order.customerInfo,
		shippingAddress: order.shippingAddress,
		billingAddress:  order.billingAddress,
		lines:           lines,
		amountToBill:    total,
	}, nil
}

var (
	minMultiplier = decimal.NewFromInt(math.MinInt64)
	maxMultiplier = decimal.NewFromInt(math.MaxInt64)
)

func toPricedOrderLine(getProductPrice GetProductPrice, line ValidatedOrderLine) (PricedOrderLine, error) {
	n := line.quantity.Value().Truncate(0)
	if n.LessThan(minMultiplier) || n.GreaterThan(maxMultiplier) {
		return PricedOrderLine{}, &PricingError{
			Msg: fmt.Sprintf("line %s: quantity %s is out of range", line.orderLineID.Value(), line.quantity.Value()),
		}
	}

	unitPrice := getProductPrice(line.productCode)
	linePrice, err := unitPrice.Multiply("LinePrice", n.IntPart())
	if err != nil {
		return PricedOrderLine{}, &PricingError{
			Msg: fmt.Sprintf("line %s: %v", line.orderLineID.Value(), err),
		}
	}
	return PricedOrderLine{ValidatedOrderLine: line, linePrice: linePrice}, nil
}
