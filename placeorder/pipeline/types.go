package pipeline

import (
	"github.com/shopspring/decimal"

	"order-taking/placeorder/domain"
)

// UnvalidatedOrder is an order as received from outside. Nothing about it is
// trusted.
type UnvalidatedOrder struct {
	OrderID         string                  `json:"order_id"`
	CustomerInfo    UnvalidatedCustomerInfo `json:"customer_info"`
	ShippingAddress UnvalidatedAddress      `json:"shipping_address"`
	BillingAddress  UnvalidatedAddress      `json:"billing_address"`
	Lines           []UnvalidatedOrderLine  `json:"lines"`
}

type UnvalidatedCustomerInfo struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
}

type UnvalidatedAddress struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressLine3 string `json:"address_line3,omitempty"`
	AddressLine4 string `json:"address_line4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
}

type UnvalidatedOrderLine struct {
	OrderLineID string          `json:"order_line_id"`
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// CheckedAddress is an address the address service has resolved. It is still
// unvalidated as far as the domain types are concerned.
type CheckedAddress UnvalidatedAddress

// ValidatedOrderLine is an order line whose quantity variant matches its
// product code.
type ValidatedOrderLine struct {
	orderLineID domain.OrderLineID
	productCode domain.ProductCode
	quantity    domain.OrderQuantity
}

func (l ValidatedOrderLine) OrderLineID() domain.OrderLineID {
	return l.orderLineID
}

func (l ValidatedOrderLine) ProductCode() domain.ProductCode {
	return l.productCode
}

func (l ValidatedOrderLine) Quantity() domain.OrderQuantity {
	return l.quantity
}

// ValidatedOrder is the output of the validation stage.
type ValidatedOrder struct {
	orderID         domain.OrderID
	customerInfo    domain.CustomerInfo
	shippingAddress domain.Address
	billingAddress  domain.Address
	lines           []ValidatedOrderLine
}

func (o ValidatedOrder) OrderID() domain.OrderID {
	return o.orderID
}

func (o ValidatedOrder) CustomerInfo() domain.CustomerInfo {
	return o.customerInfo
}

func (o ValidatedOrder) ShippingAddress() domain.Address {
	return o.shippingAddress
}

func (o ValidatedOrder) BillingAddress() domain.Address {
	return o.billingAddress
}

func (o ValidatedOrder) Lines() []ValidatedOrderLine {
	return append([]ValidatedOrderLine(nil), o.lines...)
}

// PricedOrderLine is a validated line with its computed price.
type PricedOrderLine struct {
	ValidatedOrderLine
	linePrice domain.Price
}

func (l PricedOrderLine) LinePrice() domain.Price {
	return l.linePrice
}

// PricedOrder is the output of the pricing stage. AmountToBill is the sum of
// the line prices.
type PricedOrder struct {
	orderID         domain.OrderID
	customerInfo    domain.CustomerInfo
	shippingAddress domain.Address
	billingAddress  domain.Address
	lines           []PricedOrderLine
	amountToBill    domain.BillingAmount
}

func (o PricedOrder) OrderID() domain.OrderID {
	return o.orderID
}

func (o PricedOrder) CustomerInfo() domain.CustomerInfo {
	return o.customerInfo
}

func (o PricedOrder) ShippingAddress() domain.Address {
	return o.shippingAddress
}

func (o PricedOrder) BillingAddress() domain.Address {
	return o.billingAddress
}

func (o PricedOrder) Lines() []PricedOrderLine {
	return append([]PricedOrderLine(nil), o.lines...)
}

func (o PricedOrder) AmountToBill() domain.BillingAmount {
	return o.amountToBill
}

// HTMLString is a rendered acknowledgment letter.
type HTMLString string

// OrderAcknowledgment is what gets sent to the customer.
type OrderAcknowledgment struct {
	OrderID      domain.OrderID
	EmailAddress domain.EmailAddress
	Letter       HTMLString
}

// SendResult is the outcome of sending an acknowledgment.
type SendResult int

const (
	NotSent SendResult = iota
	Sent
)

func (r SendResult) String() string {
	if r == Sent {
		return "sent"
	}
	return "not-sent"
}
