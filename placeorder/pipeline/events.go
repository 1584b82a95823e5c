package pipeline

import "order-taking/placeorder/domain"

// EventKind names an Event variant.
type EventKind string

const (
	KindOrderPlaced         EventKind = "OrderPlaced"
	KindBillableOrderPlaced EventKind = "BillableOrderPlaced"
	KindAcknowledgmentSent  EventKind = "AcknowledgmentSent"
)

// Event is one of *OrderPlaced, *BillableOrderPlaced or *AcknowledgmentSent.
type Event interface {
	Kind() EventKind
	isEvent()
}

// OrderPlaced is always emitted for a successfully placed order.
type OrderPlaced struct {
	PricedOrder
}

func (*OrderPlaced) Kind() EventKind {
	return KindOrderPlaced
}

func (*OrderPlaced) isEvent() {}

// BillableOrderPlaced is emitted for orders with a positive total.
type BillableOrderPlaced struct {
	OrderID        domain.OrderID
	BillingAddress domain.Address
	AmountToBill   domain.BillingAmount
}

func (*BillableOrderPlaced) Kind() EventKind {
	return KindBillableOrderPlaced
}

func (*BillableOrderPlaced) isEvent() {}

// AcknowledgmentSent is emitted when the customer was sent an acknowledgment.
type AcknowledgmentSent struct {
	OrderID      domain.OrderID
	EmailAddress domain.EmailAddress
}

func (*AcknowledgmentSent) Kind() EventKind {
	return KindAcknowledgmentSent
}

func (*AcknowledgmentSent) isEvent() {}

// createEvents builds the events for a placed order, in this order:
// OrderPlaced, AcknowledgmentSent if ack is non-nil, BillableOrderPlaced if
// the total is above zero.
func createEvents(order PricedOrder, ack *AcknowledgmentSent) []Event {
	events := []Event{&OrderPlaced{PricedOrder: order}}
	if ack != nil {
		events = append(events, ack)
	}
	if billing := createBillingEvent(order); billing != nil {
		events = append(events, billing)
	}
	return events
}

func createBillingEvent(order PricedOrder) *BillableOrderPlaced {
	if order.amountToBill.Value() <= 0 {
		return nil
	}
	return &BillableOrderPlaced{
		OrderID:        order.orderID,
		BillingAddress: order.billingAddress,
		AmountToBill:   order.amountToBill,
	}
}
