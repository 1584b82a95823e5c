package types

import (
	"github.com/shopspring/decimal"

	"order-taking/placeorder/domain"
	"order-taking/placeorder/pipeline"
)

// Workflow stages reported by the get-status query.
const (
	StagePricing    = "loading-prices"
	StagePlacing    = "placing"
	StagePublishing = "publishing"
	StageCompleted  = "completed"
	StageFailed     = "failed"
)

// OrderWorkflowStatus represents the current state of a place-order workflow
type OrderWorkflowStatus struct {
	OrderID   string
	Stage     string
	LastError string
	Events    []string
}

// PlaceOrderResult is the output of PlaceOrderWorkflow
type PlaceOrderResult struct {
	OrderID string               `json:"order_id"`
	Events  []PlaceOrderEventDTO `json:"events"`
}

// PlaceOrderEventDTO is the wire form of a pipeline.Event. Exactly one of the
// payload fields is set, matching Type.
type PlaceOrderEventDTO struct {
	Type                string                  `json:"type"`
	OrderPlaced         *OrderPlacedDTO         `json:"order_placed,omitempty"`
	BillableOrderPlaced *BillableOrderPlacedDTO `json:"billable_order_placed,omitempty"`
	AcknowledgmentSent  *AcknowledgmentSentDTO  `json:"acknowledgment_sent,omitempty"`
}

// OrderID returns the id of the order the event belongs to.
func (e PlaceOrderEventDTO) OrderID() string {
	switch {
	case e.OrderPlaced != nil:
		return e.OrderPlaced.OrderID
	case e.BillableOrderPlaced != nil:
		return e.BillableOrderPlaced.OrderID
	case e.AcknowledgmentSent != nil:
		return e.AcknowledgmentSent.OrderID
	}
	return ""
}

type CustomerInfoDTO struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
}

type AddressDTO struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressLine3 string `json:"address_line3,omitempty"`
	AddressLine4 string `json:"address_line4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
}

type PricedOrderLineDTO struct {
	OrderLineID string          `json:"order_line_id"`
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	LinePrice   int64           `json:"line_price"`
}

type OrderPlacedDTO struct {
	OrderID         string               `json:"order_id"`
	CustomerInfo    CustomerInfoDTO      `json:"customer_info"`
	ShippingAddress AddressDTO           `json:"shipping_address"`
	BillingAddress  AddressDTO           `json:"billing_address"`
	Lines           []PricedOrderLineDTO `json:"lines"`
	AmountToBill    int64                `json:"amount_to_bill"`
}

type BillableOrderPlacedDTO struct {
	OrderID        string     `json:"order_id"`
	BillingAddress AddressDTO `json:"billing_address"`
	AmountToBill   int64      `json:"amount_to_bill"`
}

type AcknowledgmentSentDTO struct {
	OrderID      string `json:"order_id"`
	EmailAddress string `json:"email_address"`
}

// FromEvents converts pipeline events to DTOs, keeping their order.
func FromEvents(events []pipeline.Event) []PlaceOrderEventDTO {
	out := make([]PlaceOrderEventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, FromEvent(e))
	}
	return out
}

// FromEvent converts a single pipeline event.
func FromEvent(e pipeline.Event) PlaceOrderEventDTO {
	dto := PlaceOrderEventDTO{Type: string(e.Kind())}
	switch ev := e.(type) {
	case *pipeline.OrderPlaced:
		dto.OrderPlaced = fromPricedOrder(ev.PricedOrder)
	case *pipeline.BillableOrderPlaced:
		dto.BillableOrderPlaced = &BillableOrderPlacedDTO{
			OrderID:        ev.OrderID.Value(),
			BillingAddress: fromAddress(ev.BillingAddress),
			AmountToBill:   ev.AmountToBill.Value(),
		}
	case *pipeline.AcknowledgmentSent:
		dto.AcknowledgmentSent = &AcknowledgmentSentDTO{
			OrderID:      ev.OrderID.Value(),
			EmailAddress: ev.EmailAddress.Value(),
		}
	}
	return dto
}

func fromPricedOrder(o pipeline.PricedOrder) *OrderPlacedDTO {
	name := o.CustomerInfo().Name()
	dto := &OrderPlacedDTO{
		OrderID: o.OrderID().Value(),
		CustomerInfo: CustomerInfoDTO{
			FirstName:    name.FirstName().Value(),
			LastName:     name.LastName().Value(),
			EmailAddress: o.CustomerInfo().Email().Value(),
		},
		ShippingAddress: fromAddress(o.ShippingAddress()),
		BillingAddress:  fromAddress(o.BillingAddress()),
		AmountToBill:    o.AmountToBill().Value(),
	}
	for _, l := range o.Lines() {
		dto.Lines = append(dto.Lines, PricedOrderLineDTO{
			OrderLineID: l.OrderLineID().Value(),
			ProductCode: l.ProductCode().Value(),
			Quantity:    l.Quantity().Value(),
			LinePrice:   l.LinePrice().Value(),
		})
	}
	return dto
}

func fromAddress(a domain.Address) AddressDTO {
	dto := AddressDTO{
		AddressLine1: a.AddressLine1().Value(),
		City:         a.City().Value(),
		ZipCode:      a.ZipCode().Value(),
	}
	if l, ok := a.AddressLine2(); ok {
		dto.AddressLine2 = l.Value()
	}
	if l, ok := a.AddressLine3(); ok {
		dto.AddressLine3 = l.Value()
	}
	if l, ok := a.AddressLine4(); ok {
		dto.AddressLine4 = l.Value()
	}
	return dto
}
