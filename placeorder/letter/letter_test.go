package letter_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-taking/placeorder/domain"
	"order-taking/placeorder/letter"
	"order-taking/placeorder/pipeline"
)

func TestRender(t *testing.T) {
	var sent []pipeline.OrderAcknowledgment
	wf := pipeline.New(pipeline.Dependencies{
		CheckProductCodeExists: func(domain.ProductCode) bool { return true },
		CheckAddressExists: func(a pipeline.UnvalidatedAddress) (pipeline.CheckedAddress, error) {
			return pipeline.CheckedAddress(a), nil
		},
		GetProductPrice: func(domain.ProductCode) domain.Price {
			p, _ := domain.NewPrice("Price", 1250)
			return p
		},
		CreateAcknowledgmentLetter: letter.Render,
		SendAcknowledgment: func(ack pipeline.OrderAcknowledgment) pipeline.SendResult {
			sent = append(sent, ack)
			return pipeline.Sent
		},
	})

	addr := pipeline.UnvalidatedAddress{AddressLine1: "1 Main Street", City: "Springfield", ZipCode: "12345"}
	_, err := wf.PlaceOrder(pipeline.UnvalidatedOrder{
		OrderID:         "order-42",
		CustomerInfo:    pipeline.UnvalidatedCustomerInfo{FirstName: "<b>Ada</b>", LastName: "Lovelace", EmailAddress: "ada@example.com"},
		ShippingAddress: addr,
		BillingAddress:  addr,
		Lines: []pipeline.UnvalidatedOrderLine{
			{OrderLineID: "1", ProductCode: "W0001", Quantity: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)

	body := string(sent[0].Letter)
	assert.Contains(t, body, "Dear &lt;b&gt;Ada&lt;/b&gt; Lovelace")
	assert.Contains(t, body, "order-42")
	assert.Contains(t, body, "<td>W0001</td><td>2</td><td>25.00</td>")
	assert.Contains(t, body, "Total: 25.00")
}
