package types_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-taking/placeorder/domain"
	"order-taking/placeorder/pipeline"
	"order-taking/placeorder/types"
)

func placeOrder(t *testing.T, price int64) []pipeline.Event {
	t.Helper()
	wf := pipeline.New(pipeline.Dependencies{
		CheckProductCodeExists: func(domain.ProductCode) bool { return true },
		CheckAddressExists: func(a pipeline.UnvalidatedAddress) (pipeline.CheckedAddress, error) {
			return pipeline.CheckedAddress(a), nil
		},
		GetProductPrice: func(domain.ProductCode) domain.Price {
			p, err := domain.NewPrice("Price", price)
			require.NoError(t, err)
			return p
		},
		CreateAcknowledgmentLetter: func(pipeline.PricedOrder) pipeline.HTMLString { return "letter" },
		SendAcknowledgment:         func(pipeline.OrderAcknowledgment) pipeline.SendResult { return pipeline.Sent },
	})

	events, err := wf.PlaceOrder(pipeline.UnvalidatedOrder{
		OrderID:         "order-7",
		CustomerInfo:    pipeline.UnvalidatedCustomerInfo{FirstName: "Grace", LastName: "Hopper", EmailAddress: "grace@example.com"},
		ShippingAddress: pipeline.UnvalidatedAddress{AddressLine1: "1 Navy Way", AddressLine2: "Suite 2", City: "Arlington", ZipCode: "22202"},
		BillingAddress:  pipeline.UnvalidatedAddress{AddressLine1: "9 Bill Road", City: "Arlington", ZipCode: "22203"},
		Lines: []pipeline.UnvalidatedOrderLine{
			{OrderLineID: "1", ProductCode: "G123", Quantity: decimal.RequireFromString("1.5")},
		},
	})
	require.NoError(t, err)
	return events
}

func TestFromEvents(t *testing.T) {
	dtos := types.FromEvents(placeOrder(t, 300))
	require.Len(t, dtos, 3)

	placed := dtos[0]
	assert.Equal(t, "OrderPlaced", placed.Type)
	require.NotNil(t, placed.OrderPlaced)
	assert.Nil(t, placed.BillableOrderPlaced)
	assert.Equal(t, "order-7", placed.OrderID())
	assert.Equal(t, "Suite 2", placed.OrderPlaced.ShippingAddress.AddressLine2)
	assert.Equal(t, "grace@example.com", placed.OrderPlaced.CustomerInfo.EmailAddress)
	require.Len(t, placed.OrderPlaced.Lines, 1)
	assert.True(t, placed.OrderPlaced.Lines[0].Quantity.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, int64(300), placed.OrderPlaced.AmountToBill)

	assert.Equal(t, "AcknowledgmentSent", dtos[1].Type)
	assert.Equal(t, "grace@example.com", dtos[1].AcknowledgmentSent.EmailAddress)

	assert.Equal(t, "BillableOrderPlaced", dtos[2].Type)
	assert.Equal(t, "9 Bill Road", dtos[2].BillableOrderPlaced.BillingAddress.AddressLine1)
	assert.Equal(t, "order-7", dtos[2].OrderID())

	data, err := json.Marshal(dtos[2])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "BillableOrderPlaced",
		"billable_order_placed": {
			"order_id": "order-7",
			"billing_address": {"address_line1": "9 Bill Road", "city": "Arlington", "zip_code": "22203"},
			"amount_to_bill": 300
		}
	}`, string(data))
}

func TestFromError(t *testing.T) {
	dto, ok := types.FromError(&pipeline.ValidationFailure{Errors: []pipeline.ValidationError{
		{FieldName: "Lines[0].Quantity", ErrorDescription: "must not be less than 1, got 0"},
	}})
	require.True(t, ok)
	assert.Equal(t, types.ErrTypeValidation, dto.Code)
	require.Len(t, dto.Errors, 1)

	dto, ok = types.FromError(&pipeline.PricingError{Msg: "overflow"})
	require.True(t, ok)
	assert.Equal(t, types.ErrTypePricing, dto.Code)
	assert.Equal(t, "overflow", dto.Message)

	dto, ok = types.FromError(&pipeline.RemoteServiceError{
		Service: pipeline.ServiceInfo{Name: pipeline.AddressServiceName},
		Err:     errors.New("down"),
	})
	require.True(t, ok)
	assert.Equal(t, types.ErrTypeRemoteService, dto.Code)
	require.NotNil(t, dto.Service)
	assert.Equal(t, pipeline.AddressServiceName, dto.Service.Name)

	_, ok = types.FromError(errors.New("plain"))
	assert.False(t, ok)
}
