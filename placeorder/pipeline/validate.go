package pipeline

import (
	"errors"
	"fmt"

	"order-taking/placeorder/domain"
	"order-taking/placeorder/result"
)

// AddressServiceName identifies the address service in RemoteServiceError.
const AddressServiceName = "AddressCheckingService"

// validateOrder turns an untrusted order into a ValidatedOrder. Order id,
// customer and addresses are checked in turn and the first failure is
// returned. Every line is then validated and all line failures are returned
// together.
func validateOrder(
	checkProductCode CheckProductCodeExists,
	checkAddress CheckAddressExists,
	order UnvalidatedOrder,
) (ValidatedOrder, error) {
	orderID, err := domain.NewOrderID("OrderID", order.OrderID)
	if err != nil {
		return ValidatedOrder{}, validationFailure("OrderID", err)
	}
	customer, err := toCustomerInfo(order.CustomerInfo)
	if err != nil {
		return ValidatedOrder{}, validationFailure("CustomerInfo", err)
	}
	shipping, err := toAddress(checkAddress, order.ShippingAddress)
	if err != nil {
		return ValidatedOrder{}, err
	}
	billing, err := toAddress(checkAddress, order.BillingAddress)
	if err != nil {
		return ValidatedOrder{}, err
	}

	checked := result.TraverseIndexed(order.Lines, func(i int, line UnvalidatedOrderLine) result.Result[ValidatedOrderLine, ValidationError] {
		return toValidatedOrderLine(checkProductCode, fmt.Sprintf("Lines[%d].", i), line)
	})
	lines, lineErrs, ok := checked.Get()
	if !ok {
		return ValidatedOrder{}, &ValidationFailure{Errors: lineErrs}
	}

	return ValidatedOrder{
		orderID:         orderID,
		customerInfo:    customer,
		shippingAddress: shipping,
		billingAddress:  billing,
		lines:           lines,
	}, nil
}

func toCustomerInfo(c UnvalidatedCustomerInfo) (domain.CustomerInfo, error) {
	name, err := domain.NewPersonalName(c.FirstName, c.LastName)
	if err != nil {
		return domain.CustomerInfo{}, err
	}
	email, err := domain.NewEmailAddress("EmailAddress", c.EmailAddress)
	if err != nil {
		return domain.CustomerInfo{}, err
	}
	return domain.NewCustomerInfo(name, email), nil
}

// toAddress resolves addr with the address service, then validates the
// resolved fields.
func toAddress(checkAddress CheckAddressExists, addr UnvalidatedAddress) (domain.Address, error) {
	checked, err := checkAddress(addr)
	if err != nil {
		var remote *RemoteServiceError
		if errors.As(err, &remote) {
			return domain.Address{}, remote
		}
		return domain.Address{}, &RemoteServiceError{
			Service: ServiceInfo{Name: AddressServiceName},
			Err:     err,
		}
	}
	a, err := domain.NewAddress(domain.AddressFields{
		AddressLine1: checked.AddressLine1,
		AddressLine2: checked.AddressLine2,
		AddressLine3: checked.AddressLine3,
		AddressLine4: checked.AddressLine4,
		City:         checked.City,
		ZipCode:      checked.ZipCode,
	})
	if err != nil {
		return domain.Address{}, validationFailure("Address", err)
	}
	return a, nil
}

// toValidatedOrderLine validates a single line and reports its first error.
// prefix locates the line in the order for error reporting.
func toValidatedOrderLine(
	checkProductCode CheckProductCodeExists,
	prefix string,
	line UnvalidatedOrderLine,
) result.Result[ValidatedOrderLine, ValidationError] {
	fail := func(field string, err error) result.Result[ValidatedOrderLine, ValidationError] {
		ve := toValidationError(field, err)
		ve.FieldName = prefix + ve.FieldName
		return result.Err[ValidatedOrderLine](ve)
	}

	id, err := domain.NewOrderLineID("OrderLineID", line.OrderLineID)
	if err != nil {
		return fail("OrderLineID", err)
	}
	code, err := toProductCode(checkProductCode, line.ProductCode)
	if err != nil {
		return fail("ProductCode", err)
	}
	qty, err := domain.NewOrderQuantity("Quantity", code, line.Quantity)
	if err != nil {
		return fail("Quantity", err)
	}

	return result.Ok[ValidatedOrderLine, ValidationError](ValidatedOrderLine{
		orderLineID: id,
		productCode: code,
		quantity:    qty,
	})
}

func toProductCode(checkProductCode CheckProductCodeExists, raw string) (domain.ProductCode, error) {
	code, err := domain.NewProductCode("ProductCode", raw)
	if err != nil {
		return nil, err
	}
	if !checkProductCode(code) {
		return nil, fmt.Errorf("invalid: %s", code.Value())
	}
	return code, nil
}
