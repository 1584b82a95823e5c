package pipeline

import "order-taking/placeorder/domain"

// CheckProductCodeExists reports whether code is in the product catalog.
type CheckProductCodeExists func(code domain.ProductCode) bool

// CheckAddressExists resolves an address with the address service. A non-nil
// error is reported as a *RemoteServiceError.
type CheckAddressExists func(addr UnvalidatedAddress) (CheckedAddress, error)

// GetProductPrice returns the unit price of code. It must not fail.
type GetProductPrice func(code domain.ProductCode) domain.Price

// CreateAcknowledgmentLetter renders the letter sent to the customer.
type CreateAcknowledgmentLetter func(order PricedOrder) HTMLString

// SendAcknowledgment delivers an acknowledgment. Failing to send is not an
// error; it is reported as NotSent.
type SendAcknowledgment func(ack OrderAcknowledgment) SendResult

// Dependencies are the collaborators the workflow calls out to.
type Dependencies struct {
	CheckProductCodeExists     CheckProductCodeExists
	CheckAddressExists         CheckAddressExists
	GetProductPrice            GetProductPrice
	CreateAcknowledgmentLetter CreateAcknowledgmentLetter
	SendAcknowledgment         SendAcknowledgment
}
