// Package pipeline implements the place-order workflow: validation, pricing,
// acknowledgment and event creation. It performs no I/O of its own; all
// external calls go through Dependencies.
package pipeline

// Workflow places orders using a fixed set of collaborators. It holds no
// mutable state and is safe for concurrent use if the collaborators are.
type Workflow struct {
	deps Dependencies
}

// New returns a Workflow that calls out to deps.
func New(deps Dependencies) *Workflow {
	return &Workflow{deps: deps}
}

// PlaceOrder validates, prices and acknowledges order and returns the
// resulting events. Stages run in order and the first failing stage ends the
// run; the returned error is then a PlaceOrderError. A failed acknowledgment
// is not an error, it only removes the AcknowledgmentSent event.
func (w *Workflow) PlaceOrder(order UnvalidatedOrder) ([]Event, error) {
	validated, err := validateOrder(w.deps.CheckProductCodeExists, w.deps.CheckAddressExists, order)
	if err != nil {
		return nil, err
	}
	priced, err := priceOrder(w.deps.GetProductPrice, validated)
	if err != nil {
		return nil, err
	}
	ack := acknowledgeOrder(w.deps.CreateAcknowledgmentLetter, w.deps.SendAcknowledgment, priced)
	return createEvents(priced, ack), nil
}
