package pipeline

// acknowledgeOrder renders the acknowledgment letter and tries to send it. It
// returns nil when the letter was not sent.
func acknowledgeOrder(
	createLetter CreateAcknowledgmentLetter,
	send SendAcknowledgment,
	order PricedOrder,
) *AcknowledgmentSent {
	ack := OrderAcknowledgment{
		OrderID:      order.orderID,
		EmailAddress: order.customerInfo.Email(),
		Letter:       createLetter(order),
	}
	if send(ack) != Sent {
		return nil
	}
	return &AcknowledgmentSent{
		OrderID:      order.orderID,
		EmailAddress: ack.EmailAddress,
	}
}
