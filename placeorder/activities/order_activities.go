package activities

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.temporal.io/sdk/activity"

	"order-taking/placeorder/catalog"
	"order-taking/placeorder/pipeline"
	"order-taking/placeorder/types"
)

// ProductActivities contains product catalog activities
type ProductActivities struct {
	Catalog *catalog.Catalog
	Metrics *Metrics
}

// CheckProductCodeExists reports whether code is in the catalog
func (a *ProductActivities) CheckProductCodeExists(ctx context.Context, code string) (bool, error) {
	logger := activity.GetLogger(ctx)

	_, ok := a.Catalog.Lookup(code)
	if ok {
		a.Metrics.productCheck("found")
	} else {
		a.Metrics.productCheck("unknown")
	}

	logger.Info("Product code checked", "code", code, "exists", ok)
	return ok, nil
}

// GetPriceList returns the price of every product, in minor units
func (a *ProductActivities) GetPriceList(ctx context.Context) (map[string]int64, error) {
	logger := activity.GetLogger(ctx)

	prices := a.Catalog.PriceList()

	logger.Info("Price list loaded", "products", len(prices))
	return prices, nil
}

// AddressActivities contains address-related activities
type AddressActivities struct {
	Catalog *catalog.Catalog
	Metrics *Metrics
}

// CheckAddressExists normalizes an address and checks that it can be shipped to
func (a *AddressActivities) CheckAddressExists(ctx context.Context, addr pipeline.UnvalidatedAddress) (pipeline.CheckedAddress, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Checking address", "city", addr.City, "zip", addr.ZipCode)

	checked := pipeline.CheckedAddress{
		AddressLine1: strings.TrimSpace(addr.AddressLine1),
		AddressLine2: strings.TrimSpace(addr.AddressLine2),
		AddressLine3: strings.TrimSpace(addr.AddressLine3),
		AddressLine4: strings.TrimSpace(addr.AddressLine4),
		City:         strings.TrimSpace(addr.City),
		ZipCode:      strings.ReplaceAll(strings.TrimSpace(addr.ZipCode), "-", ""),
	}

	if !a.Catalog.Serviceable(checked.ZipCode) {
		a.Metrics.addressCheck("unserviceable")
		logger.Warn("Address not serviceable", "zip", checked.ZipCode)
		return pipeline.CheckedAddress{}, &types.PermanentError{Msg: fmt.Sprintf("address not serviceable: zip %s", checked.ZipCode)}
	}

	a.Metrics.addressCheck("ok")
	return checked, nil
}

// AcknowledgmentMessage is the message queued for the mail service
type AcknowledgmentMessage struct {
	OrderID      string `json:"order_id"`
	EmailAddress string `json:"email_address"`
	Letter       string `json:"letter"`
}

// NotificationActivities contains notification-related activities
type NotificationActivities struct {
	// Writer queues acknowledgments for the mail service. When nil the
	// letter is only logged.
	Writer  MessageWriter
	Metrics *Metrics
}

// SendAcknowledgment hands an order acknowledgment to the mail service
func (a *NotificationActivities) SendAcknowledgment(ctx context.Context, msg AcknowledgmentMessage) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Sending order acknowledgment", "orderID", msg.OrderID, "email", msg.EmailAddress)

	if a.Writer == nil {
		a.Metrics.acknowledgment("logged")
		logger.Info("Mail queue disabled, acknowledgment logged only", "orderID", msg.OrderID, "letter", msg.Letter)
		return nil
	}

	if err := writeJSON(ctx, a.Writer, msg.OrderID, msg); err != nil {
		a.Metrics.acknowledgment("failed")
		logger.Warn("Failed to queue acknowledgment", "orderID", msg.OrderID, "error", err)
		return fmt.Errorf("queue acknowledgment: %w", err)
	}

	a.Metrics.acknowledgment("sent")
	logger.Info("Order acknowledgment queued", "orderID", msg.OrderID)
	return nil
}

// EventEnvelope wraps a published event with its identity
type EventEnvelope struct {
	EventID   string                   `json:"event_id"`
	OrderID   string                   `json:"order_id"`
	Type      string                   `json:"type"`
	CreatedAt time.Time                `json:"created_at"`
	Payload   types.PlaceOrderEventDTO `json:"payload"`
}

// EventActivities contains event publishing activities
type EventActivities struct {
	// Writer publishes to the order events topic. When nil events are
	// only logged.
	Writer  MessageWriter
	Metrics *Metrics
}

// PublishEvents publishes the events of a placed order, in order, keyed by order id
func (a *EventActivities) PublishEvents(ctx context.Context, events []types.PlaceOrderEventDTO) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Publishing events", "count", len(events))

	if a.Writer == nil {
		for _, e := range events {
			logger.Info("Event publishing disabled, event logged only", "orderID", e.OrderID(), "type", e.Type)
		}
		return nil
	}

	now := time.Now().UTC()
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		data, err := json.Marshal(EventEnvelope{
			EventID:   uuid.NewString(),
			OrderID:   e.OrderID(),
			Type:      e.Type,
			CreatedAt: now,
			Payload:   e,
		})
		if err != nil {
			return &types.PermanentError{Msg: fmt.Sprintf("encode %s event: %v", e.Type, err)}
		}
		msgs = append(msgs, kafka.Message{Key: []byte(e.OrderID()), Value: data, Time: now})
	}

	if err := a.Writer.WriteMessages(ctx, msgs...); err != nil {
		logger.Error("Failed to publish events", "error", err)
		return fmt.Errorf("publish events: %w", err)
	}

	for _, e := range events {
		a.Metrics.eventPublished(e.Type)
	}
	logger.Info("Events published", "count", len(events))
	return nil
}
