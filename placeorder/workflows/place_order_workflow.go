package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"order-taking/placeorder/activities"
	"order-taking/placeorder/domain"
	"order-taking/placeorder/letter"
	"order-taking/placeorder/pipeline"
	"order-taking/placeorder/types"
)

// QueryStatus is the query handler name for the workflow status.
const QueryStatus = "get-status"

// PlaceOrderWorkflow validates, prices and acknowledges an order and publishes
// the resulting events. The order-taking pipeline runs inside the workflow;
// its collaborators are backed by activities:
// - CheckProductCodeExists / GetPriceList against the catalog
// - CheckAddressExists against the address service
// - SendAcknowledgment through the mail queue
// A rejected order fails the workflow with a non-retryable application error
// whose type is ValidationError, PricingError or RemoteServiceError and whose
// details hold a types.PlaceOrderErrorDTO.
func PlaceOrderWorkflow(ctx workflow.Context, order pipeline.UnvalidatedOrder) (types.PlaceOrderResult, error) {
	logger := workflow.GetLogger(ctx)

	status := types.OrderWorkflowStatus{
		OrderID: order.OrderID,
		Stage:   types.StagePricing,
	}

	retryPolicy := &temporal.RetryPolicy{
		InitialInterval:        1 * time.Second,
		BackoffCoefficient:     2.0,
		MaximumInterval:        30 * time.Second,
		MaximumAttempts:        5,
		NonRetryableErrorTypes: []string{types.ErrTypePermanent},
	}

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy:         retryPolicy,
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	err := workflow.SetQueryHandler(ctx, QueryStatus, func() (types.OrderWorkflowStatus, error) {
		return status, nil
	})
	if err != nil {
		return types.PlaceOrderResult{}, err
	}

	// Step 1: Snapshot the price list
	var prices map[string]int64
	if err := workflow.ExecuteActivity(ctx, "GetPriceList").Get(ctx, &prices); err != nil {
		status.Stage = types.StageFailed
		status.LastError = fmt.Sprintf("price list failed: %v", err)
		return types.PlaceOrderResult{}, fmt.Errorf("load price list: %w", err)
	}

	// Step 2: Validate, price and acknowledge
	status.Stage = types.StagePlacing
	events, err := pipeline.New(collaborators(ctx, prices)).PlaceOrder(order)
	if err != nil {
		status.Stage = types.StageFailed
		status.LastError = err.Error()
		logger.Warn("Order rejected", "orderID", order.OrderID, "error", err)
		return types.PlaceOrderResult{}, toApplicationError(err)
	}

	dtos := types.FromEvents(events)
	for _, e := range dtos {
		status.Events = append(status.Events, e.Type)
	}

	// Step 3: Publish events
	status.Stage = types.StagePublishing
	if err := workflow.ExecuteActivity(ctx, "PublishEvents", dtos).Get(ctx, nil); err != nil {
		status.Stage = types.StageFailed
		status.LastError = fmt.Sprintf("publish failed: %v", err)
		logger.Error("Publishing events failed", "orderID", order.OrderID, "error", err)
		return types.PlaceOrderResult{}, err
	}

	status.Stage = types.StageCompleted
	logger.Info("Order placed", "orderID", order.OrderID, "events", len(dtos))

	return types.PlaceOrderResult{OrderID: order.OrderID, Events: dtos}, nil
}

// collaborators adapts activities to the pipeline's collaborator functions.
func collaborators(ctx workflow.Context, prices map[string]int64) pipeline.Dependencies {
	logger := workflow.GetLogger(ctx)

	return pipeline.Dependencies{
		CheckProductCodeExists: func(code domain.ProductCode) bool {
			var exists bool
			err := workflow.ExecuteActivity(ctx, "CheckProductCodeExists", code.Value()).Get(ctx, &exists)
			if err != nil {
				logger.Warn("Product check failed, treating code as unknown", "code", code.Value(), "error", err)
				return false
			}
			return exists
		},

		CheckAddressExists: func(addr pipeline.UnvalidatedAddress) (pipeline.CheckedAddress, error) {
			var checked pipeline.CheckedAddress
			err := workflow.ExecuteActivity(ctx, "CheckAddressExists", addr).Get(ctx, &checked)
			if err != nil {
				return pipeline.CheckedAddress{}, &pipeline.RemoteServiceError{
					Service: pipeline.ServiceInfo{Name: pipeline.AddressServiceName, Endpoint: "activity:CheckAddressExists"},
					Err:     err,
				}
			}
			return checked, nil
		},

		GetProductPrice: func(code domain.ProductCode) domain.Price {
			minor, ok := prices[code.Value()]
			if !ok {
				logger.Warn("No price for product, charging zero", "code", code.Value())
			}
			price, err := domain.NewPrice("Price", minor)
			if err != nil {
				logger.Warn("Invalid catalog price, charging zero", "code", code.Value(), "error", err)
				price, _ = domain.NewPrice("Price", 0)
			}
			return price
		},

		CreateAcknowledgmentLetter: letter.Render,

		SendAcknowledgment: func(ack pipeline.OrderAcknowledgment) pipeline.SendResult {
			msg := activities.AcknowledgmentMessage{
				OrderID:      ack.OrderID.Value(),
				EmailAddress: ack.EmailAddress.Value(),
				Letter:       string(ack.Letter),
			}
			err := workflow.ExecuteActivity(ctx, "SendAcknowledgment", msg).Get(ctx, nil)
			if err != nil {
				// Non-critical failure - log but continue
				logger.Warn("Acknowledgment not sent", "email", msg.EmailAddress, "error", err)
				return pipeline.NotSent
			}
			return pipeline.Sent
		},
	}
}

// toApplicationError maps a pipeline.PlaceOrderError onto a non-retryable
// application error carrying the error DTO.
func toApplicationError(err error) error {
	dto, ok := types.FromError(err)
	if !ok {
		return err
	}
	return temporal.NewNonRetryableApplicationError(dto.Message, dto.Code, nil, dto)
}
