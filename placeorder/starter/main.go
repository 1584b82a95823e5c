package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"order-taking/placeorder/pipeline"
	"order-taking/placeorder/types"
	"order-taking/placeorder/workflows"
)

func main() {
	// Create Temporal client
	c, err := client.Dial(client.Options{
		HostPort: getEnv("TEMPORAL_HOST", "localhost:7233"),
	})
	if err != nil {
		log.Fatalln("Unable to create Temporal client", err)
	}
	defer c.Close()

	// Get task queue name
	taskQueue := getEnv("ORDER_TASK_QUEUE", "order-task-queue")

	order, err := loadOrder(getEnv("ORDER_FILE", ""))
	if err != nil {
		log.Fatalln("Unable to load order", err)
	}

	workflowID := fmt.Sprintf("place-order-%s", order.OrderID)
	workflowOptions := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	log.Printf("Starting PlaceOrderWorkflow: %s\n", workflowID)

	we, err := c.ExecuteWorkflow(context.Background(), workflowOptions, workflows.PlaceOrderWorkflow, order)
	if err != nil {
		log.Fatalln("Unable to start workflow", err)
	}

	log.Printf("Started workflow - WorkflowID: %s, RunID: %s\n", we.GetID(), we.GetRunID())

	if getEnv("ASYNC", "false") == "true" {
		log.Printf("Query status with: tctl workflow query -w %s -qt %s\n", workflowID, workflows.QueryStatus)
		return
	}

	var result types.PlaceOrderResult
	err = we.Get(context.Background(), &result)
	if err != nil {
		reportFailure(err)
		os.Exit(1)
	}

	log.Printf("Order %s placed\n", result.OrderID)
	for _, e := range result.Events {
		data, err := json.Marshal(e)
		if err != nil {
			log.Printf("  %s event could not be encoded: %v\n", e.Type, err)
			continue
		}
		log.Printf("  %s\n", data)
	}
}

// reportFailure prints the rejection details of a failed order.
func reportFailure(err error) {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) || !appErr.HasDetails() {
		log.Printf("Workflow execution failed: %v\n", err)
		return
	}

	var dto types.PlaceOrderErrorDTO
	if derr := appErr.Details(&dto); derr != nil {
		log.Printf("Workflow execution failed: %v\n", err)
		return
	}

	log.Printf("Order rejected (%s): %s\n", dto.Code, dto.Message)
	for _, ve := range dto.Errors {
		log.Printf("  %s: %s\n", ve.FieldName, ve.ErrorDescription)
	}
	if dto.Service != nil {
		log.Printf("  service: %s\n", dto.Service.Name)
	}
}

// loadOrder reads an order from a JSON file, or builds a sample order.
func loadOrder(path string) (pipeline.UnvalidatedOrder, error) {
	if path == "" {
		return sampleOrder(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.UnvalidatedOrder{}, err
	}
	var order pipeline.UnvalidatedOrder
	if err := json.Unmarshal(data, &order); err != nil {
		return pipeline.UnvalidatedOrder{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return order, nil
}

func sampleOrder() pipeline.UnvalidatedOrder {
	address := pipeline.UnvalidatedAddress{
		AddressLine1: "123 Widget Way",
		City:         "Springfield",
		ZipCode:      "12345",
	}
	return pipeline.UnvalidatedOrder{
		OrderID: getEnv("ORDER_ID", fmt.Sprintf("ORDER-%d", time.Now().Unix())),
		CustomerInfo: pipeline.UnvalidatedCustomerInfo{
			FirstName:    "Alice",
			LastName:     "Johnson",
			EmailAddress: "alice@example.com",
		},
		ShippingAddress: address,
		BillingAddress:  address,
		Lines: []pipeline.UnvalidatedOrderLine{
			{OrderLineID: "1", ProductCode: "W1234", Quantity: decimal.NewFromInt(2)},
			{OrderLineID: "2", ProductCode: "G123", Quantity: decimal.RequireFromString("1.5")},
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
