package workflows_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"order-taking/placeorder/activities"
	"order-taking/placeorder/catalog"
	"order-taking/placeorder/pipeline"
	"order-taking/placeorder/types"
	"order-taking/placeorder/workflows"
)

type PlaceOrderWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env     *testsuite.TestWorkflowEnvironment
	metrics *activities.Metrics
}

func TestPlaceOrderWorkflow(t *testing.T) {
	suite.Run(t, new(PlaceOrderWorkflowTestSuite))
}

func (s *PlaceOrderWorkflowTestSuite) SetupTest() {
	s.env = s.NewTestWorkflowEnvironment()

	s.metrics = activities.NewMetrics(prometheus.NewRegistry())

	c := catalog.Default()
	s.env.RegisterActivity(&activities.ProductActivities{Catalog: c, Metrics: s.metrics})
	s.env.RegisterActivity(&activities.AddressActivities{Catalog: c, Metrics: s.metrics})
	s.env.RegisterActivity(&activities.NotificationActivities{})
	s.env.RegisterActivity(&activities.EventActivities{})
}

func (s *PlaceOrderWorkflowTestSuite) AfterTest(_, _ string) {
	s.env.AssertExpectations(s.T())
}

func sampleOrder() pipeline.UnvalidatedOrder {
	return pipeline.UnvalidatedOrder{
		OrderID: "order-100",
		CustomerInfo: pipeline.UnvalidatedCustomerInfo{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			EmailAddress: "ada@example.com",
		},
		ShippingAddress: pipeline.UnvalidatedAddress{AddressLine1: "1 Ship Street", City: "London", ZipCode: "12345"},
		BillingAddress:  pipeline.UnvalidatedAddress{AddressLine1: "2 Bill Street", City: "London", ZipCode: "54321"},
		Lines: []pipeline.UnvalidatedOrderLine{
			{OrderLineID: "1", ProductCode: "W1234", Quantity: decimal.NewFromInt(2)},
			{OrderLineID: "2", ProductCode: "G123", Quantity: decimal.RequireFromString("3.5")},
		},
	}
}

func (s *PlaceOrderWorkflowTestSuite) workflowError() (*temporal.ApplicationError, types.PlaceOrderErrorDTO) {
	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Require().Error(err)

	var appErr *temporal.ApplicationError
	s.Require().True(errors.As(err, &appErr))
	s.True(appErr.NonRetryable())

	var dto types.PlaceOrderErrorDTO
	s.Require().NoError(appErr.Details(&dto))
	return appErr, dto
}

func (s *PlaceOrderWorkflowTestSuite) Test_Success() {
	var published []types.PlaceOrderEventDTO
	s.env.OnActivity("PublishEvents", mock.Anything, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			published = args.Get(1).([]types.PlaceOrderEventDTO)
		}).
		Once()

	s.env.ExecuteWorkflow(workflows.PlaceOrderWorkflow, sampleOrder())

	s.True(s.env.IsWorkflowCompleted())
	s.Require().NoError(s.env.GetWorkflowError())

	var result types.PlaceOrderResult
	s.Require().NoError(s.env.GetWorkflowResult(&result))
	s.Equal("order-100", result.OrderID)
	s.Require().Len(result.Events, 3)
	s.Equal("OrderPlaced", result.Events[0].Type)
	s.Equal("AcknowledgmentSent", result.Events[1].Type)
	s.Equal("BillableOrderPlaced", result.Events[2].Type)

	// 2 x 1000 for the widget, 3 x 400 for 3.5kg of gizmo
	s.Equal(int64(3200), result.Events[2].BillableOrderPlaced.AmountToBill)
	s.Len(published, 3)

	val, err := s.env.QueryWorkflow(workflows.QueryStatus)
	s.Require().NoError(err)
	var status types.OrderWorkflowStatus
	s.Require().NoError(val.Get(&status))
	s.Equal(types.StageCompleted, status.Stage)
	s.Equal([]string{"OrderPlaced", "AcknowledgmentSent", "BillableOrderPlaced"}, status.Events)
}

func (s *PlaceOrderWorkflowTestSuite) Test_AcknowledgmentFailureIsNotAnError() {
	s.env.OnActivity("SendAcknowledgment", mock.Anything, mock.Anything).
		Return(temporal.NewNonRetryableApplicationError("smtp down", "MailError", nil))

	s.env.ExecuteWorkflow(workflows.PlaceOrderWorkflow, sampleOrder())

	s.True(s.env.IsWorkflowCompleted())
	s.Require().NoError(s.env.GetWorkflowError())

	var result types.PlaceOrderResult
	s.Require().NoError(s.env.GetWorkflowResult(&result))
	s.Require().Len(result.Events, 2)
	s.Equal("OrderPlaced", result.Events[0].Type)
	s.Equal("BillableOrderPlaced", result.Events[1].Type)
}

func (s *PlaceOrderWorkflowTestSuite) Test_ValidationErrorsAccumulate() {
	order := sampleOrder()
	order.Lines = []pipeline.UnvalidatedOrderLine{
		{OrderLineID: "1", ProductCode: "W0000", Quantity: decimal.NewFromInt(1)},
		{OrderLineID: "2", ProductCode: "W1234", Quantity: decimal.Zero},
	}

	s.env.ExecuteWorkflow(workflows.PlaceOrderWorkflow, order)

	appErr, dto := s.workflowError()
	s.Equal(types.ErrTypeValidation, appErr.Type())
	s.Equal(types.ErrTypeValidation, dto.Code)
	s.Require().Len(dto.Errors, 2)
	s.Equal("Lines[0].ProductCode", dto.Errors[0].FieldName)
	s.Equal("Lines[1].Quantity", dto.Errors[1].FieldName)
}

func (s *PlaceOrderWorkflowTestSuite) Test_BillingAddressFailureShortCircuits() {
	s.env.OnActivity("CheckAddressExists", mock.Anything, mock.MatchedBy(func(a pipeline.UnvalidatedAddress) bool {
		return a.AddressLine1 == "1 Ship Street"
	})).Return(pipeline.CheckedAddress{AddressLine1: "1 Ship Street", City: "London", ZipCode: "12345"}, nil).Once()
	s.env.OnActivity("CheckAddressExists", mock.Anything, mock.MatchedBy(func(a pipeline.UnvalidatedAddress) bool {
		return a.AddressLine1 == "2 Bill Street"
	})).Return(pipeline.CheckedAddress{}, temporal.NewNonRetryableApplicationError("geo down", "GeoError", nil)).Once()

	s.env.ExecuteWorkflow(workflows.PlaceOrderWorkflow, sampleOrder())

	appErr, dto := s.workflowError()
	s.Equal(types.ErrTypeRemoteService, appErr.Type())
	s.Require().NotNil(dto.Service)
	s.Equal(pipeline.AddressServiceName, dto.Service.Name)
	s.Contains(dto.Message, "geo down")
	s.Empty(dto.Errors)

	s.Zero(testutil.ToFloat64(s.metrics.ProductChecks.WithLabelValues("found")))
	s.Zero(testutil.ToFloat64(s.metrics.ProductChecks.WithLabelValues("unknown")))
}

func (s *PlaceOrderWorkflowTestSuite) Test_UnserviceableAddress() {
	order := sampleOrder()
	order.ShippingAddress.ZipCode = "99901"

	s.env.ExecuteWorkflow(workflows.PlaceOrderWorkflow, order)

	appErr, _ := s.workflowError()
	s.Equal(types.ErrTypeRemoteService, appErr.Type())
}

func (s *PlaceOrderWorkflowTestSuite) Test_PricingError() {
	order := sampleOrder()
	order.Lines[1].Quantity = decimal.NewFromInt(-3)

	s.env.ExecuteWorkflow(workflows.PlaceOrderWorkflow, order)

	appErr, dto := s.workflowError()
	s.Equal(types.ErrTypePricing, appErr.Type())
	s.Contains(dto.Message, "line 2")

	val, err := s.env.QueryWorkflow(workflows.QueryStatus)
	s.Require().NoError(err)
	var status types.OrderWorkflowStatus
	s.Require().NoError(val.Get(&status))
	s.Equal(types.StageFailed, status.Stage)
}

func (s *PlaceOrderWorkflowTestSuite) Test_PriceListFailure() {
	s.env.OnActivity("GetPriceList", mock.Anything).
		Return(map[string]int64(nil), temporal.NewNonRetryableApplicationError("catalog offline", "CatalogError", nil))

	s.env.ExecuteWorkflow(workflows.PlaceOrderWorkflow, sampleOrder())

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	require.Error(s.T(), err)
	s.Contains(err.Error(), "catalog offline")
}
