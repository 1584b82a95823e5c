package types

import (
	"errors"

	"order-taking/placeorder/pipeline"
)

// Application error types reported by PlaceOrderWorkflow. They are listed as
// non-retryable in the workflow retry policy.
const (
	ErrTypeValidation    = "ValidationError"
	ErrTypePricing       = "PricingError"
	ErrTypeRemoteService = "RemoteServiceError"
	ErrTypePermanent     = "PermanentError"
)

// PermanentError represents an activity error that should not be retried
type PermanentError struct {
	Msg string
}

func (e *PermanentError) Error() string {
	return e.Msg
}

// PlaceOrderErrorDTO is the wire form of a pipeline.PlaceOrderError.
type PlaceOrderErrorDTO struct {
	Code    string                     `json:"code"`
	Message string                     `json:"message"`
	Errors  []pipeline.ValidationError `json:"errors,omitempty"`
	Service *pipeline.ServiceInfo      `json:"service,omitempty"`
}

// FromError converts err to its DTO. ok is false when err is not a
// pipeline.PlaceOrderError.
func FromError(err error) (dto PlaceOrderErrorDTO, ok bool) {
	var poe pipeline.PlaceOrderError
	if !errors.As(err, &poe) {
		return PlaceOrderErrorDTO{}, false
	}
	switch e := poe.(type) {
	case *pipeline.ValidationFailure:
		return PlaceOrderErrorDTO{Code: ErrTypeValidation, Message: e.Error(), Errors: e.Errors}, true
	case *pipeline.PricingError:
		return PlaceOrderErrorDTO{Code: ErrTypePricing, Message: e.Msg}, true
	case *pipeline.RemoteServiceError:
		service := e.Service
		return PlaceOrderErrorDTO{Code: ErrTypeRemoteService, Message: e.Error(), Service: &service}, true
	}
	return PlaceOrderErrorDTO{}, false
}
