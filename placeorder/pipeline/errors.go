package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"order-taking/placeorder/domain"
)

// PlaceOrderError is the error returned by PlaceOrder. It is always one of
// *ValidationFailure, *PricingError or *RemoteServiceError.
type PlaceOrderError interface {
	error
	placeOrderError()
}

// ValidationError describes one field that failed validation.
type ValidationError struct {
	FieldName        string `json:"field_name"`
	ErrorDescription string `json:"error_description"`
}

func (e ValidationError) String() string {
	return fmt.Sprintf("%s: %s", e.FieldName, e.ErrorDescription)
}

// ValidationFailure holds every validation error found in an order. Errors is
// never empty.
type ValidationFailure struct {
	Errors []ValidationError
}

func (e *ValidationFailure) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		msgs[i] = ve.String()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (*ValidationFailure) placeOrderError() {}

// PricingError is returned when a priced order cannot be built.
type PricingError struct {
	Msg string
}

func (e *PricingError) Error() string {
	return "pricing failed: " + e.Msg
}

func (*PricingError) placeOrderError() {}

// ServiceInfo names an external service.
type ServiceInfo struct {
	Name     string `json:"name"`
	Endpoint string `json:"endpoint,omitempty"`
}

// RemoteServiceError is returned when a collaborator backed by a remote
// service fails.
type RemoteServiceError struct {
	Service ServiceInfo
	Err     error
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service %s failed: %v", e.Service.Name, e.Err)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

func (*RemoteServiceError) placeOrderError() {}

// toValidationError converts a constructor failure into a ValidationError.
// Errors that did not come from a domain constructor keep their message under
// the given field.
func toValidationError(field string, err error) ValidationError {
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		return ValidationError{FieldName: fe.Field, ErrorDescription: fe.Description}
	}
	return ValidationError{FieldName: field, ErrorDescription: err.Error()}
}

func validationFailure(field string, err error) *ValidationFailure {
	return &ValidationFailure{Errors: []ValidationError{toValidationError(field, err)}}
}
