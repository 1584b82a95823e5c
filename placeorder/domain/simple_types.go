package domain

import "unicode/utf8"

const maxString50 = 50

// String50 is a non-empty string of at most 50 characters.
type String50 struct {
	value string
}

// NewString50 validates s as a String50.
func NewString50(field, s string) (String50, error) {
	if err := checkString(field, s, maxString50); err != nil {
		return String50{}, err
	}
	return String50{value: s}, nil
}

// NewString50Option is for optional fields. The empty string means the field
// is absent and yields nil; anything else must satisfy NewString50.
func NewString50Option(field, s string) (*String50, error) {
	if s == "" {
		return nil, nil
	}
	v, err := NewString50(field, s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s String50) Value() string {
	return s.value
}

func (s String50) String() string {
	return s.value
}

// EmailAddress is a non-empty email address.
type EmailAddress struct {
	value string
}

func NewEmailAddress(field, s string) (EmailAddress, error) {
	if s == "" {
		return EmailAddress{}, fieldError(field, "must not be empty")
	}
	return EmailAddress{value: s}, nil
}

func (e EmailAddress) Value() string {
	return e.value
}

// ZipCode is a 5 or 9 character postal code.
type ZipCode struct {
	value string
}

func NewZipCode(field, s string) (ZipCode, error) {
	switch utf8.RuneCountInString(s) {
	case 5, 9:
		return ZipCode{value: s}, nil
	}
	return ZipCode{}, fieldError(field, "must be 5 or 9 characters, got %q", s)
}

func (z ZipCode) Value() string {
	return z.value
}

// OrderID identifies an order.
type OrderID struct {
	value string
}

func NewOrderID(field, s string) (OrderID, error) {
	if err := checkString(field, s, maxString50); err != nil {
		return OrderID{}, err
	}
	return OrderID{value: s}, nil
}

func (id OrderID) Value() string {
	return id.value
}

// OrderLineID identifies a line within an order.
type OrderLineID struct {
	value string
}

func NewOrderLineID(field, s string) (OrderLineID, error) {
	if err := checkString(field, s, maxString50); err != nil {
		return OrderLineID{}, err
	}
	return OrderLineID{value: s}, nil
}

func (id OrderLineID) Value() string {
	return id.value
}

func checkString(field, s string, maxLen int) error {
	if s == "" {
		return fieldError(field, "must not be empty")
	}
	if n := utf8.RuneCountInString(s); n > maxLen {
		return fieldError(field, "must not be more than %d chars, got %d", maxLen, n)
	}
	return nil
}
