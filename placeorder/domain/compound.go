package domain

// PersonalName is a customer's first and last name.
type PersonalName struct {
	firstName String50
	lastName  String50
}

func NewPersonalName(first, last string) (PersonalName, error) {
	f, err := NewString50("FirstName", first)
	if err != nil {
		return PersonalName{}, err
	}
	l, err := NewString50("LastName", last)
	if err != nil {
		return PersonalName{}, err
	}
	return PersonalName{firstName: f, lastName: l}, nil
}

func (n PersonalName) FirstName() String50 {
	return n.firstName
}

func (n PersonalName) LastName() String50 {
	return n.lastName
}

// CustomerInfo is who placed the order.
type CustomerInfo struct {
	name  PersonalName
	email EmailAddress
}

func NewCustomerInfo(name PersonalName, email EmailAddress) CustomerInfo {
	return CustomerInfo{name: name, email: email}
}

func (c CustomerInfo) Name() PersonalName {
	return c.name
}

func (c CustomerInfo) Email() EmailAddress {
	return c.email
}

// AddressFields is the raw input to NewAddress.
type AddressFields struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
}

// Address is a validated postal address. Lines 2 to 4 are optional.
type Address struct {
	addressLine1 String50
	addressLine2 *String50
	addressLine3 *String50
	addressLine4 *String50
	city         String50
	zipCode      ZipCode
}

// NewAddress validates every field of f, stopping at the first failure.
func NewAddress(f AddressFields) (Address, error) {
	var (
		a   Address
		err error
	)
	if a.addressLine1, err = NewString50("AddressLine1", f.AddressLine1); err != nil {
		return Address{}, err
	}
	if a.addressLine2, err = NewString50Option("AddressLine2", f.AddressLine2); err != nil {
		return Address{}, err
	}
	if a.addressLine3, err = NewString50Option("AddressLine3", f.AddressLine3); err != nil {
		return Address{}, err
	}
	if a.addressLine4, err = NewString50Option("AddressLine4", f.AddressLine4); err != nil {
		return Address{}, err
	}
	if a.city, err = NewString50("City", f.City); err != nil {
		return Address{}, err
	}
	if a.zipCode, err = NewZipCode("ZipCode", f.ZipCode); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (a Address) AddressLine1() String50 {
	return a.addressLine1
}

// AddressLine2 returns the second line and whether it is present.
func (a Address) AddressLine2() (String50, bool) {
	return optional(a.addressLine2)
}

func (a Address) AddressLine3() (String50, bool) {
	return optional(a.addressLine3)
}

func (a Address) AddressLine4() (String50, bool) {
	return optional(a.addressLine4)
}

func (a Address) City() String50 {
	return a.city
}

func (a Address) ZipCode() ZipCode {
	return a.zipCode
}

func optional(s *String50) (String50, bool) {
	if s == nil {
		return String50{}, false
	}
	return *s, true
}
