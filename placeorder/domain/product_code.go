package domain

import "strings"

// ProductCode is either a WidgetCode or a GizmoCode.
type ProductCode interface {
	Value() string
	isProductCode()
}

// WidgetCode is a product code starting with "W". Widgets are sold in units.
type WidgetCode struct {
	value string
}

func (c WidgetCode) Value() string {
	return c.value
}

func (WidgetCode) isProductCode() {}

// GizmoCode is a product code starting with "G". Gizmos are sold by weight.
type GizmoCode struct {
	value string
}

func (c GizmoCode) Value() string {
	return c.value
}

func (GizmoCode) isProductCode() {}

// NewProductCode picks the variant from the first character of code.
func NewProductCode(field, code string) (ProductCode, error) {
	switch {
	case code == "":
		return nil, fieldError(field, "must not be empty")
	case strings.HasPrefix(code, "W"):
		return WidgetCode{value: code}, nil
	case strings.HasPrefix(code, "G"):
		return GizmoCode{value: code}, nil
	}
	return nil, fieldError(field, "format not recognized %q", code)
}
