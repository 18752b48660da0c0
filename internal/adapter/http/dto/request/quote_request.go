package request

import (
	"errors"
	"fmt"
	"strings"

	"construction_quote/internal/domain/quotation"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrOutOfRange   = errors.New("field out of range")
)

// FieldError names the form field that blocked the quotation.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return e.Field + " is required" }

func (e *FieldError) Unwrap() error { return ErrMissingField }

// RangeError names a field whose value exceeds what the calculator accepts.
type RangeError struct {
	Field string
	Max   int
}

func (e *RangeError) Error() string { return fmt.Sprintf("%s must not exceed %d", e.Field, e.Max) }

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// QuoteRequest is the public calculator form.
//
// Area is a pointer so an absent value and zero are both reported as "area".
type QuoteRequest struct {
	BuildingType string   `json:"building_type"`
	Area         *int     `json:"area"`
	Region       string   `json:"region"`
	Options      []string `json:"options"`
}

// Validate reports the first missing field in form order.
func (r QuoteRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.BuildingType) == "":
		return &FieldError{Field: "building_type"}
	case r.Area == nil || *r.Area <= 0:
		return &FieldError{Field: "area"}
	case *r.Area > quotation.MaxArea:
		return &RangeError{Field: "area", Max: quotation.MaxArea}
	case strings.TrimSpace(r.Region) == "":
		return &FieldError{Field: "region"}
	}
	return nil
}

func (r QuoteRequest) AreaValue() int {
	if r.Area == nil {
		return 0
	}
	return *r.Area
}
