// Package validation holds the pure business rules for item fields. Each check
// returns at most one error (first violated rule wins) and never panics on
// invalid input.
package validation

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// MaxNameLength matches the VARCHAR(255) column.
	MaxNameLength = 255
	// MaxPrice is the upper bound accepted for an item price.
	MaxPrice = 10000000
)

// FieldError describes one failed validation rule. Field is omitted from the
// JSON form when empty (the update not-found envelope carries only a message).
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidateName returns nil when name is non-blank and at most MaxNameLength
// characters long.
func ValidateName(name string) *FieldError {
	if strings.TrimSpace(name) == "" {
		return &FieldError{Field: "name", Message: `Field "name" is required`}
	}
	// Character count, not bytes: the column is VARCHAR(255)
	if utf8.RuneCountInString(name) > MaxNameLength {
		return &FieldError{Field: "name", Message: `Field "name" cannot be longer than 255 characters`}
	}
	return nil
}

// ValidatePrice returns nil when price is a real number in [0, MaxPrice].
// NaN means the field was absent or could not be coerced to a number.
func ValidatePrice(price float64) *FieldError {
	if math.IsNaN(price) {
		return &FieldError{Field: "price", Message: `Field "price" is required`}
	}
	if price < 0 {
		return &FieldError{Field: "price", Message: `Field "price" cannot be negative`}
	}
	if price > MaxPrice {
		return &FieldError{Field: "price", Message: `Field "price" cannot be greater than 10000000`}
	}
	return nil
}
