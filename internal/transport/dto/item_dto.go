package dto

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a price field as it arrives on the wire. Clients send JSON numbers
// or numeric strings; null coerces to 0 and anything else (absent, booleans,
// objects) coerces to NaN so the validation layer can report the field as
// missing instead of the request failing to parse.
type Number struct {
	value float64
	valid bool
}

// UnmarshalJSON never returns an error; unusable values leave the Number invalid.
func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.value, n.valid = f, true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			n.value, n.valid = f, true
		}
	}
	return nil
}

// Float64 returns the coerced value, or NaN when no usable number was sent.
func (n Number) Float64() float64 {
	if !n.valid {
		return math.NaN()
	}
	return n.value
}

// CreateItemRequest defines the structure for creating a new item.
type CreateItemRequest struct {
	Name  string `json:"name"`
	Price Number `json:"price"`
}

// UpdateItemRequest defines the structure for updating an existing item.
// Both fields must be present for the update to pass validation.
type UpdateItemRequest struct {
	Name  *string `json:"name"`
	Price Number  `json:"price"`
}
