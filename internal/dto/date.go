package dto

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// ParseDate parses a required yyyy-mm-dd date field.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// ParseOptionalDate parses an optional date field. Nil or empty yields nil.
func ParseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
