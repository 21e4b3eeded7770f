// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "time"

// ParseDate parses a date string in either RFC 3339 or plain "2006-01-02"
// form (interpreted as midnight UTC). It returns (nil, true) for an empty
// string and (nil, false) when the value matches neither format.
//
// Example:
//
//	t, ok := utils.ParseDate("2025-03-01")          // ok, 2025-03-01T00:00:00Z
//	t, ok = utils.ParseDate("2025-03-01T10:30:00Z") // ok
//	t, ok = utils.ParseDate("yesterday")            // nil, false
func ParseDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		t = t.UTC()
		return &t, true
	}
	return nil, false
}
