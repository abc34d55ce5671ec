// ABOUTME: Calendar date helpers for workout days.
// ABOUTME: Dates are plain YYYY-MM-DD strings with no time or zone.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar date format.
const DateLayout = "2006-01-02"

// ParseDate validates s as a calendar date and returns it in canonical form.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t.Format(DateLayout), nil
}

// IsValidDate reports whether s is a canonical YYYY-MM-DD date.
func IsValidDate(s string) bool {
	canonical, err := ParseDate(s)
	return err == nil && canonical == s
}

// FormatDate renders t's calendar day in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current calendar date in the local zone.
func Today() string {
	return FormatDate(time.Now())
}
