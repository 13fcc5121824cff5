// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used for persistence and user input.
const DateLayout = time.DateOnly

// legacyDateLayout matches dates written with a zeroed time component,
// e.g. "2024-03-01T00:00:00".
const legacyDateLayout = "2006-01-02T15:04:05"

// Date is a calendar date without a time-of-day or time zone.
// The embedded time is always midnight UTC, so two dates for the same day
// compare equal with ==.
type Date struct {
	time.Time
}

// NewDate builds a Date from its year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

// Today returns the current local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a "YYYY-MM-DD" string. Timestamps with a time component
// are accepted as well and truncated to their date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(legacyDateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}

	return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string (or a timestamp with a zero
// time component) into d.
func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
