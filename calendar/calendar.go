// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides a date model for date entry where the year,
// month and day of month are recorded independently of each other.
//
// Values are stored exactly as written and are only constrained when read.
// A day of 31 remains recorded as 31 whilst the month is changed from
// January to February and back again. Reads clamp each field into the range
// that is valid given the current values of the other fields and never
// roll over into an adjacent field.
//
// A Calendar is intended to be owned by a single goroutine and is not
// safe for concurrent use.
package calendar

import (
	"time"

	"cloudeng.io/reminday/datetime"
)

// Field identifies one of the fields of a Calendar.
type Field int

const (
	Year Field = iota
	Month
	DayOfMonth
)

func (f Field) String() string {
	switch f {
	case Year:
		return "year"
	case Month:
		return "month"
	case DayOfMonth:
		return "day-of-month"
	}
	return "unknown"
}

func (f Field) valid() bool {
	return f >= Year && f <= DayOfMonth
}

// Fields returns all of the supported fields in year, month, day order.
func Fields() []Field {
	return []Field{Year, Month, DayOfMonth}
}

const (
	// MinimumYear is the earliest supported year, it is the first complete
	// year of the Gregorian calendar.
	MinimumYear = 1583

	// DefaultMonth is the month assumed when computing the length of a
	// month whilst the month is unset.
	DefaultMonth datetime.Month = 1

	// AssumeLeapWhenYearUnset determines whether February has 29 days
	// whilst the year is unset.
	AssumeLeapWhenYearUnset = true
)

// Range represents an inclusive range of values.
type Range struct {
	Min, Max int
}

// Contains returns true if v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns v constrained to the range.
func (r Range) Clamp(v int) int {
	return clamp(v, r.Min, r.Max)
}

// Option represents an option for New.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock specifies the function used to determine the current time
// and hence the latest supported year. It is called on every query
// that depends on it.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Calendar records a year, month and day of month, any of which may be
// unset. The zero value is not usable, use New.
type Calendar struct {
	opts options
	raw  map[Field]int
}

// New returns a Calendar with all fields unset.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		raw: make(map[Field]int, 3),
	}
	c.opts.now = time.Now
	for _, fn := range opts {
		fn(&c.opts)
	}
	return c
}

// Set records v for the field exactly as given. Values outside of the
// field's valid range are accepted and constrained when read. Unknown
// fields are ignored.
func (c *Calendar) Set(f Field, v int) {
	if !f.valid() {
		return
	}
	c.raw[f] = v
}

// SetNullable is like Set except that a nil value clears the field.
func (c *Calendar) SetNullable(f Field, v *int) {
	if v == nil {
		c.Clear(f)
		return
	}
	c.Set(f, *v)
}

// Clear marks the field as unset.
func (c *Calendar) Clear(f Field) {
	delete(c.raw, f)
}

// IsSet returns true if a value has been recorded for the field,
// regardless of whether that value is in range.
func (c *Calendar) IsSet(f Field) bool {
	_, ok := c.raw[f]
	return ok
}

// Get returns the value of the field constrained to ActualValidRange, and
// false if the field is unset.
func (c *Calendar) Get(f Field) (int, bool) {
	v, ok := c.raw[f]
	if !ok {
		return 0, false
	}
	return clamp(v, c.Minimum(f), c.ActualMaximum(f)), true
}

// Minimum returns the smallest value the field may have.
func (c *Calendar) Minimum(f Field) int {
	switch f {
	case Year:
		return MinimumYear
	case Month, DayOfMonth:
		return 1
	}
	return 0
}

// Maximum returns the largest value the field may have regardless of the
// values of the other fields.
func (c *Calendar) Maximum(f Field) int {
	switch f {
	case Year:
		return c.currentYear()
	case Month:
		return 12
	case DayOfMonth:
		return 31
	}
	return 0
}

// LeastMaximum returns the smallest value that ActualMaximum may return
// for the field over all values of the other fields.
func (c *Calendar) LeastMaximum(f Field) int {
	switch f {
	case Year:
		return c.currentYear()
	case Month:
		return 12
	case DayOfMonth:
		return datetime.DaysInFeb(commonYear)
	}
	return 0
}

// ActualMaximum returns the largest value the field may have given the
// current values of the other fields. An unset month is treated as
// DefaultMonth and an unset year as a leap year, see AssumeLeapWhenYearUnset.
func (c *Calendar) ActualMaximum(f Field) int {
	if f == DayOfMonth {
		return daysInMonth(c.effectiveMonth(), c.effectiveYearIsLeap())
	}
	return c.Maximum(f)
}

// ActualValidRange returns the range [Minimum, ActualMaximum] for the field.
func (c *Calendar) ActualValidRange(f Field) Range {
	return Range{Min: c.Minimum(f), Max: c.ActualMaximum(f)}
}

// MinimumSupportedDate returns January 1st of MinimumYear.
func (c *Calendar) MinimumSupportedDate() datetime.CalendarDate {
	return datetime.CalendarDate{Year: MinimumYear, Month: 1, Day: 1}
}

// MaximumSupportedDate returns December 31st of the current year.
func (c *Calendar) MaximumSupportedDate() datetime.CalendarDate {
	return datetime.CalendarDate{Year: c.currentYear(), Month: 12, Day: 31}
}

// IsLeapYear returns true if year is a leap year in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return datetime.IsLeap(year)
}

func (c *Calendar) currentYear() int {
	return c.opts.now().Year()
}

func (c *Calendar) effectiveMonth() datetime.Month {
	if m, ok := c.Get(Month); ok {
		return datetime.Month(m)
	}
	return DefaultMonth
}

func (c *Calendar) effectiveYearIsLeap() bool {
	if y, ok := c.Get(Year); ok {
		return IsLeapYear(y)
	}
	return AssumeLeapWhenYearUnset
}

// Any leap and non-leap year will do.
const leapYear, commonYear = 2024, 2023

func daysInMonth(month datetime.Month, leap bool) int {
	if leap {
		return datetime.DaysInMonth(leapYear, month)
	}
	return datetime.DaysInMonth(commonYear, month)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
