// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetime provides support for working with Gregorian dates,
// with or without a year.
package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month as an int, January is 1.
type Month time.Month

func (m Month) index() int {
	return min(max(int(m), 1), 12) - 1
}

func (m Month) String() string {
	return time.Month(m).String()
}

// Abbrev returns the three letter abbreviation for the month, eg. "Jan".
func (m Month) Abbrev() string {
	return time.Month(m.index() + 1).String()[:3]
}

// ParseMonth parses a month given either as a number in the range 1-12 or
// as a case insensitive prefix, of at least three letters, of its name.
func ParseMonth(val string) (Month, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month out of range: %d", n)
		}
		return Month(n), nil
	}
	if len(val) >= 3 {
		for m := time.January; m <= time.December; m++ {
			if name := m.String(); len(val) <= len(name) && strings.EqualFold(name[:len(val)], val) {
				return Month(m), nil
			}
		}
	}
	return 0, fmt.Errorf("invalid month: %q", val)
}

// Date as Month and Day. Use CalendarDate to specify a year. A Date
// may refer to February 29th, which only exists in leap years, see In.
type Date struct {
	Month Month
	Day   int
}

// NewDate returns the month and day of the supplied time.
func NewDate(when time.Time) Date {
	_, month, day := when.Date()
	return Date{Month: Month(month), Day: day}
}

// String returns the date in the 'Jan-02' format accepted by Parse.
func (d Date) String() string {
	return fmt.Sprintf("%s-%02d", d.Month.Abbrev(), d.Day)
}

// Valid returns true if the Date exists in at least one year.
func (d Date) Valid() bool {
	return d.Month >= 1 && d.Month <= 12 && d.Day >= 1 && d.Day <= MaxDaysInMonth(d.Month)
}

// In returns the CalendarDate for the Date in the specified year. February 29th
// becomes February 28th in non-leap years.
func (d Date) In(year int) CalendarDate {
	return CalendarDate{Year: year, Month: d.Month, Day: min(d.Day, DaysInMonth(year, d.Month))}
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// as or after o within a year.
func (d Date) Compare(o Date) int {
	if d.Month != o.Month {
		return cmpInt(int(d.Month), int(o.Month))
	}
	return cmpInt(d.Day, o.Day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

const expectedDateFormats = "01/02 or Jan-02"

// ParseDate is like Date.Parse.
func ParseDate(val string) (Date, error) {
	var d Date
	err := d.Parse(val)
	return d, err
}

// Parse parses a date in either the '01/02' format, with a numeric month,
// or the 'Jan-02' format, with a named month. February 29th is accepted.
func (d *Date) Parse(val string) error {
	sep, named := "/", false
	if strings.Contains(val, "-") {
		sep, named = "-", true
	}
	ms, ds, ok := strings.Cut(val, sep)
	if !ok {
		return fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
	}
	if _, err := strconv.Atoi(ms); (err == nil) == named {
		return fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
	}
	month, err := ParseMonth(ms)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", val, err)
	}
	day, err := strconv.Atoi(ds)
	if err != nil {
		return fmt.Errorf("invalid date %q: invalid day: %q", val, ds)
	}
	date := Date{Month: month, Day: day}
	if !date.Valid() {
		return fmt.Errorf("invalid date %q: no day %d in %v", val, day, month)
	}
	*d = date
	return nil
}
