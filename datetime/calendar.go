// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"time"
)

// CalendarDate represents a date with a year, month and day.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns the CalendarDate for the supplied time in
// its location.
func NewCalendarDate(when time.Time) CalendarDate {
	return CalendarDate{Year: when.Year(), Month: Month(when.Month()), Day: when.Day()}
}

// ParseCalendarDate parses a date in the format '2006-01-02'.
func ParseCalendarDate(val string) (CalendarDate, error) {
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q: %w", val, err)
	}
	return NewCalendarDate(t), nil
}

// Date returns the Date for the CalendarDate.
func (cd CalendarDate) Date() Date {
	return Date{cd.Month, cd.Day}
}

// Time returns midnight on the CalendarDate in the specified location.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, loc)
}

// Valid returns true if the day exists in the month for the year.
func (cd CalendarDate) Valid() bool {
	return cd.Month >= 1 && cd.Month <= 12 && cd.Day >= 1 && cd.Day <= DaysInMonth(cd.Year, cd.Month)
}

// Compare returns -1, 0 or +1 depending on whether cd is before, the same
// as or after o.
func (cd CalendarDate) Compare(o CalendarDate) int {
	switch {
	case cd.Year < o.Year:
		return -1
	case cd.Year > o.Year:
		return 1
	}
	return cd.Date().Compare(o.Date())
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}
