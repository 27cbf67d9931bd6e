// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package birthday provides support for recording birthdays, with or
// without a year of birth, and for determining when they next occur.
package birthday

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/reminday/calendar"
	"cloudeng.io/reminday/datetime"
)

// ErrIncomplete is returned when a date does not specify both a month
// and a day.
var ErrIncomplete = errors.New("incomplete date: month and day are required")

// Birthday represents a person's birthday. Year is zero when the year
// of birth is not known.
type Birthday struct {
	Name string
	Date datetime.Date
	Year int
}

func (b Birthday) String() string {
	if b.Year == 0 {
		return fmt.Sprintf("%s: %s", b.Name, b.Date)
	}
	return fmt.Sprintf("%s: %s %04d", b.Name, b.Date, b.Year)
}

// FromCalendar returns the Birthday represented by the constrained values
// of the supplied calendar. The year is optional.
func FromCalendar(name string, c *calendar.Calendar) (Birthday, error) {
	d, ok := c.Date()
	if !ok {
		return Birthday{}, fmt.Errorf("%v: %w", name, ErrIncomplete)
	}
	b := Birthday{Name: name, Date: d}
	if y, ok := c.Get(calendar.Year); ok {
		b.Year = y
	}
	return b, nil
}

// Calendar returns a new Calendar initialized with the birthday's date
// for use when editing it.
func (b Birthday) Calendar(opts ...calendar.Option) *calendar.Calendar {
	c := calendar.New(opts...)
	if b.Year != 0 {
		c.Set(calendar.Year, b.Year)
	}
	c.Set(calendar.Month, int(b.Date.Month))
	c.Set(calendar.DayOfMonth, b.Date.Day)
	return c
}

// Next returns the date of the next occurrence of the birthday on or after
// the day of now, in now's location. Birthdays on February 29th occur
// on February 28th in non-leap years.
func (b Birthday) Next(now time.Time) datetime.CalendarDate {
	today := datetime.NewCalendarDate(now)
	next := b.Date.In(today.Year)
	if next.Compare(today) < 0 {
		next = b.Date.In(today.Year + 1)
	}
	return next
}

// IsToday returns true if the birthday occurs on the day of now.
func (b Birthday) IsToday(now time.Time) bool {
	return b.DaysUntil(now) == 0
}

// DaysUntil returns the number of days until the next occurrence of the
// birthday, zero if it is today.
func (b Birthday) DaysUntil(now time.Time) int {
	return daysBetween(datetime.NewCalendarDate(now), b.Next(now))
}

// Age returns the age in years that will have been attained on the
// specified date, and false if the year of birth is unknown or is after on.
func (b Birthday) Age(on datetime.CalendarDate) (int, bool) {
	if b.Year == 0 || on.Year < b.Year {
		return 0, false
	}
	age := on.Year - b.Year
	if on.Date().Compare(b.Date.In(on.Year).Date()) < 0 {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}

func daysBetween(from, to datetime.CalendarDate) int {
	return int(to.Time(time.UTC).Sub(from.Time(time.UTC)).Hours() / 24)
}
