// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "cloudeng.io/reminday/datetime"

// SetDate sets all three fields from cd.
func (c *Calendar) SetDate(cd datetime.CalendarDate) {
	c.Set(Year, cd.Year)
	c.Set(Month, int(cd.Month))
	c.Set(DayOfMonth, cd.Day)
}

// Complete returns true if both the month and day of month are set, the
// year is optional.
func (c *Calendar) Complete() bool {
	return c.IsSet(Month) && c.IsSet(DayOfMonth)
}

// Date returns the constrained month and day, and false if either is unset.
func (c *Calendar) Date() (datetime.Date, bool) {
	m, mok := c.Get(Month)
	d, dok := c.Get(DayOfMonth)
	if !mok || !dok {
		return datetime.Date{}, false
	}
	return datetime.Date{Month: datetime.Month(m), Day: d}, true
}

// CalendarDate returns the constrained date, and false unless all three
// fields are set.
func (c *Calendar) CalendarDate() (datetime.CalendarDate, bool) {
	y, ok := c.Get(Year)
	if !ok {
		return datetime.CalendarDate{}, false
	}
	d, ok := c.Date()
	if !ok {
		return datetime.CalendarDate{}, false
	}
	return datetime.CalendarDate{Year: y, Month: d.Month, Day: d.Day}, true
}
