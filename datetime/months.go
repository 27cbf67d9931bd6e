// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

// monthLengths holds the number of days in each month of a common year.
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month for the given year.
// Months outside of 1-12 are treated as the nearest valid month.
func DaysInMonth(year int, month Month) int {
	if month.index() == 1 {
		return DaysInFeb(year)
	}
	return monthLengths[month.index()]
}

// MaxDaysInMonth returns the largest number of days the month can have
// in any year, ie. 29 for February.
func MaxDaysInMonth(month Month) int {
	if month.index() == 1 {
		return 29
	}
	return monthLengths[month.index()]
}

// IsLeap returns true if year is a leap year in the Gregorian calendar.
func IsLeap(year int) bool {
	if year%100 == 0 {
		return year%400 == 0
	}
	return year%4 == 0
}

// DaysInFeb returns 29 for leap years and 28 otherwise.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}
