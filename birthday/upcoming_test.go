// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package birthday_test

import (
	"context"
	"testing"

	"cloudeng.io/reminday/birthday"
)

func TestUpcoming(t *testing.T) {
	ctx := context.Background()
	birthdays := []birthday.Birthday{
		newBirthday("Zed", 6, 3, 0),
		newBirthday("Ann", 6, 3, 1990),
		newBirthday("Tom", 6, 1, 2000),
		newBirthday("Eve", 5, 31, 0),
		newBirthday("Max", 7, 15, 1980),
		newBirthday("Bea", 6, 10, 2010),
	}
	now := at(2025, 6, 1)
	reminders := birthday.Upcoming(ctx, birthdays, now, 10)

	var names []string
	for _, r := range reminders {
		names = append(names, r.Name)
	}
	want := []string{"Tom", "Ann", "Zed", "Bea"}
	if got := names; len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got, want := names[i], want[i]; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	for i, tc := range []struct {
		days  int
		age   int
		known bool
		str   string
	}{
		{0, 25, true, "2025-06-01 Tom turns 25 today"},
		{2, 35, true, "2025-06-03 Ann turns 35 in 2 days"},
		{2, 0, false, "2025-06-03 Zed in 2 days"},
		{9, 15, true, "2025-06-10 Bea turns 15 in 9 days"},
	} {
		r := reminders[i]
		if got, want := r.DaysUntil, tc.days; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := r.Age, tc.age; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := r.AgeKnown, tc.known; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := r.String(), tc.str; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	if got := birthday.Upcoming(ctx, nil, now, 10); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
	if got, want := len(birthday.Upcoming(ctx, birthdays, now, 365)), len(birthdays); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	r := birthday.NewReminder(newBirthday("Eve", 6, 2, 0), now)
	if got, want := r.String(), "2025-06-02 Eve tomorrow"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
