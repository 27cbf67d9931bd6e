// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package birthday

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/reminday/datetime"
)

// Reminder represents an upcoming occurrence of a birthday.
type Reminder struct {
	Birthday
	On        datetime.CalendarDate
	DaysUntil int
	Age       int  // Age attained on On.
	AgeKnown  bool // False if the year of birth is unknown.
}

func (r Reminder) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s %s", r.On, r.Name)
	if r.AgeKnown {
		fmt.Fprintf(&out, " turns %d", r.Age)
	}
	switch r.DaysUntil {
	case 0:
		out.WriteString(" today")
	case 1:
		out.WriteString(" tomorrow")
	default:
		fmt.Fprintf(&out, " in %d days", r.DaysUntil)
	}
	return out.String()
}

// NewReminder returns the Reminder for the next occurrence of b relative
// to now.
func NewReminder(b Birthday, now time.Time) Reminder {
	next := b.Next(now)
	r := Reminder{
		Birthday:  b,
		On:        next,
		DaysUntil: daysBetween(datetime.NewCalendarDate(now), next),
	}
	r.Age, r.AgeKnown = b.Age(next)
	return r
}

// Upcoming returns reminders for all of the birthdays that occur within
// the specified number of days of now, including today. The reminders are
// ordered by date and then by name.
func Upcoming(ctx context.Context, birthdays []Birthday, now time.Time, within int) []Reminder {
	sorted := slices.Clone(birthdays)
	slices.SortStableFunc(sorted, func(a, b Birthday) int {
		return strings.Compare(a.Name, b.Name)
	})
	n := int64(len(sorted))
	h := heap.NewMinMax(heap.WithSliceCap[int64, Reminder](len(sorted) + 1))
	for i, b := range sorted {
		r := NewReminder(b, now)
		if r.DaysUntil > within {
			continue
		}
		h.Push(int64(r.DaysUntil)*n+int64(i), r)
	}
	logger := ctxlog.Logger(ctx)
	reminders := make([]Reminder, 0, h.Len())
	for h.Len() > 0 {
		_, r := h.PopMin()
		logger.Debug("upcoming birthday", "name", r.Name, "on", r.On.String(), "days", r.DaysUntil)
		reminders = append(reminders, r)
	}
	return reminders
}
