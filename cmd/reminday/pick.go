// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/reminday/calendar"
	"cloudeng.io/reminday/datetime"
)

type TodayFlag struct {
	On string `subcmd:"on,,'use this date, in YYYY-MM-DD format, as today rather than the current date'"`
}

// nowIn returns the current time in loc, or midnight in loc on the date
// specified by --on.
func (tf TodayFlag) nowIn(loc *time.Location) (time.Time, error) {
	if len(tf.On) == 0 {
		return time.Now().In(loc), nil
	}
	cd, err := datetime.ParseCalendarDate(tf.On)
	if err != nil {
		return time.Time{}, err
	}
	return cd.Time(loc), nil
}

type pickFlags struct {
	LoggingFlags
	TodayFlag
	Year  string `subcmd:"year,,'year, leave empty for an unset year'"`
	Month string `subcmd:"month,,'month 1-12, leave empty for an unset month'"`
	Day   string `subcmd:"day,,'day of month, leave empty for an unset day'"`
}

func pick(ctx context.Context, values any, _ []string) error {
	fv := values.(*pickFlags)
	ctx, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	now, err := fv.nowIn(time.Local)
	if err != nil {
		return err
	}
	cal := calendar.New(calendar.WithClock(func() time.Time { return now }))
	if err := applyPickFlags(ctx, cal, fv); err != nil {
		return err
	}
	printPicked(os.Stdout, cal)
	return nil
}

func applyPickFlags(ctx context.Context, cal *calendar.Calendar, fv *pickFlags) error {
	for _, fl := range []struct {
		field calendar.Field
		val   string
	}{
		{calendar.Year, fv.Year},
		{calendar.Month, fv.Month},
		{calendar.DayOfMonth, fv.Day},
	} {
		v, err := optionalInt(fl.val)
		if err != nil {
			return fmt.Errorf("invalid %v: %w", fl.field, err)
		}
		ctxlog.Logger(ctx).Debug("pick", "field", fl.field.String(), "value", fl.val)
		cal.SetNullable(fl.field, v)
	}
	return nil
}

func optionalInt(val string) (*int, error) {
	if len(val) == 0 {
		return nil, nil
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func printPicked(out io.Writer, cal *calendar.Calendar) {
	for _, f := range calendar.Fields() {
		r := cal.ActualValidRange(f)
		v, ok := cal.Get(f)
		if !ok {
			fmt.Fprintf(out, "%-13s unset (%v..%v)\n", f.String()+":", r.Min, r.Max)
			continue
		}
		fmt.Fprintf(out, "%-13s %v (%v..%v)\n", f.String()+":", v, r.Min, r.Max)
	}
	if cd, ok := cal.CalendarDate(); ok {
		fmt.Fprintf(out, "date:         %v\n", cd)
	} else if d, ok := cal.Date(); ok {
		fmt.Fprintf(out, "date:         %v\n", d)
	}
	fmt.Fprintf(out, "supported:    %v..%v\n", cal.MinimumSupportedDate(), cal.MaximumSupportedDate())
}
