// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/reminday/birthday"
)

type upcomingFlags struct {
	LoggingFlags
	TodayFlag
	Within int `subcmd:"within,0,'number of days to look ahead, overrides the value in the birthdays file'"`
}

type checkFlags struct {
	LoggingFlags
}

func upcoming(ctx context.Context, values any, args []string) error {
	fv := values.(*upcomingFlags)
	ctx, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	return listUpcoming(ctx, os.Stdout, args[0], fv.TodayFlag, fv.Within)
}

func listUpcoming(ctx context.Context, out io.Writer, filename string, today TodayFlag, within int) error {
	cfg, err := birthday.LoadConfig(ctx, filename)
	if err != nil {
		return err
	}
	loc, err := cfg.TimeLocation()
	if err != nil {
		return err
	}
	now, err := today.nowIn(loc)
	if err != nil {
		return err
	}
	birthdays, err := cfg.Validate(now)
	if err != nil {
		// Report the invalid entries but list the valid ones.
		ctxlog.Logger(ctx).Error("invalid birthdays", "file", filename, "error", err)
	}
	if within <= 0 {
		within = cfg.Within
	}
	for _, r := range birthday.Upcoming(ctx, birthdays, now, within) {
		fmt.Fprintln(out, r)
	}
	return nil
}

func check(ctx context.Context, values any, args []string) error {
	fv := values.(*checkFlags)
	ctx, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	return checkConfig(ctx, os.Stdout, args[0], time.Now())
}

func checkConfig(ctx context.Context, out io.Writer, filename string, now time.Time) error {
	cfg, err := birthday.LoadConfig(ctx, filename)
	if err != nil {
		return err
	}
	birthdays, err := cfg.Validate(now)
	if err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	fmt.Fprintf(out, "%v: %d birthdays\n", filename, len(birthdays))
	return nil
}
