// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/reminday/calendar"
)

func TestPick(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	cal := calendar.New(calendar.WithClock(func() time.Time { return now }))
	if err := applyPickFlags(ctx, cal, &pickFlags{Year: "2001", Month: "2", Day: "31"}); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	printPicked(&out, cal)
	if got, want := out.String(), `year:         2001 (1583..2025)
month:        2 (1..12)
day-of-month: 28 (1..28)
date:         2001-02-28
supported:    1583-01-01..2025-12-31
`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := applyPickFlags(ctx, cal, &pickFlags{Month: "2", Day: "31"}); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	printPicked(&out, cal)
	for _, want := range []string{
		"year:         unset (1583..2025)",
		"day-of-month: 29 (1..29)",
		"date:         Feb-29",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("%q does not contain %q", out.String(), want)
		}
	}

	if err := applyPickFlags(ctx, cal, &pickFlags{Month: "feb"}); err == nil {
		t.Errorf("expected an error")
	}
}

func TestTodayFlag(t *testing.T) {
	loc := time.FixedZone("west", -8*60*60)
	now, err := TodayFlag{On: "2025-03-01"}.nowIn(loc)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := now, time.Date(2025, 3, 1, 0, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := now.Day(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := (TodayFlag{On: "03/01/2025"}).nowIn(loc); err == nil {
		t.Errorf("expected an error")
	}
}

func TestUpcomingAndCheck(t *testing.T) {
	var logged bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&logged, nil)))
	filename := filepath.Join(t.TempDir(), "birthdays.yaml")
	if err := os.WriteFile(filename, []byte(`location: UTC
within: 7
birthdays:
  - name: Ada
    date: Jun-20
    year: 1990
  - name: Bob
    date: Jun-16
  - name: Cy
    date: Feb-30
`), 0600); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := listUpcoming(ctx, &out, filename, TodayFlag{On: "2025-06-15"}, 0); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "2025-06-16 Bob tomorrow\n2025-06-20 Ada turns 35 in 5 days\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !strings.Contains(logged.String(), "invalid birthdays") {
		t.Errorf("missing warning: %v", logged.String())
	}

	out.Reset()
	if err := listUpcoming(ctx, &out, filename, TodayFlag{On: "2025-06-15"}, 2); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "2025-06-16 Bob tomorrow\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out.Reset()
	err := checkConfig(ctx, &out, filename, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	if err == nil || !strings.Contains(err.Error(), "Cy") {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestUpcomingReportsInvalidAtDefaultLevel(t *testing.T) {
	var logged bytes.Buffer
	logger, err := LoggingFlags{}.newLogger(&logged)
	if err != nil {
		t.Fatal(err)
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)
	filename := filepath.Join(t.TempDir(), "birthdays.yaml")
	if err := os.WriteFile(filename, []byte(`location: UTC
birthdays:
  - name: Bob
    date: Jun-16
  - name: Cy
    date: Apr-31
`), 0600); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := listUpcoming(ctx, &out, filename, TodayFlag{On: "2025-06-15"}, 0); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "2025-06-16 Bob tomorrow\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for _, want := range []string{"invalid birthdays", "Cy"} {
		if !strings.Contains(logged.String(), want) {
			t.Errorf("%q does not contain %q", logged.String(), want)
		}
	}
}

func TestLoggingFlags(t *testing.T) {
	var out bytes.Buffer
	logger, err := LoggingFlags{Level: 3, Format: "json"}.newLogger(&out)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hello")
	if !strings.Contains(out.String(), `"msg":"hello"`) {
		t.Errorf("missing log entry: %v", out.String())
	}
	out.Reset()
	logger, err = LoggingFlags{Level: 0}.newLogger(&out)
	if err != nil {
		t.Fatal(err)
	}
	logger.Warn("hidden")
	if out.Len() != 0 {
		t.Errorf("unexpected log entry: %v", out.String())
	}
	if _, err := (LoggingFlags{Format: "xml"}).newLogger(&out); err == nil {
		t.Errorf("expected an error")
	}
}
