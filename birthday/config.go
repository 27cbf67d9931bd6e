// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package birthday

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/reminday/calendar"
	"cloudeng.io/reminday/datetime"
)

// DefaultWithin is the number of days of upcoming birthdays that are
// reported when not otherwise specified.
const DefaultWithin = 30

// Entry represents a single birthday in a configuration file.
type Entry struct {
	Name string `yaml:"name"`
	Date string `yaml:"date"` // Jan-02 or 01/02
	Year int    `yaml:"year,omitempty"`
}

// Config represents a configuration file of the form:
//
//	location: Europe/Zurich
//	within: 14
//	birthdays:
//	  - name: Ada
//	    date: Dec-10
//	    year: 1815
//	  - name: Bob
//	    date: 02/29
type Config struct {
	Location  string  `yaml:"location,omitempty"`
	Within    int     `yaml:"within,omitempty"`
	Birthdays []Entry `yaml:"birthdays"`
}

// ParseConfig parses the yaml configuration in spec. It does not validate
// the birthdays, see Config.Validate. Errors include the offending line
// of the yaml source.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfig(spec, &cfg); err != nil {
		return Config{}, err
	}
	cfg.setDefaults()
	return cfg, nil
}

// LoadConfig reads and parses the yaml configuration in filename. The
// file is read using the fs.ReadFileFS stored in ctx, if any, or else
// from the local filesystem.
func LoadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFile(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	cfg.setDefaults()
	ctxlog.Logger(ctx).Info("loaded birthdays", "file", filename, "entries", len(cfg.Birthdays))
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Within <= 0 {
		c.Within = DefaultWithin
	}
}

// TimeLocation returns the location specified in the configuration, or
// time.Local if none is specified.
func (c Config) TimeLocation() (*time.Location, error) {
	if len(c.Location) == 0 {
		return time.Local, nil
	}
	return time.LoadLocation(c.Location)
}

// Validate returns all of the valid birthdays in the configuration along
// with an error that reports every invalid entry. now determines the
// latest year of birth that is accepted.
func (c Config) Validate(now time.Time) ([]Birthday, error) {
	errs := &errors.M{}
	if _, err := c.TimeLocation(); err != nil {
		errs.Append(fmt.Errorf("location: %w", err))
	}
	clock := func() time.Time { return now }
	birthdays := make([]Birthday, 0, len(c.Birthdays))
	seen := map[string]bool{}
	for i, e := range c.Birthdays {
		b, err := e.birthday(clock)
		if err != nil {
			errs.Append(fmt.Errorf("entry %v: %w", i, err))
			continue
		}
		if seen[b.Name] {
			errs.Append(fmt.Errorf("entry %v: duplicate name: %q", i, b.Name))
			continue
		}
		seen[b.Name] = true
		birthdays = append(birthdays, b)
	}
	return birthdays, errs.Err()
}

// birthday validates the entry by checking that none of its fields are
// constrained by a calendar.
func (e Entry) birthday(clock func() time.Time) (Birthday, error) {
	if len(e.Name) == 0 {
		return Birthday{}, fmt.Errorf("missing name")
	}
	var d datetime.Date
	if err := d.Parse(e.Date); err != nil {
		return Birthday{}, fmt.Errorf("%v: %w", e.Name, err)
	}
	b := Birthday{Name: e.Name, Date: d, Year: e.Year}
	c := b.Calendar(calendar.WithClock(clock))
	for _, f := range calendar.Fields() {
		if !c.IsSet(f) {
			continue
		}
		r := c.ActualValidRange(f)
		if raw := rawValue(b, f); !r.Contains(raw) {
			return Birthday{}, fmt.Errorf("%v: %v %v is outside of the range %v..%v", e.Name, f, raw, r.Min, r.Max)
		}
	}
	return FromCalendar(e.Name, c)
}

func rawValue(b Birthday, f calendar.Field) int {
	switch f {
	case calendar.Year:
		return b.Year
	case calendar.Month:
		return int(b.Date.Month)
	}
	return b.Date.Day
}
