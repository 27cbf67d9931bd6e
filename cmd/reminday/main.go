// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command reminday lists upcoming birthdays and provides a command line
// rendition of the birthday date picker.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	pickFlagSet := subcmd.MustRegisterFlagStruct(&pickFlags{}, nil, nil)
	pickCmd := subcmd.NewCommand("pick", pickFlagSet, pick, subcmd.WithoutArguments())
	pickCmd.Document(`display the date selected by a date picker for the given, possibly out of range or missing, year, month and day.`)

	upcomingFlagSet := subcmd.MustRegisterFlagStruct(&upcomingFlags{}, nil, nil)
	upcomingCmd := subcmd.NewCommand("upcoming", upcomingFlagSet, upcoming, subcmd.ExactlyNumArguments(1))
	upcomingCmd.Document(`list the birthdays that occur within the next few days.`, "<birthdays.yaml>")

	checkFlagSet := subcmd.MustRegisterFlagStruct(&checkFlags{}, nil, nil)
	checkCmd := subcmd.NewCommand("check", checkFlagSet, check, subcmd.ExactlyNumArguments(1))
	checkCmd.Document(`validate a birthdays file, reporting all invalid entries.`, "<birthdays.yaml>")

	cmdSet = subcmd.NewCommandSet(pickCmd, upcomingCmd, checkCmd)
	cmdSet.Document(`Manage birthday reminders. Birthdays are read from a YAML file of the form:

	location: Europe/Zurich
	within: 14
	birthdays:
	  - name: Ada
	    date: Dec-10
	    year: 1815
	  - name: Bob
	    date: 02/29

The year of birth is optional.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
