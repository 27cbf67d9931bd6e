// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cloudeng.io/logging/ctxlog"
)

// LoggingFlags represents common logging related command line flags.
type LoggingFlags struct {
	Level  int    `subcmd:"log-level,0,'logging level: 0=error, 1=warn, 2=info, 3=debug'"`
	Format string `subcmd:"log-format,text,'log format: text or json'"`
}

type leveler struct {
	level int
}

func (l leveler) Level() slog.Level {
	switch {
	case l.level <= 0:
		return slog.LevelError
	case l.level == 1:
		return slog.LevelWarn
	case l.level == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func (lf LoggingFlags) newLogger(out io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: leveler{level: lf.Level}}
	switch lf.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(out, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(out, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", lf.Format)
}

// withLogger returns a context containing a logger that writes to stderr.
func (lf LoggingFlags) withLogger(ctx context.Context) (context.Context, error) {
	logger, err := lf.newLogger(os.Stderr)
	if err != nil {
		return ctx, err
	}
	return ctxlog.WithLogger(ctx, logger), nil
}
