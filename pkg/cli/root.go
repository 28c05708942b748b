/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/ferien-api/schulferien/pkg/api"
	"github.com/ferien-api/schulferien/pkg/logging"
	"github.com/ferien-api/schulferien/pkg/query"
	"github.com/ferien-api/schulferien/pkg/serializer"
)

const (
	name           = "ferien"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func statesFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "states",
		Aliases: []string{"s"},
		Usage:   "Comma-separated state codes to keep (e.g. BY,BE)",
	}
}

func fieldsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "fields",
		Usage: "Comma-separated fields to return, in order (start, end, year, stateCode, name, slug)",
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "German school holidays",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Description: `Query German school holidays (Schulferien) by year, state, type and date.

The same queries are served over HTTP by the serve command.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "Directory of {year}.json holiday files (default: embedded data)",
				Sources: cli.EnvVars(api.EnvDataDir),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			yearsCmd(),
			holidaysCmd(),
			currentCmd(),
			nextCmd(),
			onCmd(),
			searchCmd(),
			statsCmd(),
			compareCmd(),
			publicHolidaysCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI with the process arguments and exits non-zero on error.
func Execute() {
	// Handle SIGINT/SIGTERM for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// commandLister prints the visible subcommands for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Println(c.Name)
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// newService opens the record store selected by --data-dir.
func newService(cmd *cli.Command) (*query.Service, error) {
	st, err := api.OpenStore(cmd.String("data-dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to open holiday data: %w", err)
	}
	return query.NewService(st), nil
}

// writeResult serializes data in the --format to --output.
func writeResult(ctx context.Context, cmd *cli.Command, data any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, data)
}
