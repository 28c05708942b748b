/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/ferien-api/schulferien/pkg/defaults"
	"github.com/ferien-api/schulferien/pkg/query"
)

// runQuery validates the output format, runs op against the record store
// and writes its result.
func runQuery(ctx context.Context, cmd *cli.Command, op func(context.Context, *query.Service) (any, error)) error {
	if _, err := parseOutputFormat(cmd); err != nil {
		return err
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	result, err := op(ctx, svc)
	if err != nil {
		return err
	}

	return writeResult(ctx, cmd, result)
}

func yearsCmd() *cli.Command {
	return &cli.Command{
		Name:  "years",
		Usage: "List the years with holiday data",
		Flags: []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runQuery(ctx, cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.Years(ctx), nil
			})
		},
	}
}

func holidaysCmd() *cli.Command {
	return &cli.Command{
		Name:      "holidays",
		Usage:     "List the holidays of a year, optionally of one state",
		ArgsUsage: "YEAR [STATE]",
		Description: `List the school holidays of YEAR. With STATE only that state's
holidays are listed and --states is ignored.

Examples:
  ferien holidays 2025 --states BY,BE --type sommerferien
  ferien holidays 2025 NW --from 2025-06-01 --to 2025-08-31 --fields start,end`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "from",
				Usage: "Keep holidays ending on or after this date (YYYY-MM-DD)",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Keep holidays starting on or before this date (YYYY-MM-DD)",
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "Comma-separated holiday types to keep (e.g. sommerferien,herbstferien)",
			},
			statesFlag(),
			fieldsFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p := query.Params{
				Year:   cmd.Args().Get(0),
				State:  cmd.Args().Get(1),
				From:   cmd.String("from"),
				To:     cmd.String("to"),
				Type:   cmd.String("type"),
				States: cmd.String("states"),
				Fields: cmd.String("fields"),
			}
			return runQuery(ctx, cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				if p.State != "" {
					return svc.ByYearState(ctx, p)
				}
				return svc.ByYear(ctx, p)
			})
		},
	}
}

func currentCmd() *cli.Command {
	return &cli.Command{
		Name:  "current",
		Usage: "List the holidays active now",
		Flags: []cli.Flag{statesFlag(), fieldsFlag(), outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p := query.Params{
				States: cmd.String("states"),
				Fields: cmd.String("fields"),
			}
			return runQuery(ctx, cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.Current(ctx, p)
			})
		},
	}
}

func nextCmd() *cli.Command {
	return &cli.Command{
		Name:      "next",
		Usage:     "List the holidays starting within the next DAYS days",
		ArgsUsage: "[DAYS]",
		Flags:     []cli.Flag{statesFlag(), fieldsFlag(), outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			days := cmd.Args().First()
			if days == "" {
				days = strconv.Itoa(defaults.DefaultNextDays)
			}
			p := query.Params{
				Days:   days,
				States: cmd.String("states"),
				Fields: cmd.String("fields"),
			}
			return runQuery(ctx, cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.Next(ctx, p)
			})
		},
	}
}

func onCmd() *cli.Command {
	return &cli.Command{
		Name:      "on",
		Usage:     "Show whether DATE falls into school holidays",
		ArgsUsage: "DATE",
		Flags:     []cli.Flag{statesFlag(), fieldsFlag(), outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p := query.Params{
				Date:   cmd.Args().First(),
				States: cmd.String("states"),
				Fields: cmd.String("fields"),
			}
			return runQuery(ctx, cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.OnDate(ctx, p)
			})
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search holidays by name, slug or state code",
		ArgsUsage: "QUERY",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "year",
				Usage: "Keep holidays of this nominal year",
			},
			statesFlag(),
			fieldsFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p := query.Params{
				Query:  cmd.Args().First(),
				Year:   cmd.String("year"),
				States: cmd.String("states"),
				Fields: cmd.String("fields"),
			}
			return runQuery(ctx, cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.Search(ctx, p)
			})
		},
	}
}

func statsCmd() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Show holiday statistics of a year",
		ArgsUsage: "YEAR",
		Flags:     []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p := query.Params{Year: cmd.Args().First()}
			return runQuery(ctx, cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.Stats(ctx, p)
			})
		},
	}
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare the holidays of two years",
		ArgsUsage: "YEAR_A YEAR_B",
		Flags:     []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p := query.Params{
				YearA: cmd.Args().Get(0),
				YearB: cmd.Args().Get(1),
			}
			return runQuery(ctx, cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.Compare(ctx, p)
			})
		},
	}
}

func publicHolidaysCmd() *cli.Command {
	return &cli.Command{
		Name:      "public-holidays",
		Usage:     "List the public holidays (Feiertage) of a year",
		ArgsUsage: "YEAR",
		Flags:     []cli.Flag{statesFlag(), outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p := query.Params{
				Year:   cmd.Args().First(),
				States: cmd.String("states"),
			}
			return runQuery(ctx, cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.PublicHolidays(ctx, p)
			})
		},
	}
}
