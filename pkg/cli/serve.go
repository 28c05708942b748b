/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ferien-api/schulferien/pkg/api"
	"github.com/ferien-api/schulferien/pkg/defaults"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the holiday API over HTTP",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "Listen port",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.IntFlag{
				Name:    "cache-max-age",
				Value:   int(defaults.CacheMaxAge.Seconds()),
				Usage:   "Cache-Control max-age of query responses, in seconds",
				Sources: cli.EnvVars(api.EnvCacheMaxAge),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Run(ctx, serveOptions(cmd))
		},
	}
}

func serveOptions(cmd *cli.Command) api.Options {
	return api.Options{
		DataDir:     cmd.String("data-dir"),
		CacheMaxAge: time.Duration(cmd.Int("cache-max-age")) * time.Second,
		Port:        cmd.Int("port"),
	}
}
