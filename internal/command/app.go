// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/confctl/confctl/internal/meta"
	"github.com/confctl/confctl/internal/store"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	m := meta.Meta{
		Args:        args,
		Store:       store.New(),
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "confctl",
		Usage: "Format-preserving service configuration control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "confctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		getCommandBuilder(m),
		setCommandBuilder(m),
		listCommandBuilder(m),
		exportCommandBuilder(m),
		pathCommandBuilder(m),
		initCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
