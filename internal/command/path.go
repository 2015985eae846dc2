// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/confctl/confctl/internal/meta"
)

// pathCommandAction is the action handler for the "path" subcommand. It
// prints the config file location that read operations resolve to,
// bootstrapping a default file when none exists.
func pathCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	res := m.Store.Read(cmd.String("config"))

	if !cmd.Bool("long") {
		fmt.Println(res.Path)
		return nil
	}

	info, err := os.Stat(res.Path)
	if err != nil {
		return fmt.Errorf("could not stat %s: %w", res.Path, err)
	}
	fmt.Printf("%s  %s  modified %s\n",
		res.Path,
		humanize.Bytes(uint64(info.Size())),
		humanize.Time(info.ModTime()))
	return nil
}

func pathCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "path",
		Usage:     "print the resolved config file path",
		UsageText: "confctl path [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  []cli.Flag{configFlag, longFlag},
		Action: pathCommandAction,
	}
}
