// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/confctl/confctl/internal/meta"
	"github.com/confctl/confctl/internal/paths"
)

// initCommandAction is the action handler for the "init" subcommand. It
// writes the default config template to the target path, refusing to
// clobber an existing file unless --force is set.
func initCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	path := cmd.String("config")
	if path == "" {
		path = paths.Resolver{}.Default()
	}

	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if _, err := m.Store.Bootstrap(path); err != nil {
		return err
	}
	fmt.Printf("created %s\n", path)
	return nil
}

func initCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "create a default config file",
		UsageText: "confctl init [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  []cli.Flag{configFlag, forceFlag},
		Action: initCommandAction,
	}
}
