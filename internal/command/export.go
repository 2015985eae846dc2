// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/confctl/confctl/internal/meta"
	"github.com/confctl/confctl/internal/output"
)

// exportCommandAction is the action handler for the "export" subcommand.
// It emits the resolved configuration as a structured document for
// consumption by other tooling.
func exportCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	res := m.Store.Read(cmd.String("config"))
	return output.Spit(res.Nested(), cmd.String("output"), nil)
}

func exportCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "dump the resolved configuration as json or yaml",
		UsageText: "confctl export [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  []cli.Flag{configFlag, outputFlag},
		Action: exportCommandAction,
	}
}
