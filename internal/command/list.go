// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/confctl/confctl/internal/meta"
	"github.com/confctl/confctl/internal/output"
	"github.com/confctl/confctl/internal/store"
)

// listCommandAction is the action handler for the "list" subcommand. It
// renders every resolved key/value as a table.
func listCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	res := m.Store.Read(cmd.String("config"))
	output.Table(resolvedPairs(res), cmd, nil)
	return nil
}

// resolvedPairs flattens the resolved configuration into table rows in
// document order.
func resolvedPairs(res *store.Resolved) []output.Pair {
	var pairs []output.Pair
	for _, key := range res.Keys() {
		v, _ := res.Get(key)
		pairs = append(pairs, output.Pair{Key: key, Value: v})
	}
	return pairs
}

func listCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list all resolved configuration values",
		UsageText: "confctl list [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  []cli.Flag{configFlag, colorFlag, titlesFlag, paddingFlag},
		Action: listCommandAction,
	}
}
