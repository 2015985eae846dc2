// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/confctl/confctl/internal/meta"
	"github.com/confctl/confctl/internal/store"
)

// getCommandAction is the action handler for the "get" subcommand. It
// resolves the configuration and prints the value at one dotted key.
func getCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	args := cmd.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one <section.key> argument")
	}

	res := m.Store.Read(cmd.String("config"))

	value, ok := lookupValue(res, args[0])
	if !ok {
		return fmt.Errorf("key %q not found in %s", args[0], res.Path)
	}

	fmt.Println(value)
	return nil
}

// lookupValue queries the resolved configuration with a gjson dotted path
// over its structured view.
func lookupValue(res *store.Resolved, path string) (string, bool) {
	data, err := json.Marshal(res.Nested())
	if err != nil {
		log.Debugf("nested marshal err: err=%v", err)
		return "", false
	}

	val := gjson.GetBytes(data, path)
	if !val.Exists() {
		return "", false
	}
	return val.String(), true
}

func getCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print one resolved configuration value",
		UsageText: "confctl get [options] <section.key>",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  []cli.Flag{configFlag},
		Action: getCommandAction,
	}
}
