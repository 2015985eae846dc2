// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/confctl/confctl/internal/merge"
	"github.com/confctl/confctl/internal/meta"
)

// setCommandAction is the action handler for the "set" subcommand. It
// builds an overlay from section.key=value arguments and merges it into
// the on-disk file, preserving hand-written comments and layout.
func setCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("expected at least one <section.key>=<value> argument")
	}

	// Resolving first pins the target path and bootstraps a default file
	// when none exists yet.
	res := m.Store.Read(cmd.String("config"))

	ov, err := overlayFromArgs(res.Path, args)
	if err != nil {
		return err
	}

	if cmd.Bool("dry-run") {
		text, err := m.Store.Preview(ov)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	}

	if err := m.Store.Apply(ov); err != nil {
		return err
	}
	log.Infof("updated %s", res.Path)
	return nil
}

// overlayFromArgs parses section.key=value assignments, in order, into an
// overlay targeting path.
func overlayFromArgs(path string, args []string) (*merge.Overlay, error) {
	ov := merge.NewOverlay(path)
	for _, arg := range args {
		section, key, value, err := parseAssignment(arg)
		if err != nil {
			return nil, err
		}
		ov.Set(section, key, value)
	}
	return ov, nil
}

// parseAssignment splits one "section.key=value" argument. The key may
// itself contain dots; only the first one separates the section.
func parseAssignment(arg string) (section, key, value string, err error) {
	lhs, value, found := strings.Cut(arg, "=")
	if !found {
		return "", "", "", fmt.Errorf("malformed assignment %q (want section.key=value)", arg)
	}

	section, key, found = strings.Cut(strings.TrimSpace(lhs), ".")
	if !found || section == "" || key == "" {
		return "", "", "", fmt.Errorf("malformed key %q (want section.key)", lhs)
	}

	if section == merge.PathKey || key == merge.PathKey {
		return "", "", "", fmt.Errorf("%s is reserved metadata and cannot be set", merge.PathKey)
	}

	return section, key, strings.TrimSpace(value), nil
}

func setCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "update or add configuration values in place",
		UsageText: "confctl set [options] <section.key>=<value> [<section.key>=<value> ...]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  []cli.Flag{configFlag, dryRunFlag},
		Action: setCommandAction,
	}
}
