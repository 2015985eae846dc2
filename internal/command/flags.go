// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/urfave/cli/v3"
)

var (
	configFlag *cli.StringFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"C"},
		Usage:   "explicit config file path, bypassing the standard locations",
	}

	outputFlag *cli.StringFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "json",
		Validator: func(value string) error {
			switch value {
			case "json", "yaml":
				return nil
			}
			return fmt.Errorf("invalid output format %q (want json or yaml)", value)
		},
	}

	colorFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output",
		Value:   false,
	}

	titlesFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "titles",
		Aliases: []string{"t"},
		Usage:   "show titles with text output",
		Value:   false,
	}

	paddingFlag *cli.IntFlag = &cli.IntFlag{
		Name:    "padding",
		Aliases: []string{"p"},
		Usage:   "padding between table columns",
		Value:   2,
	}

	dryRunFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "dry-run",
		Usage:       "print the merged file instead of writing it",
		HideDefault: true,
	}

	forceFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "force",
		Usage:       "overwrite an existing config file",
		HideDefault: true,
	}

	longFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "long",
		Aliases:     []string{"l"},
		Usage:       "include size and modification age",
		HideDefault: true,
	}
)
