// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/confctl/confctl/internal/store"
)

// Meta contains runtime metadata shared by commands. It carries CLI
// arguments, the config store with its collaborators, context, and the
// starting working directory.
type Meta struct {
	Args        []string
	Store       *store.Store
	Context     context.Context
	StartingDir string
}
