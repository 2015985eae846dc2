// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package paths resolves candidate locations for the configuration file.
package paths

import (
	"os"
	"path/filepath"
)

// SystemPath is the machine-wide configuration file checked first.
const SystemPath = "/etc/confctl/config.ini"

// Resolver supplies candidate config file locations in priority order and
// the default location used when bootstrapping a fresh file.
type Resolver struct{}

// Candidates returns the ordered list of paths to check for an existing
// config file. An explicit path wins outright, then CONFCTL_CFG_FILE, then
// the system-wide path followed by the per-user path.
func (Resolver) Candidates(explicit string) []string {
	if explicit != "" {
		return []string{explicit}
	}
	if env := os.Getenv("CONFCTL_CFG_FILE"); env != "" {
		return []string{env}
	}
	return []string{SystemPath, userPath()}
}

// Default returns the per-user path used to bootstrap a new config file.
func (Resolver) Default() string {
	return userPath()
}

// userPath resolves the per-user config location, preferring
// os.UserConfigDir and falling back to ~/.config.
func userPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			// Last resort; a relative path keeps the process usable in
			// stripped-down environments.
			return filepath.Join("confctl", "config.ini")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "confctl", "config.ini")
}
