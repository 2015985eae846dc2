// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package perms verifies that a config file's permission bits are
// restrictive enough to hold credentials.
package perms

import (
	"os"

	"github.com/confctl/confctl/internal/log"
)

// Verifier reports whether a path's permissions are owner-only.
type Verifier struct{}

// Verify returns true when path is a regular file with no group or other
// access bits set. Missing files and stat failures verify false.
func (Verifier) Verify(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		log.Debugf("permission check stat failed: path=%s err=%v", path, err)
		return false
	}
	if !info.Mode().IsRegular() {
		log.Debugf("permission check: not a regular file: path=%s", path)
		return false
	}
	if info.Mode().Perm()&0o077 != 0 {
		log.Debugf("permission check: mode %o too permissive: path=%s", info.Mode().Perm(), path)
		return false
	}
	return true
}
