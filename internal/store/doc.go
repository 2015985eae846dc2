// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package store orchestrates config file lifecycle: locating an existing
// file (or bootstrapping a default one), verifying its permissions,
// parsing it, applying overlay merges, persisting atomically with
// owner-only permissions, and exposing the resolved, typed view consumed
// by the rest of the program.
//
// The store is the only layer allowed to turn a configuration problem into
// process termination. Parse and merge failures reach it unwrapped; it
// logs them and exits non-zero. There is no degraded mode with partially
// missing configuration.
package store
