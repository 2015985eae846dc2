// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders resolved configuration data as a styled table or
// as a structured JSON/YAML document.
package output
