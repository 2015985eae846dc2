// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package merge applies an Overlay of desired section/key/value settings to
// a parsed document. Existing keys are updated in place, new keys are
// appended after the last key of their section, and unknown sections are
// appended at the end of the document. The merge is entirely in-memory and
// all-or-nothing; persistence is the store's concern.
package merge
