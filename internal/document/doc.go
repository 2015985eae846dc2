// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package document provides a lossless in-memory model of an INI-style
// configuration file. A parsed Document retains every comment, blank line
// and the original key/value spelling so that serializing an unmodified
// Document reproduces its input byte-for-byte. Mutations (value updates,
// key insertion, section appends) touch only the lines they change.
package document
