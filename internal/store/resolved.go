// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strconv"
	"strings"

	"github.com/confctl/confctl/internal/document"
	"github.com/confctl/confctl/internal/log"
	"github.com/confctl/confctl/internal/merge"
)

// defaultPollInterval is substituted when general.poll_interval is absent
// or not a number.
const defaultPollInterval = 300

// General holds service-wide settings.
type General struct {
	BaseURL      string
	PollInterval int
}

// FileLocation holds the directories the service writes to. Values are
// quote-stripped.
type FileLocation struct {
	DataDir string
	LogDir  string
	CertDir string
}

// Notifications holds push provider credentials. Identifier and key
// values are quote-stripped; UseSandbox is parsed case-insensitively with
// a warning-and-false fallback for unrecognized values.
type Notifications struct {
	Provider   string
	DevTeamID  string
	KeyID      string
	Key        string
	UseSandbox bool
}

// Resolved is the typed configuration view handed to application code. It
// is built once per Read; the underlying document is discarded after
// flattening.
type Resolved struct {
	Path          string
	General       General
	FileLocation  FileLocation
	Notifications Notifications

	keys []string
	flat map[string]string
}

// quoteStripped lists the dotted keys whose values may carry wrapping
// quotes that leaked into the file.
var quoteStripped = []string{
	"file_location.data_dir",
	"file_location.log_dir",
	"file_location.cert_dir",
	"notifications.provider",
	"notifications.dev_team_id",
	"notifications.apns_encryption_key_id",
	"notifications.apns_encryption_key",
}

// newResolved flattens doc into dotted keys and applies the typed
// coercions in one pass. All soft coercion fallbacks happen here; the
// document itself stays purely textual.
func newResolved(path string, doc *document.Document) *Resolved {
	r := &Resolved{
		Path: path,
		flat: make(map[string]string),
	}

	for _, sec := range doc.Sections() {
		for _, key := range sec.Keys() {
			v, _ := sec.Get(key)
			dotted := sec.Name() + "." + key
			r.keys = append(r.keys, dotted)
			r.flat[dotted] = v
		}
	}

	for _, key := range quoteStripped {
		if v, ok := r.flat[key]; ok {
			r.flat[key] = strings.Trim(v, `"'`)
		}
	}
	sandbox := false
	if v, ok := r.flat["notifications.use_sandbox"]; ok {
		sandbox = parseSandbox(v)
		r.flat["notifications.use_sandbox"] = strconv.FormatBool(sandbox)
	}
	interval := defaultPollInterval
	if v, ok := r.flat["general.poll_interval"]; ok {
		interval = parsePollInterval(v)
		r.flat["general.poll_interval"] = strconv.Itoa(interval)
	}

	r.General = General{
		BaseURL:      r.flat["general.baseurl"],
		PollInterval: interval,
	}
	r.FileLocation = FileLocation{
		DataDir: r.flat["file_location.data_dir"],
		LogDir:  r.flat["file_location.log_dir"],
		CertDir: r.flat["file_location.cert_dir"],
	}
	r.Notifications = Notifications{
		Provider:   r.flat["notifications.provider"],
		DevTeamID:  r.flat["notifications.dev_team_id"],
		KeyID:      r.flat["notifications.apns_encryption_key_id"],
		Key:        r.flat["notifications.apns_encryption_key"],
		UseSandbox: sandbox,
	}

	return r
}

// parseSandbox interprets use_sandbox case-insensitively. Anything other
// than true/false logs a warning and yields false.
func parseSandbox(v string) bool {
	switch strings.ToLower(v) {
	case "true":
		return true
	case "false":
		return false
	default:
		log.Warnf("invalid bool %q for notifications.use_sandbox; using false", v)
		return false
	}
}

// parsePollInterval parses general.poll_interval, warning on garbage. An
// absent value takes the default silently.
func parsePollInterval(v string) int {
	if v == "" {
		return defaultPollInterval
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("invalid integer %q for general.poll_interval; using %d", v, defaultPollInterval)
		return defaultPollInterval
	}
	return n
}

// Keys returns the flattened dotted keys in document order. The reserved
// path key is not part of the document and is excluded.
func (r *Resolved) Keys() []string {
	return r.keys
}

// Flatten returns the coerced dotted key/value view, including the
// reserved path key.
func (r *Resolved) Flatten() map[string]string {
	out := make(map[string]string, len(r.flat)+1)
	for k, v := range r.flat {
		out[k] = v
	}
	out[merge.PathKey] = r.Path
	return out
}

// Get returns the coerced value for a dotted key.
func (r *Resolved) Get(key string) (string, bool) {
	if key == merge.PathKey {
		return r.Path, true
	}
	v, ok := r.flat[key]
	return v, ok
}

// Nested returns the section-keyed view used for structured export. The
// reserved path key sits at the top level.
func (r *Resolved) Nested() map[string]any {
	out := make(map[string]any)
	for _, dotted := range r.keys {
		sec, key, _ := strings.Cut(dotted, ".")
		m, ok := out[sec].(map[string]string)
		if !ok {
			m = make(map[string]string)
			out[sec] = m
		}
		m[key] = r.flat[dotted]
	}
	out[merge.PathKey] = r.Path
	return out
}
