// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package defaults supplies the literal configuration template used to
// bootstrap a config file when none exists.
package defaults

// DefaultConfig is the template written on first run. Administrators are
// expected to hand-edit the result; programmatic updates preserve their
// comments and layout.
const DefaultConfig = `# confctl service configuration.
# This file may be edited by hand. Programmatic updates keep comments,
# ordering and blank lines intact.

[general]
# Endpoint polled for market price data.
baseurl: https://api.awattar.de/v1/marketdata
# Seconds between polls.
poll_interval: 300

[file_location]
data_dir: ~/.local/share/confctl/data
log_dir: ~/.local/share/confctl/log
cert_dir: ~/.local/share/confctl/certs

[notifications]
# Push provider credentials. Leave empty to disable notifications.
provider: apns
dev_team_id:
apns_encryption_key_id:
apns_encryption_key:
# true routes notifications through the provider sandbox.
use_sandbox: true
`

// Provider hands the template to the store as an opaque parsable string.
type Provider struct{}

// Template returns the default configuration text.
func (Provider) Template() string {
	return DefaultConfig
}
