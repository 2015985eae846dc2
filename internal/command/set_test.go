// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confctl/confctl/internal/merge"
)

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		name        string
		arg         string
		wantSection string
		wantKey     string
		wantValue   string
		wantErr     string
	}{
		{
			name:        "simple",
			arg:         "general.baseurl=https://example.test",
			wantSection: "general",
			wantKey:     "baseurl",
			wantValue:   "https://example.test",
		},
		{
			name:        "value containing equals",
			arg:         "general.baseurl=https://example.test/?a=b",
			wantSection: "general",
			wantKey:     "baseurl",
			wantValue:   "https://example.test/?a=b",
		},
		{
			name:        "dotted key keeps later dots",
			arg:         "notifications.apns.key=abc",
			wantSection: "notifications",
			wantKey:     "apns.key",
			wantValue:   "abc",
		},
		{
			name:        "empty value",
			arg:         "notifications.dev_team_id=",
			wantSection: "notifications",
			wantKey:     "dev_team_id",
			wantValue:   "",
		},
		{
			name:    "no equals",
			arg:     "general.baseurl",
			wantErr: "malformed assignment",
		},
		{
			name:    "no section",
			arg:     "baseurl=x",
			wantErr: "malformed key",
		},
		{
			name:    "empty key",
			arg:     "general.=x",
			wantErr: "malformed key",
		},
		{
			name:    "reserved metadata key",
			arg:     "config_file_path.x=boom",
			wantErr: "reserved metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, key, value, err := parseAssignment(tt.arg)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSection, section)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestOverlayFromArgs(t *testing.T) {
	ov, err := overlayFromArgs("/tmp/config.ini", []string{
		"general.baseurl=x",
		"notifications.use_sandbox=false",
		"general.poll_interval=60",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/config.ini", ov.Path())
	assert.Equal(t, []string{"general", "notifications"}, ov.Sections())
	assert.Equal(t, []string{"baseurl", "poll_interval"}, ov.Keys("general"))

	v, ok := ov.Get("notifications", "use_sandbox")
	assert.True(t, ok)
	assert.Equal(t, "false", v)

	require.NoError(t, ov.Validate())

	_, err = overlayFromArgs("/tmp/config.ini", []string{"broken"})
	require.Error(t, err)
}

func TestOverlayFromArgsTargetsPath(t *testing.T) {
	ov, err := overlayFromArgs("", []string{"a.b=c"})
	require.NoError(t, err)

	// A pathless overlay fails validation before any merge.
	err = ov.Validate()
	var cerr *merge.ConfigError
	require.ErrorAs(t, err, &cerr)
}
