// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSpitJSON(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{
		"general": map[string]string{"baseurl": "https://example.test"},
	}

	require.NoError(t, Spit(v, "json", &buf))

	var back map[string]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "https://example.test", back["general"]["baseurl"])
}

func TestSpitYAML(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{
		"notifications": map[string]string{"use_sandbox": "true"},
	}

	require.NoError(t, Spit(v, "yaml", &buf))

	var back map[string]map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "true", back["notifications"]["use_sandbox"])
}

func TestSpitUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Spit(map[string]string{}, "toml", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
	assert.Zero(t, buf.Len())
}
