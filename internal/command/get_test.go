// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confctl/confctl/internal/store"
)

// readTestConfig resolves a throwaway config file through a real store.
func readTestConfig(t *testing.T, text string) *store.Resolved {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	s := store.New(store.WithExitFunc(func(code int) {
		t.Fatalf("unexpected fatal exit with code %d", code)
	}))
	return s.Read(path)
}

func TestLookupValue(t *testing.T) {
	res := readTestConfig(t, "[general]\nbaseurl: https://example.test/v1\n\n[notifications]\nuse_sandbox: TRUE\n")

	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{name: "plain value", path: "general.baseurl", want: "https://example.test/v1", wantOK: true},
		{name: "coerced bool", path: "notifications.use_sandbox", want: "true", wantOK: true},
		{name: "reserved path key", path: "config_file_path", want: res.Path, wantOK: true},
		{name: "missing key", path: "general.ghost", wantOK: false},
		{name: "missing section", path: "ghost.key", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lookupValue(res, tt.path)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolvedPairs(t *testing.T) {
	res := readTestConfig(t, "[b]\nk2: 1\nk1: 2\n\n[a]\nk: 3\n")

	pairs := resolvedPairs(res)
	require.Len(t, pairs, 3)

	// Document order, not lexical order.
	assert.Equal(t, "b.k2", pairs[0].Key)
	assert.Equal(t, "b.k1", pairs[1].Key)
	assert.Equal(t, "a.k", pairs[2].Key)
	assert.Equal(t, "3", pairs[2].Value)
}
