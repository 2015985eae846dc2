// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package perms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name string
		mode os.FileMode
		want bool
	}{
		{name: "owner read-write", mode: 0o600, want: true},
		{name: "owner read-only", mode: 0o400, want: true},
		{name: "group readable", mode: 0o640, want: false},
		{name: "world readable", mode: 0o644, want: false},
		{name: "world writable", mode: 0o666, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.ini")
			require.NoError(t, os.WriteFile(path, []byte("[a]\nk: 1\n"), tt.mode))
			// WriteFile is subject to the umask; pin the exact mode.
			require.NoError(t, os.Chmod(path, tt.mode))

			assert.Equal(t, tt.want, Verifier{}.Verify(path))
		})
	}
}

func TestVerifyMissingFile(t *testing.T) {
	assert.False(t, Verifier{}.Verify(filepath.Join(t.TempDir(), "nope.ini")))
}

func TestVerifyDirectory(t *testing.T) {
	assert.False(t, Verifier{}.Verify(t.TempDir()))
}
