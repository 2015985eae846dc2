// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confctl/confctl/internal/document"
)

func mustParse(t *testing.T, text string) *document.Document {
	t.Helper()
	doc, err := document.Parse(text)
	require.NoError(t, err)
	return doc
}

func TestMergeUpdateInPlace(t *testing.T) {
	doc := mustParse(t, "# top\n[a]\nk: 1\n# note\nother: x\n")

	ov := NewOverlay("/tmp/config.ini")
	ov.Set("a", "k", "2")

	_, err := Merge(doc, ov)
	require.NoError(t, err)

	// Only k's value changed. Position, comments and the rest are intact.
	assert.Equal(t, "# top\n[a]\nk: 2\n# note\nother: x\n", doc.String())
}

func TestMergeAppendOrdering(t *testing.T) {
	doc := mustParse(t, "[a]\nk1: 1\nk2: 2\n")

	ov := NewOverlay("/tmp/config.ini")
	ov.Set("a", "k3", "x")
	ov.Set("a", "k4", "y")

	_, err := Merge(doc, ov)
	require.NoError(t, err)

	assert.Equal(t, []string{"k1", "k2", "k3", "k4"}, doc.Section("a").Keys())
	assert.Equal(t, "[a]\nk1: 1\nk2: 2\nk3: x\nk4: y\n", doc.String())
}

func TestMergeMixedUpdateAndAppend(t *testing.T) {
	doc := mustParse(t, "[a]\nk1: 1\nk2: 2\n")

	ov := NewOverlay("/tmp/config.ini")
	ov.Set("a", "k3", "new")
	ov.Set("a", "k1", "updated")
	ov.Set("a", "k4", "also new")

	_, err := Merge(doc, ov)
	require.NoError(t, err)

	assert.Equal(t, "[a]\nk1: updated\nk2: 2\nk3: new\nk4: also new\n", doc.String())
}

func TestMergeNewSectionPlacement(t *testing.T) {
	doc := mustParse(t, "[a]\nk: 1\n\n[b]\nk: 2\n")

	ov := NewOverlay("/tmp/config.ini")
	ov.Set("c", "k", "v")

	_, err := Merge(doc, ov)
	require.NoError(t, err)

	assert.Equal(t, "[a]\nk: 1\n\n[b]\nk: 2\n\n[c]\nk: v\n", doc.String())
}

func TestMergeMultipleNewSectionsChained(t *testing.T) {
	doc := mustParse(t, "[a]\nk: 1\n")

	ov := NewOverlay("/tmp/config.ini")
	ov.Set("c", "k1", "v1")
	ov.Set("c", "k2", "v2")
	ov.Set("d", "k", "v")

	_, err := Merge(doc, ov)
	require.NoError(t, err)

	// New sections land in overlay order, one blank line apart.
	assert.Equal(t, "[a]\nk: 1\n\n[c]\nk1: v1\nk2: v2\n\n[d]\nk: v\n", doc.String())
}

func TestMergeIntoEmptySection(t *testing.T) {
	doc := mustParse(t, "[a]\n# placeholder\n\n[b]\nk: 1\n")

	ov := NewOverlay("/tmp/config.ini")
	ov.Set("a", "first", "v")

	_, err := Merge(doc, ov)
	require.NoError(t, err)

	// A section with zero entries takes the new key as its first entry.
	assert.Equal(t, "[a]\nfirst: v\n# placeholder\n\n[b]\nk: 1\n", doc.String())
}

func TestMergeMissingPath(t *testing.T) {
	text := "[a]\nk: 1\n"
	doc := mustParse(t, text)

	ov := NewOverlay("")
	ov.Set("a", "k", "2")
	ov.Set("new", "k", "v")

	_, err := Merge(doc, ov)
	require.Error(t, err)

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Error(), "missing path")

	// The document is completely unmodified.
	assert.Equal(t, text, doc.String())
}

func TestOverlayOrdering(t *testing.T) {
	ov := NewOverlay("/tmp/config.ini")
	ov.Set("b", "k2", "1")
	ov.Set("a", "k", "2")
	ov.Set("b", "k1", "3")
	ov.Set("b", "k2", "override")

	assert.Equal(t, []string{"b", "a"}, ov.Sections())
	assert.Equal(t, []string{"k2", "k1"}, ov.Keys("b"))

	v, ok := ov.Get("b", "k2")
	assert.True(t, ok)
	assert.Equal(t, "override", v)

	_, ok = ov.Get("ghost", "k")
	assert.False(t, ok)

	assert.Equal(t, "/tmp/config.ini", ov.Path())
}
