// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package merge

import (
	"fmt"

	"github.com/confctl/confctl/internal/document"
)

// PathKey is the reserved metadata key naming the on-disk document an
// Overlay targets. It is never written into any section.
const PathKey = "config_file_path"

// ConfigError reports an invalid overlay, raised before any document
// mutation takes place.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Msg
}

// Overlay is an insertion-ordered set of desired section/key/value
// settings plus the path of the document it targets. Iteration order of
// sections and keys follows the order in which they were Set, which
// determines the on-disk order of appended keys and sections.
type Overlay struct {
	path     string
	names    []string
	sections map[string]*overlaySection
}

type overlaySection struct {
	keys   []string
	values map[string]string
}

// NewOverlay returns an empty Overlay targeting the document at path.
func NewOverlay(path string) *Overlay {
	return &Overlay{
		path:     path,
		sections: make(map[string]*overlaySection),
	}
}

// Path returns the targeted document path.
func (o *Overlay) Path() string {
	return o.path
}

// Set records a desired value. Re-setting an existing section/key keeps
// its original position in the overlay order.
func (o *Overlay) Set(section, key, value string) {
	sec, ok := o.sections[section]
	if !ok {
		sec = &overlaySection{values: make(map[string]string)}
		o.sections[section] = sec
		o.names = append(o.names, section)
	}
	if _, exists := sec.values[key]; !exists {
		sec.keys = append(sec.keys, key)
	}
	sec.values[key] = value
}

// Sections returns overlay section names in insertion order.
func (o *Overlay) Sections() []string {
	return o.names
}

// Keys returns the overlay keys for a section in insertion order.
func (o *Overlay) Keys(section string) []string {
	if sec, ok := o.sections[section]; ok {
		return sec.keys
	}
	return nil
}

// Get returns the overlay value for section/key.
func (o *Overlay) Get(section, key string) (string, bool) {
	sec, ok := o.sections[section]
	if !ok {
		return "", false
	}
	v, ok := sec.values[key]
	return v, ok
}

// Validate checks the overlay's required metadata. An overlay without a
// target path is a *ConfigError.
func (o *Overlay) Validate() error {
	if o.path == "" {
		return &ConfigError{Msg: "missing path"}
	}
	return nil
}

// Merge applies the overlay to doc in place. For sections the document
// already has, existing keys are updated where they sit and new keys are
// chained after the section's last key in overlay order. Sections the
// document lacks are built from the overlay and appended at the end of the
// document, each preceded by one blank line, in overlay order. The overlay
// is validated before doc is touched.
func Merge(doc *document.Document, o *Overlay) (*document.Document, error) {
	if err := o.Validate(); err != nil {
		return doc, err
	}

	var staged []*document.Section
	for _, name := range o.names {
		if !doc.HasSection(name) {
			sec := document.NewSection(name)
			for _, key := range o.sections[name].keys {
				if err := sec.Append(key, o.sections[name].values[key]); err != nil {
					return doc, err
				}
			}
			staged = append(staged, sec)
			continue
		}

		sec := doc.Section(name)
		last := sec.LastKey()
		for _, key := range o.sections[name].keys {
			value := o.sections[name].values[key]
			if _, exists := sec.Get(key); exists {
				sec.Set(key, value)
				continue
			}
			if err := sec.InsertAfter(last, key, value); err != nil {
				return doc, err
			}
			// Chain subsequent inserts off the key just added so overlay
			// order is preserved on disk.
			last = key
		}
	}

	for _, sec := range staged {
		if err := doc.AppendSection(sec); err != nil {
			return doc, fmt.Errorf("appending section [%s]: %w", sec.Name(), err)
		}
	}

	return doc, nil
}
