// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/confctl/confctl/internal/defaults"
	"github.com/confctl/confctl/internal/document"
	"github.com/confctl/confctl/internal/log"
	"github.com/confctl/confctl/internal/merge"
	"github.com/confctl/confctl/internal/paths"
	"github.com/confctl/confctl/internal/perms"
)

// PathResolver supplies candidate config file locations in priority order
// and the default location used for bootstrapping.
type PathResolver interface {
	Candidates(explicit string) []string
	Default() string
}

// PermissionVerifier reports whether a path's permission bits are
// sufficiently restrictive.
type PermissionVerifier interface {
	Verify(path string) bool
}

// TemplateProvider supplies the default configuration text.
type TemplateProvider interface {
	Template() string
}

// Store carries the collaborators for config file operations. There is no
// package-level default instance; callers construct one and pass it where
// it is needed.
type Store struct {
	resolver PathResolver
	verifier PermissionVerifier
	template TemplateProvider
	exit     func(int)
}

// Option customizes a Store.
type Option func(*Store)

// WithResolver replaces the path resolver.
func WithResolver(r PathResolver) Option {
	return func(s *Store) { s.resolver = r }
}

// WithVerifier replaces the permission verifier.
func WithVerifier(v PermissionVerifier) Option {
	return func(s *Store) { s.verifier = v }
}

// WithTemplate replaces the default template provider.
func WithTemplate(p TemplateProvider) Option {
	return func(s *Store) { s.template = p }
}

// WithExitFunc replaces the process-exit function used for fatal
// configuration errors. Tests inject a recorder here.
func WithExitFunc(fn func(int)) Option {
	return func(s *Store) { s.exit = fn }
}

// New returns a Store wired with the standard collaborators.
func New(opts ...Option) *Store {
	s := &Store{
		resolver: paths.Resolver{},
		verifier: perms.Verifier{},
		template: defaults.Provider{},
		exit:     os.Exit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read resolves, verifies and parses the config file and returns its
// typed view. Any unrecoverable condition (bad directory layout, overly
// permissive file, unreadable or unparsable content) is logged and
// terminates the process with a non-zero status.
func (s *Store) Read(explicit string) *Resolved {
	res, err := s.load(explicit)
	if err != nil {
		log.Errorf("%v", err)
		s.exit(1)
		return nil
	}
	return res
}

// load implements Read, returning errors instead of exiting.
func (s *Store) load(explicit string) (*Resolved, error) {
	var path string
	for _, cand := range s.resolver.Candidates(explicit) {
		if _, err := os.Stat(cand); err == nil {
			path = cand
			break
		}
	}

	var doc *document.Document
	bootstrapped := false
	if path == "" {
		path = s.resolver.Default()
		log.Infof("no config file found; creating %s", path)
		var err error
		if doc, err = s.Bootstrap(path); err != nil {
			return nil, err
		}
		bootstrapped = true
	}

	parent := filepath.Dir(path)
	if info, err := os.Stat(parent); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("expected the config directory %s to be a directory", parent)
	}

	// Permission verification is ordered before parsing so that an
	// overly shared credential file is never even read.
	if !s.verifier.Verify(path) {
		return nil, fmt.Errorf("could not ensure secure file permissions for %s; fix them and try again", path)
	}

	if !bootstrapped {
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read the config from %s: %w", path, err)
		}
		if doc, err = document.Parse(string(text)); err != nil {
			return nil, fmt.Errorf("could not read the config from %s: %w", path, err)
		}
	}

	return newResolved(path, doc), nil
}

// Bootstrap creates the config file at path (the resolver's default when
// path is empty) from the default template, creating parent directories as
// needed, and returns the parsed template.
func (s *Store) Bootstrap(path string) (*document.Document, error) {
	if path == "" {
		path = s.resolver.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create config directory %s: %w", filepath.Dir(path), err)
	}

	doc, err := document.Parse(s.template.Template())
	if err != nil {
		return nil, fmt.Errorf("default config template is invalid: %w", err)
	}

	if err := s.Write(path, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Write serializes doc to path atomically. The content lands in a
// temporary file created with owner-only permissions in the target
// directory, then is renamed into place, so no partial file is ever
// visible and the restrictive mode holds from creation.
func (s *Store) Write(path string, doc *document.Document) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".config-*")
	if err != nil {
		return fmt.Errorf("could not create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(doc.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}

// Apply merges the overlay into its target document on disk and writes the
// result back. The overlay is validated up front; nothing is written when
// any step fails.
func (s *Store) Apply(ov *merge.Overlay) error {
	doc, err := s.loadTarget(ov)
	if err != nil {
		return err
	}
	return s.Write(ov.Path(), doc)
}

// Preview returns the merged document text without writing it.
func (s *Store) Preview(ov *merge.Overlay) (string, error) {
	doc, err := s.loadTarget(ov)
	if err != nil {
		return "", err
	}
	return doc.String(), nil
}

// loadTarget parses the overlay's target file and merges the overlay into
// it in memory.
func (s *Store) loadTarget(ov *merge.Overlay) (*document.Document, error) {
	if err := ov.Validate(); err != nil {
		return nil, err
	}

	text, err := os.ReadFile(ov.Path())
	if err != nil {
		return nil, fmt.Errorf("could not read the config from %s: %w", ov.Path(), err)
	}
	doc, err := document.Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("could not read the config from %s: %w", ov.Path(), err)
	}

	if _, err := merge.Merge(doc, ov); err != nil {
		return nil, err
	}
	return doc, nil
}
