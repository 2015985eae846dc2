// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"strings"
)

// ParseError reports structurally invalid input, with the 1-based line
// number where parsing stopped.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Msg)
}

type lineKind int

const (
	kindBlank lineKind = iota
	kindComment
	kindEntry
)

// line is a single source line. For entries, prefix holds everything from
// the start of the line through the delimiter and its trailing spacing, and
// suffix holds whitespace after the value, so that prefix+value+suffix
// reproduces the original text and a value update disturbs nothing else.
type line struct {
	kind   lineKind
	raw    string // comment/blank lines only
	key    string
	prefix string
	value  string
	suffix string
}

func (l *line) text() string {
	if l.kind == kindEntry {
		return l.prefix + l.value + l.suffix
	}
	return l.raw
}

// Section is a named, ordered run of entry/comment/blank lines beneath one
// [name] header.
type Section struct {
	name        string
	header      string // raw header line
	lines       []*line
	blankBefore bool // emit one blank line before the header; set for appended sections
}

// Document is an ordered sequence of Sections plus any prelude lines
// (comments or blanks) that appear before the first header.
type Document struct {
	prelude      []*line
	sections     []*Section
	byName       map[string]*Section
	finalNewline bool
}

// Parse reads INI-style text into a Document. Section headers are
// bracketed names, entries use ':' or '=' delimiters, and '#'/';' start
// comment lines. Entries before any header, duplicate section headers,
// duplicate keys within a section and unrecognizable lines are a
// *ParseError.
func Parse(text string) (*Document, error) {
	doc := &Document{
		byName:       make(map[string]*Section),
		finalNewline: strings.HasSuffix(text, "\n"),
	}

	if text == "" {
		return doc, nil
	}
	raw := strings.TrimSuffix(text, "\n")

	var cur *Section
	for n, src := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(src)

		switch {
		case trimmed == "":
			doc.push(cur, &line{kind: kindBlank, raw: src})

		case trimmed[0] == '#' || trimmed[0] == ';':
			doc.push(cur, &line{kind: kindComment, raw: src})

		case trimmed[0] == '[':
			if !strings.HasSuffix(trimmed, "]") {
				return nil, &ParseError{Line: n + 1, Msg: "malformed section header"}
			}
			name := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			if name == "" {
				return nil, &ParseError{Line: n + 1, Msg: "empty section name"}
			}
			if _, dup := doc.byName[name]; dup {
				return nil, &ParseError{Line: n + 1, Msg: fmt.Sprintf("duplicate section [%s]", name)}
			}
			cur = &Section{name: name, header: src}
			doc.sections = append(doc.sections, cur)
			doc.byName[name] = cur

		default:
			ln, ok := parseEntry(src)
			if !ok {
				return nil, &ParseError{Line: n + 1, Msg: "unrecognized line"}
			}
			if cur == nil {
				return nil, &ParseError{Line: n + 1, Msg: fmt.Sprintf("entry %q outside of any section", ln.key)}
			}
			if _, exists := cur.Get(ln.key); exists {
				return nil, &ParseError{Line: n + 1, Msg: fmt.Sprintf("duplicate key %q in section [%s]", ln.key, cur.name)}
			}
			cur.lines = append(cur.lines, ln)
		}
	}

	return doc, nil
}

// push appends a non-entry line to the current section, or to the prelude
// when no header has been seen yet.
func (d *Document) push(cur *Section, ln *line) {
	if cur == nil {
		d.prelude = append(d.prelude, ln)
		return
	}
	cur.lines = append(cur.lines, ln)
}

// parseEntry splits a source line at the first ':' or '=' delimiter.
func parseEntry(src string) (*line, bool) {
	i := strings.IndexAny(src, ":=")
	if i <= 0 {
		return nil, false
	}
	key := strings.TrimSpace(src[:i])
	if key == "" {
		return nil, false
	}

	// The prefix runs through the delimiter and any spacing that follows it.
	j := i + 1
	for j < len(src) && (src[j] == ' ' || src[j] == '\t') {
		j++
	}
	value := strings.TrimSpace(src[j:])

	return &line{
		kind:   kindEntry,
		key:    key,
		prefix: src[:j],
		value:  value,
		suffix: src[j+len(value):],
	}, true
}

// String serializes the Document. Unmutated Documents reproduce their
// parse input exactly.
func (d *Document) String() string {
	var out []string
	for _, ln := range d.prelude {
		out = append(out, ln.text())
	}
	for _, sec := range d.sections {
		if sec.blankBefore {
			out = append(out, "")
		}
		out = append(out, sec.header)
		for _, ln := range sec.lines {
			out = append(out, ln.text())
		}
	}

	text := strings.Join(out, "\n")
	if d.finalNewline {
		text += "\n"
	}
	return text
}

// Section returns the named section, or nil if absent.
func (d *Document) Section(name string) *Section {
	return d.byName[name]
}

// HasSection reports whether the named section exists.
func (d *Document) HasSection(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Sections returns the document's sections in order.
func (d *Document) Sections() []*Section {
	return d.sections
}

// SectionNames returns section names in document order.
func (d *Document) SectionNames() []string {
	names := make([]string, 0, len(d.sections))
	for _, sec := range d.sections {
		names = append(names, sec.name)
	}
	return names
}

// NewSection constructs a detached section with a plain [name] header.
// Attach it with AddSectionAfter or AppendSection.
func NewSection(name string) *Section {
	return &Section{name: name, header: "[" + name + "]"}
}

// AddSectionAfter inserts sec immediately after the named anchor section,
// preceded by exactly one blank line. Trailing blank lines of the anchor
// move to the new section so existing separation from the following section
// is kept. The anchor must exist and sec's name must not collide with an
// existing section.
func (d *Document) AddSectionAfter(anchor string, sec *Section) error {
	if _, dup := d.byName[sec.name]; dup {
		return fmt.Errorf("section [%s] already exists", sec.name)
	}
	for i, s := range d.sections {
		if s.name == anchor {
			sec.lines = append(sec.lines, s.popTrailingBlanks()...)
			sec.blankBefore = true
			d.sections = append(d.sections[:i+1], append([]*Section{sec}, d.sections[i+1:]...)...)
			d.byName[sec.name] = sec
			return nil
		}
	}
	return fmt.Errorf("anchor section [%s] not found", anchor)
}

// AppendSection adds sec at the end of the document, preceded by one blank
// line when the document already has content.
func (d *Document) AppendSection(sec *Section) error {
	if len(d.sections) > 0 {
		return d.AddSectionAfter(d.sections[len(d.sections)-1].name, sec)
	}
	if _, dup := d.byName[sec.name]; dup {
		return fmt.Errorf("section [%s] already exists", sec.name)
	}
	sec.blankBefore = len(d.prelude) > 0
	d.sections = append(d.sections, sec)
	d.byName[sec.name] = sec
	return nil
}

// popTrailingBlanks removes and returns the run of blank lines at the end
// of the section.
func (s *Section) popTrailingBlanks() []*line {
	i := len(s.lines)
	for i > 0 && s.lines[i-1].kind == kindBlank {
		i--
	}
	tail := s.lines[i:]
	s.lines = s.lines[:i]
	return tail
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// Keys returns the section's entry keys in order. Comment and blank lines
// are skipped.
func (s *Section) Keys() []string {
	var keys []string
	for _, ln := range s.lines {
		if ln.kind == kindEntry {
			keys = append(keys, ln.key)
		}
	}
	return keys
}

// LastKey returns the section's final entry key, or "" for a section with
// zero entries.
func (s *Section) LastKey() string {
	last := ""
	for _, ln := range s.lines {
		if ln.kind == kindEntry {
			last = ln.key
		}
	}
	return last
}

// Get returns the value for key and whether the key exists.
func (s *Section) Get(key string) (string, bool) {
	for _, ln := range s.lines {
		if ln.kind == kindEntry && ln.key == key {
			return ln.value, true
		}
	}
	return "", false
}

// Set updates an existing key's value in place. The line keeps its
// position, delimiter and spacing. Returns false if the key is absent.
func (s *Section) Set(key, value string) bool {
	for _, ln := range s.lines {
		if ln.kind == kindEntry && ln.key == key {
			ln.value = value
			return true
		}
	}
	return false
}

// InsertAfter inserts a new "key: value" entry immediately following the
// anchor key. An empty anchor inserts the entry as the section's first
// line, which is the defined behavior for sections with zero entries.
func (s *Section) InsertAfter(anchorKey, key, value string) error {
	if _, dup := s.Get(key); dup {
		return fmt.Errorf("key %q already exists in section [%s]", key, s.name)
	}

	ln := &line{kind: kindEntry, key: key, prefix: key + ": ", value: value}

	if anchorKey == "" {
		s.lines = append([]*line{ln}, s.lines...)
		return nil
	}
	for i, cur := range s.lines {
		if cur.kind == kindEntry && cur.key == anchorKey {
			s.lines = append(s.lines[:i+1], append([]*line{ln}, s.lines[i+1:]...)...)
			return nil
		}
	}
	return fmt.Errorf("anchor key %q not found in section [%s]", anchorKey, s.name)
}

// Append adds a new "key: value" entry at the end of the section.
func (s *Section) Append(key, value string) error {
	if _, dup := s.Get(key); dup {
		return fmt.Errorf("key %q already exists in section [%s]", key, s.name)
	}
	s.lines = append(s.lines, &line{kind: kindEntry, key: key, prefix: key + ": ", value: value})
	return nil
}
