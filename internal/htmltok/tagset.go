// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package htmltok

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html/atom"
)

// TagSet is a set of element names. Standard HTML elements are stored as atoms, everything else
// (e.g. custom elements) by its lower case name.
type TagSet struct {
	atoms map[atom.Atom]struct{}
	names map[string]struct{}
}

// NewTagSet returns a set containing the elements with the given names. Names are case
// insensitive and empty names are ignored.
func NewTagSet(names ...string) TagSet {
	s := TagSet{
		atoms: make(map[atom.Atom]struct{}),
		names: make(map[string]struct{}),
	}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if a := lookup(name); a != 0 {
			s.atoms[a] = struct{}{}
		} else {
			s.names[name] = struct{}{}
		}
	}
	return s
}

// Len returns the number of elements in the set.
func (s TagSet) Len() int { return len(s.atoms) + len(s.names) }

// Contains reports whether tok is an opening tag of an element in the set.
func (s TagSet) Contains(tok string) bool {
	if s.Len() == 0 {
		return false
	}
	name := TagName(tok)
	if name == "" {
		return false
	}
	if a := lookup(name); a != 0 {
		_, ok := s.atoms[a]
		return ok
	}
	_, ok := s.names[name]
	return ok
}

// Unknown returns the names in the set that are neither known HTML names nor valid custom element
// names (which contain a hyphen), sorted. They are most likely typos.
func (s TagSet) Unknown() []string {
	var unknown []string
	for _, name := range slices.Sorted(maps.Keys(s.names)) {
		if !strings.Contains(name, "-") {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// lookup is atom.Lookup without allocating for names of common length.
func lookup(name string) atom.Atom {
	var buf [32]byte
	return atom.Lookup(append(buf[:0], name...))
}
