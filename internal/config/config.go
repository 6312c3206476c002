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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// htmldiff.Option.
package config

// Marker is a pair of strings emitted around a wrapped token.
type Marker struct {
	Open, Close string
}

// Config collects all configurable parameters for the functions in this module.
type Config struct {
	// WordRunes are runes that are part of a word in addition to letters and digits.
	WordRunes string

	// Insert and Delete are the markers wrapped around inserted and deleted tokens.
	Insert, Delete Marker

	// AlwaysWrap lists the element names of tags that are wrapped in a marker even though they
	// are tags.
	AlwaysWrap []string

	// If set, consecutive wrapped tokens of the same kind share a single marker.
	Coalesce bool
}

// Default is the default configuration.
var Default = Config{
	WordRunes:  "#@",
	Insert:     Marker{"<ins>", "</ins>"},
	Delete:     Marker{"<del>", "</del>"},
	AlwaysWrap: []string{"img"},
	Coalesce:   false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	WordRunes Flag = 1 << iota
	Markers
	AlwaysWrap
	Coalesce
)

// All is the set of all flags.
const All = WordRunes | Markers | AlwaysWrap | Coalesce

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case WordRunes:
		return "htmldiff.WordRunes"
	case Markers:
		return "htmldiff.Insertions/htmldiff.Deletions"
	case AlwaysWrap:
		return "htmldiff.AlwaysWrap"
	case Coalesce:
		return "htmldiff.Coalesce"
	default:
		panic("never reached")
	}
}
