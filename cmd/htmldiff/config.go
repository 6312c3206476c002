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

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type marker struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

type fileConfig struct {
	Format     string   `toml:"format"`
	Color      string   `toml:"color"`
	Encoding   string   `toml:"encoding"`
	WordRunes  string   `toml:"word_runes"`
	AlwaysWrap []string `toml:"always_wrap"`
	Coalesce   bool     `toml:"coalesce"`
	Insert     marker   `toml:"insert"`
	Delete     marker   `toml:"delete"`
}

// loadConfig reads the TOML file at path into opts. Options for which changed reports true were
// set on the command line and are left alone.
func loadConfig(path string, opts *options, changed func(flag string) bool) error {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	set := func(key, flag string, apply func()) {
		if meta.IsDefined(key) && !changed(flag) {
			apply()
		}
	}
	set("format", "format", func() { opts.format = cfg.Format })
	set("color", "color", func() { opts.color = cfg.Color })
	set("encoding", "encoding", func() { opts.encoding = cfg.Encoding })
	set("word_runes", "word-runes", func() { opts.wordRunes = cfg.WordRunes })
	set("always_wrap", "always-wrap", func() { opts.alwaysWrap = cfg.AlwaysWrap })
	set("coalesce", "coalesce", func() { opts.coalesce = cfg.Coalesce })

	for _, m := range []struct {
		key string
		src *marker
		dst **marker
	}{
		{"insert", &cfg.Insert, &opts.insert},
		{"delete", &cfg.Delete, &opts.delete},
	} {
		if !meta.IsDefined(m.key) {
			continue
		}
		if !meta.IsDefined(m.key, "open") {
			return fmt.Errorf("%s: missing [%s].open", path, m.key)
		}
		if !meta.IsDefined(m.key, "close") {
			return fmt.Errorf("%s: missing [%s].close", path, m.key)
		}
		*m.dst = m.src
	}
	return nil
}
