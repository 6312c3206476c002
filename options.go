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

package htmldiff

import "znkr.io/htmldiff/internal/config"

// Option configures the behavior of the functions in this package.
type Option = config.Option

// WordRunes adds runes that are treated as part of a word, in addition to letters, digits, '#' and
// '@'. For example, WordRunes("_") keeps snake_case identifiers in one token.
func WordRunes(extra string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.WordRunes = config.Default.WordRunes + extra
		return config.WordRunes
	}
}

// Insertions sets the markers emitted before and after inserted content. The default is <ins> and
// </ins>.
func Insertions(open, close string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Insert = config.Marker{Open: open, Close: close}
		return config.Markers
	}
}

// Deletions sets the markers emitted before and after deleted content. The default is <del> and
// </del>.
func Deletions(open, close string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Delete = config.Marker{Open: open, Close: close}
		return config.Markers
	}
}

// AlwaysWrap sets the elements whose opening tags are wrapped in markers when they are inserted or
// deleted. Other tags are structural and never wrapped. The default is "img".
//
// Calling AlwaysWrap without arguments wraps no tags at all.
func AlwaysWrap(names ...string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.AlwaysWrap = append([]string{}, names...)
		return config.AlwaysWrap
	}
}

// Coalesce merges the markers of consecutive wrapped tokens of the same kind. Instead of
//
//	<ins>new</ins><ins> </ins><ins>words</ins>
//
// the output contains
//
//	<ins>new words</ins>
func Coalesce() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Coalesce = true
		return config.Coalesce
	}
}
