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

import (
	"bufio"
	"io"

	"znkr.io/htmldiff/internal/byteview"
	"znkr.io/htmldiff/internal/config"
	"znkr.io/htmldiff/internal/htmltok"
	"znkr.io/htmldiff/ses"
)

// Tokenize splits an HTML document into tokens. Every token is a substring of s and the tokens
// concatenate to s. A token is one of
//
//   - a tag, from '<' up to and including the next '>' (or the end of s),
//   - a run of whitespace,
//   - a run of letters, digits, '#' and '@', or
//   - a single character that is none of the above.
//
// The following option is supported: [WordRunes]
func Tokenize(s string, opts ...Option) []string {
	cfg := config.FromOptions(opts, config.WordRunes)
	return htmltok.Split(s, htmltok.WordFunc(cfg.WordRunes))
}

// IsTag reports whether tok is a tag.
func IsTag(tok string) bool {
	return htmltok.IsTag(tok)
}

// Diff compares the HTML documents x and y and returns y with insertions and deletions marked up.
//
// All options are supported.
func Diff[T string | []byte](x, y T, opts ...Option) T {
	cfg := config.FromOptions(opts, config.All)
	xv, yv := byteview.From(x), byteview.From(y)
	xtoks, ytoks, script := align(xv.String(), yv.String(), cfg)

	var b byteview.Builder[T]
	b.Grow(max(xv.Len(), yv.Len()))
	render(xtoks, ytoks, script, b.Emit, cfg)
	return b.Build()
}

// Write compares the HTML documents x and y and writes the result to w. The output is identical to
// [Diff] but streamed through a buffer instead of being kept in memory. The only errors returned
// are errors from w.
//
// All options are supported.
func Write(w io.Writer, x, y []byte, opts ...Option) error {
	cfg := config.FromOptions(opts, config.All)
	xtoks, ytoks, script := align(byteview.From(x).String(), byteview.From(y).String(), cfg)

	// bufio.Writer remembers the first error and ignores all writes afterwards.
	bw := bufio.NewWriter(w)
	render(xtoks, ytoks, script, func(s string) { bw.WriteString(s) }, cfg)
	return bw.Flush()
}

func align(x, y string, cfg config.Config) (xtoks, ytoks []string, script []ses.Edit) {
	isWord := htmltok.WordFunc(cfg.WordRunes)
	xtoks = htmltok.Split(x, isWord)
	ytoks = htmltok.Split(y, isWord)
	return xtoks, ytoks, ses.Align(xtoks, ytoks)
}
