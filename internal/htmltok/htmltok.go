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

// Package htmltok splits HTML documents into the tokens that are compared by the diff.
//
// The tokenizer does not parse HTML. It is a scanner with three states:
//
//   - in a word or other character (the initial state),
//   - in a tag, which starts at '<' and ends at the next '>', and
//   - in a run of whitespace.
//
// Tokens are substrings of the input and therefore never copy document text. A token is either a
// tag, a maximal run of whitespace, a maximal run of word characters, or a single character that
// is none of the above (punctuation).
package htmltok

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type state int

const (
	inWord state = iota
	inTag
	inSpace
)

// Split splits s into tokens. isWord reports whether a rune belongs to a word, see [WordFunc].
func Split(s string, isWord func(rune) bool) []string {
	var toks []string
	start := 0
	st := inWord
	for i := 0; i < len(s); {
		c, size := utf8.DecodeRuneInString(s[i:])
		switch st {
		case inWord:
			switch {
			case c == '<':
				toks = flush(toks, s, start, i)
				start, st = i, inTag
			case isSpace(c):
				toks = flush(toks, s, start, i)
				start, st = i, inSpace
			case isWord(c):
				// continue
			default:
				// Punctuation is always a token of its own.
				toks = flush(toks, s, start, i)
				toks = append(toks, s[i:i+size])
				start = i + size
			}
		case inTag:
			if c == '>' {
				toks = append(toks, s[start:i+size])
				start, st = i+size, inWord
			}
		case inSpace:
			switch {
			case c == '<':
				toks = flush(toks, s, start, i)
				start, st = i, inTag
			case isSpace(c):
				// continue
			default:
				// Leave the whitespace run and scan c again as the start of a new token.
				toks = flush(toks, s, start, i)
				start, st = i, inWord
				continue
			}
		}
		i += size
	}
	return flush(toks, s, start, len(s))
}

func flush(toks []string, s string, start, end int) []string {
	if start == end {
		return toks
	}
	return append(toks, s[start:end])
}

// isSpace reports whether c is ASCII whitespace as defined by the HTML standard.
func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// WordFunc returns a predicate that reports letters, digits and any rune in extra as word
// characters.
func WordFunc(extra string) func(rune) bool {
	return func(c rune) bool {
		return unicode.IsLetter(c) || unicode.IsDigit(c) || strings.ContainsRune(extra, c)
	}
}

// IsTag reports whether tok is tag shaped.
func IsTag(tok string) bool {
	return strings.HasPrefix(tok, "<")
}

// TagName returns the lower case element name of an opening tag like <img src="..."> or <br/>. It
// returns "" for closing tags, comments, doctypes, and tokens that are not tags.
func TagName(tok string) string {
	if !IsTag(tok) || len(tok) < 2 || !isASCIILetter(tok[1]) {
		return ""
	}
	end := 2
	for end < len(tok) {
		switch tok[end] {
		case ' ', '\t', '\n', '\f', '\r', '/', '>':
			return strings.ToLower(tok[1:end])
		}
		end++
	}
	return strings.ToLower(tok[1:end])
}

func isASCIILetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}
