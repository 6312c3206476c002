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
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		extra string
		want  []string
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "paragraph",
			in:   "<p>Hello, world!</p>",
			want: []string{"<p>", "Hello", ",", " ", "world", "!", "</p>"},
		},
		{
			name: "whitespace-runs",
			in:   "  \t<b>x</b>\n",
			want: []string{"  \t", "<b>", "x", "</b>", "\n"},
		},
		{
			name: "whitespace-between-words",
			in:   "a  b",
			want: []string{"a", "  ", "b"},
		},
		{
			name: "whitespace-before-punctuation",
			in:   "a ,b",
			want: []string{"a", " ", ",", "b"},
		},
		{
			name: "tag-with-attributes",
			in:   `<a href="x y" class=link>link</a>`,
			want: []string{`<a href="x y" class=link>`, "link", "</a>"},
		},
		{
			name: "adjacent-tags",
			in:   "<ul><li>",
			want: []string{"<ul>", "<li>"},
		},
		{
			name: "unterminated-tag",
			in:   "foo <p class",
			want: []string{"foo", " ", "<p class"},
		},
		{
			name: "multi-byte-words",
			in:   "みんか かん",
			want: []string{"みんか", " ", "かん"},
		},
		{
			name: "hash-and-at",
			in:   "#tag @user a.b",
			want: []string{"#tag", " ", "@user", " ", "a", ".", "b"},
		},
		{
			name: "entity",
			in:   "&amp;",
			want: []string{"&", "amp", ";"},
		},
		{
			name: "repeated-punctuation",
			in:   "!!",
			want: []string{"!", "!"},
		},
		{
			name: "digits",
			in:   "v1.25",
			want: []string{"v1", ".", "25"},
		},
		{
			name:  "extra-word-runes",
			in:    "snake_case and-more",
			extra: "_",
			want:  []string{"snake_case", " ", "and", "-", "more"},
		},
		{
			name: "invalid-utf8",
			in:   "\xffa",
			want: []string{"\xff", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.in, WordFunc("#@"+tt.extra))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) differs [-want,+got]:\n%s", tt.in, diff)
			}
		})
	}
}

func TestSplit_sharesMemory(t *testing.T) {
	in := "<p>shared</p>"
	toks := Split(in, WordFunc("#@"))
	base := uintptr(unsafe.Pointer(unsafe.StringData(in)))
	offset := 0
	for _, tok := range toks {
		if got := uintptr(unsafe.Pointer(unsafe.StringData(tok))); got != base+uintptr(offset) {
			t.Errorf("token %q does not point into the input", tok)
		}
		offset += len(tok)
	}
}

func FuzzSplit(f *testing.F) {
	f.Add("<p>Hello, world!</p>")
	f.Add("a <b c=d>e</b>\n\n<img src=x.png>")
	f.Add("<unterminated")
	isWord := WordFunc("#@")
	f.Fuzz(func(t *testing.T, in string) {
		toks := Split(in, isWord)
		if got := strings.Join(toks, ""); got != in {
			t.Fatalf("joined tokens %q != input %q", got, in)
		}
		for _, tok := range toks {
			if tok == "" {
				t.Fatalf("Split(%q) returned an empty token", in)
			}
			if IsTag(tok) {
				if i := strings.IndexByte(tok, '>'); i >= 0 && i != len(tok)-1 {
					t.Fatalf("tag token %q contains '>' before its end", tok)
				}
			}
		}
	})
}

func TestTagName(t *testing.T) {
	tests := []struct {
		tok  string
		want string
	}{
		{"<img>", "img"},
		{`<IMG src="x.png">`, "img"},
		{"<br/>", "br"},
		{"<p\nclass=a>", "p"},
		{"<my-widget>", "my-widget"},
		{"<p", "p"},
		{"</p>", ""},
		{"<!-- comment -->", ""},
		{"<!DOCTYPE html>", ""},
		{"<", ""},
		{"< p>", ""},
		{"img", ""},
	}
	for _, tt := range tests {
		if got := TagName(tt.tok); got != tt.want {
			t.Errorf("TagName(%q) = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestIsTag(t *testing.T) {
	for tok, want := range map[string]bool{
		"<p>":  true,
		"</p>": true,
		"<":    true,
		"p":    false,
		" ":    false,
		"":     false,
		">":    false,
	} {
		if got := IsTag(tok); got != want {
			t.Errorf("IsTag(%q) = %v, want %v", tok, got, want)
		}
	}
}

func TestTagSet(t *testing.T) {
	s := NewTagSet("img", "My-Widget", " ", "")
	if got, want := s.Len(), 2; got != want {
		t.Errorf("Len() = %v, want %v", got, want)
	}
	for tok, want := range map[string]bool{
		`<img src="a.png">`: true,
		"<IMG/>":            true,
		"</img>":            false,
		"<my-widget a=b>":   true,
		"<video>":           false,
		"img":               false,
	} {
		if got := s.Contains(tok); got != want {
			t.Errorf("Contains(%q) = %v, want %v", tok, got, want)
		}
	}

	var empty TagSet
	if empty.Contains("<img>") {
		t.Errorf("zero TagSet contains <img>")
	}
}

func TestTagSetUnknown(t *testing.T) {
	s := NewTagSet("img", "video", "x-foo", "imgg", "Pictur")
	want := []string{"imgg", "pictur"}
	if diff := cmp.Diff(want, s.Unknown()); diff != "" {
		t.Errorf("Unknown() differs [-want,+got]:\n%s", diff)
	}

	var empty TagSet
	if got := empty.Unknown(); got != nil {
		t.Errorf("zero TagSet Unknown() = %v, want nil", got)
	}
}

func TestTagSetContainsAlloc(t *testing.T) {
	s := NewTagSet("img", "my-widget")
	allocs := testing.AllocsPerRun(100, func() {
		s.Contains(`<img src="a.png">`)
		s.Contains("<my-widget>")
		s.Contains("<p>")
	})
	if allocs != 0 {
		t.Errorf("Contains(...) allocated %v times, want 0", allocs)
	}
}
