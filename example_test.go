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

package htmldiff_test

import (
	"fmt"
	"os"
	"strings"

	"znkr.io/htmldiff"
	"znkr.io/htmldiff/ses"
)

func ExampleDiff() {
	x := `<p>The quick brown fox</p>`
	y := `<p>The slow brown fox <img src="fox.png"></p>`
	fmt.Println(htmldiff.Diff(x, y))
	// Output:
	// <p>The <del>quick</del><ins>slow</ins> brown fox<ins> </ins><ins><img src="fox.png"></ins></p>
}

func ExampleCoalesce() {
	x := `<p>Hello world</p>`
	y := `<p>Hello brave new world</p>`
	fmt.Println(htmldiff.Diff(x, y, htmldiff.Coalesce(), htmldiff.Insertions(`<ins class="diff">`, "</ins>")))
	// Output:
	// <p>Hello <ins class="diff">brave new </ins>world</p>
}

func ExampleWrite() {
	x := []byte("<ul><li>one</li></ul>")
	y := []byte("<ul><li>one</li><li>two</li></ul>")
	if err := htmldiff.Write(os.Stdout, x, y); err != nil {
		panic(err)
	}
	// Output:
	// <ul><li>one</li><li><ins>two</ins></li></ul>
}

// Render gives access to the individual steps. This example shows the edit script as a
// pseudo-unified diff of tokens.
func ExampleRender() {
	x := htmldiff.Tokenize("<p>foo bar</p>")
	y := htmldiff.Tokenize("<p>foo baz</p>")
	script := ses.Align(x, y)
	for _, e := range script {
		switch e.Op {
		case ses.Common:
			fmt.Printf(" %q\n", x[e.Old])
		case ses.Delete:
			fmt.Printf("-%q\n", x[e.Old])
		case ses.Add:
			fmt.Printf("+%q\n", y[e.New])
		}
	}

	var sb strings.Builder
	htmldiff.Render(x, y, script, func(s string) { sb.WriteString(s) })
	fmt.Println(sb.String())
	// Output:
	//  "<p>"
	//  "foo"
	//  " "
	// -"bar"
	// +"baz"
	//  "</p>"
	// <p>foo <del>bar</del><ins>baz</ins></p>
}

func ExampleTokenize() {
	for _, tok := range htmldiff.Tokenize("<p>Hello, world!</p>") {
		fmt.Printf("%q ", tok)
	}
	fmt.Println()
	// Output:
	// "<p>" "Hello" "," " " "world" "!" "</p>"
}
