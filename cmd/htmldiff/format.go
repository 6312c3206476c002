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
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// colorEnabled resolves the --color mode for out.
func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := out.(*os.File)
		if !ok {
			return false, nil
		}
		_, noColor := os.LookupEnv("NO_COLOR")
		return !noColor && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode %q, want auto, on, or off", mode)
	}
}

// ansiMarkers returns the markers for terminal output. Without color, insertions and deletions
// are marked like wdiff does it.
func ansiMarkers(enabled bool) (ins, del marker) {
	if !enabled {
		return marker{"{+", "+}"}, marker{"[-", "-]"}
	}
	return colorMarker(color.New(color.FgGreen, color.Underline)),
		colorMarker(color.New(color.FgRed, color.CrossedOut))
}

// colorMarker renders the escape sequences of c regardless of color.NoColor, which is set whenever
// stdout is not a terminal.
func colorMarker(c *color.Color) marker {
	c.EnableColor()
	var open strings.Builder
	c.SetWriter(&open)
	return marker{Open: open.String(), Close: fmt.Sprintf("\x1b[%dm", color.Reset)}
}
