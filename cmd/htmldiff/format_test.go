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
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func TestANSIMarkers(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		noColor  bool
		ins, del marker
	}{
		{
			name:    "enabled",
			enabled: true,
			ins:     marker{"\x1b[32;4m", "\x1b[0m"},
			del:     marker{"\x1b[31;9m", "\x1b[0m"},
		},
		{
			// color.NoColor is set when stdout is not a terminal, e.g. when piping into less -R.
			name:    "enabled-not-a-terminal",
			enabled: true,
			noColor: true,
			ins:     marker{"\x1b[32;4m", "\x1b[0m"},
			del:     marker{"\x1b[31;9m", "\x1b[0m"},
		},
		{
			name:    "disabled",
			enabled: false,
			ins:     marker{"{+", "+}"},
			del:     marker{"[-", "-]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := color.NoColor
			t.Cleanup(func() { color.NoColor = saved })
			color.NoColor = tt.noColor

			ins, del := ansiMarkers(tt.enabled)
			if diff := cmp.Diff(tt.ins, ins); diff != "" {
				t.Errorf("ansiMarkers(%v) insert marker differs [-want,+got]:\n%s", tt.enabled, diff)
			}
			if diff := cmp.Diff(tt.del, del); diff != "" {
				t.Errorf("ansiMarkers(%v) delete marker differs [-want,+got]:\n%s", tt.enabled, diff)
			}
		})
	}
}
