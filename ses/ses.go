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

package ses

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Common Op = iota // The elements at Old and New are equal
	Add              // The element at New only exists in the new slice
	Delete           // The element at Old only exists in the old slice
)

// Edit describes a single operation of an edit script.
//
//   - For Common, Old and New are the indices of the matching elements.
//   - For Add, New is the index of the inserted element and Old is -1.
//   - For Delete, Old is the index of the deleted element and New is -1.
type Edit struct {
	Op       Op
	Old, New int
}

// Align compares x and y and returns the shortest edit script that transforms x into y.
//
// The script contains one edit for every element of x and y (a Common edit covers one element of
// each), in order. If x and y are identical, it consists of Common edits only. If both are empty,
// the result is nil.
func Align[T comparable](x, y []T) []Edit {
	// Replace every element with a small integer id, comparing those is much cheaper than
	// comparing arbitrary T. Elements of y that don't appear in x never match and get id -1.
	ids := make(map[T]int, len(x))
	buf := make([]int, len(x)+len(y))
	x0, y0 := buf[:len(x)], buf[len(x):]
	for s, v := range x {
		id, ok := ids[v]
		if !ok {
			id = len(ids)
			ids[v] = id
		}
		x0[s] = id
	}
	for t, v := range y {
		id, ok := ids[v]
		if !ok {
			id = -1
		}
		y0[t] = id
	}
	return compare(x0, y0, func(a, b int) bool { return a == b })
}

// AlignFunc compares x and y using the provided equality function and returns the shortest edit
// script that transforms x into y. See [Align] for details.
func AlignFunc[T any](x, y []T, eq func(a, b T) bool) []Edit {
	return compare(x, y, eq)
}

// Distance returns the number of Add and Delete edits in script.
func Distance(script []Edit) int {
	d := 0
	for _, e := range script {
		if e.Op != Common {
			d++
		}
	}
	return d
}
