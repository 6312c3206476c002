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

// point is the end of a snake in the edit graph.
type point struct {
	x, y int
	prev int // index of the previous point on the path in onp.points, -1 for the start
}

type onp[T any] struct {
	a, b    []T // a is never longer than b
	m, n    int // len(a), len(b)
	offset  int // offset to map diagonals into ids, m+1 to keep all indices >= 0
	reverse bool
	eq      func(a, b T) bool

	ids    []int   // ids[k+offset] is the index of the furthest point on diagonal k in points
	points []point // arena of all points, referenced by ids and point.prev
}

func compare[T any](x, y []T, eq func(a, b T) bool) []Edit {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}
	var o onp[T]
	fp := o.init(x, y, eq)
	o.search(fp)
	return o.script()
}

// init prepares the search and returns the furthest point vector.
func (o *onp[T]) init(x, y []T, eq func(a, b T) bool) (fp []int) {
	o.reverse = len(x) > len(y)
	if o.reverse {
		x, y = y, x
	}
	o.a, o.b = x, y
	o.m, o.n = len(x), len(y)
	o.offset = o.m + 1
	o.eq = eq

	// Diagonals range from -(m+1) to n+1, both fp and ids need one entry per diagonal.
	size := o.m + o.n + 3
	buf := make([]int, 2*size)
	for i := range buf {
		buf[i] = -1
	}
	fp, o.ids = buf[:size:size], buf[size:]
	o.points = make([]point, 0, size)
	return fp
}

// search computes furthest points for an increasing number of deletions p until diagonal delta
// reaches the end of b.
func (o *onp[T]) search(fp []int) {
	delta := o.n - o.m
	for p := 0; ; p++ {
		// The order is important: diagonals below delta ascending, diagonals above delta
		// descending, and delta last. Otherwise snake would see stale neighbours.
		for k := -p; k < delta; k++ {
			ko := k + o.offset
			fp[ko] = o.snake(k, fp[ko-1]+1, fp[ko+1])
		}
		for k := delta + p; k > delta; k-- {
			ko := k + o.offset
			fp[ko] = o.snake(k, fp[ko-1]+1, fp[ko+1])
		}
		ko := delta + o.offset
		fp[ko] = o.snake(delta, fp[ko-1]+1, fp[ko+1])
		if fp[ko] >= o.n {
			return
		}
	}
}

// snake follows diagonal k from the further of the two candidate rows for as long as the elements
// match, records the end point and returns its row. fp1 is the row reached from diagonal k-1 (a
// step down) and fp2 the row reached from diagonal k+1 (a step right).
func (o *onp[T]) snake(k, fp1, fp2 int) int {
	y := max(fp1, fp2)
	x := y - k
	for x < o.m && y < o.n && o.eq(o.a[x], o.b[y]) {
		x++
		y++
	}

	ko := k + o.offset
	// Ties prefer k-1. Changing >= to > swaps the order of deletions and insertions.
	prev := o.ids[ko+1]
	if fp1 >= fp2 {
		prev = o.ids[ko-1]
	}
	o.ids[ko] = len(o.points)
	o.points = append(o.points, point{x: x, y: y, prev: prev})
	return y
}

// script follows the path back from (m,n), and translates it into an edit script.
func (o *onp[T]) script() []Edit {
	last := o.ids[o.n-o.m+o.offset]
	n := 0
	for i := last; i != -1; i = o.points[i].prev {
		n++
	}
	route := make([]point, n)
	for i, j := last, n-1; i != -1; i, j = o.points[i].prev, j-1 {
		route[j] = o.points[i]
	}

	script := make([]Edit, 0, o.m+o.n)
	px, py := 0, 0
	for _, w := range route {
		for px < w.x || py < w.y {
			// Compare the diagonal of the cursor (py - px) with the diagonal of the next point
			// (w.y - w.x). Until the two are on the same diagonal, a step down or right is needed.
			switch {
			case w.y+px > w.x+py:
				script = append(script, o.add(py))
				py++
			case w.y+px < w.x+py:
				script = append(script, o.del(px))
				px++
			default:
				script = append(script, o.common(px, py))
				px++
				py++
			}
		}
	}
	return script
}

func (o *onp[T]) add(y int) Edit {
	if o.reverse {
		return Edit{Op: Delete, Old: y, New: -1}
	}
	return Edit{Op: Add, Old: -1, New: y}
}

func (o *onp[T]) del(x int) Edit {
	if o.reverse {
		return Edit{Op: Add, Old: -1, New: x}
	}
	return Edit{Op: Delete, Old: x, New: -1}
}

func (o *onp[T]) common(x, y int) Edit {
	if o.reverse {
		return Edit{Op: Common, Old: y, New: x}
	}
	return Edit{Op: Common, Old: x, New: y}
}
