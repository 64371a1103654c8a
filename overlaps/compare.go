// FoundryTools - command line tools for editing OpenType fonts
// Copyright (C) 2026  SolidTux
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package overlaps

import (
	"fmt"
	"math"
	"sort"
)

// Settling reorders contours, moves start points and may flip contour
// direction without changing the geometry.  To decide whether a glyph
// actually changed, outlines are reduced to an unordered set of
// direction-normalized segments with integer coordinates, and the sets
// are compared.

// sameQuadOutline reports whether two quadratic outlines describe the
// same geometry.
func sameQuadOutline(a, b []contour) bool {
	return keysEqual(quadSegmentKeys(a), quadSegmentKeys(b))
}

// sameCubicOutline reports whether two cubic outlines describe the
// same geometry.
func sameCubicOutline(a, b []pathElem) bool {
	return keysEqual(cubicSegmentKeys(a), cubicSegmentKeys(b))
}

func quadSegmentKeys(cs []contour) []string {
	var keys []string
	for _, c := range cs {
		if len(c) < 2 {
			continue
		}
		ext := expandImplied(c)
		n := len(ext)
		for i, cur := range ext {
			if !cur.onCurve {
				continue
			}
			next := ext[(i+1)%n]
			if next.onCurve {
				keys = append(keys, lineKey(cur, next))
			} else {
				end := ext[(i+2)%n]
				keys = append(keys, quadKey(cur, next, end))
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func cubicSegmentKeys(elems []pathElem) []string {
	var keys []string
	var start, cur point
	closeSubpath := func() {
		if cur != start {
			keys = append(keys, lineKey(cur, start))
		}
	}
	first := true
	for _, e := range elems {
		switch e.op {
		case 'm':
			if !first {
				closeSubpath()
			}
			first = false
			start = point{x: e.x, y: e.y}
			cur = start
		case 'l':
			to := point{x: e.x, y: e.y}
			if to != cur {
				keys = append(keys, lineKey(cur, to))
			}
			cur = to
		case 'c':
			to := point{x: e.x, y: e.y}
			keys = append(keys, cubicKey(cur,
				point{x: e.x1, y: e.y1}, point{x: e.x2, y: e.y2}, to))
			cur = to
		}
	}
	if !first {
		closeSubpath()
	}
	sort.Strings(keys)
	return keys
}

func lineKey(a, b point) string {
	if pointLess(b, a) {
		a, b = b, a
	}
	return fmt.Sprintf("L %s %s", pointKey(a), pointKey(b))
}

func quadKey(a, c, b point) string {
	if pointLess(b, a) {
		a, b = b, a
	}
	return fmt.Sprintf("Q %s %s %s", pointKey(a), pointKey(c), pointKey(b))
}

func cubicKey(a, c1, c2, b point) string {
	if pointLess(b, a) {
		a, b = b, a
		c1, c2 = c2, c1
	}
	return fmt.Sprintf("C %s %s %s %s",
		pointKey(a), pointKey(c1), pointKey(c2), pointKey(b))
}

func pointKey(p point) string {
	return fmt.Sprintf("%d,%d", int(math.Round(p.x)), int(math.Round(p.y)))
}

func pointLess(a, b point) bool {
	ax, ay := math.Round(a.x), math.Round(a.y)
	bx, by := math.Round(b.x), math.Round(b.y)
	if ax != bx {
		return ax < bx
	}
	return ay < by
}

func keysEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
