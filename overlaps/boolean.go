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

	"github.com/tdewolff/canvas"
)

// This file is the only place where the boolean path engine is
// touched.  Outlines enter as TrueType point contours or as cubic path
// elements and leave the same way; the canvas path type does not
// escape.  The engine panics on some degenerate inputs, so every entry
// point converts panics into errors for the retry logic upstream.

// settleQuad removes self-intersections from a quadratic outline using
// the nonzero winding rule.
func settleQuad(cs []contour) (out []contour, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("settle: %v", r)
		}
	}()
	res := quadPath(cs).Settle(canvas.NonZero)
	return quadContours(res)
}

// quadsIntersect reports whether two quadratic outlines overlap.  When
// the engine cannot decide, the outlines are treated as overlapping so
// that the caller falls back to the full decompose-and-settle path.
func quadsIntersect(a, b []contour) (res bool) {
	defer func() {
		if recover() != nil {
			res = true
		}
	}()
	return !quadPath(a).And(quadPath(b)).Empty()
}

// quadPath converts TrueType contours into a path.  Implied on-curve
// points between consecutive off-curve points are inserted first.
func quadPath(cs []contour) *canvas.Path {
	p := &canvas.Path{}
	for _, c := range cs {
		if len(c) < 2 {
			continue
		}
		ext := expandImplied(c)

		// rotate so that the contour starts on the curve
		start := 0
		for start < len(ext) && !ext[start].onCurve {
			start++
		}
		if start == len(ext) {
			continue
		}
		n := len(ext)
		at := func(i int) point { return ext[(start+i)%n] }

		p.MoveTo(at(0).x, at(0).y)
		i := 1
		for i <= n {
			cur := at(i)
			if cur.onCurve {
				if i == n {
					break
				}
				p.LineTo(cur.x, cur.y)
				i++
			} else {
				next := at(i + 1)
				p.QuadTo(cur.x, cur.y, next.x, next.y)
				i += 2
			}
		}
		p.Close()
	}
	return p
}

// expandImplied inserts the on-curve midpoints implied between
// consecutive off-curve points, including across the wrap-around.
func expandImplied(c contour) contour {
	n := len(c)
	ext := make(contour, 0, n)
	for i, cur := range c {
		prev := c[(i+n-1)%n]
		if !prev.onCurve && !cur.onCurve {
			ext = append(ext, point{
				x:       (prev.x + cur.x) / 2,
				y:       (prev.y + cur.y) / 2,
				onCurve: true,
			})
		}
		ext = append(ext, cur)
	}
	return ext
}

// quadContours converts a settled path back into TrueType contours.
func quadContours(p *canvas.Path) ([]contour, error) {
	var cs []contour
	var cur contour
	flush := func() {
		// The closing line back to the start point is implicit in
		// TrueType; a duplicated start point is dropped.
		if len(cur) > 1 && cur[len(cur)-1].onCurve &&
			cur[len(cur)-1].x == cur[0].x && cur[len(cur)-1].y == cur[0].y {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 1 {
			cs = append(cs, cur)
		}
		cur = nil
	}

	for _, seg := range p.Segments() {
		switch seg.Cmd {
		case canvas.MoveToCmd:
			flush()
			cur = contour{{x: seg.End.X, y: seg.End.Y, onCurve: true}}
		case canvas.LineToCmd:
			cur = append(cur, point{x: seg.End.X, y: seg.End.Y, onCurve: true})
		case canvas.QuadToCmd:
			cp := seg.CP1()
			cur = append(cur,
				point{x: cp.X, y: cp.Y},
				point{x: seg.End.X, y: seg.End.Y, onCurve: true})
		case canvas.CloseCmd:
			flush()
		default:
			return nil, fmt.Errorf("unexpected path command %v", seg.Cmd)
		}
	}
	flush()
	return cs, nil
}

// A pathElem is one command of a cubic outline.  The op is 'm', 'l' or
// 'c'; for 'c' the two control points are in (x1, y1) and (x2, y2).
// Subpaths close implicitly at the next 'm' and at the end.
type pathElem struct {
	op                   byte
	x1, y1, x2, y2, x, y float64
}

func moveElem(x, y float64) pathElem { return pathElem{op: 'm', x: x, y: y} }
func lineElem(x, y float64) pathElem { return pathElem{op: 'l', x: x, y: y} }
func curveElem(x1, y1, x2, y2, x, y float64) pathElem {
	return pathElem{op: 'c', x1: x1, y1: y1, x2: x2, y2: y2, x: x, y: y}
}

// settleCubic removes self-intersections from a cubic outline.
func settleCubic(elems []pathElem) (out []pathElem, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("settle: %v", r)
		}
	}()
	res := cubicPath(elems).Settle(canvas.NonZero)
	return cubicElems(res)
}

func cubicPath(elems []pathElem) *canvas.Path {
	p := &canvas.Path{}
	open := false
	for _, e := range elems {
		switch e.op {
		case 'm':
			if open {
				p.Close()
			}
			p.MoveTo(e.x, e.y)
			open = true
		case 'l':
			p.LineTo(e.x, e.y)
		case 'c':
			p.CubeTo(e.x1, e.y1, e.x2, e.y2, e.x, e.y)
		}
	}
	if open {
		p.Close()
	}
	return p
}

func cubicElems(p *canvas.Path) ([]pathElem, error) {
	var elems []pathElem
	var startX, startY float64
	for _, seg := range p.Segments() {
		switch seg.Cmd {
		case canvas.MoveToCmd:
			startX, startY = seg.End.X, seg.End.Y
			elems = append(elems, moveElem(seg.End.X, seg.End.Y))
		case canvas.LineToCmd:
			elems = append(elems, lineElem(seg.End.X, seg.End.Y))
		case canvas.CubeToCmd:
			cp1, cp2 := seg.CP1(), seg.CP2()
			elems = append(elems, curveElem(cp1.X, cp1.Y, cp2.X, cp2.Y, seg.End.X, seg.End.Y))
		case canvas.QuadToCmd:
			// lift the quadratic segment to its cubic form
			cp := seg.CP1()
			x0, y0 := seg.Start.X, seg.Start.Y
			elems = append(elems, curveElem(
				x0+2*(cp.X-x0)/3, y0+2*(cp.Y-y0)/3,
				seg.End.X+2*(cp.X-seg.End.X)/3, seg.End.Y+2*(cp.Y-seg.End.Y)/3,
				seg.End.X, seg.End.Y))
		case canvas.CloseCmd:
			// drop a redundant line back to the subpath start
			if n := len(elems); n > 0 {
				last := elems[n-1]
				if last.op == 'l' && last.x == startX && last.y == startY {
					elems = elems[:n-1]
				}
			}
		default:
			return nil, fmt.Errorf("unexpected path command %v", seg.Cmd)
		}
	}
	return elems, nil
}
