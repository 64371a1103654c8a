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
	"bytes"
	"fmt"

	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyph"

	"github.com/SolidTux/foundrytools/fontfile"
)

// RemoveCFF removes overlaps from the charstrings of an OpenType-CFF
// font.  Glyph widths are preserved; the CFF table is re-serialized
// only when at least one glyph changed.
func RemoveCFF(f *fontfile.Font, opts Options) ([]glyph.ID, error) {
	data, ok := f.Tables["CFF "]
	if !ok {
		return nil, &fontfile.MissingTableError{Name: "CFF "}
	}
	font, err := cff.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("CFF: %w", err)
	}

	var modified []glyph.ID
	for i, g := range font.Outlines.Glyphs {
		gid := glyph.ID(i)
		if g == nil || len(g.Cmds) == 0 {
			continue
		}
		elems := charstringElems(g)

		settled, err := settleElems(elems, gid, opts)
		if err != nil {
			if !opts.IgnoreErrors {
				return nil, err
			}
			opts.warn(fmt.Sprintf("failed to remove overlaps from glyph %d: %v", gid, err))
			continue
		}
		if sameCubicOutline(elems, settled) {
			continue
		}

		font.Outlines.Glyphs[i] = rebuildGlyph(g, settled)
		modified = append(modified, gid)
	}

	if len(modified) > 0 {
		buf := &bytes.Buffer{}
		err := font.Write(buf)
		if err != nil {
			return nil, fmt.Errorf("CFF: %w", err)
		}
		f.SetTable("CFF ", buf.Bytes())
	}
	return modified, nil
}

// charstringElems converts a charstring command list into path
// elements.
func charstringElems(g *cff.Glyph) []pathElem {
	var elems []pathElem
	for _, cmd := range g.Cmds {
		switch cmd.Op {
		case cff.OpMoveTo:
			elems = append(elems, moveElem(cmd.Args[0], cmd.Args[1]))
		case cff.OpLineTo:
			elems = append(elems, lineElem(cmd.Args[0], cmd.Args[1]))
		case cff.OpCurveTo:
			elems = append(elems, curveElem(
				cmd.Args[0], cmd.Args[1],
				cmd.Args[2], cmd.Args[3],
				cmd.Args[4], cmd.Args[5]))
		}
	}
	return elems
}

func settleElems(elems []pathElem, gid glyph.ID, opts Options) ([]pathElem, error) {
	settled, err := settleCubic(elems)
	if err == nil {
		return settled, nil
	}

	settled, retryErr := settleCubic(roundElems(elems))
	if retryErr != nil {
		return nil, fmt.Errorf("glyph %d: %w", gid, err)
	}
	opts.warn(fmt.Sprintf("glyph %d settled only after rounding coordinates", gid))
	return settled, nil
}

func roundElems(elems []pathElem) []pathElem {
	out := make([]pathElem, len(elems))
	for i, e := range elems {
		out[i] = pathElem{
			op: e.op,
			x1: float64(roundToInt16(e.x1)), y1: float64(roundToInt16(e.y1)),
			x2: float64(roundToInt16(e.x2)), y2: float64(roundToInt16(e.y2)),
			x:  float64(roundToInt16(e.x)), y: float64(roundToInt16(e.y)),
		}
	}
	return out
}

// rebuildGlyph re-encodes a settled outline as a new glyph with the
// original name and width.  Coordinates are rounded to integers, like
// the rewritten TrueType outlines.
func rebuildGlyph(g *cff.Glyph, elems []pathElem) *cff.Glyph {
	ng := cff.NewGlyph(g.Name, g.Width)
	rnd := func(v float64) float64 { return float64(roundToInt16(v)) }
	for _, e := range elems {
		switch e.op {
		case 'm':
			ng.MoveTo(rnd(e.x), rnd(e.y))
		case 'l':
			ng.LineTo(rnd(e.x), rnd(e.y))
		case 'c':
			ng.CurveTo(rnd(e.x1), rnd(e.y1), rnd(e.x2), rnd(e.y2), rnd(e.x), rnd(e.y))
		}
	}
	return ng
}
