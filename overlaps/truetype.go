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
	"sort"

	"seehuhn.de/go/sfnt/glyph"

	"github.com/SolidTux/foundrytools/fontfile"
)

// RemoveTrueType removes overlaps from the glyf outlines of a font.
// Simple glyphs are settled in place; composite glyphs are flattened
// to simple glyphs, but only when their components overlap each other.
// The IDs of the rewritten glyphs are returned.
func RemoveTrueType(f *fontfile.Font, opts Options) ([]glyph.ID, error) {
	head, err := f.Head()
	if err != nil {
		return nil, err
	}
	maxp, err := f.Maxp()
	if err != nil {
		return nil, err
	}
	hmtx, err := f.Hmtx()
	if err != nil {
		return nil, err
	}
	glyfData, ok := f.Tables["glyf"]
	if !ok {
		return nil, &fontfile.MissingTableError{Name: "glyf"}
	}
	locaData, ok := f.Tables["loca"]
	if !ok {
		return nil, &fontfile.MissingTableError{Name: "loca"}
	}

	glyphs, err := splitGlyf(glyfData, locaData, head.IndexToLocFormat(), maxp.NumGlyphs())
	if err != nil {
		return nil, fmt.Errorf("glyf: %w", err)
	}

	order, depths, err := processingOrder(glyphs)
	if err != nil {
		return nil, fmt.Errorf("glyf: %w", err)
	}

	var modified []glyph.ID
	for _, gid := range order {
		changed, err := removeGlyphOverlaps(glyphs, gid, opts)
		if err != nil {
			if !opts.IgnoreErrors {
				return nil, err
			}
			opts.warn(fmt.Sprintf("failed to remove overlaps from glyph %d: %v", gid, err))
			continue
		}
		if changed {
			modified = append(modified, gid)
			var xMin int16
			if len(glyphs[gid]) >= 10 {
				xMin, _, _, _ = glyphBBox(glyphs[gid])
			}
			if hmtx.LSB(int(gid)) != xMin {
				hmtx.SetLSB(int(gid), xMin)
			}
		}
	}

	if !opts.KeepHinting {
		err := stripHinting(glyphs)
		if err != nil {
			return nil, fmt.Errorf("glyf: %w", err)
		}
	}

	newGlyf, newLoca, locaFormat := joinGlyf(glyphs)
	f.SetTable("glyf", newGlyf)
	f.SetTable("loca", newLoca)
	head.SetIndexToLocFormat(locaFormat)

	refreshBBox(head, glyphs)
	if maxp.HasProfile() {
		refreshMaxp(maxp, glyphs, depths)
	}

	return modified, nil
}

// processingOrder returns the glyph IDs sorted so that simple glyphs
// come first and composites follow by increasing component depth.  By
// the time a composite is tested for component intersections, its base
// glyphs have already been settled.
func processingOrder(glyphs [][]byte) ([]glyph.ID, []int, error) {
	depths := make([]int, len(glyphs))
	for i := range depths {
		depths[i] = -1
	}

	var depth func(gid glyph.ID, seen int) (int, error)
	depth = func(gid glyph.ID, seen int) (int, error) {
		if int(gid) >= len(glyphs) {
			return 0, fmt.Errorf("glyph %d: component out of range", gid)
		}
		if seen > len(glyphs) {
			return 0, fmt.Errorf("glyph %d: component cycle", gid)
		}
		if depths[gid] >= 0 {
			return depths[gid], nil
		}
		d := 0
		if isComposite(glyphs[gid]) {
			components, err := parseComposite(glyphs[gid])
			if err != nil {
				return 0, fmt.Errorf("glyph %d: %w", gid, err)
			}
			for _, c := range components {
				cd, err := depth(c.gid, seen+1)
				if err != nil {
					return 0, err
				}
				d = max(d, cd+1)
			}
		}
		depths[gid] = d
		return d, nil
	}

	order := make([]glyph.ID, len(glyphs))
	for i := range order {
		gid := glyph.ID(i)
		order[i] = gid
		if _, err := depth(gid, 0); err != nil {
			return nil, nil, err
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return depths[order[i]] < depths[order[j]]
	})
	return order, depths, nil
}

// removeGlyphOverlaps settles a single glyph and replaces its record
// when the settled outline differs.  Composites are decomposed only
// when their components overlap.
func removeGlyphOverlaps(glyphs [][]byte, gid glyph.ID, opts Options) (bool, error) {
	data := glyphs[gid]
	n := numContours(data)

	var outline []contour
	switch {
	case n > 0:
		var err error
		outline, err = decodeSimple(data)
		if err != nil {
			return false, fmt.Errorf("glyph %d: %w", gid, err)
		}
	case n < 0:
		overlapping, err := componentsOverlap(glyphs, data)
		if err != nil {
			return false, fmt.Errorf("glyph %d: %w", gid, err)
		}
		if !overlapping {
			return false, nil
		}
		outline, err = resolveOutline(glyphs, gid, 0)
		if err != nil {
			return false, fmt.Errorf("glyph %d: %w", gid, err)
		}
	default:
		return false, nil
	}

	settled, err := settleOutline(outline, gid, opts)
	if err != nil {
		return false, err
	}
	if sameQuadOutline(outline, settled) {
		return false, nil
	}

	data, err = encodeSimple(settled)
	if err != nil {
		return false, fmt.Errorf("glyph %d: %w", gid, err)
	}
	glyphs[gid] = data
	return true, nil
}

// settleOutline settles the outline and, if the engine fails, retries
// once with coordinates rounded to integers.
func settleOutline(outline []contour, gid glyph.ID, opts Options) ([]contour, error) {
	settled, err := settleQuad(outline)
	if err == nil {
		return settled, nil
	}

	settled, retryErr := settleQuad(roundContours(outline))
	if retryErr != nil {
		return nil, fmt.Errorf("glyph %d: %w", gid, err)
	}
	opts.warn(fmt.Sprintf("glyph %d settled only after rounding coordinates", gid))
	return settled, nil
}

func roundContours(cs []contour) []contour {
	out := make([]contour, len(cs))
	for i, c := range cs {
		rc := make(contour, len(c))
		for j, p := range c {
			rc[j] = point{
				x:       float64(roundToInt16(p.x)),
				y:       float64(roundToInt16(p.y)),
				onCurve: p.onCurve,
			}
		}
		out[i] = rc
	}
	return out
}

// componentsOverlap reports whether any two components of a composite
// glyph intersect.  Single-component composites never overlap.
func componentsOverlap(glyphs [][]byte, data []byte) (bool, error) {
	components, err := parseComposite(data)
	if err != nil {
		return false, err
	}
	if len(components) < 2 {
		return false, nil
	}

	outlines := make([][]contour, len(components))
	for i, c := range components {
		child, err := resolveOutline(glyphs, c.gid, 1)
		if err != nil {
			return false, err
		}
		outlines[i] = transformOutline(&c, child)
	}

	for i := 0; i < len(outlines); i++ {
		for j := i + 1; j < len(outlines); j++ {
			if quadsIntersect(outlines[i], outlines[j]) {
				return true, nil
			}
		}
	}
	return false, nil
}

// resolveOutline returns the flattened outline of a glyph, with all
// component transformations applied.
func resolveOutline(glyphs [][]byte, gid glyph.ID, depth int) ([]contour, error) {
	if depth > len(glyphs) {
		return nil, fmt.Errorf("component cycle at glyph %d", gid)
	}
	if int(gid) >= len(glyphs) {
		return nil, fmt.Errorf("component glyph %d out of range", gid)
	}
	data := glyphs[gid]

	if !isComposite(data) {
		return decodeSimple(data)
	}

	components, err := parseComposite(data)
	if err != nil {
		return nil, err
	}
	var outline []contour
	for _, c := range components {
		child, err := resolveOutline(glyphs, c.gid, depth+1)
		if err != nil {
			return nil, err
		}
		outline = append(outline, transformOutline(&c, child)...)
	}
	return outline, nil
}

func transformOutline(c *component, cs []contour) []contour {
	out := make([]contour, len(cs))
	for i, src := range cs {
		tc := make(contour, len(src))
		for j, p := range src {
			tc[j] = c.transform(p)
		}
		out[i] = tc
	}
	return out
}

func stripHinting(glyphs [][]byte) error {
	for gid, data := range glyphs {
		switch {
		case numContours(data) > 0:
			glyphs[gid] = stripSimpleHinting(data)
		case isComposite(data):
			stripped, err := stripCompositeHinting(data)
			if err != nil {
				return fmt.Errorf("glyph %d: %w", gid, err)
			}
			glyphs[gid] = stripped
		}
	}
	return nil
}

// refreshBBox recomputes the font bounding box in the "head" table
// from the per-glyph bounding boxes.
func refreshBBox(head *fontfile.Head, glyphs [][]byte) {
	var xMin, yMin, xMax, yMax int16
	first := true
	for _, data := range glyphs {
		if len(data) == 0 {
			continue
		}
		gxMin, gyMin, gxMax, gyMax := glyphBBox(data)
		if first {
			xMin, yMin, xMax, yMax = gxMin, gyMin, gxMax, gyMax
			first = false
			continue
		}
		xMin = min(xMin, gxMin)
		yMin = min(yMin, gyMin)
		xMax = max(xMax, gxMax)
		yMax = max(yMax, gyMax)
	}
	if !first {
		head.SetBBox(xMin, yMin, xMax, yMax)
	}
}

// refreshMaxp recomputes the glyph complexity limits of a version 1.0
// "maxp" table.
func refreshMaxp(maxp *fontfile.Maxp, glyphs [][]byte, depths []int) {
	var maxPoints, maxContours int
	var maxCompPoints, maxCompContours int
	var maxInstr, maxElements, maxDepth int

	for gid, data := range glyphs {
		switch {
		case numContours(data) > 0:
			cs, err := decodeSimple(data)
			if err != nil {
				continue
			}
			points := 0
			for _, c := range cs {
				points += len(c)
			}
			maxPoints = max(maxPoints, points)
			maxContours = max(maxContours, len(cs))
			maxInstr = max(maxInstr, simpleInstructionLength(data))
		case isComposite(data):
			components, err := parseComposite(data)
			if err != nil {
				continue
			}
			maxElements = max(maxElements, len(components))
			maxDepth = max(maxDepth, depths[gid])

			flat, err := resolveOutline(glyphs, glyph.ID(gid), 0)
			if err != nil {
				continue
			}
			points := 0
			for _, c := range flat {
				points += len(c)
			}
			maxCompPoints = max(maxCompPoints, points)
			maxCompContours = max(maxCompContours, len(flat))
		}
	}

	maxp.SetMaxPoints(uint16(maxPoints))
	maxp.SetMaxContours(uint16(maxContours))
	maxp.SetMaxCompositePoints(uint16(maxCompPoints))
	maxp.SetMaxCompositeContours(uint16(maxCompContours))
	maxp.SetMaxSizeOfInstructions(uint16(maxInstr))
	maxp.SetMaxComponentElements(uint16(maxElements))
	maxp.SetMaxComponentDepth(uint16(maxDepth))
}

func simpleInstructionLength(data []byte) int {
	n := numContours(data)
	if n <= 0 {
		return 0
	}
	pos := 10 + 2*n
	if len(data) < pos+2 {
		return 0
	}
	return int(data[pos])<<8 | int(data[pos+1])
}
