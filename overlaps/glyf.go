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

	"seehuhn.de/go/sfnt/glyph"
)

// The "glyf" and "loca" tables are edited at the byte level so that
// untouched glyphs keep their exact original encoding.  Each glyph is
// held as one raw record: the 10-byte header (number of contours and
// bounding box) followed by the simple or composite glyph data.

// Simple glyph flag bits.
const (
	flagOnCurve = 0x01
	flagXShort  = 0x02
	flagYShort  = 0x04
	flagRepeat  = 0x08
	flagXSame   = 0x10 // sign bit when flagXShort is set
	flagYSame   = 0x20 // sign bit when flagYShort is set
)

// Composite glyph component flags.
const (
	compArgsAreWords    = 0x0001
	compArgsAreXYValues = 0x0002
	compHaveScale       = 0x0008
	compMoreComponents  = 0x0020
	compHaveXYScale     = 0x0040
	compHave2x2         = 0x0080
	compHaveInstructions = 0x0100
)

// A point is a single TrueType outline point.  Coordinates are held as
// floats so that component transformations can be applied without
// premature rounding.
type point struct {
	x, y    float64
	onCurve bool
}

type contour []point

// splitGlyf cuts the "glyf" table into one raw record per glyph, using
// the offsets from the "loca" table.
func splitGlyf(glyfData, locaData []byte, locaFormat int16, numGlyphs int) ([][]byte, error) {
	offs, err := decodeLoca(glyfData, locaData, locaFormat)
	if err != nil {
		return nil, err
	}
	if len(offs) < numGlyphs+1 {
		return nil, fmt.Errorf("loca: %d offsets for %d glyphs", len(offs), numGlyphs)
	}

	glyphs := make([][]byte, numGlyphs)
	for i := range glyphs {
		data := glyfData[offs[i]:offs[i+1]]
		if len(data) > 0 && len(data) < 10 {
			return nil, fmt.Errorf("glyph %d: incomplete header", i)
		}
		glyphs[i] = data
	}
	return glyphs, nil
}

// joinGlyf reassembles the "glyf" and "loca" tables.  Records are
// padded to even length so that the short loca format stays available.
func joinGlyf(glyphs [][]byte) (glyfData, locaData []byte, locaFormat int16) {
	offs := make([]int, len(glyphs)+1)
	for i, g := range glyphs {
		l := len(g)
		if l%2 != 0 {
			l++
		}
		offs[i+1] = offs[i] + l
	}

	glyfData = make([]byte, 0, offs[len(glyphs)])
	for _, g := range glyphs {
		glyfData = append(glyfData, g...)
		if len(g)%2 != 0 {
			glyfData = append(glyfData, 0)
		}
	}

	total := offs[len(glyphs)]
	if total/2 <= 0xFFFF {
		locaFormat = 0
		locaData = make([]byte, 2*len(offs))
		for i, off := range offs {
			x := off / 2
			locaData[2*i] = byte(x >> 8)
			locaData[2*i+1] = byte(x)
		}
	} else {
		locaFormat = 1
		locaData = make([]byte, 4*len(offs))
		for i, off := range offs {
			locaData[4*i] = byte(off >> 24)
			locaData[4*i+1] = byte(off >> 16)
			locaData[4*i+2] = byte(off >> 8)
			locaData[4*i+3] = byte(off)
		}
	}
	return glyfData, locaData, locaFormat
}

func decodeLoca(glyfData, locaData []byte, locaFormat int16) ([]int, error) {
	var offs []int
	switch locaFormat {
	case 0:
		n := len(locaData)
		if n < 4 || n%2 != 0 {
			return nil, fmt.Errorf("loca: invalid table length %d", n)
		}
		offs = make([]int, n/2)
		prev := 0
		for i := range offs {
			pos := 2 * (int(locaData[2*i])<<8 | int(locaData[2*i+1]))
			if pos < prev || pos > len(glyfData) {
				return nil, fmt.Errorf("loca: invalid offset %d", pos)
			}
			offs[i] = pos
			prev = pos
		}
	case 1:
		n := len(locaData)
		if n < 8 || n%4 != 0 {
			return nil, fmt.Errorf("loca: invalid table length %d", n)
		}
		offs = make([]int, n/4)
		prev := 0
		for i := range offs {
			pos := int(locaData[4*i])<<24 | int(locaData[4*i+1])<<16 |
				int(locaData[4*i+2])<<8 | int(locaData[4*i+3])
			if pos < prev || pos > len(glyfData) {
				return nil, fmt.Errorf("loca: invalid offset %d", pos)
			}
			offs[i] = pos
			prev = pos
		}
	default:
		return nil, fmt.Errorf("loca: unknown format %d", locaFormat)
	}
	return offs, nil
}

// numContours returns the contour count from a glyph header.  Empty
// records count as zero contours, negative values mark composites.
func numContours(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	return int(int16(data[0])<<8 | int16(data[1]))
}

func isComposite(data []byte) bool {
	return numContours(data) < 0
}

func glyphBBox(data []byte) (xMin, yMin, xMax, yMax int16) {
	return int16(data[2])<<8 | int16(data[3]),
		int16(data[4])<<8 | int16(data[5]),
		int16(data[6])<<8 | int16(data[7]),
		int16(data[8])<<8 | int16(data[9])
}

// decodeSimple parses the contours of a simple glyph record.
func decodeSimple(data []byte) ([]contour, error) {
	n := numContours(data)
	if n <= 0 {
		return nil, nil
	}
	buf := data[10:]

	if len(buf) < 2*n+2 {
		return nil, fmt.Errorf("truncated contour ends")
	}
	endPts := make([]int, n)
	for i := 0; i < n; i++ {
		endPts[i] = int(buf[2*i])<<8 | int(buf[2*i+1])
		if i > 0 && endPts[i] < endPts[i-1] {
			return nil, fmt.Errorf("contour ends not increasing")
		}
	}
	buf = buf[2*n:]
	numPoints := endPts[n-1] + 1

	instrLen := int(buf[0])<<8 | int(buf[1])
	if len(buf) < 2+instrLen {
		return nil, fmt.Errorf("truncated instructions")
	}
	buf = buf[2+instrLen:]

	flags := make([]byte, numPoints)
	i := 0
	for i < numPoints {
		if len(buf) < 1 {
			return nil, fmt.Errorf("truncated flags")
		}
		f := buf[0]
		buf = buf[1:]
		flags[i] = f
		i++
		if f&flagRepeat != 0 {
			if len(buf) < 1 {
				return nil, fmt.Errorf("truncated flag repeat count")
			}
			count := int(buf[0])
			buf = buf[1:]
			for ; count > 0 && i < numPoints; count-- {
				flags[i] = f
				i++
			}
		}
	}

	xs := make([]int16, numPoints)
	var x int16
	for i, f := range flags {
		switch {
		case f&flagXShort != 0:
			if len(buf) < 1 {
				return nil, fmt.Errorf("truncated x coordinates")
			}
			dx := int16(buf[0])
			buf = buf[1:]
			if f&flagXSame != 0 {
				x += dx
			} else {
				x -= dx
			}
		case f&flagXSame == 0:
			if len(buf) < 2 {
				return nil, fmt.Errorf("truncated x coordinates")
			}
			x += int16(buf[0])<<8 | int16(buf[1])
			buf = buf[2:]
		}
		xs[i] = x
	}

	ys := make([]int16, numPoints)
	var y int16
	for i, f := range flags {
		switch {
		case f&flagYShort != 0:
			if len(buf) < 1 {
				return nil, fmt.Errorf("truncated y coordinates")
			}
			dy := int16(buf[0])
			buf = buf[1:]
			if f&flagYSame != 0 {
				y += dy
			} else {
				y -= dy
			}
		case f&flagYSame == 0:
			if len(buf) < 2 {
				return nil, fmt.Errorf("truncated y coordinates")
			}
			y += int16(buf[0])<<8 | int16(buf[1])
			buf = buf[2:]
		}
		ys[i] = y
	}

	contours := make([]contour, n)
	start := 0
	for i, end := range endPts {
		c := make(contour, 0, end+1-start)
		for j := start; j <= end; j++ {
			c = append(c, point{
				x:       float64(xs[j]),
				y:       float64(ys[j]),
				onCurve: flags[j]&flagOnCurve != 0,
			})
		}
		contours[i] = c
		start = end + 1
	}
	return contours, nil
}

// encodeSimple builds an unhinted simple glyph record from the given
// contours.  Coordinates are rounded to the nearest integer and the
// bounding box is computed from the rounded points.  Contours without
// points are dropped; an outline without any contours encodes as an
// empty record.
func encodeSimple(contours []contour) ([]byte, error) {
	type ipoint struct {
		x, y    int16
		onCurve bool
	}
	var pts []ipoint
	var endPts []int
	for _, c := range contours {
		if len(c) == 0 {
			continue
		}
		for _, p := range c {
			pts = append(pts, ipoint{
				x:       roundToInt16(p.x),
				y:       roundToInt16(p.y),
				onCurve: p.onCurve,
			})
		}
		endPts = append(endPts, len(pts)-1)
	}
	if len(pts) == 0 {
		return nil, nil
	}

	xMin, yMin := pts[0].x, pts[0].y
	xMax, yMax := pts[0].x, pts[0].y
	for _, p := range pts[1:] {
		xMin = min(xMin, p.x)
		yMin = min(yMin, p.y)
		xMax = max(xMax, p.x)
		yMax = max(yMax, p.y)
	}

	flags := make([]byte, len(pts))
	var xData, yData []byte
	var prev ipoint
	for i, p := range pts {
		var f byte
		if p.onCurve {
			f |= flagOnCurve
		}

		dx := int(p.x) - int(prev.x)
		switch {
		case dx == 0:
			f |= flagXSame
		case dx >= -255 && dx <= 255:
			f |= flagXShort
			if dx > 0 {
				f |= flagXSame
			} else {
				dx = -dx
			}
			xData = append(xData, byte(dx))
		default:
			if dx < math.MinInt16 || dx > math.MaxInt16 {
				return nil, fmt.Errorf("x delta %d out of range", dx)
			}
			xData = append(xData, byte(dx>>8), byte(dx))
		}

		dy := int(p.y) - int(prev.y)
		switch {
		case dy == 0:
			f |= flagYSame
		case dy >= -255 && dy <= 255:
			f |= flagYShort
			if dy > 0 {
				f |= flagYSame
			} else {
				dy = -dy
			}
			yData = append(yData, byte(dy))
		default:
			if dy < math.MinInt16 || dy > math.MaxInt16 {
				return nil, fmt.Errorf("y delta %d out of range", dy)
			}
			yData = append(yData, byte(dy>>8), byte(dy))
		}

		flags[i] = f
		prev = p
	}

	buf := make([]byte, 0, 10+2*len(endPts)+2+len(flags)+len(xData)+len(yData))
	buf = append(buf,
		byte(len(endPts)>>8), byte(len(endPts)),
		byte(xMin>>8), byte(xMin),
		byte(yMin>>8), byte(yMin),
		byte(xMax>>8), byte(xMax),
		byte(yMax>>8), byte(yMax))
	for _, end := range endPts {
		buf = append(buf, byte(end>>8), byte(end))
	}
	buf = append(buf, 0, 0) // no instructions

	// run-length compress the flags
	for i := 0; i < len(flags); {
		j := i + 1
		for j < len(flags) && flags[j] == flags[i] && j-i < 256 {
			j++
		}
		if j-i >= 3 {
			buf = append(buf, flags[i]|flagRepeat, byte(j-i-1))
		} else {
			for k := i; k < j; k++ {
				buf = append(buf, flags[k])
			}
		}
		i = j
	}

	buf = append(buf, xData...)
	buf = append(buf, yData...)
	if len(buf)%2 != 0 {
		buf = append(buf, 0)
	}
	return buf, nil
}

func roundToInt16(v float64) int16 {
	r := math.Round(v)
	if r < math.MinInt16 {
		return math.MinInt16
	}
	if r > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(r)
}

// A component is one entry of a composite glyph.  The transformation
// maps child coordinates (x, y) to (xx*x+yx*y+dx, xy*x+yy*y+dy).
type component struct {
	gid            glyph.ID
	flags          uint16
	dx, dy         float64
	xx, xy, yx, yy float64

	// args holds the raw argument and transformation bytes, so that
	// components can be re-emitted without re-encoding.
	args []byte
}

func (c *component) transform(p point) point {
	return point{
		x:       c.xx*p.x + c.yx*p.y + c.dx,
		y:       c.xy*p.x + c.yy*p.y + c.dy,
		onCurve: p.onCurve,
	}
}

// parseComposite parses the component list of a composite glyph record.
// Point-anchored components (arguments that are point numbers rather
// than offsets) are treated as having zero offset.
func parseComposite(data []byte) ([]component, error) {
	buf := data[10:]
	var components []component
	for {
		if len(buf) < 4 {
			return nil, fmt.Errorf("truncated component")
		}
		flags := uint16(buf[0])<<8 | uint16(buf[1])
		gid := glyph.ID(uint16(buf[2])<<8 | uint16(buf[3]))
		buf = buf[4:]
		argsStart := buf

		c := component{
			gid:   gid,
			flags: flags,
			xx:    1,
			yy:    1,
		}

		var arg1, arg2 int
		if flags&compArgsAreWords != 0 {
			if len(buf) < 4 {
				return nil, fmt.Errorf("truncated component arguments")
			}
			arg1 = int(int16(buf[0])<<8 | int16(buf[1]))
			arg2 = int(int16(buf[2])<<8 | int16(buf[3]))
			buf = buf[4:]
		} else {
			if len(buf) < 2 {
				return nil, fmt.Errorf("truncated component arguments")
			}
			arg1 = int(int8(buf[0]))
			arg2 = int(int8(buf[1]))
			buf = buf[2:]
		}
		if flags&compArgsAreXYValues != 0 {
			c.dx = float64(arg1)
			c.dy = float64(arg2)
		}

		switch {
		case flags&compHaveScale != 0:
			if len(buf) < 2 {
				return nil, fmt.Errorf("truncated component scale")
			}
			s := f2dot14(buf)
			c.xx, c.yy = s, s
			buf = buf[2:]
		case flags&compHaveXYScale != 0:
			if len(buf) < 4 {
				return nil, fmt.Errorf("truncated component scale")
			}
			c.xx = f2dot14(buf)
			c.yy = f2dot14(buf[2:])
			buf = buf[4:]
		case flags&compHave2x2 != 0:
			if len(buf) < 8 {
				return nil, fmt.Errorf("truncated component matrix")
			}
			c.xx = f2dot14(buf)
			c.xy = f2dot14(buf[2:])
			c.yx = f2dot14(buf[4:])
			c.yy = f2dot14(buf[6:])
			buf = buf[8:]
		}

		c.args = argsStart[:len(argsStart)-len(buf)]
		components = append(components, c)
		if flags&compMoreComponents == 0 {
			break
		}
	}
	return components, nil
}

func f2dot14(buf []byte) float64 {
	return float64(int16(buf[0])<<8|int16(buf[1])) / 16384
}

// stripSimpleHinting removes the instructions from a simple glyph
// record, leaving the point data untouched.
func stripSimpleHinting(data []byte) []byte {
	n := numContours(data)
	if n <= 0 {
		return data
	}
	endPtsEnd := 10 + 2*n
	if len(data) < endPtsEnd+2 {
		return data
	}
	instrLen := int(data[endPtsEnd])<<8 | int(data[endPtsEnd+1])
	if instrLen == 0 {
		return data
	}

	out := make([]byte, 0, len(data)-instrLen)
	out = append(out, data[:endPtsEnd]...)
	out = append(out, 0, 0)
	out = append(out, data[endPtsEnd+2+instrLen:]...)
	if len(out)%2 != 0 {
		out = append(out, 0)
	}
	return out
}

// stripCompositeHinting clears the instruction flag on every component
// and drops the trailing instruction block.
func stripCompositeHinting(data []byte) ([]byte, error) {
	components, err := parseComposite(data)
	if err != nil {
		return nil, err
	}

	hinted := false
	for _, c := range components {
		if c.flags&compHaveInstructions != 0 {
			hinted = true
			break
		}
	}
	if !hinted {
		return data, nil
	}

	out := make([]byte, 0, len(data))
	out = append(out, data[:10]...)
	for _, c := range components {
		flags := c.flags &^ compHaveInstructions
		out = append(out, byte(flags>>8), byte(flags),
			byte(c.gid>>8), byte(c.gid))
		out = append(out, c.args...)
	}
	if len(out)%2 != 0 {
		out = append(out, 0)
	}
	return out, nil
}
