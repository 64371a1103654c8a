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

package fontfile

import "fmt"

// Hmtx is a view into the raw bytes of the "hmtx" table.  The table
// starts with numLong advance width/left side bearing pairs, followed
// by bare left side bearings for the remaining glyphs.
type Hmtx struct {
	data      []byte
	numLong   int
	numGlyphs int
}

// Hmtx returns a view into the font's "hmtx" table.  The table length
// is validated against the glyph count from "maxp" and the number of
// long metrics from "hhea".
func (f *Font) Hmtx() (*Hmtx, error) {
	hhea, err := f.Hhea()
	if err != nil {
		return nil, err
	}
	maxp, err := f.Maxp()
	if err != nil {
		return nil, err
	}

	numLong := int(hhea.NumLongHorMetrics())
	numGlyphs := maxp.NumGlyphs()
	if numLong < 1 || numLong > numGlyphs {
		return nil, fmt.Errorf("hmtx: invalid metric count %d for %d glyphs",
			numLong, numGlyphs)
	}

	need := 4*numLong + 2*(numGlyphs-numLong)
	data, err := f.table("hmtx", need)
	if err != nil {
		return nil, err
	}
	return &Hmtx{data: data, numLong: numLong, numGlyphs: numGlyphs}, nil
}

// NumGlyphs returns the number of glyphs covered by the table.
func (t *Hmtx) NumGlyphs() int {
	return t.numGlyphs
}

// Advance returns the advance width of the given glyph.
func (t *Hmtx) Advance(gid int) uint16 {
	if gid >= t.numLong {
		gid = t.numLong - 1
	}
	return u16(t.data, 4*gid)
}

// LSB returns the left side bearing of the given glyph.
func (t *Hmtx) LSB(gid int) int16 {
	if gid < t.numLong {
		return i16(t.data, 4*gid+2)
	}
	return i16(t.data, 4*t.numLong+2*(gid-t.numLong))
}

// SetLSB updates the left side bearing of the given glyph.
func (t *Hmtx) SetLSB(gid int, v int16) {
	if gid < t.numLong {
		putI16(t.data, 4*gid+2, v)
	} else {
		putI16(t.data, 4*t.numLong+2*(gid-t.numLong), v)
	}
}
