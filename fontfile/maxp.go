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

// Field offsets in the "maxp" table.
const (
	maxpVersion               = 0
	maxpNumGlyphs             = 4
	maxpMaxPoints             = 6
	maxpMaxContours           = 8
	maxpMaxCompositePoints    = 10
	maxpMaxCompositeContours  = 12
	maxpMaxSizeOfInstructions = 26
	maxpMaxComponentElements  = 28
	maxpMaxComponentDepth     = 30

	maxpV05Length = 6
	maxpV10Length = 32
)

// Maxp is a view into the raw bytes of the "maxp" table.
type Maxp struct {
	data []byte
}

// Maxp returns a view into the font's "maxp" table.
func (f *Font) Maxp() (*Maxp, error) {
	data, err := f.table("maxp", maxpV05Length)
	if err != nil {
		return nil, err
	}
	version := u32(data, maxpVersion)
	switch version {
	case 0x00005000:
		// version 0.5, used with CFF outlines
	case 0x00010000:
		if len(data) < maxpV10Length {
			return nil, fmt.Errorf("maxp: table too short (%d bytes)", len(data))
		}
	default:
		return nil, fmt.Errorf("maxp: unknown version 0x%08X", version)
	}
	return &Maxp{data: data}, nil
}

func (t *Maxp) NumGlyphs() int {
	return int(u16(t.data, maxpNumGlyphs))
}

// HasProfile reports whether the table carries the version 1.0 TrueType
// profile fields.
func (t *Maxp) HasProfile() bool {
	return u32(t.data, maxpVersion) == 0x00010000
}

func (t *Maxp) SetMaxPoints(v uint16) {
	putU16(t.data, maxpMaxPoints, v)
}

func (t *Maxp) SetMaxContours(v uint16) {
	putU16(t.data, maxpMaxContours, v)
}

func (t *Maxp) SetMaxCompositePoints(v uint16) {
	putU16(t.data, maxpMaxCompositePoints, v)
}

func (t *Maxp) SetMaxCompositeContours(v uint16) {
	putU16(t.data, maxpMaxCompositeContours, v)
}

func (t *Maxp) MaxSizeOfInstructions() uint16 {
	return u16(t.data, maxpMaxSizeOfInstructions)
}

func (t *Maxp) SetMaxSizeOfInstructions(v uint16) {
	putU16(t.data, maxpMaxSizeOfInstructions, v)
}

func (t *Maxp) SetMaxComponentElements(v uint16) {
	putU16(t.data, maxpMaxComponentElements, v)
}

func (t *Maxp) SetMaxComponentDepth(v uint16) {
	putU16(t.data, maxpMaxComponentDepth, v)
}
