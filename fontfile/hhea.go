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

// Field offsets in the "hhea" table.
const (
	hheaAscent            = 4
	hheaDescent           = 6
	hheaLineGap           = 8
	hheaNumLongHorMetrics = 34
	hheaLength            = 36
)

// Hhea is a view into the raw bytes of the "hhea" table.
type Hhea struct {
	data []byte
}

// Hhea returns a view into the font's "hhea" table.
func (f *Font) Hhea() (*Hhea, error) {
	data, err := f.table("hhea", hheaLength)
	if err != nil {
		return nil, err
	}
	return &Hhea{data: data}, nil
}

func (t *Hhea) Ascent() int16 {
	return i16(t.data, hheaAscent)
}

func (t *Hhea) SetAscent(v int16) {
	putI16(t.data, hheaAscent, v)
}

func (t *Hhea) Descent() int16 {
	return i16(t.data, hheaDescent)
}

func (t *Hhea) SetDescent(v int16) {
	putI16(t.data, hheaDescent, v)
}

func (t *Hhea) LineGap() int16 {
	return i16(t.data, hheaLineGap)
}

func (t *Hhea) SetLineGap(v int16) {
	putI16(t.data, hheaLineGap, v)
}

// NumLongHorMetrics returns the number of advance width/left side bearing
// pairs at the start of the "hmtx" table.
func (t *Hhea) NumLongHorMetrics() uint16 {
	return u16(t.data, hheaNumLongHorMetrics)
}
