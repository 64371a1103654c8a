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

import "time"

// Field offsets in the "head" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
const (
	headFontRevision       = 4
	headCheckSumAdjustment = 8
	headMagicNumber        = 12
	headFlags              = 16
	headUnitsPerEm         = 18
	headCreated            = 20
	headModified           = 28
	headXMin               = 36
	headYMin               = 38
	headXMax               = 40
	headYMax               = 42
	headMacStyle           = 44
	headIndexToLocFormat   = 50
	headLength             = 54
)

// macStyle bits.
const (
	macStyleBold   = 0
	macStyleItalic = 1
)

// Timestamps in the "head" table count seconds since 1904-01-01 00:00:00 UTC.
var headEpoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

// Head is a view into the raw bytes of the "head" table.
type Head struct {
	data []byte
}

// Head returns a view into the font's "head" table.
func (f *Font) Head() (*Head, error) {
	data, err := f.table("head", headLength)
	if err != nil {
		return nil, err
	}
	return &Head{data: data}, nil
}

// FontRevision returns the font revision as a 16.16 fixed point number.
func (t *Head) FontRevision() uint32 {
	return u32(t.data, headFontRevision)
}

func (t *Head) UnitsPerEm() uint16 {
	return u16(t.data, headUnitsPerEm)
}

// Created returns the creation time of the font.
func (t *Head) Created() time.Time {
	return headEpoch.Add(time.Duration(i64(t.data, headCreated)) * time.Second)
}

// Modified returns the modification time of the font.
func (t *Head) Modified() time.Time {
	return headEpoch.Add(time.Duration(i64(t.data, headModified)) * time.Second)
}

// SetModified sets the modification time of the font.
func (t *Head) SetModified(mod time.Time) {
	putI64(t.data, headModified, int64(mod.Sub(headEpoch)/time.Second))
}

// BBox returns the font bounding box as xMin, yMin, xMax, yMax.
func (t *Head) BBox() (int16, int16, int16, int16) {
	return i16(t.data, headXMin), i16(t.data, headYMin),
		i16(t.data, headXMax), i16(t.data, headYMax)
}

// SetBBox sets the font bounding box.
func (t *Head) SetBBox(xMin, yMin, xMax, yMax int16) {
	putI16(t.data, headXMin, xMin)
	putI16(t.data, headYMin, yMin)
	putI16(t.data, headXMax, xMax)
	putI16(t.data, headYMax, yMax)
}

func (t *Head) MacStyle() uint16 {
	return u16(t.data, headMacStyle)
}

func (t *Head) SetMacStyle(v uint16) {
	putU16(t.data, headMacStyle, v)
}

// IndexToLocFormat returns the format of the "loca" table: 0 for short
// offsets, 1 for long offsets.
func (t *Head) IndexToLocFormat() int16 {
	return i16(t.data, headIndexToLocFormat)
}

func (t *Head) SetIndexToLocFormat(v int16) {
	putI16(t.data, headIndexToLocFormat, v)
}
