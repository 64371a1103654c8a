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

import (
	"fmt"
	"strings"
)

// Field offsets in the "OS/2" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
const (
	os2Version       = 0
	os2WeightClass   = 4
	os2WidthClass    = 6
	os2FsType        = 8
	os2VendID        = 58
	os2FsSelection   = 62
	os2TypoAscender  = 68
	os2TypoDescender = 70
	os2TypoLineGap   = 72
	os2WinAscent     = 74
	os2WinDescent    = 76
	os2V0Length      = 78
	os2V4Length      = 96
)

// fsSelection bits.
const (
	fsSelectionItalic         = 0
	fsSelectionBold           = 5
	fsSelectionRegular        = 6
	fsSelectionUseTypoMetrics = 7
	fsSelectionOblique        = 9
)

// OS2 is a view into the raw bytes of the "OS/2" table.
type OS2 struct {
	font *Font
}

// OS2 returns a view into the font's "OS/2" table.
func (f *Font) OS2() (*OS2, error) {
	_, err := f.table("OS/2", os2V0Length)
	if err != nil {
		return nil, err
	}
	return &OS2{font: f}, nil
}

func (t *OS2) data() []byte {
	return t.font.Tables["OS/2"]
}

func (t *OS2) Version() uint16 {
	return u16(t.data(), os2Version)
}

// SetVersion updates the table version.  Growing the version past 3 extends
// the table to the version 4 length, with the new fields zeroed.
func (t *OS2) SetVersion(v uint16) {
	data := t.data()
	if v >= 4 && len(data) < os2V4Length {
		grown := make([]byte, os2V4Length)
		copy(grown, data)
		t.font.Tables["OS/2"] = grown
		data = grown
	}
	putU16(data, os2Version, v)
}

func (t *OS2) WeightClass() uint16 {
	return u16(t.data(), os2WeightClass)
}

func (t *OS2) SetWeightClass(v uint16) {
	putU16(t.data(), os2WeightClass, v)
}

func (t *OS2) WidthClass() uint16 {
	return u16(t.data(), os2WidthClass)
}

func (t *OS2) SetWidthClass(v uint16) {
	putU16(t.data(), os2WidthClass, v)
}

// FsType returns the font embedding permissions.
func (t *OS2) FsType() uint16 {
	return u16(t.data(), os2FsType)
}

func (t *OS2) SetFsType(v uint16) {
	putU16(t.data(), os2FsType, v)
}

// VendorID returns the four-character font vendor identifier, with
// padding and embedded NUL bytes removed.
func (t *OS2) VendorID() string {
	raw := t.data()[os2VendID : os2VendID+4]
	id := strings.Map(func(r rune) rune {
		if r == 0 || r == ' ' {
			return -1
		}
		return r
	}, string(raw))
	return id
}

// SetVendorID sets the vendor identifier.  Short values are padded with
// spaces; values longer than four characters are an error.
func (t *OS2) SetVendorID(id string) error {
	if len(id) > 4 {
		return fmt.Errorf("vendor ID %q is longer than 4 characters", id)
	}
	padded := id + strings.Repeat(" ", 4-len(id))
	copy(t.data()[os2VendID:os2VendID+4], padded)
	return nil
}

func (t *OS2) FsSelection() uint16 {
	return u16(t.data(), os2FsSelection)
}

func (t *OS2) SetFsSelection(v uint16) {
	putU16(t.data(), os2FsSelection, v)
}

func (t *OS2) TypoAscender() int16 {
	return i16(t.data(), os2TypoAscender)
}

func (t *OS2) SetTypoAscender(v int16) {
	putI16(t.data(), os2TypoAscender, v)
}

func (t *OS2) TypoDescender() int16 {
	return i16(t.data(), os2TypoDescender)
}

func (t *OS2) SetTypoDescender(v int16) {
	putI16(t.data(), os2TypoDescender, v)
}

func (t *OS2) TypoLineGap() int16 {
	return i16(t.data(), os2TypoLineGap)
}

func (t *OS2) SetTypoLineGap(v int16) {
	putI16(t.data(), os2TypoLineGap, v)
}

func (t *OS2) WinAscent() uint16 {
	return u16(t.data(), os2WinAscent)
}

func (t *OS2) SetWinAscent(v uint16) {
	putU16(t.data(), os2WinAscent, v)
}

func (t *OS2) WinDescent() uint16 {
	return u16(t.data(), os2WinDescent)
}

func (t *OS2) SetWinDescent(v uint16) {
	putU16(t.data(), os2WinDescent, v)
}
