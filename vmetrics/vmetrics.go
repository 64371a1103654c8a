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

// Package vmetrics adjusts the vertical metrics of a font.
package vmetrics

import (
	"github.com/SolidTux/foundrytools/fontfile"
)

// SetLinegapPercent rewrites the vertical metrics so that the default
// line spacing becomes the given percentage of the units per em, on top
// of one em.  The hhea line gap is always zeroed; how the extra height
// is distributed depends on the metrics scheme the font already uses.
//
// Fonts with a zero typo line gap and a typo ascender/descender span
// larger than one em get the extra height added symmetrically to both
// the typo and hhea extents.  Fonts with a zero typo line gap and a
// span of exactly one em get it added to the hhea extents only.  All
// other fonts get the line spacing written into the typo line gap, with
// the hhea extents centered around it.  The Windows metrics follow the
// hhea extents in every scheme.
func SetLinegapPercent(f *fontfile.Font, percent int) error {
	os2, err := f.OS2()
	if err != nil {
		return err
	}
	hhea, err := f.Hhea()
	if err != nil {
		return err
	}
	head, err := f.Head()
	if err != nil {
		return err
	}

	typoAscender := int(os2.TypoAscender())
	typoDescender := int(os2.TypoDescender())
	typoLineGap := int(os2.TypoLineGap())
	hheaAscent := int(hhea.Ascent())
	hheaDescent := int(hhea.Descent())
	unitsPerEm := int(head.UnitsPerEm())

	typoSpan := typoAscender - typoDescender
	hheaSpan := hheaAscent - hheaDescent

	lineSpacingUnits := int(float64(percent) / 100 * float64(unitsPerEm))
	totalHeight := lineSpacingUnits + unitsPerEm
	addUnits := int(0.5 * float64(totalHeight-hheaSpan))

	var winAscent, winDescent int

	switch {
	case typoLineGap == 0 && typoSpan > unitsPerEm:
		typoAscender += addUnits
		typoDescender -= addUnits
		hheaAscent += addUnits
		hheaDescent -= addUnits
		winAscent = hheaAscent
		winDescent = -hheaDescent
	case typoLineGap == 0 && typoSpan == unitsPerEm:
		hheaAscent += addUnits
		hheaDescent -= addUnits
		winAscent = hheaAscent
		winDescent = -hheaDescent
	default:
		typoLineGap = lineSpacingUnits
		hheaAscent = int(float64(typoAscender) + 0.5*float64(typoLineGap))
		hheaDescent = -(totalHeight - hheaAscent)
		winAscent = hheaAscent
		winDescent = -hheaDescent
	}

	hhea.SetLineGap(0)
	os2.SetTypoAscender(int16(typoAscender))
	os2.SetTypoDescender(int16(typoDescender))
	os2.SetTypoLineGap(int16(typoLineGap))
	os2.SetWinAscent(uint16(winAscent))
	os2.SetWinDescent(uint16(winDescent))
	hhea.SetAscent(int16(hheaAscent))
	hhea.SetDescent(int16(hheaDescent))

	return nil
}
