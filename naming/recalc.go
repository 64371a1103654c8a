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

// Package naming rewrites font names from a style matrix.
package naming

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"seehuhn.de/go/sfnt/cff"

	"github.com/SolidTux/foundrytools/fontfile"
	"github.com/SolidTux/foundrytools/nametable"
)

// Options modify how Recalc builds and writes name records.
type Options struct {
	// IgnoreIDs lists name IDs that are left untouched.
	IgnoreIDs []int

	// ShortenWeight, ShortenWidth and ShortenSlope list name IDs in
	// which the long weight/width/slope words are replaced by their
	// abbreviated forms from the style entry.
	ShortenWeight []int
	ShortenWidth  []int
	ShortenSlope  []int

	// FixCFF also rewrites the font name, full name, family name and
	// weight in the CFF table of OpenType-CFF fonts.
	FixCFF bool

	// LinkedStyles holds exactly two usWeightClass values forming a
	// regular/bold pair.  The heavier of the two gets the bold bits and
	// the "Bold" subfamily name, and the weight is dropped from the
	// Windows family name of both.
	LinkedStyles []int

	// SuperFamily moves the width name into the subfamily instead of
	// the family name.
	SuperFamily bool

	// AltUniqueID builds name ID 3 as
	// "manufacturer: family-subfamily: year" instead of
	// "revision;vendor;postscript name".
	AltUniqueID bool

	// RegularItalic renames the "-Italic" PostScript suffix to
	// "-RegularItalic".
	RegularItalic bool

	// KeepRegular keeps the word "Regular" in the subfamily name of
	// sloped fonts.
	KeepRegular bool

	// OldFullFontName writes the PostScript name into name ID 4.
	OldFullFontName bool

	// ObliqueNotItalic sets only the oblique bit on oblique fonts,
	// leaving the italic bits clear and the slope in the family name.
	ObliqueNotItalic bool
}

// Result reports non-fatal findings of a Recalc run.
type Result struct {
	Warnings []string
}

var psNameIllegal = strings.NewReplacer(
	"[", "", "]", "", "{", "", "}", "", "<", "", ">", "", "/", "", "%", "")

// Recalc derives the style bits, weight/width classes and name records
// of a font from a style entry and writes them into the font's tables.
func Recalc(f *fontfile.Font, e *StyleEntry, opts Options) (*Result, error) {
	os2, err := f.OS2()
	if err != nil {
		return nil, err
	}
	head, err := f.Head()
	if err != nil {
		return nil, err
	}
	nameData, ok := f.Tables["name"]
	if !ok {
		return nil, &fontfile.MissingTableError{Name: "name"}
	}
	names, err := nametable.Decode(nameData)
	if err != nil {
		return nil, err
	}

	isItalic := e.IsItalic
	isOblique := e.IsOblique

	// The bold and italic bits start cleared.  Only the italic flag is
	// read from the style entry; the bold bits are set further down,
	// and only for the heavier half of a linked-styles pair.
	if err := f.SetRegular(); err != nil {
		return nil, err
	}
	if isItalic {
		if err := f.SetItalic(); err != nil {
			return nil, err
		}
	}
	if isOblique {
		// Oblique fonts get the italic bits too, unless explicitly
		// asked to keep them apart.
		if err := f.SetOblique(); err != nil {
			return nil, err
		}
		if err := f.SetItalic(); err != nil {
			return nil, err
		}
		if opts.ObliqueNotItalic {
			isItalic = false
			if err := f.UnsetItalic(); err != nil {
				return nil, err
			}
		}
	} else {
		if err := f.UnsetOblique(); err != nil {
			return nil, err
		}
	}

	os2.SetWeightClass(uint16(e.UsWeightClass))
	os2.SetWidthClass(uint16(e.UsWidthClass))

	// Macintosh family and subfamily names.
	famOT := e.FamilyName
	subOT := e.Weight
	if strings.ToLower(e.Width) != "normal" {
		if !opts.SuperFamily {
			famOT = e.FamilyName + " " + e.Width
		} else {
			subOT = e.Width + " " + e.Weight
		}
	}
	if e.Slope != "" {
		subOT = subOT + " " + e.Slope
		if !opts.KeepRegular {
			subOT = collapse(strings.ReplaceAll(subOT, "Regular", ""))
		}
	}

	// Microsoft family and subfamily names.
	widthWin := strings.ReplaceAll(e.Width, "Normal", "")
	widthWin = strings.ReplaceAll(widthWin, "Nor", "")
	famWin := collapse(e.FamilyName + " " + widthWin + " " + e.Weight)

	// When a family mixes italic and oblique slopes, the oblique fonts
	// carry the slope in the family name instead of the subfamily.
	if e.Slope != "" && !isItalic {
		famWin = famWin + " " + e.Slope
	}

	// On the Windows platform the subfamily can only be Regular,
	// Italic, Bold or Bold Italic.
	subWin := "Regular"
	if isItalic || (isOblique && !opts.ObliqueNotItalic) {
		subWin = "Italic"
	}

	if len(opts.LinkedStyles) == 2 {
		ls := []int{opts.LinkedStyles[0], opts.LinkedStyles[1]}
		if e.UsWeightClass == ls[0] || e.UsWeightClass == ls[1] {
			famWin = collapse(strings.ReplaceAll(famWin, e.Weight, ""))
		}
		sort.Ints(ls)
		if e.UsWeightClass == ls[1] {
			if err := f.SetBold(); err != nil {
				return nil, err
			}
			subWin = "Bold"
			if isItalic {
				subWin = "Bold Italic"
			}
		}
	}

	en, _ := nametable.LookupLang("en")
	ignore := idSet(opts.IgnoreIDs)

	// SetName stores supplementary-plane values with encoding ID 10,
	// so the lookup must accept both Windows Unicode encodings.
	winEn := func(nameID uint16) string {
		for _, encID := range []uint16{1, 10} {
			rec := names.Get(nametable.PlatformWindows, encID, en.Windows, nameID)
			if rec != nil {
				return rec.String()
			}
		}
		return ""
	}

	// The PostScript name.  When name ID 6 is ignored, the existing
	// name is kept and still feeds into the unique identifier.
	psName := winEn(nametable.IDPostScriptName)
	if !ignore[6] {
		psName = stripDotsDashes(famOT) + "-" + stripDotsDashes(subOT)
		psName = psNameIllegal.Replace(psName)
		if opts.RegularItalic {
			psName = strings.ReplaceAll(psName, "-Italic", "-RegularItalic")
		}
		psName = shortenIn(psName, 6, e, opts)
		psName = strings.ReplaceAll(psName, " ", "")
		psName = strings.ReplaceAll(psName, ".", "")
	}

	// The unique identifier.
	vendor := strings.ReplaceAll(os2.VendorID(), " ", "")
	revision := FormatRevision(head.FontRevision())
	versionString := "Version " + revision
	uniqueID := fmt.Sprintf("%s;%-4s;%s", revision, vendor, psName)
	if opts.AltUniqueID {
		year := strconv.Itoa(head.Created().Year())
		manufacturer := winEn(nametable.IDManufacturer)
		uniqueID = fmt.Sprintf("%s: %s-%s: %s", manufacturer, famOT, subOT, year)
	}

	fullName := famOT + " " + subOT

	res := &Result{}

	if !ignore[1] {
		s := shortenIn(famWin, 1, e, opts)
		if len(s) > 27 {
			res.Warnings = append(res.Warnings,
				"family name length is more than 27 characters")
		}
		names.SetName(nametable.IDFamily, s, en, true, true)
	}

	if !ignore[2] {
		// Never shortened.
		names.SetName(nametable.IDSubfamily, subWin, en, true, true)
	}

	if !ignore[3] {
		s := shortenIn(uniqueID, 3, e, opts)
		// The unique identifier lives on the Windows platform only.
		names.SetName(nametable.IDUniqueID, s, en, true, false)
		names.DelNames([]uint16{nametable.IDUniqueID}, nametable.PlatformMacintosh, en)
	}

	if !ignore[4] {
		s := psName
		if !opts.OldFullFontName {
			s = shortenIn(fullName, 4, e, opts)
		}
		names.SetName(nametable.IDFullName, s, en, true, true)
	}

	if !ignore[5] {
		names.SetName(nametable.IDVersion, versionString, en, true, true)
	}

	if !ignore[6] {
		if len(psName) > 31 {
			res.Warnings = append(res.Warnings,
				"PostScript name length is more than 31 characters")
		}
		names.SetName(nametable.IDPostScriptName, psName, en, true, true)
	}

	// Name IDs 16 and 17 are only kept when they differ from the
	// Windows family and subfamily written above.
	if !ignore[16] {
		s := shortenIn(famOT, 16, e, opts)
		if s != winEn(nametable.IDFamily) {
			names.SetName(nametable.IDTypoFamily, s, en, true, false)
			names.DelNames([]uint16{nametable.IDTypoFamily}, nametable.PlatformMacintosh, en)
		} else {
			names.DelNames([]uint16{nametable.IDTypoFamily}, nametable.AnyPlatform, en)
		}
	}

	if !ignore[17] {
		s := shortenIn(subOT, 17, e, opts)
		if s != winEn(nametable.IDSubfamily) {
			names.SetName(nametable.IDTypoSubfamily, s, en, true, false)
			names.DelNames([]uint16{nametable.IDTypoSubfamily}, nametable.PlatformMacintosh, en)
		} else {
			names.DelNames([]uint16{nametable.IDTypoSubfamily}, nametable.AnyPlatform, en)
		}
	}

	// Name ID 18 is the Macintosh counterpart: only kept when it
	// differs from the Macintosh full name.
	if !ignore[18] {
		s := shortenIn(fullName, 18, e, opts)
		macFull := ""
		if rec := names.Get(nametable.PlatformMacintosh, 0, 0, nametable.IDFullName); rec != nil {
			macFull = rec.String()
		}
		if s != macFull {
			names.SetName(nametable.IDMacFullName, s, en, false, true)
		} else {
			names.DelNames([]uint16{nametable.IDMacFullName}, nametable.AnyPlatform, en)
		}
	}

	nameData, err = names.Encode()
	if err != nil {
		return nil, err
	}
	f.SetTable("name", nameData)

	if opts.FixCFF && f.HasTable("CFF ") {
		err := syncCFFNames(f, psName, fullName, famOT, e.Weight)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// syncCFFNames rewrites the naming fields of the CFF table.
func syncCFFNames(f *fontfile.Font, psName, fullName, family, weight string) error {
	font, err := cff.Read(bytes.NewReader(f.Tables["CFF "]))
	if err != nil {
		return fmt.Errorf("CFF: %w", err)
	}
	font.FontInfo.FontName = psName
	font.FontInfo.FullName = fullName
	font.FontInfo.FamilyName = family
	font.FontInfo.Weight = weight

	buf := &bytes.Buffer{}
	err = font.Write(buf)
	if err != nil {
		return fmt.Errorf("CFF: %w", err)
	}
	f.SetTable("CFF ", buf.Bytes())
	return nil
}

// FindReplaceCFF substitutes old with new in the naming fields of the
// CFF table.  Fonts without a CFF table are left alone.  It reports the
// number of fields changed.
func FindReplaceCFF(f *fontfile.Font, old, new string) (int, error) {
	if old == "" || !f.IsCFF() {
		return 0, nil
	}
	font, err := cff.Read(bytes.NewReader(f.Tables["CFF "]))
	if err != nil {
		return 0, fmt.Errorf("CFF: %w", err)
	}

	count := 0
	for _, field := range []*string{
		&font.FontInfo.FontName,
		&font.FontInfo.FullName,
		&font.FontInfo.FamilyName,
		&font.FontInfo.Weight,
		&font.FontInfo.Notice,
		&font.FontInfo.Copyright,
	} {
		if !strings.Contains(*field, old) {
			continue
		}
		*field = collapse(strings.ReplaceAll(*field, old, new))
		count++
	}
	if count == 0 {
		return 0, nil
	}

	buf := &bytes.Buffer{}
	err = font.Write(buf)
	if err != nil {
		return 0, fmt.Errorf("CFF: %w", err)
	}
	f.SetTable("CFF ", buf.Bytes())
	return count, nil
}

// FormatRevision renders a 16.16 fixed point font revision the way
// version strings usually show it: rounded to three decimals and
// zero-padded to at least five characters, e.g. "1.010".
func FormatRevision(fixed uint32) string {
	v := float64(fixed) / 65536
	r := math.Round(v*1000) / 1000
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	for len(s) < 5 {
		s += "0"
	}
	return s
}

// collapse replaces double spaces by single ones and trims the ends.
func collapse(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "  ", " "))
}

func stripDotsDashes(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, "-", "")
}

// shortenIn replaces the long weight/width/slope words by their
// abbreviations if the given name ID is selected for shortening.
func shortenIn(s string, nameID int, e *StyleEntry, opts Options) string {
	if e.Weight != "" && idIn(opts.ShortenWeight, nameID) {
		s = strings.ReplaceAll(s, e.Weight, e.Wgt)
	}
	if e.Width != "" && idIn(opts.ShortenWidth, nameID) {
		s = strings.ReplaceAll(s, e.Width, e.Wdt)
	}
	if e.Slope != "" && idIn(opts.ShortenSlope, nameID) {
		s = strings.ReplaceAll(s, e.Slope, e.Slp)
	}
	return s
}

func idIn(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func idSet(ids []int) map[int]bool {
	m := make(map[int]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
