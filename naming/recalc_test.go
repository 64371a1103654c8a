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

package naming

import (
	"bytes"
	"testing"

	"github.com/SolidTux/foundrytools/fontfile"
	"github.com/SolidTux/foundrytools/internal/testfont"
	"github.com/SolidTux/foundrytools/nametable"
)

func readTestFont(t *testing.T) *fontfile.Font {
	t.Helper()
	f, err := fontfile.Read(bytes.NewReader(testfont.TrueType()))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func boldEntry() *StyleEntry {
	return &StyleEntry{
		File:          "test.ttf",
		FamilyName:    "Overlap Test",
		UsWidthClass:  5,
		Wdt:           "Nor",
		Width:         "Normal",
		UsWeightClass: 700,
		Wgt:           "Bd",
		Weight:        "Bold",
	}
}

func fontNames(t *testing.T, f *fontfile.Font) *nametable.Table {
	t.Helper()
	names, err := nametable.Decode(f.Tables["name"])
	if err != nil {
		t.Fatal(err)
	}
	return names
}

func TestRecalcBold(t *testing.T) {
	f := readTestFont(t)

	res, err := Recalc(f, boldEntry(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}

	os2, err := f.OS2()
	if err != nil {
		t.Fatal(err)
	}
	if w := os2.WeightClass(); w != 700 {
		t.Errorf("usWeightClass is %d, want 700", w)
	}

	// Without linked styles the bold bits stay clear; the weight only
	// shows in the name records.
	isBold, err := f.IsBold()
	if err != nil {
		t.Fatal(err)
	}
	if isBold {
		t.Errorf("bold bits set without linked styles")
	}

	names := fontNames(t, f)
	win := nametable.PlatformWindows
	checks := []struct {
		nameID uint16
		want   string
	}{
		{nametable.IDFamily, "Overlap Test Bold"},
		{nametable.IDSubfamily, "Regular"},
		{nametable.IDUniqueID, "1.500;TEST;OverlapTest-Bold"},
		{nametable.IDFullName, "Overlap Test Bold"},
		{nametable.IDVersion, "Version 1.500"},
		{nametable.IDPostScriptName, "OverlapTest-Bold"},
		{nametable.IDTypoFamily, "Overlap Test"},
		{nametable.IDTypoSubfamily, "Bold"},
	}
	for _, c := range checks {
		if got := names.Value(c.nameID, win); got != c.want {
			t.Errorf("name %d is %q, want %q", c.nameID, got, c.want)
		}
	}
}

func TestRecalcLinkedStyles(t *testing.T) {
	f := readTestFont(t)

	opts := Options{LinkedStyles: []int{400, 700}}
	_, err := Recalc(f, boldEntry(), opts)
	if err != nil {
		t.Fatal(err)
	}

	isBold, err := f.IsBold()
	if err != nil {
		t.Fatal(err)
	}
	if !isBold {
		t.Errorf("bold bits not set for the heavier linked style")
	}

	names := fontNames(t, f)
	win := nametable.PlatformWindows
	if got := names.Value(nametable.IDFamily, win); got != "Overlap Test" {
		t.Errorf("family is %q, want %q", got, "Overlap Test")
	}
	if got := names.Value(nametable.IDSubfamily, win); got != "Bold" {
		t.Errorf("subfamily is %q, want %q", got, "Bold")
	}
	// name IDs 16/17 match the Windows family and subfamily, so they
	// are dropped
	if got := names.Value(nametable.IDTypoFamily, win); got != "" {
		t.Errorf("typographic family is %q, want it removed", got)
	}
	if got := names.Value(nametable.IDTypoSubfamily, win); got != "" {
		t.Errorf("typographic subfamily is %q, want it removed", got)
	}
}

func TestRecalcSupplementaryFamily(t *testing.T) {
	f := readTestFont(t)

	// A family name outside the BMP is stored with Windows encoding
	// ID 10.  The 16/17 comparison must still see the record, so that
	// a typographic family equal to the Windows family is dropped.
	e := &StyleEntry{
		File:          "test.ttf",
		FamilyName:    "Overlap \U0001F600",
		UsWidthClass:  5,
		Wdt:           "Nor",
		Width:         "Normal",
		UsWeightClass: 400,
		Wgt:           "Rg",
		Weight:        "Regular",
	}
	opts := Options{LinkedStyles: []int{400, 700}}
	_, err := Recalc(f, e, opts)
	if err != nil {
		t.Fatal(err)
	}

	names := fontNames(t, f)
	win := nametable.PlatformWindows
	if got := names.Value(nametable.IDFamily, win); got != "Overlap \U0001F600" {
		t.Errorf("family is %q, want %q", got, "Overlap \U0001F600")
	}
	if got := names.Value(nametable.IDTypoFamily, win); got != "" {
		t.Errorf("typographic family is %q, want it removed", got)
	}
	if got := names.Value(nametable.IDTypoSubfamily, win); got != "" {
		t.Errorf("typographic subfamily is %q, want it removed", got)
	}
}

func TestRecalcItalic(t *testing.T) {
	f := readTestFont(t)

	e := &StyleEntry{
		File:          "test.ttf",
		FamilyName:    "Overlap Test",
		IsItalic:      true,
		UsWidthClass:  5,
		Wdt:           "Nor",
		Width:         "Normal",
		UsWeightClass: 400,
		Wgt:           "Rg",
		Weight:        "Regular",
		Slp:           "It",
		Slope:         "Italic",
	}
	_, err := Recalc(f, e, Options{})
	if err != nil {
		t.Fatal(err)
	}

	isItalic, err := f.IsItalic()
	if err != nil {
		t.Fatal(err)
	}
	if !isItalic {
		t.Errorf("italic bits not set")
	}

	names := fontNames(t, f)
	win := nametable.PlatformWindows
	if got := names.Value(nametable.IDSubfamily, win); got != "Italic" {
		t.Errorf("subfamily is %q, want %q", got, "Italic")
	}
	if got := names.Value(nametable.IDPostScriptName, win); got != "OverlapTest-Italic" {
		t.Errorf("PostScript name is %q, want %q", got, "OverlapTest-Italic")
	}
	// name ID 17 matches the Windows subfamily, so it is dropped
	if got := names.Value(nametable.IDTypoSubfamily, win); got != "" {
		t.Errorf("typographic subfamily is %q, want it removed", got)
	}
}

func TestRecalcRegularItalic(t *testing.T) {
	f := readTestFont(t)

	e := &StyleEntry{
		File:          "test.ttf",
		FamilyName:    "Overlap Test",
		IsItalic:      true,
		UsWidthClass:  5,
		Wdt:           "Nor",
		Width:         "Normal",
		UsWeightClass: 400,
		Wgt:           "Rg",
		Weight:        "Regular",
		Slp:           "It",
		Slope:         "Italic",
	}
	_, err := Recalc(f, e, Options{RegularItalic: true})
	if err != nil {
		t.Fatal(err)
	}

	names := fontNames(t, f)
	got := names.Value(nametable.IDPostScriptName, nametable.PlatformWindows)
	if got != "OverlapTest-RegularItalic" {
		t.Errorf("PostScript name is %q, want %q", got, "OverlapTest-RegularItalic")
	}
}

func TestRecalcShorten(t *testing.T) {
	f := readTestFont(t)

	e := boldEntry()
	opts := Options{ShortenWeight: []int{1, 6}}
	_, err := Recalc(f, e, opts)
	if err != nil {
		t.Fatal(err)
	}

	names := fontNames(t, f)
	win := nametable.PlatformWindows
	if got := names.Value(nametable.IDFamily, win); got != "Overlap Test Bd" {
		t.Errorf("family is %q, want %q", got, "Overlap Test Bd")
	}
	if got := names.Value(nametable.IDPostScriptName, win); got != "OverlapTest-Bd" {
		t.Errorf("PostScript name is %q, want %q", got, "OverlapTest-Bd")
	}
	// name ID 4 is not shortened
	if got := names.Value(nametable.IDFullName, win); got != "Overlap Test Bold" {
		t.Errorf("full name is %q, want %q", got, "Overlap Test Bold")
	}
}

func TestRecalcIgnoreIDs(t *testing.T) {
	f := readTestFont(t)

	_, err := Recalc(f, boldEntry(), Options{IgnoreIDs: []int{6}})
	if err != nil {
		t.Fatal(err)
	}

	names := fontNames(t, f)
	win := nametable.PlatformWindows
	if got := names.Value(nametable.IDPostScriptName, win); got != "OverlapTest-Regular" {
		t.Errorf("PostScript name is %q, want %q", got, "OverlapTest-Regular")
	}
	// the kept PostScript name still feeds the unique identifier
	if got := names.Value(nametable.IDUniqueID, win); got != "1.500;TEST;OverlapTest-Regular" {
		t.Errorf("unique ID is %q", got)
	}
}

func TestRecalcWarnings(t *testing.T) {
	f := readTestFont(t)

	e := boldEntry()
	e.FamilyName = "An Exceessively Long Family Name That Nobody Wants"
	res, err := Recalc(f, e, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 2 {
		t.Errorf("got %d warnings, want 2: %v", len(res.Warnings), res.Warnings)
	}
}

func TestFormatRevision(t *testing.T) {
	cases := []struct {
		fixed uint32
		want  string
	}{
		{0x00010000, "1.000"},
		{0x00018000, "1.500"},
		{0x00020666, "2.025"},
		{0x000A0000, "10.00"},
		{0x00000000, "0.000"},
	}
	for _, c := range cases {
		if got := FormatRevision(c.fixed); got != c.want {
			t.Errorf("FormatRevision(%#x) = %q, want %q", c.fixed, got, c.want)
		}
	}
}
