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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const stylesCSV = `file,family_name,is_italic,is_oblique,uswidthclass,wdt,width,usweightclass,wgt,weight,slp,slope
Test-Regular.ttf,Test,0,0,5,Nor,Normal,400,Rg,Regular,,
Test-BoldItalic.ttf,Test,1,0,5,Nor,Normal,700,Bd,Bold,It,Italic
TestCnd-Regular.ttf,Test,0,0,3,Cnd,Condensed,400,Rg,Regular,,
`

func writeStyles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.csv")
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStyles(t *testing.T) {
	entries, err := LoadStyles(writeStyles(t, stylesCSV))
	if err != nil {
		t.Fatal(err)
	}

	want := []StyleEntry{
		{
			File: "Test-Regular.ttf", FamilyName: "Test",
			UsWidthClass: 5, Wdt: "Nor", Width: "Normal",
			UsWeightClass: 400, Wgt: "Rg", Weight: "Regular",
		},
		{
			File: "Test-BoldItalic.ttf", FamilyName: "Test", IsItalic: true,
			UsWidthClass: 5, Wdt: "Nor", Width: "Normal",
			UsWeightClass: 700, Wgt: "Bd", Weight: "Bold",
			Slp: "It", Slope: "Italic",
		},
		{
			File: "TestCnd-Regular.ttf", FamilyName: "Test",
			UsWidthClass: 3, Wdt: "Cnd", Width: "Condensed",
			UsWeightClass: 400, Wgt: "Rg", Weight: "Regular",
		},
	}
	if d := cmp.Diff(want, entries); d != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", d)
	}
}

func TestLoadStylesErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"wrong column", "file,family_name,is_italic,is_oblique,uswidthclass,wdt,width,weightclass,wgt,weight,slp,slope\n"},
		{"missing column", "file,family_name,is_italic\n"},
		{"bad bool", "file,family_name,is_italic,is_oblique,uswidthclass,wdt,width,usweightclass,wgt,weight,slp,slope\nx.ttf,Test,yes,0,5,Nor,Normal,400,Rg,Regular,,\n"},
		{"bad int", "file,family_name,is_italic,is_oblique,uswidthclass,wdt,width,usweightclass,wgt,weight,slp,slope\nx.ttf,Test,0,0,wide,Nor,Normal,400,Rg,Regular,,\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadStyles(writeStyles(t, c.content))
			if err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestFindStyle(t *testing.T) {
	entries, err := LoadStyles(writeStyles(t, stylesCSV))
	if err != nil {
		t.Fatal(err)
	}

	e, ok := FindStyle(entries, "Test-BoldItalic.ttf")
	if !ok {
		t.Fatal("entry not found")
	}
	if e.UsWeightClass != 700 {
		t.Errorf("usWeightClass is %d, want 700", e.UsWeightClass)
	}

	_, ok = FindStyle(entries, "Unknown.ttf")
	if ok {
		t.Errorf("found an entry for an unknown file")
	}
}
