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

package fontfile_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/SolidTux/foundrytools/fontfile"
	"github.com/SolidTux/foundrytools/internal/testfont"
)

func readTestFont(t *testing.T) *fontfile.Font {
	t.Helper()
	f, err := fontfile.Read(bytes.NewReader(testfont.TrueType()))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestRead(t *testing.T) {
	f := readTestFont(t)

	if !f.IsTrueType() {
		t.Errorf("font not recognized as TrueType")
	}
	if f.IsCFF() {
		t.Errorf("font recognized as CFF")
	}
	for _, name := range []string{"head", "hhea", "maxp", "hmtx", "OS/2", "name", "glyf", "loca"} {
		if !f.HasTable(name) {
			t.Errorf("table %q missing", name)
		}
	}
	if f.Dirty() {
		t.Errorf("freshly read font is dirty")
	}
}

func TestViews(t *testing.T) {
	f := readTestFont(t)

	head, err := f.Head()
	if err != nil {
		t.Fatal(err)
	}
	if upm := head.UnitsPerEm(); upm != testfont.UnitsPerEm {
		t.Errorf("unitsPerEm is %d, want %d", upm, testfont.UnitsPerEm)
	}
	if rev := head.FontRevision(); rev != 0x00018000 {
		t.Errorf("fontRevision is %#x, want 0x00018000", rev)
	}
	if year := head.Created().Year(); year != 2024 {
		t.Errorf("created year is %d, want 2024", year)
	}

	n, err := f.NumGlyphs()
	if err != nil {
		t.Fatal(err)
	}
	if n != testfont.NumGlyphs {
		t.Errorf("numGlyphs is %d, want %d", n, testfont.NumGlyphs)
	}

	os2, err := f.OS2()
	if err != nil {
		t.Fatal(err)
	}
	if w := os2.WeightClass(); w != 400 {
		t.Errorf("usWeightClass is %d, want 400", w)
	}
	if w := os2.WidthClass(); w != 5 {
		t.Errorf("usWidthClass is %d, want 5", w)
	}
	if v := os2.VendorID(); v != "TEST" {
		t.Errorf("vendor ID is %q, want %q", v, "TEST")
	}

	hmtx, err := f.Hmtx()
	if err != nil {
		t.Fatal(err)
	}
	if adv := hmtx.Advance(1); adv != 600 {
		t.Errorf("advance width is %d, want 600", adv)
	}
	if lsb := hmtx.LSB(1); lsb != 100 {
		t.Errorf("LSB is %d, want 100", lsb)
	}
}

func TestDirty(t *testing.T) {
	f := readTestFont(t)

	os2, err := f.OS2()
	if err != nil {
		t.Fatal(err)
	}
	os2.SetWeightClass(700)
	if !f.TableDirty("OS/2") {
		t.Errorf("OS/2 not dirty after change")
	}
	if !f.Dirty() {
		t.Errorf("font not dirty after change")
	}
	os2.SetWeightClass(400)
	if f.Dirty() {
		t.Errorf("font still dirty after reverting the change")
	}
}

func TestDirtyIgnoresModified(t *testing.T) {
	// Updating the head timestamp alone must not make the font dirty,
	// otherwise every save would rewrite unchanged fonts.
	f := readTestFont(t)

	head, err := f.Head()
	if err != nil {
		t.Fatal(err)
	}
	head.SetModified(time.Now())
	if f.Dirty() {
		t.Errorf("font dirty after only the timestamp changed")
	}
}

func TestStyleBits(t *testing.T) {
	f := readTestFont(t)

	isRegular, err := f.IsRegular()
	if err != nil {
		t.Fatal(err)
	}
	if !isRegular {
		t.Errorf("test font is not regular")
	}

	if err := f.SetBold(); err != nil {
		t.Fatal(err)
	}
	isBold, err := f.IsBold()
	if err != nil {
		t.Fatal(err)
	}
	if !isBold {
		t.Errorf("font not bold after SetBold")
	}
	isRegular, err = f.IsRegular()
	if err != nil {
		t.Fatal(err)
	}
	if isRegular {
		t.Errorf("font still regular after SetBold")
	}

	if err := f.SetRegular(); err != nil {
		t.Fatal(err)
	}
	isBold, err = f.IsBold()
	if err != nil {
		t.Fatal(err)
	}
	if isBold {
		t.Errorf("font still bold after SetRegular")
	}

	if err := f.SetItalic(); err != nil {
		t.Fatal(err)
	}
	isItalic, err := f.IsItalic()
	if err != nil {
		t.Fatal(err)
	}
	if !isItalic {
		t.Errorf("font not italic after SetItalic")
	}
	if err := f.UnsetItalic(); err != nil {
		t.Fatal(err)
	}

	if err := f.SetUseTypoMetrics(); err != nil {
		t.Fatal(err)
	}
	utm, err := f.UsesTypoMetrics()
	if err != nil {
		t.Fatal(err)
	}
	if !utm {
		t.Errorf("USE_TYPO_METRICS not set")
	}
}

func TestAddDummyDSIG(t *testing.T) {
	f := readTestFont(t)

	f.AddDummyDSIG()
	if !f.HasTable("DSIG") {
		t.Errorf("DSIG table missing")
	}
	if !f.Dirty() {
		t.Errorf("font not dirty after adding DSIG")
	}
}

func TestMissingTable(t *testing.T) {
	f := readTestFont(t)
	f.SetTable("OS/2", nil)

	_, err := f.OS2()
	var missing *fontfile.MissingTableError
	if !errors.As(err, &missing) {
		t.Fatalf("got error %v, want MissingTableError", err)
	}
	if missing.Name != "OS/2" {
		t.Errorf("missing table is %q, want %q", missing.Name, "OS/2")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	f := readTestFont(t)

	buf := &bytes.Buffer{}
	err := f.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := fontfile.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	for name, data := range f.Tables {
		if !bytes.Equal(data, f2.Tables[name]) {
			t.Errorf("table %q changed after write/read round trip", name)
		}
	}
	if f2.ScalerType != f.ScalerType {
		t.Errorf("scaler type changed from %#x to %#x", f.ScalerType, f2.ScalerType)
	}
}
