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

package overlaps

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyph"

	"github.com/SolidTux/foundrytools/fontfile"
	"github.com/SolidTux/foundrytools/internal/testfont"
)

func TestRemoveTrueType(t *testing.T) {
	f, err := fontfile.Read(bytes.NewReader(testfont.TrueType()))
	if err != nil {
		t.Fatal(err)
	}

	modified, err := Remove(f, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// GID 1 has no overlaps, GID 4 is a composite of disjoint parts.
	want := []glyph.ID{2, 3}
	if d := cmp.Diff(want, modified); d != "" {
		t.Errorf("modified glyphs mismatch (-want +got):\n%s", d)
	}

	head, err := f.Head()
	if err != nil {
		t.Fatal(err)
	}
	glyphs, err := splitGlyf(f.Tables["glyf"], f.Tables["loca"],
		head.IndexToLocFormat(), testfont.NumGlyphs)
	if err != nil {
		t.Fatal(err)
	}

	// The two overlapping squares merge into one eight-point contour.
	for _, gid := range []int{2, 3} {
		outline, err := decodeSimple(glyphs[gid])
		if err != nil {
			t.Fatal(err)
		}
		if len(outline) != 1 {
			t.Errorf("glyph %d has %d contours, want 1", gid, len(outline))
			continue
		}
		if len(outline[0]) != 8 {
			t.Errorf("glyph %d has %d points, want 8", gid, len(outline[0]))
		}
	}

	// The untouched square keeps its point data (but not its hinting).
	outline, err := decodeSimple(glyphs[1])
	if err != nil {
		t.Fatal(err)
	}
	wantOutline := []contour{
		{
			{x: 100, y: 100, onCurve: true},
			{x: 500, y: 100, onCurve: true},
			{x: 500, y: 500, onCurve: true},
			{x: 100, y: 500, onCurve: true},
		},
	}
	if d := cmp.Diff(wantOutline, outline, cmp.AllowUnexported(point{})); d != "" {
		t.Errorf("glyph 1 outline mismatch (-want +got):\n%s", d)
	}
	if n := simpleInstructionLength(glyphs[1]); n != 0 {
		t.Errorf("glyph 1 still has %d instruction bytes", n)
	}

	// The disjoint composite stays a composite.
	if !isComposite(glyphs[4]) {
		t.Errorf("glyph 4 was decomposed")
	}

	if !f.TableDirty("glyf") {
		t.Errorf("glyf table not marked dirty")
	}

	xMin, yMin, xMax, yMax := head.BBox()
	if xMin != 100 || yMin != 100 || xMax != 1100 || yMax != 700 {
		t.Errorf("head bbox is (%d, %d, %d, %d), want (100, 100, 1100, 700)",
			xMin, yMin, xMax, yMax)
	}

	maxp, err := f.Maxp()
	if err != nil {
		t.Fatal(err)
	}
	if n := maxp.MaxSizeOfInstructions(); n != 0 {
		t.Errorf("maxSizeOfInstructions is %d, want 0", n)
	}
}

func TestRemoveTrueTypeLSB(t *testing.T) {
	// A glyph whose settled outline starts further left than its
	// metrics claim must get a corrected left side bearing.
	f, err := fontfile.Read(bytes.NewReader(testfont.TrueType()))
	if err != nil {
		t.Fatal(err)
	}
	hmtx, err := f.Hmtx()
	if err != nil {
		t.Fatal(err)
	}
	hmtx.SetLSB(2, 300)

	_, err = Remove(f, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if lsb := hmtx.LSB(2); lsb != 100 {
		t.Errorf("glyph 2 LSB is %d, want 100", lsb)
	}
	if lsb := hmtx.LSB(1); lsb != 100 {
		t.Errorf("glyph 1 LSB is %d, want 100", lsb)
	}
}

func TestRemoveTrueTypeKeepHinting(t *testing.T) {
	f, err := fontfile.Read(bytes.NewReader(testfont.TrueType()))
	if err != nil {
		t.Fatal(err)
	}

	_, err = Remove(f, Options{KeepHinting: true})
	if err != nil {
		t.Fatal(err)
	}

	head, err := f.Head()
	if err != nil {
		t.Fatal(err)
	}
	glyphs, err := splitGlyf(f.Tables["glyf"], f.Tables["loca"],
		head.IndexToLocFormat(), testfont.NumGlyphs)
	if err != nil {
		t.Fatal(err)
	}
	if n := simpleInstructionLength(glyphs[1]); n != 2 {
		t.Errorf("glyph 1 has %d instruction bytes, want 2", n)
	}
	// rewritten glyphs are unhinted even with KeepHinting
	if n := simpleInstructionLength(glyphs[2]); n != 0 {
		t.Errorf("glyph 2 has %d instruction bytes, want 0", n)
	}
}

func TestRemoveNoChanges(t *testing.T) {
	// A second pass over an already settled font must leave every
	// table byte-identical, so that the font is not rewritten.
	f, err := fontfile.Read(bytes.NewReader(testfont.TrueType()))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Remove(f, Options{})
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	err = f.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := fontfile.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	modified, err := Remove(f2, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(modified) != 0 {
		t.Errorf("second pass modified glyphs %v", modified)
	}
	if f2.Dirty() {
		t.Errorf("second pass left the font dirty")
	}
}

func TestRemoveCFF(t *testing.T) {
	f, err := fontfile.Read(bytes.NewReader(testfont.CFF()))
	if err != nil {
		t.Fatal(err)
	}
	if !f.IsCFF() {
		t.Fatal("test font has no CFF outlines")
	}

	modified, err := Remove(f, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []glyph.ID{1}
	if d := cmp.Diff(want, modified); d != "" {
		t.Errorf("modified glyphs mismatch (-want +got):\n%s", d)
	}
	if !f.TableDirty("CFF ") {
		t.Errorf("CFF table not marked dirty")
	}

	font, err := cff.Read(bytes.NewReader(f.Tables["CFF "]))
	if err != nil {
		t.Fatal(err)
	}
	g := font.Outlines.Glyphs[1]
	if g.Name != "A" {
		t.Errorf("glyph name is %q, want %q", g.Name, "A")
	}
	if g.Width != 600 {
		t.Errorf("glyph width is %g, want 600", g.Width)
	}
	subpaths := 0
	for _, cmd := range g.Cmds {
		if cmd.Op == cff.OpMoveTo {
			subpaths++
		}
	}
	if subpaths != 1 {
		t.Errorf("glyph has %d subpaths, want 1", subpaths)
	}
}

func TestRemoveNoOutlines(t *testing.T) {
	f := &fontfile.Font{
		ScalerType: fontfile.ScalerTypeTrueType,
		Tables:     map[string][]byte{},
	}
	_, err := Remove(f, Options{})
	if err == nil {
		t.Errorf("expected an error for a font without outlines")
	}
}
