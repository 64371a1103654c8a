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
// MERCHANTABILITY OR FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package overlaps

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SolidTux/foundrytools/fontfile"
	"github.com/SolidTux/foundrytools/internal/testfont"
)

func testGlyphs(t *testing.T) [][]byte {
	t.Helper()

	f, err := fontfile.Read(bytes.NewReader(testfont.TrueType()))
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
	return glyphs
}

func TestSplitJoinGlyf(t *testing.T) {
	glyphs := testGlyphs(t)
	if len(glyphs) != testfont.NumGlyphs {
		t.Fatalf("got %d glyphs, want %d", len(glyphs), testfont.NumGlyphs)
	}
	if len(glyphs[0]) != 0 {
		t.Errorf("glyph 0 is not empty")
	}

	glyfData, locaData, locaFormat := joinGlyf(glyphs)
	glyphs2, err := splitGlyf(glyfData, locaData, locaFormat, len(glyphs))
	if err != nil {
		t.Fatal(err)
	}
	for gid := range glyphs {
		if !bytes.Equal(glyphs[gid], glyphs2[gid]) {
			t.Errorf("glyph %d changed after encode/decode round trip", gid)
		}
	}
}

func TestJoinGlyfLocaFormat(t *testing.T) {
	// Short loca offsets are halved, so a total size above 2*0xFFFF
	// forces the long format.
	big := make([]byte, 0x1fffe)
	big[0] = 0
	big[1] = 0 // zero contours

	_, _, locaFormat := joinGlyf([][]byte{nil, big})
	if locaFormat != 0 {
		t.Errorf("got loca format %d, want 0", locaFormat)
	}

	_, _, locaFormat = joinGlyf([][]byte{nil, big, big})
	if locaFormat != 1 {
		t.Errorf("got loca format %d, want 1", locaFormat)
	}
}

func TestDecodeSimple(t *testing.T) {
	glyphs := testGlyphs(t)

	outline, err := decodeSimple(glyphs[1])
	if err != nil {
		t.Fatal(err)
	}
	want := []contour{
		{
			{x: 100, y: 100, onCurve: true},
			{x: 500, y: 100, onCurve: true},
			{x: 500, y: 500, onCurve: true},
			{x: 100, y: 500, onCurve: true},
		},
	}
	if d := cmp.Diff(want, outline, cmp.AllowUnexported(point{})); d != "" {
		t.Errorf("glyph 1 outline mismatch (-want +got):\n%s", d)
	}

	outline, err = decodeSimple(glyphs[2])
	if err != nil {
		t.Fatal(err)
	}
	if len(outline) != 2 {
		t.Fatalf("got %d contours, want 2", len(outline))
	}
	for i, c := range outline {
		if len(c) != 4 {
			t.Errorf("contour %d has %d points, want 4", i, len(c))
		}
	}
}

func TestEncodeSimpleRoundTrip(t *testing.T) {
	outlines := [][]contour{
		{
			{{x: 100, y: 100, onCurve: true}, {x: 500, y: 100, onCurve: true},
				{x: 500, y: 500, onCurve: true}, {x: 100, y: 500, onCurve: true}},
		},
		{
			// a quadratic arc with an off-curve point
			{{x: 0, y: 0, onCurve: true}, {x: 100, y: 0, onCurve: true},
				{x: 100, y: 100, onCurve: false}, {x: 0, y: 100, onCurve: true}},
		},
		{
			// two contours
			{{x: 0, y: 0, onCurve: true}, {x: 10, y: 0, onCurve: true}, {x: 10, y: 10, onCurve: true}},
			{{x: -100, y: -100, onCurve: true}, {x: -90, y: -100, onCurve: true}, {x: -90, y: -90, onCurve: true}},
		},
	}
	for i, outline := range outlines {
		data, err := encodeSimple(outline)
		if err != nil {
			t.Fatalf("outline %d: %v", i, err)
		}
		got, err := decodeSimple(data)
		if err != nil {
			t.Fatalf("outline %d: %v", i, err)
		}
		if d := cmp.Diff(outline, got, cmp.AllowUnexported(point{})); d != "" {
			t.Errorf("outline %d mismatch (-want +got):\n%s", i, d)
		}
	}
}

func TestEncodeSimpleEmpty(t *testing.T) {
	data, err := encodeSimple(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("empty outline encoded to %d bytes", len(data))
	}
}

func TestEncodeSimpleDeltaRange(t *testing.T) {
	// the delta between consecutive points exceeds the wire format's
	// 16 bit range, even though both coordinates fit
	outline := []contour{
		{{x: -20000, y: 0, onCurve: true}, {x: 20000, y: 0, onCurve: true},
			{x: 20000, y: 10, onCurve: true}},
	}
	_, err := encodeSimple(outline)
	if err == nil {
		t.Errorf("expected an error for an out of range delta")
	}
}

func TestParseComposite(t *testing.T) {
	glyphs := testGlyphs(t)

	components, err := parseComposite(glyphs[3])
	if err != nil {
		t.Fatal(err)
	}
	if len(components) != 2 {
		t.Fatalf("got %d components, want 2", len(components))
	}
	for i, c := range components {
		if c.gid != 1 {
			t.Errorf("component %d references glyph %d, want 1", i, c.gid)
		}
	}
	if components[0].dx != 0 || components[0].dy != 0 {
		t.Errorf("component 0 offset is (%g, %g), want (0, 0)",
			components[0].dx, components[0].dy)
	}
	if components[1].dx != 200 || components[1].dy != 200 {
		t.Errorf("component 1 offset is (%g, %g), want (200, 200)",
			components[1].dx, components[1].dy)
	}
}

func TestStripHinting(t *testing.T) {
	glyphs := testGlyphs(t)

	if n := simpleInstructionLength(glyphs[1]); n != 2 {
		t.Fatalf("glyph 1 has %d instruction bytes, want 2", n)
	}

	outline, err := decodeSimple(glyphs[1])
	if err != nil {
		t.Fatal(err)
	}

	err = stripHinting(glyphs)
	if err != nil {
		t.Fatal(err)
	}

	if n := simpleInstructionLength(glyphs[1]); n != 0 {
		t.Errorf("glyph 1 still has %d instruction bytes", n)
	}
	got, err := decodeSimple(glyphs[1])
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(outline, got, cmp.AllowUnexported(point{})); d != "" {
		t.Errorf("point data changed while stripping (-want +got):\n%s", d)
	}

	// the composite glyph must lose its instruction block too
	components, err := parseComposite(glyphs[3])
	if err != nil {
		t.Fatal(err)
	}
	if len(components) != 2 {
		t.Errorf("got %d components, want 2", len(components))
	}
	if d := glyphs[3]; len(d) > 0 {
		flags := uint16(d[10])<<8 | uint16(d[11])
		if flags&compHaveInstructions != 0 {
			t.Errorf("composite glyph still has the instructions flag set")
		}
	}
}

func FuzzSimpleGlyph(f *testing.F) {
	font, err := fontfile.Read(bytes.NewReader(testfont.TrueType()))
	if err != nil {
		f.Fatal(err)
	}
	head, err := font.Head()
	if err != nil {
		f.Fatal(err)
	}
	glyphs, err := splitGlyf(font.Tables["glyf"], font.Tables["loca"],
		head.IndexToLocFormat(), testfont.NumGlyphs)
	if err != nil {
		f.Fatal(err)
	}
	for _, g := range glyphs {
		f.Add(g)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		outline, err := decodeSimple(data)
		if err != nil {
			return
		}
		for _, c := range outline {
			if len(c) == 0 {
				// the encoder drops empty contours
				return
			}
		}
		data2, err := encodeSimple(outline)
		if err != nil {
			return
		}
		outline2, err := decodeSimple(data2)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(outline, outline2, cmp.AllowUnexported(point{})); d != "" {
			t.Errorf("outline mismatch (-want +got):\n%s", d)
		}
	})
}
