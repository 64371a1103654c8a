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

package testfont

import (
	"bytes"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"
)

// CFF returns a complete OpenType font file with CFF outlines.  The
// "A" glyph consists of two overlapping squares.
func CFF() []byte {
	a := cff.NewGlyph("A", 600)
	drawSquare(a, 100, 100, 400, 400)
	drawSquare(a, 300, 300, 600, 600)

	outlines := &cff.Outlines{
		Glyphs: []*cff.Glyph{
			cff.NewGlyph(".notdef", 600),
			a,
		},
		Private: []*type1.PrivateDict{
			{
				BlueValues: []funit.Int16{0, 0, 600, 610},
				BlueScale:  0.039625,
				BlueShift:  7,
				BlueFuzz:   1,
			},
		},
		FDSelect: func(glyph.ID) int { return 0 },
		Encoding: []glyph.ID{0, 1},
	}

	cmapSubtable := cmap.Format4{'A': 1}
	cmapTable := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: cmapSubtable.Encode(0),
	}

	font := &sfnt.Font{
		FamilyName: "Overlap Test CFF",
		Ascent:     800,
		Descent:    -200,
		CapHeight:  600,
		XHeight:    400,
		Outlines:   outlines,
		Width:      os2.WidthNormal,
		Weight:     os2.WeightNormal,
		IsRegular:  true,
		PermUse:    os2.PermInstall,
		UnitsPerEm: 1000,
		FontMatrix: matrix.Matrix{0.001, 0, 0, 0.001, 0, 0},
		CMapTable:  cmapTable,
	}

	buf := &bytes.Buffer{}
	_, err := font.Write(buf)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func drawSquare(g *cff.Glyph, x0, y0, x1, y1 float64) {
	g.MoveTo(x0, y0)
	g.LineTo(x1, y0)
	g.LineTo(x1, y1)
	g.LineTo(x0, y1)
}
