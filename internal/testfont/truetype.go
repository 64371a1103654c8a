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

// Package testfont builds small fonts in memory for use in tests.
//
// The TrueType font contains five glyphs:
//
//   - GID 0: empty (.notdef)
//   - GID 1: a hinted square, no overlaps
//   - GID 2: two overlapping squares in one glyph
//   - GID 3: a composite of two overlapping copies of GID 1
//   - GID 4: a composite of two disjoint copies of GID 1
//
// The CFF font contains an empty .notdef and one glyph made of two
// overlapping squares.
package testfont

import (
	"bytes"
	"encoding/binary"
	"time"

	"seehuhn.de/go/sfnt/header"

	"github.com/SolidTux/foundrytools/nametable"
)

// Design constants of the TrueType test font.
const (
	UnitsPerEm = 1000
	NumGlyphs  = 5
)

// TrueType returns a complete TrueType font file.
func TrueType() []byte {
	square := simpleGlyph([]byte{0xB0, 0x00}, // one dummy instruction
		quad(100, 100, 500, 500))
	overlapping := simpleGlyph(nil,
		quad(100, 100, 400, 400),
		quad(300, 300, 600, 600))
	overlappingComposite := compositeGlyph(bbox{100, 100, 700, 700}, []byte{0xB0, 0x00},
		comp{gid: 1, dx: 0, dy: 0},
		comp{gid: 1, dx: 200, dy: 200})
	disjointComposite := compositeGlyph(bbox{100, 100, 1100, 500}, nil,
		comp{gid: 1, dx: 0, dy: 0},
		comp{gid: 1, dx: 600, dy: 0})

	glyfData, locaData := encodeGlyphs([][]byte{
		nil, square, overlapping, overlappingComposite, disjointComposite,
	})

	tables := map[string][]byte{
		"head": headTable(0),
		"hhea": hheaTable(),
		"maxp": maxpTable(),
		"hmtx": hmtxTable(),
		"OS/2": os2Table(),
		"name": nameTable(),
		"glyf": glyfData,
		"loca": locaData,
	}

	buf := &bytes.Buffer{}
	_, err := header.Write(buf, 0x00010000, tables)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}

type bbox struct {
	xMin, yMin, xMax, yMax int16
}

type pt struct {
	x, y int16
}

// quad returns the corner points of an axis-aligned square.
func quad(x0, y0, x1, y1 int16) []pt {
	return []pt{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// simpleGlyph encodes a simple glyph with all points on the curve.
// Coordinate deltas are written in the long form throughout.
func simpleGlyph(instructions []byte, contours ...[]pt) []byte {
	w := &writer{}

	var pts []pt
	var endPts []int
	for _, c := range contours {
		pts = append(pts, c...)
		endPts = append(endPts, len(pts)-1)
	}

	bb := bbox{pts[0].x, pts[0].y, pts[0].x, pts[0].y}
	for _, p := range pts[1:] {
		bb.xMin = min(bb.xMin, p.x)
		bb.yMin = min(bb.yMin, p.y)
		bb.xMax = max(bb.xMax, p.x)
		bb.yMax = max(bb.yMax, p.y)
	}

	w.i16(int16(len(contours)))
	w.i16(bb.xMin)
	w.i16(bb.yMin)
	w.i16(bb.xMax)
	w.i16(bb.yMax)
	for _, end := range endPts {
		w.u16(uint16(end))
	}
	w.u16(uint16(len(instructions)))
	w.bytes(instructions)
	for range pts {
		w.u8(0x01) // on curve, long x, long y
	}
	prev := pt{}
	for _, p := range pts {
		w.i16(p.x - prev.x)
		prev = p
	}
	prev = pt{}
	for _, p := range pts {
		w.i16(p.y - prev.y)
		prev = p
	}
	return w.pad2()
}

type comp struct {
	gid    uint16
	dx, dy int16
}

// compositeGlyph encodes a composite glyph with word-sized XY offsets.
// Instructions, if any, are attached after the last component.
func compositeGlyph(bb bbox, instructions []byte, comps ...comp) []byte {
	w := &writer{}
	w.i16(-1)
	w.i16(bb.xMin)
	w.i16(bb.yMin)
	w.i16(bb.xMax)
	w.i16(bb.yMax)
	for i, c := range comps {
		flags := uint16(0x0003) // ARG_1_AND_2_ARE_WORDS | ARGS_ARE_XY_VALUES
		if i < len(comps)-1 {
			flags |= 0x0020 // MORE_COMPONENTS
		} else if len(instructions) > 0 {
			flags |= 0x0100 // WE_HAVE_INSTRUCTIONS
		}
		w.u16(flags)
		w.u16(c.gid)
		w.i16(c.dx)
		w.i16(c.dy)
	}
	if len(instructions) > 0 {
		w.u16(uint16(len(instructions)))
		w.bytes(instructions)
	}
	return w.pad2()
}

// encodeGlyphs builds the "glyf" and "loca" tables in the short loca
// format.
func encodeGlyphs(glyphs [][]byte) (glyfData, locaData []byte) {
	loca := &writer{}
	loca.u16(0)
	for _, g := range glyphs {
		glyfData = append(glyfData, g...)
		loca.u16(uint16(len(glyfData) / 2))
	}
	return glyfData, loca.buf
}

func headTable(indexToLocFormat int16) []byte {
	w := &writer{}
	w.u32(0x00010000) // version
	w.u32(0x00018000) // fontRevision 1.5
	w.u32(0)          // checkSumAdjustment
	w.u32(0x5F0F3CF5) // magicNumber
	w.u16(0x0003)     // flags
	w.u16(UnitsPerEm)
	created := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	epoch := time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
	w.i64(int64(created.Sub(epoch) / time.Second))
	w.i64(int64(created.Sub(epoch) / time.Second))
	w.i16(100)  // xMin
	w.i16(100)  // yMin
	w.i16(1100) // xMax
	w.i16(700)  // yMax
	w.u16(0)    // macStyle
	w.u16(8)    // lowestRecPPEM
	w.i16(2)    // fontDirectionHint
	w.i16(indexToLocFormat)
	w.i16(0) // glyphDataFormat
	return w.buf
}

func hheaTable() []byte {
	w := &writer{}
	w.u32(0x00010000) // version
	w.i16(800)        // ascent
	w.i16(-200)       // descent
	w.i16(0)          // lineGap
	w.u16(600)        // advanceWidthMax
	w.i16(0)          // minLeftSideBearing
	w.i16(0)          // minRightSideBearing
	w.i16(1100)       // xMaxExtent
	w.i16(1)          // caretSlopeRise
	w.i16(0)          // caretSlopeRun
	w.i16(0)          // caretOffset
	for i := 0; i < 4; i++ {
		w.i16(0) // reserved
	}
	w.i16(0)          // metricDataFormat
	w.u16(NumGlyphs)  // numberOfLongHorMetrics
	return w.buf
}

func maxpTable() []byte {
	w := &writer{}
	w.u32(0x00010000) // version
	w.u16(NumGlyphs)
	w.u16(8) // maxPoints
	w.u16(2) // maxContours
	w.u16(8) // maxCompositePoints
	w.u16(2) // maxCompositeContours
	w.u16(2) // maxZones
	w.u16(0) // maxTwilightPoints
	w.u16(0) // maxStorage
	w.u16(0) // maxFunctionDefs
	w.u16(0) // maxInstructionDefs
	w.u16(0) // maxStackElements
	w.u16(2) // maxSizeOfInstructions
	w.u16(2) // maxComponentElements
	w.u16(1) // maxComponentDepth
	return w.buf
}

func hmtxTable() []byte {
	w := &writer{}
	lsbs := []int16{0, 100, 100, 100, 100}
	for _, lsb := range lsbs {
		w.u16(600) // advance width
		w.i16(lsb)
	}
	return w.buf
}

func os2Table() []byte {
	w := &writer{}
	w.u16(4)   // version
	w.i16(600) // xAvgCharWidth
	w.u16(400) // usWeightClass
	w.u16(5)   // usWidthClass
	w.u16(0)   // fsType
	w.i16(650) // ySubscriptXSize
	w.i16(600) // ySubscriptYSize
	w.i16(0)   // ySubscriptXOffset
	w.i16(75)  // ySubscriptYOffset
	w.i16(650) // ySuperscriptXSize
	w.i16(600) // ySuperscriptYSize
	w.i16(0)   // ySuperscriptXOffset
	w.i16(350) // ySuperscriptYOffset
	w.i16(50)  // yStrikeoutSize
	w.i16(250) // yStrikeoutPosition
	w.i16(0)   // sFamilyClass
	w.bytes(make([]byte, 10)) // panose
	w.bytes(make([]byte, 16)) // ulUnicodeRange
	w.bytes([]byte("TEST"))   // achVendID
	w.u16(0x0040)             // fsSelection: regular
	w.u16(32)                 // usFirstCharIndex
	w.u16(65)                 // usLastCharIndex
	w.i16(750)                // sTypoAscender
	w.i16(-250)               // sTypoDescender
	w.i16(0)                  // sTypoLineGap
	w.u16(800)                // usWinAscent
	w.u16(200)                // usWinDescent
	w.bytes(make([]byte, 8))  // ulCodePageRange
	w.i16(400)                // sxHeight
	w.i16(600)                // sCapHeight
	w.u16(0)                  // usDefaultChar
	w.u16(32)                 // usBreakChar
	w.u16(1)                  // usMaxContext
	return w.buf
}

func nameTable() []byte {
	t := &nametable.Table{}
	en, _ := nametable.LookupLang("en")
	t.SetName(nametable.IDFamily, "Overlap Test", en, true, true)
	t.SetName(nametable.IDSubfamily, "Regular", en, true, true)
	t.SetName(nametable.IDFullName, "Overlap Test Regular", en, true, true)
	t.SetName(nametable.IDPostScriptName, "OverlapTest-Regular", en, true, true)
	data, err := t.Encode()
	if err != nil {
		panic(err)
	}
	return data
}

// writer collects big-endian table data.
type writer struct {
	buf []byte
}

func (w *writer) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *writer) u16(v uint16) { w.buf = binary.BigEndian.AppendUint16(w.buf, v) }
func (w *writer) i16(v int16)  { w.u16(uint16(v)) }
func (w *writer) u32(v uint32) { w.buf = binary.BigEndian.AppendUint32(w.buf, v) }
func (w *writer) i64(v int64)  { w.buf = binary.BigEndian.AppendUint64(w.buf, uint64(v)) }

func (w *writer) bytes(b []byte) { w.buf = append(w.buf, b...) }

func (w *writer) pad2() []byte {
	if len(w.buf)%2 != 0 {
		w.buf = append(w.buf, 0)
	}
	return w.buf
}
