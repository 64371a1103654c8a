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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/SolidTux/foundrytools/fontfile"
	"github.com/SolidTux/foundrytools/nametable"
	"github.com/SolidTux/foundrytools/naming"
)

type printCmd struct {
	Names printNamesCmd `cmd:"" help:"List the records of the name table."`
	Info  printInfoCmd  `cmd:"" help:"Show basic font properties."`
}

type printNamesCmd struct {
	MaxWidth int    `help:"Wrap the name strings at this many characters." default:"80"`
	Input    string `arg:"" help:"Font file or directory." type:"path"`
}

func (c *printNamesCmd) Run() error {
	files, err := fontfile.Scan(c.Input)
	if err != nil {
		return err
	}
	for _, path := range files {
		err := printNames(path, c.MaxWidth)
		if err != nil {
			pterm.Error.Printf("%s: %v\n", path, err)
		}
	}
	return nil
}

func printNames(path string, maxWidth int) error {
	f, err := fontfile.ReadFile(path)
	if err != nil {
		return err
	}
	names, err := readNames(f)
	if err != nil {
		return err
	}

	pterm.DefaultSection.Println(path)
	data := pterm.TableData{{"ID", "Platform", "Enc", "Lang", "Value"}}
	for _, rec := range names.Records {
		data = append(data, []string{
			strconv.Itoa(int(rec.NameID)),
			platformName(rec.PlatformID),
			strconv.Itoa(int(rec.EncodingID)),
			langName(rec),
			wrap(rec.String(), maxWidth),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

type printInfoCmd struct {
	Input string `arg:"" help:"Font file or directory." type:"path"`
}

func (c *printInfoCmd) Run() error {
	files, err := fontfile.Scan(c.Input)
	if err != nil {
		return err
	}
	for _, path := range files {
		err := printInfo(path)
		if err != nil {
			pterm.Error.Printf("%s: %v\n", path, err)
		}
	}
	return nil
}

func printInfo(path string) error {
	f, err := fontfile.ReadFile(path)
	if err != nil {
		return err
	}
	head, err := f.Head()
	if err != nil {
		return err
	}
	os2, err := f.OS2()
	if err != nil {
		return err
	}
	numGlyphs, err := f.NumGlyphs()
	if err != nil {
		return err
	}
	style, err := styleString(f)
	if err != nil {
		return err
	}

	flavor := fmt.Sprintf("0x%08X", f.ScalerType)
	switch {
	case f.IsTrueType():
		flavor += " (TrueType)"
	case f.IsCFF():
		flavor += " (CFF)"
	}

	data := pterm.TableData{
		{"File", path},
		{"Scaler type", flavor},
		{"Glyphs", strconv.Itoa(numGlyphs)},
		{"Units per em", strconv.Itoa(int(head.UnitsPerEm()))},
		{"Font revision", naming.FormatRevision(head.FontRevision())},
		{"usWeightClass", strconv.Itoa(int(os2.WeightClass()))},
		{"usWidthClass", strconv.Itoa(int(os2.WidthClass()))},
		{"Vendor ID", os2.VendorID()},
		{"Embedding", embedLevelName(os2.FsType())},
		{"Style", style},
	}
	return pterm.DefaultTable.WithData(data).Render()
}

func platformName(id uint16) string {
	switch id {
	case nametable.PlatformUnicode:
		return "Unicode"
	case nametable.PlatformMacintosh:
		return "Macintosh"
	case nametable.PlatformWindows:
		return "Windows"
	}
	return strconv.Itoa(int(id))
}

func langName(rec *nametable.Record) string {
	tag := nametable.LangTag(rec.PlatformID, rec.LanguageID)
	if tag == "" {
		return strconv.Itoa(int(rec.LanguageID))
	}
	return tag
}

func embedLevelName(fsType uint16) string {
	switch fsType & 0x000F {
	case 0:
		return "0 (installable)"
	case 2:
		return "2 (restricted)"
	case 4:
		return "4 (preview & print)"
	case 8:
		return "8 (editable)"
	}
	return strconv.Itoa(int(fsType & 0x000F))
}

func styleString(f *fontfile.Font) (string, error) {
	checks := []struct {
		name string
		fn   func() (bool, error)
	}{
		{"Regular", f.IsRegular},
		{"Bold", f.IsBold},
		{"Italic", f.IsItalic},
		{"Oblique", f.IsOblique},
		{"UseTypoMetrics", f.UsesTypoMetrics},
	}
	var parts []string
	for _, c := range checks {
		set, err := c.fn()
		if err != nil {
			return "", err
		}
		if set {
			parts = append(parts, c.name)
		}
	}
	if len(parts) == 0 {
		return "-", nil
	}
	return strings.Join(parts, " "), nil
}

// wrap inserts line breaks so that no line is longer than width runes.
// Breaks happen at spaces where possible; words longer than a full line
// are split at the width boundary.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		switch {
		case lineLen == 0:
		case lineLen+1+len(runes) <= width:
			b.WriteByte(' ')
			lineLen++
		default:
			b.WriteByte('\n')
			lineLen = 0
		}
		for len(runes) > width-lineLen {
			b.WriteString(string(runes[:width-lineLen]))
			b.WriteByte('\n')
			runes = runes[width-lineLen:]
			lineLen = 0
		}
		b.WriteString(string(runes))
		lineLen += len(runes)
	}
	return b.String()
}
