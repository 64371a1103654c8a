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
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// A StyleEntry describes the target style attributes of one font file,
// read from a styles CSV file.
type StyleEntry struct {
	File          string // base name of the font file
	FamilyName    string
	IsItalic      bool
	IsOblique     bool
	UsWidthClass  int
	Wdt           string // abbreviated width name, e.g. "Cnd"
	Width         string // width name, e.g. "Condensed"
	UsWeightClass int
	Wgt           string // abbreviated weight name, e.g. "Bd"
	Weight        string // weight name, e.g. "Bold"
	Slp           string // abbreviated slope name, e.g. "It"
	Slope         string // slope name, e.g. "Italic"
}

var styleColumns = []string{
	"file", "family_name", "is_italic", "is_oblique",
	"uswidthclass", "wdt", "width", "usweightclass", "wgt", "weight",
	"slp", "slope",
}

// LoadStyles reads a styles CSV file.  The first row must contain the
// column names file, family_name, is_italic, is_oblique, uswidthclass,
// wdt, width, usweightclass, wgt, weight, slp, slope.
func LoadStyles(path string) ([]StyleEntry, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	r := csv.NewReader(fd)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty styles file", path)
	}

	header := rows[0]
	if len(header) != len(styleColumns) {
		return nil, fmt.Errorf("%s: expected %d columns, got %d",
			path, len(styleColumns), len(header))
	}
	for i, name := range styleColumns {
		if strings.ToLower(strings.TrimSpace(header[i])) != name {
			return nil, fmt.Errorf("%s: column %d must be %q, got %q",
				path, i+1, name, header[i])
		}
	}

	var entries []StyleEntry
	for rowNum, row := range rows[1:] {
		e, err := parseStyleRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, rowNum+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseStyleRow(row []string) (StyleEntry, error) {
	var e StyleEntry
	if len(row) != len(styleColumns) {
		return e, fmt.Errorf("expected %d fields, got %d", len(styleColumns), len(row))
	}

	var err error
	e.File = row[0]
	e.FamilyName = row[1]
	e.IsItalic, err = parseBoolField("is_italic", row[2])
	if err != nil {
		return e, err
	}
	e.IsOblique, err = parseBoolField("is_oblique", row[3])
	if err != nil {
		return e, err
	}
	e.UsWidthClass, err = parseIntField("uswidthclass", row[4])
	if err != nil {
		return e, err
	}
	e.Wdt = row[5]
	e.Width = row[6]
	e.UsWeightClass, err = parseIntField("usweightclass", row[7])
	if err != nil {
		return e, err
	}
	e.Wgt = row[8]
	e.Weight = row[9]
	e.Slp = row[10]
	e.Slope = row[11]
	return e, nil
}

func parseBoolField(name, s string) (bool, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("%s: %q is not 0 or 1", name, s)
	}
	return v != 0, nil
}

func parseIntField(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return v, nil
}

// FindStyle returns the entry whose File column matches the base name
// of the given path.
func FindStyle(entries []StyleEntry, baseName string) (*StyleEntry, bool) {
	for i := range entries {
		if entries[i].File == baseName {
			return &entries[i], true
		}
	}
	return nil, false
}
