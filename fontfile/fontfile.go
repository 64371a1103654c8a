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

// Package fontfile gives table-level access to sfnt font files.
//
// A font is held as the raw bytes of its tables.  Editing operations patch
// the tables they are concerned with and leave every other table untouched,
// so that saving a font never churns data the user did not ask to change.
// Reading and writing the sfnt container (table directory, padding,
// checksums) is delegated to seehuhn.de/go/sfnt/header.
package fontfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/sfnt/header"
)

// Scaler types identifying the flavour of an sfnt font file.
const (
	ScalerTypeTrueType = 0x00010000
	ScalerTypeCFF      = 0x4F54544F
	ScalerTypeApple    = 0x74727565
)

// Font is a font file, held as one raw byte slice per sfnt table.
type Font struct {
	// Path is the file the font was read from.  It may be empty for
	// fonts constructed in memory.
	Path string

	ScalerType uint32

	// Tables maps table tags to table data.  The slices may be modified
	// in place; use SetTable to replace a table wholesale.
	Tables map[string][]byte

	orig map[string][]byte
}

// Read reads a font file.
func Read(r io.ReaderAt) (*Font, error) {
	info, err := header.Read(r)
	if err != nil {
		return nil, err
	}

	f := &Font{
		ScalerType: info.ScalerType,
		Tables:     make(map[string][]byte, len(info.Toc)),
		orig:       make(map[string][]byte, len(info.Toc)),
	}
	for name := range info.Toc {
		data, err := info.ReadTableBytes(r, name)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
		f.Tables[name] = data
		f.orig[name] = bytes.Clone(data)
	}
	return f, nil
}

// ReadFile reads the font file with the given name.
func ReadFile(name string) (*Font, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	f.Path = name
	return f, nil
}

// IsTrueType reports whether the font contains TrueType outlines.
func (f *Font) IsTrueType() bool {
	return f.ScalerType == ScalerTypeTrueType || f.ScalerType == ScalerTypeApple
}

// IsCFF reports whether the font contains CFF outlines.
func (f *Font) IsCFF() bool {
	return f.ScalerType == ScalerTypeCFF
}

// HasTable reports whether the font contains the given table.
func (f *Font) HasTable(name string) bool {
	_, ok := f.Tables[name]
	return ok
}

// SetTable replaces a table.  A nil data slice removes the table.
func (f *Font) SetTable(name string, data []byte) {
	if data == nil {
		delete(f.Tables, name)
		return
	}
	f.Tables[name] = data
}

// table returns the raw bytes of a table, checking a minimum length.
func (f *Font) table(name string, minLength int) ([]byte, error) {
	data, ok := f.Tables[name]
	if !ok {
		return nil, &MissingTableError{Name: name}
	}
	if len(data) < minLength {
		return nil, fmt.Errorf("table %q: got %d bytes, expected at least %d",
			name, len(data), minLength)
	}
	return data, nil
}

// TableDirty reports whether a table differs from the state it had when the
// font was read.  Two fields of the "head" table are ignored: the checksum
// adjustment (recomputed on every write) and the modification time (only
// updated when the user asks for it).
func (f *Font) TableDirty(name string) bool {
	cur, curOK := f.Tables[name]
	old, oldOK := f.orig[name]
	if curOK != oldOK {
		return true
	}
	if name == "head" && len(cur) >= headLength && len(old) >= headLength {
		return !bytes.Equal(cur[:headCheckSumAdjustment], old[:headCheckSumAdjustment]) ||
			!bytes.Equal(cur[headMagicNumber:headModified], old[headMagicNumber:headModified]) ||
			!bytes.Equal(cur[headModified+8:], old[headModified+8:])
	}
	return !bytes.Equal(cur, old)
}

// Dirty reports whether any table changed since the font was read.
func (f *Font) Dirty() bool {
	for name := range f.Tables {
		if f.TableDirty(name) {
			return true
		}
	}
	for name := range f.orig {
		if _, ok := f.Tables[name]; !ok {
			return true
		}
	}
	return false
}

// Write writes the font to w.  The table directory is rebuilt and the
// checksum adjustment in the "head" table is recomputed.
func (f *Font) Write(w io.Writer) error {
	_, err := header.Write(w, f.ScalerType, f.Tables)
	return err
}

// AddDummyDSIG installs an empty DSIG table (version 1, no signatures).
// Some legacy Microsoft tools refuse fonts without it.
func (f *Font) AddDummyDSIG() {
	f.Tables["DSIG"] = []byte{0, 0, 0, 1, 0, 0, 0, 0}
}

// MissingTableError indicates that a required sfnt table is not present in
// the font.
type MissingTableError struct {
	Name string
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("table %q not found", e.Name)
}
