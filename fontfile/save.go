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

package fontfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// SaveOptions control where and how a modified font is written back.
type SaveOptions struct {
	// OutputDir, if non-empty, replaces the directory of the input file.
	OutputDir string

	// Overwrite allows replacing an existing file.  When false, a
	// numbered suffix is appended to the file name instead.
	Overwrite bool

	// RecalcTimestamp updates the modification date in the "head"
	// table.  When false the original timestamp is preserved.
	RecalcTimestamp bool
}

// Save writes the font back to disk if any table changed.  It returns
// the output path and whether a file was actually written.  Unmodified
// fonts are left alone.
func (f *Font) Save(opts SaveOptions) (string, bool, error) {
	if !f.Dirty() {
		return f.Path, false, nil
	}

	if opts.RecalcTimestamp {
		head, err := f.Head()
		if err != nil {
			return "", false, err
		}
		head.SetModified(time.Now())
	}

	outPath, err := outputPath(f.Path, opts)
	if err != nil {
		return "", false, err
	}

	fd, err := os.Create(outPath)
	if err != nil {
		return "", false, err
	}
	err = f.Write(fd)
	if err != nil {
		fd.Close()
		return "", false, err
	}
	err = fd.Close()
	if err != nil {
		return "", false, err
	}
	return outPath, true, nil
}

var numberedStem = regexp.MustCompile(`^(.*)#(\d+)$`)

func outputPath(inPath string, opts SaveOptions) (string, error) {
	dir, base := filepath.Split(inPath)
	if opts.OutputDir != "" {
		dir = opts.OutputDir
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return "", err
		}
	}

	out := filepath.Join(dir, base)
	if opts.Overwrite {
		return out, nil
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	n := 1
	if m := numberedStem.FindStringSubmatch(stem); m != nil {
		stem = m[1]
		n, _ = strconv.Atoi(m[2])
	}
	for {
		_, err := os.Stat(out)
		if errors.Is(err, fs.ErrNotExist) {
			return out, nil
		} else if err != nil {
			return "", err
		}
		out = filepath.Join(dir, fmt.Sprintf("%s#%d%s", stem, n, ext))
		n++
	}
}

// Scan resolves a file-or-directory argument into a list of font files.
// A directory is scanned non-recursively and the result is sorted by
// file name.  Only .ttf and .otf files are considered.
func Scan(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !isFontPath(path) {
			return nil, fmt.Errorf("unsupported file type: %s", path)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := filepath.Join(path, e.Name())
		if isFontPath(name) {
			files = append(files, name)
		}
	}
	return files, nil
}

func isFontPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// NumGlyphs returns the glyph count from the "maxp" table.
func (f *Font) NumGlyphs() (int, error) {
	maxp, err := f.Maxp()
	if err != nil {
		return 0, err
	}
	return maxp.NumGlyphs(), nil
}

// UnitsPerEm returns the design grid size from the "head" table.
func (f *Font) UnitsPerEm() (uint16, error) {
	head, err := f.Head()
	if err != nil {
		return 0, err
	}
	return head.UnitsPerEm(), nil
}
