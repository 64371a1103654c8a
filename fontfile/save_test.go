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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SolidTux/foundrytools/fontfile"
	"github.com/SolidTux/foundrytools/internal/testfont"
)

func writeTestFont(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, testfont.TrueType(), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSaveUnmodified(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFont(t, dir, "test.ttf")

	f, err := fontfile.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out, saved, err := f.Save(fontfile.SaveOptions{Overwrite: true})
	if err != nil {
		t.Fatal(err)
	}
	if saved {
		t.Errorf("unmodified font was written")
	}
	if out != path {
		t.Errorf("output path is %q, want %q", out, path)
	}
}

func TestSaveOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFont(t, dir, "test.ttf")

	f, err := fontfile.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	os2, err := f.OS2()
	if err != nil {
		t.Fatal(err)
	}
	os2.SetWeightClass(700)

	out, saved, err := f.Save(fontfile.SaveOptions{Overwrite: true})
	if err != nil {
		t.Fatal(err)
	}
	if !saved {
		t.Fatalf("modified font was not written")
	}
	if out != path {
		t.Errorf("output path is %q, want %q", out, path)
	}

	f2, err := fontfile.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	os2, err = f2.OS2()
	if err != nil {
		t.Fatal(err)
	}
	if w := os2.WeightClass(); w != 700 {
		t.Errorf("usWeightClass is %d, want 700", w)
	}
}

func TestSaveNumbered(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFont(t, dir, "test.ttf")

	for i, want := range []string{"test#1.ttf", "test#2.ttf"} {
		f, err := fontfile.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		os2, err := f.OS2()
		if err != nil {
			t.Fatal(err)
		}
		os2.SetWeightClass(uint16(500 + i*100))

		out, saved, err := f.Save(fontfile.SaveOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if !saved {
			t.Fatalf("modified font was not written")
		}
		if filepath.Base(out) != want {
			t.Errorf("output file is %q, want %q", filepath.Base(out), want)
		}
	}
}

func TestSaveOutputDir(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFont(t, dir, "test.ttf")
	outDir := filepath.Join(dir, "out")

	f, err := fontfile.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	f.AddDummyDSIG()

	out, saved, err := f.Save(fontfile.SaveOptions{OutputDir: outDir, Overwrite: true})
	if err != nil {
		t.Fatal(err)
	}
	if !saved {
		t.Fatalf("modified font was not written")
	}
	want := filepath.Join(outDir, "test.ttf")
	if out != want {
		t.Errorf("output path is %q, want %q", out, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestSaveRecalcTimestamp(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFont(t, dir, "test.ttf")

	f, err := fontfile.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	head, err := f.Head()
	if err != nil {
		t.Fatal(err)
	}
	before := head.Modified()
	f.AddDummyDSIG()

	out, _, err := f.Save(fontfile.SaveOptions{Overwrite: true, RecalcTimestamp: true})
	if err != nil {
		t.Fatal(err)
	}
	f2, err := fontfile.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	head, err = f2.Head()
	if err != nil {
		t.Fatal(err)
	}
	if !head.Modified().After(before) {
		t.Errorf("modification date not updated")
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	b := writeTestFont(t, dir, "b.ttf")
	a := writeTestFont(t, dir, "a.otf")
	writeTestFont(t, dir, "readme.txt")
	err := os.Mkdir(filepath.Join(dir, "sub"), 0o755)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("directory", func(t *testing.T) {
		got, err := fontfile.Scan(dir)
		if err != nil {
			t.Fatal(err)
		}
		want := []string{a, b}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("file list mismatch (-want +got):\n%s", d)
		}
	})

	t.Run("single file", func(t *testing.T) {
		got, err := fontfile.Scan(b)
		if err != nil {
			t.Fatal(err)
		}
		want := []string{b}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("file list mismatch (-want +got):\n%s", d)
		}
	})

	t.Run("unsupported file", func(t *testing.T) {
		_, err := fontfile.Scan(filepath.Join(dir, "readme.txt"))
		if err == nil {
			t.Errorf("expected an error for a non-font file")
		}
	})
}
