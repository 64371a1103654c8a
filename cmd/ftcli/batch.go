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
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"

	"github.com/SolidTux/foundrytools/fontfile"
	"github.com/SolidTux/foundrytools/nametable"
)

// batchFlags are the options shared by every command that rewrites
// fonts.  Input may name a single font file or a directory holding
// .ttf/.otf files.
type batchFlags struct {
	Input           string `arg:"" help:"Font file or directory." type:"path"`
	OutputDir       string `help:"Write output files to this directory." short:"o" placeholder:"DIR" type:"path"`
	NoOverwrite     bool   `help:"Never replace an existing file; number the output file instead."`
	RecalcTimestamp bool   `help:"Update the modification date in the head table."`
	Jobs            int    `help:"Number of fonts to process in parallel." short:"j" default:"1"`
}

func (b *batchFlags) saveOptions() fontfile.SaveOptions {
	return fontfile.SaveOptions{
		OutputDir:       b.OutputDir,
		Overwrite:       !b.NoOverwrite,
		RecalcTimestamp: b.RecalcTimestamp,
	}
}

// process runs edit on every font named by Input and saves the fonts
// that changed.  Failures are reported per font and do not stop the
// batch.
func (b *batchFlags) process(edit func(path string, f *fontfile.Font) error) error {
	files, err := fontfile.Scan(b.Input)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no font files in %s", b.Input)
	}

	jobs := b.Jobs
	if jobs < 1 {
		jobs = 1
	}
	g := &errgroup.Group{}
	g.SetLimit(jobs)
	for _, path := range files {
		g.Go(func() error {
			err := b.processOne(path, edit)
			if err != nil {
				pterm.Error.Printf("%s: %v\n", path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (b *batchFlags) processOne(path string, edit func(string, *fontfile.Font) error) error {
	f, err := fontfile.ReadFile(path)
	if err != nil {
		return err
	}
	err = edit(path, f)
	if err != nil {
		return err
	}
	out, saved, err := f.Save(b.saveOptions())
	if err != nil {
		return err
	}
	if saved {
		pterm.Success.Printf("saved: %s\n", out)
	} else {
		pterm.Warning.Printf("no changes made: %s\n", path)
	}
	return nil
}

func readNames(f *fontfile.Font) (*nametable.Table, error) {
	data, ok := f.Tables["name"]
	if !ok {
		return nil, &fontfile.MissingTableError{Name: "name"}
	}
	return nametable.Decode(data)
}

func writeNames(f *fontfile.Font, names *nametable.Table) error {
	data, err := names.Encode()
	if err != nil {
		return err
	}
	f.SetTable("name", data)
	return nil
}

func lookupLang(tag string) (*nametable.Lang, error) {
	lang, ok := nametable.LookupLang(tag)
	if !ok {
		return nil, fmt.Errorf("unknown language %q (known: %s)",
			tag, strings.Join(nametable.KnownLangs(), ", "))
	}
	return lang, nil
}

func checkPlatform(id int) error {
	switch id {
	case nametable.AnyPlatform, nametable.PlatformUnicode,
		nametable.PlatformMacintosh, nametable.PlatformWindows:
		return nil
	}
	return fmt.Errorf("invalid platform ID %d (use 0, 1 or 3)", id)
}

func toUint16(ids []int) []uint16 {
	out := make([]uint16, len(ids))
	for i, id := range ids {
		out[i] = uint16(id)
	}
	return out
}
