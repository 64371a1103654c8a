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
	"github.com/pterm/pterm"

	"github.com/SolidTux/foundrytools/fontfile"
	"github.com/SolidTux/foundrytools/overlaps"
)

type fixCmd struct {
	Overlaps overlapsCmd `cmd:"" help:"Remove overlapping contours from glyph outlines."`
}

type overlapsCmd struct {
	KeepHinting  bool `help:"Do not strip hinting instructions."`
	IgnoreErrors bool `help:"Skip glyphs that fail instead of aborting."`
	batchFlags
}

func (c *overlapsCmd) Run() error {
	return c.process(func(path string, f *fontfile.Font) error {
		opts := overlaps.Options{
			KeepHinting:  c.KeepHinting,
			IgnoreErrors: c.IgnoreErrors,
			Warn: func(msg string) {
				pterm.Warning.Printf("%s: %s\n", path, msg)
			},
		}
		_, err := overlaps.Remove(f, opts)
		return err
	})
}
