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
	"github.com/SolidTux/foundrytools/fontfile"
)

type utilCmd struct {
	Dsig dsigCmd `cmd:"" help:"Add an empty DSIG table."`
}

type dsigCmd struct {
	batchFlags
}

func (c *dsigCmd) Run() error {
	return c.process(func(path string, f *fontfile.Font) error {
		if f.HasTable("DSIG") {
			return nil
		}
		f.AddDummyDSIG()
		return nil
	})
}
