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

	"github.com/SolidTux/foundrytools/fontfile"
	"github.com/SolidTux/foundrytools/vmetrics"
)

type metricsCmd struct {
	Linegap linegapCmd `cmd:"" help:"Set the line spacing as a percentage of the units per em."`
}

type linegapCmd struct {
	Percent int `help:"Line spacing in percent of the units per em." short:"p" required:""`
	batchFlags
}

func (c *linegapCmd) Run() error {
	if c.Percent < 0 || c.Percent > 100 {
		return fmt.Errorf("--percent must be between 0 and 100")
	}
	return c.process(func(path string, f *fontfile.Font) error {
		return vmetrics.SetLinegapPercent(f, c.Percent)
	})
}
