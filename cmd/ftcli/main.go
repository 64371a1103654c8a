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
	"github.com/alecthomas/kong"
)

var cli struct {
	Name    nameCmd    `cmd:"" help:"Edit the name table."`
	OS2     os2Cmd     `cmd:"" name:"os2" help:"Edit the OS/2 table."`
	Metrics metricsCmd `cmd:"" help:"Adjust font metrics."`
	Fix     fixCmd     `cmd:"" help:"Repair font data."`
	Util    utilCmd    `cmd:"" help:"Miscellaneous helpers."`
	Print   printCmd   `cmd:"" help:"Show font data."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("ftcli"),
		kong.Description("Command line tools for editing OpenType fonts."),
		kong.UsageOnError())
	ctx.FatalIfErrorf(ctx.Run())
}
