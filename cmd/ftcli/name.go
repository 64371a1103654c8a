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
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/SolidTux/foundrytools/fontfile"
	"github.com/SolidTux/foundrytools/nametable"
	"github.com/SolidTux/foundrytools/naming"
)

type nameCmd struct {
	Set         nameSetCmd         `cmd:"" help:"Write a name record."`
	Del         nameDelCmd         `cmd:"" help:"Delete name records."`
	FindReplace nameFindReplaceCmd `cmd:"" name:"find-replace" help:"Replace a substring in name records."`
	Append      nameAppendCmd      `cmd:"" help:"Prepend or append a string to name records."`
	DelMacNames nameDelMacNamesCmd `cmd:"" name:"del-mac-names" help:"Delete Macintosh name records."`
	Win2Mac     nameWin2MacCmd     `cmd:"" name:"win2mac" help:"Mirror Windows name records to the Macintosh platform."`
	Recalc      nameRecalcCmd      `cmd:"" help:"Rebuild name records and style bits from a styles file."`
}

type nameSetCmd struct {
	NameID   int    `help:"Name ID to write." short:"n" required:""`
	String   string `help:"Value of the record." short:"s" required:""`
	Platform string `help:"Write only Windows or only Macintosh records." short:"p" enum:"win,mac,both" default:"both"`
	Language string `help:"Language tag of the record." short:"l" default:"en"`
	batchFlags
}

func (c *nameSetCmd) Run() error {
	lang, err := lookupLang(c.Language)
	if err != nil {
		return err
	}
	return c.process(func(path string, f *fontfile.Font) error {
		names, err := readNames(f)
		if err != nil {
			return err
		}
		names.SetName(uint16(c.NameID), c.String, lang,
			c.Platform != "mac", c.Platform != "win")
		return writeNames(f, names)
	})
}

type nameDelCmd struct {
	NameIDs  []int  `help:"Name IDs to delete." short:"n" name:"name-id" required:""`
	Platform int    `help:"Restrict to one platform ID (0, 1 or 3)." short:"p" default:"-1"`
	Language string `help:"Restrict to one language tag." short:"l"`
	batchFlags
}

func (c *nameDelCmd) Run() error {
	err := checkPlatform(c.Platform)
	if err != nil {
		return err
	}
	var lang *nametable.Lang
	if c.Language != "" {
		lang, err = lookupLang(c.Language)
		if err != nil {
			return err
		}
	}
	return c.process(func(path string, f *fontfile.Font) error {
		names, err := readNames(f)
		if err != nil {
			return err
		}
		if names.DelNames(toUint16(c.NameIDs), c.Platform, lang) > 0 {
			return writeNames(f, names)
		}
		return nil
	})
}

type nameFindReplaceCmd struct {
	Old      string `help:"Substring to search for." name:"os" required:""`
	New      string `help:"Replacement string." name:"ns"`
	NameIDs  []int  `help:"Only replace in these name IDs." short:"n" name:"name-id"`
	Exclude  []int  `help:"Never replace in these name IDs." short:"x" name:"exclude-id"`
	Platform int    `help:"Restrict to one platform ID (0, 1 or 3)." short:"p" default:"-1"`
	FixCFF   bool   `help:"Also replace in the naming fields of the CFF table." name:"fix-cff"`
	batchFlags
}

func (c *nameFindReplaceCmd) Run() error {
	err := checkPlatform(c.Platform)
	if err != nil {
		return err
	}
	return c.process(func(path string, f *fontfile.Font) error {
		names, err := readNames(f)
		if err != nil {
			return err
		}
		n := names.FindReplace(c.Old, c.New,
			toUint16(c.NameIDs), toUint16(c.Exclude), c.Platform)
		if n > 0 {
			err = writeNames(f, names)
			if err != nil {
				return err
			}
		}
		if c.FixCFF {
			_, err = naming.FindReplaceCFF(f, c.Old, c.New)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

type nameAppendCmd struct {
	NameIDs  []int  `help:"Name IDs to change." short:"n" name:"name-id" required:""`
	Platform int    `help:"Restrict to one platform ID (0, 1 or 3)." short:"p" default:"-1"`
	Language string `help:"Restrict to one language tag." short:"l"`
	Prefix   string `help:"String to prepend."`
	Suffix   string `help:"String to append."`
	batchFlags
}

func (c *nameAppendCmd) Run() error {
	err := checkPlatform(c.Platform)
	if err != nil {
		return err
	}
	var lang *nametable.Lang
	if c.Language != "" {
		lang, err = lookupLang(c.Language)
		if err != nil {
			return err
		}
	}
	return c.process(func(path string, f *fontfile.Font) error {
		names, err := readNames(f)
		if err != nil {
			return err
		}
		n := names.AppendAffix(toUint16(c.NameIDs), c.Platform, lang,
			c.Prefix, c.Suffix)
		if n > 0 {
			return writeNames(f, names)
		}
		return nil
	})
}

type nameDelMacNamesCmd struct {
	DelAll bool `help:"Also delete the name IDs 1, 2, 4, 5 and 6."`
	batchFlags
}

func (c *nameDelMacNamesCmd) Run() error {
	keep := []uint16{
		nametable.IDFamily, nametable.IDSubfamily, nametable.IDFullName,
		nametable.IDVersion, nametable.IDPostScriptName,
	}
	if c.DelAll {
		keep = nil
	}
	return c.process(func(path string, f *fontfile.Font) error {
		names, err := readNames(f)
		if err != nil {
			return err
		}
		if names.DelMacNames(keep) > 0 {
			return writeNames(f, names)
		}
		return nil
	})
}

type nameWin2MacCmd struct {
	batchFlags
}

func (c *nameWin2MacCmd) Run() error {
	return c.process(func(path string, f *fontfile.Font) error {
		names, err := readNames(f)
		if err != nil {
			return err
		}
		names.Win2Mac()
		return writeNames(f, names)
	})
}

type nameRecalcCmd struct {
	StylesFile       string `help:"CSV file with the style matrix." short:"d" name:"styles-file" required:"" type:"existingfile"`
	IgnoreIDs        []int  `help:"Name IDs left untouched." short:"i" name:"ignore-id"`
	ShortenWeight    []int  `help:"Name IDs in which the weight word is abbreviated." name:"swgt"`
	ShortenWidth     []int  `help:"Name IDs in which the width word is abbreviated." name:"swdt"`
	ShortenSlope     []int  `help:"Name IDs in which the slope word is abbreviated." name:"sslp"`
	LinkedStyles     []int  `help:"Two usWeightClass values forming a regular/bold pair (give twice)." name:"ls"`
	SuperFamily      bool   `help:"Move the width name into the subfamily instead of the family name."`
	AltUID           bool   `help:"Build name ID 3 as manufacturer: family-subfamily: year." name:"alt-uid"`
	RegularItalic    bool   `help:"Use the -RegularItalic PostScript suffix instead of -Italic."`
	KeepRegular      bool   `help:"Keep the word Regular in the subfamily name of sloped fonts."`
	OldFullFontName  bool   `help:"Write the PostScript name into name ID 4."`
	ObliqueNotItalic bool   `help:"Set only the oblique bit on oblique fonts."`
	FixCFF           bool   `help:"Also rewrite the naming fields of the CFF table." name:"fix-cff"`
	batchFlags
}

func (c *nameRecalcCmd) Run() error {
	if len(c.LinkedStyles) != 0 && len(c.LinkedStyles) != 2 {
		return fmt.Errorf("--ls must be given exactly twice")
	}
	entries, err := naming.LoadStyles(c.StylesFile)
	if err != nil {
		return err
	}
	opts := naming.Options{
		IgnoreIDs:        c.IgnoreIDs,
		ShortenWeight:    c.ShortenWeight,
		ShortenWidth:     c.ShortenWidth,
		ShortenSlope:     c.ShortenSlope,
		FixCFF:           c.FixCFF,
		LinkedStyles:     c.LinkedStyles,
		SuperFamily:      c.SuperFamily,
		AltUniqueID:      c.AltUID,
		RegularItalic:    c.RegularItalic,
		KeepRegular:      c.KeepRegular,
		OldFullFontName:  c.OldFullFontName,
		ObliqueNotItalic: c.ObliqueNotItalic,
	}
	return c.process(func(path string, f *fontfile.Font) error {
		base := filepath.Base(path)
		e, ok := naming.FindStyle(entries, base)
		if !ok {
			return fmt.Errorf("no style entry for %s", base)
		}
		res, err := naming.Recalc(f, e, opts)
		if err != nil {
			return err
		}
		for _, w := range res.Warnings {
			pterm.Warning.Printf("%s: %s\n", path, w)
		}
		return nil
	})
}
