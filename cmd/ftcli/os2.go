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
)

type os2Cmd struct {
	Weight     *int    `help:"Set usWeightClass (1-1000)."`
	Width      *int    `help:"Set usWidthClass (1-9)."`
	EmbedLevel *int    `help:"Set the embedding level (0, 2, 4 or 8)." name:"embed-level"`
	Vendor     *string `help:"Set the four character vendor ID."`
	Bold       *bool   `help:"Set or clear the bold bits." negatable:""`
	Italic     *bool   `help:"Set or clear the italic bits." negatable:""`
	Oblique    *bool   `help:"Set or clear the oblique bit." negatable:""`
	UTM        *bool   `help:"Set or clear the USE_TYPO_METRICS bit." name:"utm" negatable:""`
	batchFlags
}

func (c *os2Cmd) Run() error {
	if c.Weight != nil && (*c.Weight < 1 || *c.Weight > 1000) {
		return fmt.Errorf("--weight must be between 1 and 1000")
	}
	if c.Width != nil && (*c.Width < 1 || *c.Width > 9) {
		return fmt.Errorf("--width must be between 1 and 9")
	}
	if c.EmbedLevel != nil {
		switch *c.EmbedLevel {
		case 0, 2, 4, 8:
		default:
			return fmt.Errorf("--embed-level must be 0, 2, 4 or 8")
		}
	}
	return c.process(func(path string, f *fontfile.Font) error {
		os2, err := f.OS2()
		if err != nil {
			return err
		}
		if c.Weight != nil {
			os2.SetWeightClass(uint16(*c.Weight))
		}
		if c.Width != nil {
			os2.SetWidthClass(uint16(*c.Width))
		}
		if c.EmbedLevel != nil {
			os2.SetFsType(uint16(*c.EmbedLevel))
		}
		if c.Vendor != nil {
			err = os2.SetVendorID(*c.Vendor)
			if err != nil {
				return err
			}
		}
		err = setStyleBit(c.Bold, f.SetBold, f.UnsetBold)
		if err != nil {
			return err
		}
		err = setStyleBit(c.Italic, f.SetItalic, f.UnsetItalic)
		if err != nil {
			return err
		}
		err = setStyleBit(c.Oblique, f.SetOblique, f.UnsetOblique)
		if err != nil {
			return err
		}
		return setStyleBit(c.UTM, f.SetUseTypoMetrics, f.UnsetUseTypoMetrics)
	})
}

func setStyleBit(flag *bool, set, unset func() error) error {
	if flag == nil {
		return nil
	}
	if *flag {
		return set()
	}
	return unset()
}
