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

// The style bits live in two places which must be kept in sync: the
// fsSelection field of the "OS/2" table and the macStyle field of the
// "head" table.  The methods in this file update both together.

type styleTables struct {
	os2  *OS2
	head *Head
}

func (f *Font) styleTables() (*styleTables, error) {
	os2, err := f.OS2()
	if err != nil {
		return nil, err
	}
	head, err := f.Head()
	if err != nil {
		return nil, err
	}
	return &styleTables{os2: os2, head: head}, nil
}

// IsBold reports whether both the OS/2 and the head bold bits are set.
func (f *Font) IsBold() (bool, error) {
	t, err := f.styleTables()
	if err != nil {
		return false, err
	}
	return t.isBold(), nil
}

// IsItalic reports whether both the OS/2 and the head italic bits are set.
func (f *Font) IsItalic() (bool, error) {
	t, err := f.styleTables()
	if err != nil {
		return false, err
	}
	return t.isItalic(), nil
}

// IsOblique reports whether the OS/2 oblique bit is set.
func (f *Font) IsOblique() (bool, error) {
	os2, err := f.OS2()
	if err != nil {
		return false, err
	}
	return isBitSet(os2.FsSelection(), fsSelectionOblique), nil
}

// IsRegular reports whether the OS/2 regular bit is set.
func (f *Font) IsRegular() (bool, error) {
	os2, err := f.OS2()
	if err != nil {
		return false, err
	}
	return isBitSet(os2.FsSelection(), fsSelectionRegular), nil
}

// UsesTypoMetrics reports whether the USE_TYPO_METRICS bit is set.
func (f *Font) UsesTypoMetrics() (bool, error) {
	os2, err := f.OS2()
	if err != nil {
		return false, err
	}
	return isBitSet(os2.FsSelection(), fsSelectionUseTypoMetrics), nil
}

// SetBold sets the bold bits and clears the regular bit.
func (f *Font) SetBold() error {
	t, err := f.styleTables()
	if err != nil {
		return err
	}
	t.setBoldBits()
	t.clearRegularBit()
	return nil
}

// SetItalic sets the italic bits and clears the regular bit.
func (f *Font) SetItalic() error {
	t, err := f.styleTables()
	if err != nil {
		return err
	}
	t.setItalicBits()
	t.clearRegularBit()
	return nil
}

// SetOblique sets the oblique bit.  The bit is only defined from OS/2
// version 4 on, so older tables are upgraded first.
func (f *Font) SetOblique() error {
	os2, err := f.OS2()
	if err != nil {
		return err
	}
	if os2.Version() < 4 {
		os2.SetVersion(4)
	}
	os2.SetFsSelection(setBit(os2.FsSelection(), fsSelectionOblique))
	return nil
}

// UnsetBold clears the bold bits and restores the regular bit unless the
// font is still italic.
func (f *Font) UnsetBold() error {
	t, err := f.styleTables()
	if err != nil {
		return err
	}
	t.clearBoldBits()
	if !t.isItalic() {
		t.setRegularBit()
	}
	return nil
}

// UnsetItalic clears the italic bits and restores the regular bit unless
// the font is still bold.
func (f *Font) UnsetItalic() error {
	t, err := f.styleTables()
	if err != nil {
		return err
	}
	t.clearItalicBits()
	if !t.isBold() {
		t.setRegularBit()
	}
	return nil
}

// UnsetOblique clears the oblique bit.
func (f *Font) UnsetOblique() error {
	os2, err := f.OS2()
	if err != nil {
		return err
	}
	os2.SetFsSelection(clearBit(os2.FsSelection(), fsSelectionOblique))
	return nil
}

// SetRegular sets the regular bit and clears the bold and italic bits.
func (f *Font) SetRegular() error {
	t, err := f.styleTables()
	if err != nil {
		return err
	}
	t.setRegularBit()
	t.clearBoldBits()
	t.clearItalicBits()
	return nil
}

// SetUseTypoMetrics sets the USE_TYPO_METRICS bit.  The bit is reserved
// below OS/2 version 4, so the call has no effect on older tables.
func (f *Font) SetUseTypoMetrics() error {
	os2, err := f.OS2()
	if err != nil {
		return err
	}
	if os2.Version() > 3 {
		os2.SetFsSelection(setBit(os2.FsSelection(), fsSelectionUseTypoMetrics))
	}
	return nil
}

// UnsetUseTypoMetrics clears the USE_TYPO_METRICS bit.
func (f *Font) UnsetUseTypoMetrics() error {
	os2, err := f.OS2()
	if err != nil {
		return err
	}
	os2.SetFsSelection(clearBit(os2.FsSelection(), fsSelectionUseTypoMetrics))
	return nil
}

func (t *styleTables) isBold() bool {
	return isBitSet(t.head.MacStyle(), macStyleBold) &&
		isBitSet(t.os2.FsSelection(), fsSelectionBold)
}

func (t *styleTables) isItalic() bool {
	return isBitSet(t.head.MacStyle(), macStyleItalic) &&
		isBitSet(t.os2.FsSelection(), fsSelectionItalic)
}

func (t *styleTables) setBoldBits() {
	t.os2.SetFsSelection(setBit(t.os2.FsSelection(), fsSelectionBold))
	t.head.SetMacStyle(setBit(t.head.MacStyle(), macStyleBold))
}

func (t *styleTables) clearBoldBits() {
	t.os2.SetFsSelection(clearBit(t.os2.FsSelection(), fsSelectionBold))
	t.head.SetMacStyle(clearBit(t.head.MacStyle(), macStyleBold))
}

func (t *styleTables) setItalicBits() {
	t.os2.SetFsSelection(setBit(t.os2.FsSelection(), fsSelectionItalic))
	t.head.SetMacStyle(setBit(t.head.MacStyle(), macStyleItalic))
}

func (t *styleTables) clearItalicBits() {
	t.os2.SetFsSelection(clearBit(t.os2.FsSelection(), fsSelectionItalic))
	t.head.SetMacStyle(clearBit(t.head.MacStyle(), macStyleItalic))
}

func (t *styleTables) setRegularBit() {
	t.os2.SetFsSelection(setBit(t.os2.FsSelection(), fsSelectionRegular))
}

func (t *styleTables) clearRegularBit() {
	t.os2.SetFsSelection(clearBit(t.os2.FsSelection(), fsSelectionRegular))
}
