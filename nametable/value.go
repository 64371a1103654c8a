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

package nametable

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

func utf16Decode(b []byte) string {
	s, err := utf16BE.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

func utf16Encode(s string) []byte {
	b, err := utf16BE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return b
}

// macCharmap returns the character map for a Macintosh script code, or
// nil if the script has no single-byte map here.
func macCharmap(script uint16) *charmap.Charmap {
	switch script {
	case 0: // Roman
		return charmap.Macintosh
	case 7: // Cyrillic
		return charmap.MacintoshCyrillic
	}
	return nil
}

// DecodeValue interprets raw name record bytes according to the
// platform and encoding IDs.  Bytes that cannot be interpreted are
// passed through unchanged.
func DecodeValue(platformID, encodingID uint16, b []byte) string {
	switch platformID {
	case PlatformUnicode, PlatformWindows:
		return utf16Decode(b)
	case PlatformMacintosh:
		if cm := macCharmap(encodingID); cm != nil {
			s, err := cm.NewDecoder().Bytes(b)
			if err == nil {
				return string(s)
			}
		}
		return string(b)
	}
	return string(b)
}

// EncodeValue converts a string into the byte encoding implied by the
// platform and encoding IDs.  Strings that do not fit a single-byte
// Macintosh encoding are stored as UTF-8, matching the tolerance of
// common font editors.
func EncodeValue(platformID, encodingID uint16, s string) []byte {
	switch platformID {
	case PlatformUnicode, PlatformWindows:
		return utf16Encode(s)
	case PlatformMacintosh:
		if cm := macCharmap(encodingID); cm != nil {
			b, err := cm.NewEncoder().Bytes([]byte(s))
			if err == nil {
				return b
			}
		}
		return []byte(s)
	}
	return []byte(s)
}

// windowsEncodingID returns the encoding ID for a new Windows record
// holding the given string: 1 for basic multilingual plane text, 10
// when supplementary plane characters are present.
func windowsEncodingID(s string) uint16 {
	for _, r := range s {
		if r > 0xFFFF {
			return 10
		}
	}
	return 1
}
