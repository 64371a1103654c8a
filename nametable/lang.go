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
	"sort"
	"strings"
)

// A Lang maps a language tag to the per-platform IDs used in name
// records.
type Lang struct {
	Tag       string
	Windows   uint16 // Windows language ID
	Mac       uint16 // Macintosh language ID
	MacScript uint16 // Macintosh script (encoding ID) for the language
}

// Selected language codes.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#windows-language-ids
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#macintosh-language-ids
var langs = []Lang{
	{Tag: "en", Windows: 0x0409, Mac: 0, MacScript: 0},
	{Tag: "fr", Windows: 0x040C, Mac: 1, MacScript: 0},
	{Tag: "de", Windows: 0x0407, Mac: 2, MacScript: 0},
	{Tag: "it", Windows: 0x0410, Mac: 3, MacScript: 0},
	{Tag: "nl", Windows: 0x0413, Mac: 4, MacScript: 0},
	{Tag: "sv", Windows: 0x041D, Mac: 5, MacScript: 0},
	{Tag: "es", Windows: 0x0C0A, Mac: 6, MacScript: 0},
	{Tag: "da", Windows: 0x0406, Mac: 7, MacScript: 0},
	{Tag: "pt", Windows: 0x0816, Mac: 8, MacScript: 0},
	{Tag: "no", Windows: 0x0414, Mac: 9, MacScript: 0},
	{Tag: "he", Windows: 0x040D, Mac: 10, MacScript: 5},
	{Tag: "ja", Windows: 0x0411, Mac: 11, MacScript: 1},
	{Tag: "ar", Windows: 0x0401, Mac: 12, MacScript: 4},
	{Tag: "fi", Windows: 0x040B, Mac: 13, MacScript: 0},
	{Tag: "el", Windows: 0x0408, Mac: 14, MacScript: 6},
	{Tag: "is", Windows: 0x040F, Mac: 15, MacScript: 0},
	{Tag: "tr", Windows: 0x041F, Mac: 17, MacScript: 35},
	{Tag: "hr", Windows: 0x041A, Mac: 18, MacScript: 36},
	{Tag: "zh-hant", Windows: 0x0404, Mac: 19, MacScript: 2},
	{Tag: "hi", Windows: 0x0439, Mac: 21, MacScript: 9},
	{Tag: "th", Windows: 0x041E, Mac: 22, MacScript: 21},
	{Tag: "ko", Windows: 0x0412, Mac: 23, MacScript: 3},
	{Tag: "lt", Windows: 0x0427, Mac: 24, MacScript: 29},
	{Tag: "pl", Windows: 0x0415, Mac: 25, MacScript: 29},
	{Tag: "hu", Windows: 0x040E, Mac: 26, MacScript: 29},
	{Tag: "et", Windows: 0x0425, Mac: 27, MacScript: 29},
	{Tag: "lv", Windows: 0x0426, Mac: 28, MacScript: 29},
	{Tag: "ru", Windows: 0x0419, Mac: 32, MacScript: 7},
	{Tag: "zh-hans", Windows: 0x0804, Mac: 33, MacScript: 25},
	{Tag: "nl-be", Windows: 0x0813, Mac: 34, MacScript: 0},
	{Tag: "ga", Windows: 0x083C, Mac: 35, MacScript: 0},
	{Tag: "sq", Windows: 0x041C, Mac: 36, MacScript: 0},
	{Tag: "ro", Windows: 0x0418, Mac: 37, MacScript: 38},
	{Tag: "cs", Windows: 0x0405, Mac: 38, MacScript: 29},
	{Tag: "sk", Windows: 0x041B, Mac: 39, MacScript: 29},
	{Tag: "sl", Windows: 0x0424, Mac: 40, MacScript: 29},
	{Tag: "mk", Windows: 0x042F, Mac: 43, MacScript: 7},
	{Tag: "bg", Windows: 0x0402, Mac: 44, MacScript: 7},
	{Tag: "uk", Windows: 0x0422, Mac: 45, MacScript: 7},
}

var langByTag = func() map[string]*Lang {
	m := make(map[string]*Lang, len(langs))
	for i := range langs {
		m[langs[i].Tag] = &langs[i]
	}
	return m
}()

// LookupLang resolves a language tag like "en" or "de".  Matching is
// case-insensitive.
func LookupLang(tag string) (*Lang, bool) {
	l, ok := langByTag[strings.ToLower(tag)]
	return l, ok
}

// KnownLangs returns the supported language tags in sorted order.
func KnownLangs() []string {
	tags := make([]string, 0, len(langs))
	for i := range langs {
		tags = append(tags, langs[i].Tag)
	}
	sort.Strings(tags)
	return tags
}

// LangTag returns the registry tag for a record's platform and language
// IDs, or "" if unknown.
func LangTag(platformID, languageID uint16) string {
	for i := range langs {
		l := &langs[i]
		switch platformID {
		case PlatformWindows:
			if l.Windows == languageID {
				return l.Tag
			}
		case PlatformMacintosh:
			if l.Mac == languageID {
				return l.Tag
			}
		}
	}
	return ""
}

// matchesLang reports whether a record belongs to the given language on
// its own platform.
func matchesLang(rec *Record, l *Lang) bool {
	switch rec.PlatformID {
	case PlatformWindows:
		return rec.LanguageID == l.Windows
	case PlatformMacintosh:
		return rec.LanguageID == l.Mac
	}
	return false
}
