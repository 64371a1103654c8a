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

import "strings"

// AnyPlatform makes an operation apply to records of every platform.
const AnyPlatform = -1

// SetName writes a name record for the given language on the selected
// platforms.  Windows records use encoding 1 (or 10 for strings with
// supplementary plane characters); Macintosh records use the script
// implied by the language.  Existing records with the same IDs are
// replaced.
func (t *Table) SetName(nameID uint16, value string, lang *Lang, windows, mac bool) {
	if windows {
		encID := windowsEncodingID(value)
		t.removeIf(func(r *Record) bool {
			return r.PlatformID == PlatformWindows && r.NameID == nameID &&
				r.LanguageID == lang.Windows
		})
		t.set(PlatformWindows, encID, lang.Windows, nameID,
			EncodeValue(PlatformWindows, encID, value))
	}
	if mac {
		t.removeIf(func(r *Record) bool {
			return r.PlatformID == PlatformMacintosh && r.NameID == nameID &&
				r.LanguageID == lang.Mac
		})
		t.set(PlatformMacintosh, lang.MacScript, lang.Mac, nameID,
			EncodeValue(PlatformMacintosh, lang.MacScript, value))
	}
}

// DelNames removes all records whose name ID is in nameIDs, optionally
// restricted to one platform and one language.  A nil lang matches
// records of any language.  It reports how many records were removed.
func (t *Table) DelNames(nameIDs []uint16, platformID int, lang *Lang) int {
	if len(nameIDs) == 0 {
		return 0
	}
	ids := make(map[uint16]bool, len(nameIDs))
	for _, id := range nameIDs {
		ids[id] = true
	}
	return t.removeIf(func(r *Record) bool {
		if !ids[r.NameID] {
			return false
		}
		if platformID != AnyPlatform && int(r.PlatformID) != platformID {
			return false
		}
		if lang != nil && !matchesLang(r, lang) {
			return false
		}
		return true
	})
}

// FindReplace substitutes old with new in the selected records.  When
// includeIDs is empty every name ID is eligible; excludeIDs wins over an
// explicit include.  Replaced values have runs of two spaces collapsed
// and surrounding whitespace trimmed.  It reports the number of records
// changed.
func (t *Table) FindReplace(old, new string, includeIDs, excludeIDs []uint16, platformID int) int {
	if old == "" {
		return 0
	}
	include := make(map[uint16]bool, len(includeIDs))
	for _, id := range includeIDs {
		include[id] = true
	}
	exclude := make(map[uint16]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		exclude[id] = true
	}

	count := 0
	for _, rec := range t.Records {
		if platformID != AnyPlatform && int(rec.PlatformID) != platformID {
			continue
		}
		if len(include) > 0 && !include[rec.NameID] {
			continue
		}
		if exclude[rec.NameID] {
			continue
		}
		s := rec.String()
		if !strings.Contains(s, old) {
			continue
		}
		s = strings.ReplaceAll(s, old, new)
		s = strings.TrimSpace(strings.ReplaceAll(s, "  ", " "))
		rec.Value = EncodeValue(rec.PlatformID, rec.EncodingID, s)
		count++
	}
	return count
}

// AppendAffix prepends and/or appends a string to the selected records.
// A nil lang matches records of any language.  It reports the number of
// records changed.
func (t *Table) AppendAffix(nameIDs []uint16, platformID int, lang *Lang, prefix, suffix string) int {
	if prefix == "" && suffix == "" {
		return 0
	}
	ids := make(map[uint16]bool, len(nameIDs))
	for _, id := range nameIDs {
		ids[id] = true
	}

	count := 0
	for _, rec := range t.Records {
		if !ids[rec.NameID] {
			continue
		}
		if platformID != AnyPlatform && int(rec.PlatformID) != platformID {
			continue
		}
		if lang != nil && !matchesLang(rec, lang) {
			continue
		}
		s := prefix + rec.String() + suffix
		rec.Value = EncodeValue(rec.PlatformID, rec.EncodingID, s)
		count++
	}
	return count
}

// DelMacNames removes Macintosh records, keeping the name IDs listed in
// keep.  It reports how many records were removed.
func (t *Table) DelMacNames(keep []uint16) int {
	keepSet := make(map[uint16]bool, len(keep))
	for _, id := range keep {
		keepSet[id] = true
	}
	return t.removeIf(func(r *Record) bool {
		return r.PlatformID == PlatformMacintosh && !keepSet[r.NameID]
	})
}

// RemoveEmpty deletes records whose decoded value is empty.  It reports
// how many records were removed.
func (t *Table) RemoveEmpty() int {
	return t.removeIf(func(r *Record) bool {
		return len(r.String()) == 0
	})
}

// Win2Mac mirrors every Windows record into a Macintosh English record
// (platform 1, script Roman, language 0).  Empty records are removed
// first.  Windows records of the same name ID overwrite each other in
// table order.
func (t *Table) Win2Mac() {
	t.RemoveEmpty()
	en, _ := LookupLang("en")
	for _, rec := range append([]*Record(nil), t.Records...) {
		if rec.PlatformID != PlatformWindows {
			continue
		}
		s := rec.String()
		t.removeIf(func(r *Record) bool {
			return r.PlatformID == PlatformMacintosh && r.NameID == rec.NameID &&
				r.LanguageID == en.Mac
		})
		t.set(PlatformMacintosh, en.MacScript, en.Mac, rec.NameID,
			EncodeValue(PlatformMacintosh, en.MacScript, s))
	}
}
