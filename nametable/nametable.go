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

// Package nametable reads, edits and writes the "name" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package nametable

import (
	"errors"
	"sort"
)

// Well-known name IDs.
const (
	IDCopyright       = 0
	IDFamily          = 1
	IDSubfamily       = 2
	IDUniqueID        = 3
	IDFullName        = 4
	IDVersion         = 5
	IDPostScriptName  = 6
	IDTrademark       = 7
	IDManufacturer    = 8
	IDDesigner        = 9
	IDDescription     = 10
	IDVendorURL       = 11
	IDDesignerURL     = 12
	IDLicense         = 13
	IDLicenseURL      = 14
	IDTypoFamily      = 16
	IDTypoSubfamily   = 17
	IDMacFullName     = 18
	IDSampleText      = 19
	IDCIDFindFontName = 20
	IDWWSFamily       = 21
	IDWWSSubfamily    = 22
)

// Platform IDs used in name records.
const (
	PlatformUnicode   = 0
	PlatformMacintosh = 1
	PlatformWindows   = 3
)

// A Record is a single name record.  Value holds the string in the
// encoding implied by the platform and encoding IDs.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      []byte
}

// String returns the decoded record value.
func (r *Record) String() string {
	return DecodeValue(r.PlatformID, r.EncodingID, r.Value)
}

// Table holds the decoded contents of a "name" table.  Records keep
// their raw string bytes, so a decode/encode round trip preserves
// values the library cannot interpret.
type Table struct {
	Records []*Record

	// LangTags holds the UTF-16 language tag strings of a format 1
	// table, in order.  Empty for format 0.
	LangTags [][]byte
}

var errMalformed = errors.New("malformed name table")

// Decode parses the binary form of a "name" table.
func Decode(data []byte) (*Table, error) {
	if len(data) < 6 {
		return nil, errMalformed
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	if version > 1 {
		return nil, errMalformed
	}

	numRec := int(data[2])<<8 | int(data[3])
	storageOffset := int(data[4])<<8 | int(data[5])

	recBase := 6
	endOfHeader := recBase + 12*numRec
	if endOfHeader > len(data) {
		return nil, errMalformed
	}

	t := &Table{}

	if version > 0 {
		if endOfHeader+2 > len(data) {
			return nil, errMalformed
		}
		numTags := int(data[endOfHeader])<<8 | int(data[endOfHeader+1])
		tagBase := endOfHeader + 2
		endOfHeader = tagBase + 4*numTags
		if endOfHeader > len(data) {
			return nil, errMalformed
		}
		for i := 0; i < numTags; i++ {
			pos := tagBase + i*4
			tagLen := int(data[pos])<<8 | int(data[pos+1])
			tagOffset := int(data[pos+2])<<8 | int(data[pos+3])
			start := storageOffset + tagOffset
			if start < 0 || start+tagLen > len(data) {
				return nil, errMalformed
			}
			tag := make([]byte, tagLen)
			copy(tag, data[start:start+tagLen])
			t.LangTags = append(t.LangTags, tag)
		}
	}
	if storageOffset < endOfHeader || storageOffset > len(data) {
		return nil, errMalformed
	}

	for i := 0; i < numRec; i++ {
		pos := recBase + i*12
		rec := &Record{
			PlatformID: uint16(data[pos])<<8 | uint16(data[pos+1]),
			EncodingID: uint16(data[pos+2])<<8 | uint16(data[pos+3]),
			LanguageID: uint16(data[pos+4])<<8 | uint16(data[pos+5]),
			NameID:     uint16(data[pos+6])<<8 | uint16(data[pos+7]),
		}
		valLen := int(data[pos+8])<<8 | int(data[pos+9])
		valOffset := int(data[pos+10])<<8 | int(data[pos+11])

		start := storageOffset + valOffset
		if start+valLen > len(data) {
			return nil, errMalformed
		}
		rec.Value = make([]byte, valLen)
		copy(rec.Value, data[start:start+valLen])
		t.Records = append(t.Records, rec)
	}

	return t, nil
}

// Encode converts the table to its binary form.  Records are sorted by
// platform, encoding, language and name ID, and identical string values
// share storage.  Encoding fails when the string storage outgrows the
// 16 bit offsets of the format.
func (t *Table) Encode() ([]byte, error) {
	records := make([]*Record, len(t.Records))
	copy(records, t.Records)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].PlatformID != records[j].PlatformID {
			return records[i].PlatformID < records[j].PlatformID
		}
		if records[i].EncodingID != records[j].EncodingID {
			return records[i].EncodingID < records[j].EncodingID
		}
		if records[i].LanguageID != records[j].LanguageID {
			return records[i].LanguageID < records[j].LanguageID
		}
		return records[i].NameID < records[j].NameID
	})

	version := uint16(0)
	headerLen := 6 + 12*len(records)
	if len(t.LangTags) > 0 {
		version = 1
		headerLen += 2 + 4*len(t.LangTags)
	}

	b := newStringBuilder()
	type placed struct {
		offset, length uint16
	}
	recPos := make([]placed, len(records))
	for i, rec := range records {
		offset, length := b.add(rec.Value)
		recPos[i] = placed{offset, length}
	}
	tagPos := make([]placed, len(t.LangTags))
	for i, tag := range t.LangTags {
		offset, length := b.add(tag)
		tagPos[i] = placed{offset, length}
	}
	if headerLen > 0xFFFF || len(b.data) > 0xFFFF {
		return nil, errors.New("name table too large")
	}

	res := make([]byte, headerLen+len(b.data))
	res[0] = byte(version >> 8)
	res[1] = byte(version)
	res[2] = byte(len(records) >> 8)
	res[3] = byte(len(records))
	res[4] = byte(headerLen >> 8)
	res[5] = byte(headerLen)
	for i, rec := range records {
		base := 6 + i*12
		res[base] = byte(rec.PlatformID >> 8)
		res[base+1] = byte(rec.PlatformID)
		res[base+2] = byte(rec.EncodingID >> 8)
		res[base+3] = byte(rec.EncodingID)
		res[base+4] = byte(rec.LanguageID >> 8)
		res[base+5] = byte(rec.LanguageID)
		res[base+6] = byte(rec.NameID >> 8)
		res[base+7] = byte(rec.NameID)
		res[base+8] = byte(recPos[i].length >> 8)
		res[base+9] = byte(recPos[i].length)
		res[base+10] = byte(recPos[i].offset >> 8)
		res[base+11] = byte(recPos[i].offset)
	}
	if version > 0 {
		base := 6 + 12*len(records)
		res[base] = byte(len(t.LangTags) >> 8)
		res[base+1] = byte(len(t.LangTags))
		for i := range t.LangTags {
			pos := base + 2 + i*4
			res[pos] = byte(tagPos[i].length >> 8)
			res[pos+1] = byte(tagPos[i].length)
			res[pos+2] = byte(tagPos[i].offset >> 8)
			res[pos+3] = byte(tagPos[i].offset)
		}
	}
	copy(res[headerLen:], b.data)

	return res, nil
}

// Get returns the record with the given IDs, or nil.
func (t *Table) Get(platformID, encodingID, languageID, nameID uint16) *Record {
	for _, rec := range t.Records {
		if rec.PlatformID == platformID && rec.EncodingID == encodingID &&
			rec.LanguageID == languageID && rec.NameID == nameID {
			return rec
		}
	}
	return nil
}

// Value returns the decoded value of the first record with the given
// name ID on the given platform, or "".  A negative platform matches
// any record.
func (t *Table) Value(nameID uint16, platformID int) string {
	for _, rec := range t.Records {
		if rec.NameID != nameID {
			continue
		}
		if platformID >= 0 && int(rec.PlatformID) != platformID {
			continue
		}
		return rec.String()
	}
	return ""
}

// set replaces the record with the given IDs, appending a new record if
// none exists.
func (t *Table) set(platformID, encodingID, languageID, nameID uint16, value []byte) {
	if rec := t.Get(platformID, encodingID, languageID, nameID); rec != nil {
		rec.Value = value
		return
	}
	t.Records = append(t.Records, &Record{
		PlatformID: platformID,
		EncodingID: encodingID,
		LanguageID: languageID,
		NameID:     nameID,
		Value:      value,
	})
}

// removeIf deletes all records for which the predicate returns true and
// reports how many were removed.
func (t *Table) removeIf(pred func(*Record) bool) int {
	kept := t.Records[:0]
	removed := 0
	for _, rec := range t.Records {
		if pred(rec) {
			removed++
		} else {
			kept = append(kept, rec)
		}
	}
	t.Records = kept
	return removed
}

type stringBuilder struct {
	data []byte
	idx  map[string]uint16
}

func newStringBuilder() *stringBuilder {
	return &stringBuilder{
		idx: make(map[string]uint16),
	}
}

func (sb *stringBuilder) add(b []byte) (offset, length uint16) {
	key := string(b)
	if idx, ok := sb.idx[key]; ok {
		return idx, uint16(len(b))
	}
	idx := uint16(len(sb.data))
	sb.idx[key] = idx
	sb.data = append(sb.data, b...)
	return idx, uint16(len(b))
}
